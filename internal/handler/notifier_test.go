package handler

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tele "gopkg.in/telebot.v3"
)

type sent struct {
	to   string
	what interface{}
}

type fakeSender struct {
	sent []sent
	err  error
}

func (s *fakeSender) Send(to tele.Recipient, what interface{}, _ ...interface{}) (*tele.Message, error) {
	s.sent = append(s.sent, sent{to: to.Recipient(), what: what})
	return &tele.Message{}, s.err
}

func TestNotifier_SendText(t *testing.T) {
	sender := &fakeSender{}
	notifier := NewNotifier(sender)

	err := notifier.SendText(context.Background(), 42, "hi")

	require.NoError(t, err)
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "42", sender.sent[0].to)
	assert.Equal(t, "hi", sender.sent[0].what)
}

func TestNotifier_SendPhoto(t *testing.T) {
	tests := []struct {
		name    string
		ref     string
		fileID  string
		fileURL string
	}{
		{name: "url", ref: "https://example.com/a.png", fileURL: "https://example.com/a.png"},
		{name: "file id", ref: "AgACAgQAAxkBAAI", fileID: "AgACAgQAAxkBAAI"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := &fakeSender{}
			notifier := NewNotifier(sender)

			err := notifier.SendPhoto(context.Background(), 7, tt.ref, "caption")

			require.NoError(t, err)
			require.Len(t, sender.sent, 1)
			p, ok := sender.sent[0].what.(*tele.Photo)
			require.True(t, ok)
			assert.Equal(t, "caption", p.Caption)
			assert.Equal(t, tt.fileID, p.FileID)
			assert.Equal(t, tt.fileURL, p.FileURL)
		})
	}
}

func TestNotifier_PropagatesError(t *testing.T) {
	sender := &fakeSender{err: fmt.Errorf("forbidden: bot was blocked by the user")}
	notifier := NewNotifier(sender)

	err := notifier.SendText(context.Background(), 1, "x")

	assert.Error(t, err)
}
