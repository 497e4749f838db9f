package handler

import (
	"context"
	"strings"

	tele "gopkg.in/telebot.v3"
)

// Sender is the part of *tele.Bot used for outbound messages
type Sender interface {
	Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error)
}

// Notifier delivers service notifications through telebot
type Notifier struct {
	sender Sender
}

// NewNotifier creates a new notifier
func NewNotifier(sender Sender) *Notifier {
	return &Notifier{sender: sender}
}

// SendText sends a text message to chatID
func (n *Notifier) SendText(_ context.Context, chatID int64, text string, opts ...interface{}) error {
	_, err := n.sender.Send(tele.ChatID(chatID), text, opts...)
	return err
}

// SendPhoto sends a photo given as URL or file id to chatID
func (n *Notifier) SendPhoto(_ context.Context, chatID int64, photoRef, caption string, opts ...interface{}) error {
	_, err := n.sender.Send(tele.ChatID(chatID), photo(photoRef, caption), opts...)
	return err
}

// photo builds a photo from an http(s) URL or a Telegram file id
func photo(ref, caption string) *tele.Photo {
	return &tele.Photo{File: fileRef(ref), Caption: caption}
}

func fileRef(ref string) tele.File {
	if isLink(ref) {
		return tele.FromURL(ref)
	}
	return tele.File{FileID: ref}
}

func isLink(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
