package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenu_Find(t *testing.T) {
	menu := DefaultMenu()

	tests := []struct {
		name       string
		key        string
		expectedID string
	}{
		{name: "top level by id", key: "services", expectedID: "services"},
		{name: "top level by text", key: "📩 تواصل مع الأدمن", expectedID: "contact"},
		{name: "nested by id", key: "ff", expectedID: "ff"},
		{name: "nested by text", key: "شحن شدات PUBG (1$)", expectedID: "pubg"},
		{name: "missing", key: "nope", expectedID: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := menu.Find(tt.key)
			if tt.expectedID == "" {
				assert.Nil(t, node)
				return
			}
			require.NotNil(t, node)
			assert.Equal(t, tt.expectedID, node.ID)
		})
	}
}

func TestMenu_FindByIDMatchesFindByText(t *testing.T) {
	menu := DefaultMenu()

	for _, id := range []string{"services", "pubg", "ff", "contact"} {
		byID := menu.Find(id)
		require.NotNil(t, byID)
		assert.Same(t, byID, menu.Find(byID.Text))
	}
}

func TestMenu_FindReturnsMutableNode(t *testing.T) {
	menu := DefaultMenu()

	menu.Find("pubg").Description = "fast"

	assert.Equal(t, "fast", menu.MainMenu[0].Children[0].Description)
}

func TestMenu_Add(t *testing.T) {
	menu := DefaultMenu()

	err := menu.Add(NewContent("svc1", "My Service", "Hello $5", ""))
	require.NoError(t, err)
	assert.Len(t, menu.MainMenu, 3)

	err = menu.Add(NewContactAdmin("ff", "dup of nested"))
	assert.ErrorIs(t, err, ErrDuplicateID)

	err = menu.Add(NewSubmenu("new", "New", []Node{NewContactAdmin("contact", "x")}))
	assert.ErrorIs(t, err, ErrDuplicateID)
	assert.Len(t, menu.MainMenu, 3)
}

func TestMenu_RemoveTopLevel(t *testing.T) {
	menu := DefaultMenu()
	require.NoError(t, menu.Add(NewContent("svc1", "My Service", "", "")))

	removed, ok := menu.RemoveTopLevel("svc1")
	assert.True(t, ok)
	assert.Equal(t, "svc1", removed.ID)
	assert.Nil(t, menu.Find("svc1"))

	_, ok = menu.RemoveTopLevel("pubg")
	assert.False(t, ok, "nested nodes are not removed")
	assert.NotNil(t, menu.Find("pubg"))

	_, ok = menu.RemoveTopLevel("📩 تواصل مع الأدمن")
	assert.True(t, ok)
	assert.Len(t, menu.MainMenu, 1)
}

func TestNode_ConvertToRequestInfo(t *testing.T) {
	menu := DefaultMenu()
	node := menu.Find("services")

	node.ConvertToRequestInfo("send your id")

	assert.Equal(t, KindRequestInfo, node.Kind)
	assert.Equal(t, "send your id", node.Prompt)
	assert.Empty(t, node.Children)
}

func TestParseNodeKind(t *testing.T) {
	kind, err := ParseNodeKind(" content ")
	assert.NoError(t, err)
	assert.Equal(t, KindContent, kind)

	_, err = ParseNodeKind("banner")
	assert.ErrorIs(t, err, ErrInvalidKind)
}

func TestNode_PromptText(t *testing.T) {
	assert.Equal(t, DefaultPrompt, NewRequestInfo("a", "A", "").PromptText())
	assert.Equal(t, "id?", NewRequestInfo("a", "A", "id?").PromptText())
}

func TestValidateNodeID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{name: "plain", id: "svc_1", wantErr: false},
		{name: "max length", id: strings.Repeat("a", MaxNodeIDLen), wantErr: false},
		{name: "empty", id: "", wantErr: true},
		{name: "too long", id: strings.Repeat("a", MaxNodeIDLen+1), wantErr: true},
		{name: "arabic counts bytes", id: strings.Repeat("ب", 17), wantErr: true},
		{name: "pipe", id: "a|b", wantErr: true},
		{name: "space", id: "a b", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNodeID(tt.id)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			assert.NoError(t, err)
		})
	}
}
