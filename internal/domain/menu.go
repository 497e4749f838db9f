package domain

import (
	"fmt"
	"strings"
)

// NodeKind is the variant tag of a menu node
type NodeKind string

const (
	KindSubmenu      NodeKind = "submenu"
	KindContent      NodeKind = "content"
	KindRequestInfo  NodeKind = "request_info"
	KindContactAdmin NodeKind = "contact_admin"
)

// MaxNodeIDLen keeps callback data carrying a node id under Telegram's 64 bytes
const MaxNodeIDLen = 32

// ValidateNodeID rejects ids that cannot travel in callback data
func ValidateNodeID(id string) error {
	switch {
	case id == "":
		return fmt.Errorf("%w: empty button id", ErrInvalidInput)
	case len(id) > MaxNodeIDLen:
		return fmt.Errorf("%w: button id longer than %d bytes", ErrInvalidInput, MaxNodeIDLen)
	case strings.ContainsAny(id, "| \t\n"):
		return fmt.Errorf("%w: button id %q contains a separator", ErrInvalidInput, id)
	}
	return nil
}

// DefaultPrompt is shown when a request_info node has no prompt text
const DefaultPrompt = "أرسل المعلومات المطلوبة"

// ParseNodeKind validates a node type typed by an admin
func ParseNodeKind(s string) (NodeKind, error) {
	kind := NodeKind(strings.TrimSpace(s))
	switch kind {
	case KindSubmenu, KindContent, KindRequestInfo, KindContactAdmin:
		return kind, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidKind, s)
}

// Node is a menu button. Only the payload field matching Kind is populated:
// Children for submenu, Content for content, Prompt for request_info.
type Node struct {
	ID          string   `json:"id"`
	Text        string   `json:"text"`
	Kind        NodeKind `json:"type"`
	Children    []Node   `json:"submenu,omitempty"`
	Content     string   `json:"content,omitempty"`
	Prompt      string   `json:"info_request,omitempty"`
	Image       string   `json:"image"`
	Description string   `json:"description"`
}

// NewSubmenu builds a submenu node
func NewSubmenu(id, text string, children []Node) Node {
	if children == nil {
		children = []Node{}
	}
	return Node{ID: id, Text: text, Kind: KindSubmenu, Children: children}
}

// NewContent builds a content node
func NewContent(id, text, content, image string) Node {
	return Node{ID: id, Text: text, Kind: KindContent, Content: content, Image: image}
}

// NewRequestInfo builds a request_info node
func NewRequestInfo(id, text, prompt string) Node {
	return Node{ID: id, Text: text, Kind: KindRequestInfo, Prompt: prompt}
}

// NewContactAdmin builds a contact_admin node
func NewContactAdmin(id, text string) Node {
	return Node{ID: id, Text: text, Kind: KindContactAdmin}
}

// PromptText returns the request_info prompt or the default one
func (n Node) PromptText() string {
	if n.Prompt == "" {
		return DefaultPrompt
	}
	return n.Prompt
}

// ConvertToRequestInfo turns n into a request_info node, dropping other payloads
func (n *Node) ConvertToRequestInfo(prompt string) {
	n.Kind = KindRequestInfo
	n.Prompt = prompt
	n.Children = nil
	n.Content = ""
}

// Menu is the persisted buttons document
type Menu struct {
	MainMenu []Node `json:"main_menu"`
}

// Find returns the first node, depth-first, whose id or text equals key
func (m *Menu) Find(key string) *Node {
	return findNode(m.MainMenu, key)
}

func findNode(nodes []Node, key string) *Node {
	for i := range nodes {
		if nodes[i].ID == key || nodes[i].Text == key {
			return &nodes[i]
		}
		if nodes[i].Kind == KindSubmenu {
			if found := findNode(nodes[i].Children, key); found != nil {
				return found
			}
		}
	}
	return nil
}

// HasID reports whether any node in the tree uses id
func (m *Menu) HasID(id string) bool {
	return hasID(m.MainMenu, id)
}

func hasID(nodes []Node, id string) bool {
	for _, n := range nodes {
		if n.ID == id || hasID(n.Children, id) {
			return true
		}
	}
	return false
}

// Add appends a top-level node. Ids must be unique across the whole tree.
func (m *Menu) Add(n Node) error {
	if m.HasID(n.ID) {
		return fmt.Errorf("%w: %s", ErrDuplicateID, n.ID)
	}
	for _, child := range n.Children {
		if m.HasID(child.ID) {
			return fmt.Errorf("%w: %s", ErrDuplicateID, child.ID)
		}
	}
	m.MainMenu = append(m.MainMenu, n)
	return nil
}

// RemoveTopLevel deletes the first top-level node matching key by id or text.
// Nested nodes are never removed.
func (m *Menu) RemoveTopLevel(key string) (Node, bool) {
	for i, n := range m.MainMenu {
		if n.ID == key || n.Text == key {
			m.MainMenu = append(m.MainMenu[:i], m.MainMenu[i+1:]...)
			return n, true
		}
	}
	return Node{}, false
}

// DefaultMenu returns the buttons document written on first run
func DefaultMenu() Menu {
	return Menu{MainMenu: []Node{
		NewSubmenu("services", "🎮 خدمات الألعاب", []Node{
			NewRequestInfo("pubg", "شحن شدات PUBG (1$)", "أرسل ID اللعبة + الباقة المطلوبة"),
			NewRequestInfo("ff", "شحن Free Fire (2.5$)", "أرسل ID اللعبة + الباقة المطلوبة"),
		}),
		NewContactAdmin("contact", "📩 تواصل مع الأدمن"),
	}}
}
