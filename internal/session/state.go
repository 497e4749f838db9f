// Package session drives the multi-step admin wizards. Each admin has at most
// one active State; every inbound message advances it or ends it.
package session

import "storefront/internal/domain"

// State is one step of an admin wizard
type State interface {
	Name() string
	state()
}

// AddButtonText waits for the label of a new top-level button
type AddButtonText struct{}

// AddButtonID waits for the id of a new top-level button
type AddButtonID struct {
	Text string
}

// AddButtonKind waits for the node type of a new top-level button
type AddButtonKind struct {
	Text string
	ID   string
}

// AddSubmenuItems collects "id|text|type" lines until "done"
type AddSubmenuItems struct {
	Draft domain.Node
}

// AddSubmenuPrompt waits for the prompt of a request_info sub-item
type AddSubmenuPrompt struct {
	Draft   domain.Node
	Pending domain.Node
}

// AddRequestPrompt waits for the prompt of a new request_info button
type AddRequestPrompt struct {
	Text string
	ID   string
}

// AddContentText waits for the body of a new content button
type AddContentText struct {
	Text string
	ID   string
}

// AddContentImage waits for an image URL or "no"
type AddContentImage struct {
	Text    string
	ID      string
	Content string
}

// DeleteButton waits for the id or text of a top-level button
type DeleteButton struct{}

// SetRate waits for the SYP-per-USD exchange rate
type SetRate struct{}

// SetGridColumns waits for the grid width
type SetGridColumns struct{}

// AddAdmin waits for the user id to promote
type AddAdmin struct{}

// RemoveAdmin waits for the admin id to demote
type RemoveAdmin struct{}

// Broadcast waits for the text sent to every user
type Broadcast struct{}

// EditDescription waits for the description of NodeID
type EditDescription struct {
	NodeID string
}

// EditImageURL waits for an image URL for NodeID
type EditImageURL struct {
	NodeID string
}

// EditImageUpload waits for a photo for NodeID
type EditImageUpload struct {
	NodeID string
}

// EditRequestInfo waits for the prompt NodeID will ask once converted
type EditRequestInfo struct {
	NodeID string
}

// AskMore waits for the follow-up question on OrderID
type AskMore struct {
	OrderID string
}

func (AddButtonText) Name() string    { return "add_button_text" }
func (AddButtonID) Name() string      { return "add_button_id" }
func (AddButtonKind) Name() string    { return "add_button_kind" }
func (AddSubmenuItems) Name() string  { return "add_submenu_items" }
func (AddSubmenuPrompt) Name() string { return "add_submenu_prompt" }
func (AddRequestPrompt) Name() string { return "add_request_prompt" }
func (AddContentText) Name() string   { return "add_content_text" }
func (AddContentImage) Name() string  { return "add_content_image" }
func (DeleteButton) Name() string     { return "delete_button" }
func (SetRate) Name() string          { return "set_rate" }
func (SetGridColumns) Name() string   { return "set_grid_columns" }
func (AddAdmin) Name() string         { return "add_admin" }
func (RemoveAdmin) Name() string      { return "remove_admin" }
func (Broadcast) Name() string        { return "broadcast" }
func (EditDescription) Name() string  { return "edit_description" }
func (EditImageURL) Name() string     { return "edit_image_url" }
func (EditImageUpload) Name() string  { return "edit_image_upload" }
func (EditRequestInfo) Name() string  { return "edit_request_info" }
func (AskMore) Name() string          { return "ask_more" }

func (AddButtonText) state()    {}
func (AddButtonID) state()      {}
func (AddButtonKind) state()    {}
func (AddSubmenuItems) state()  {}
func (AddSubmenuPrompt) state() {}
func (AddRequestPrompt) state() {}
func (AddContentText) state()   {}
func (AddContentImage) state()  {}
func (DeleteButton) state()     {}
func (SetRate) state()          {}
func (SetGridColumns) state()   {}
func (AddAdmin) state()         {}
func (RemoveAdmin) state()      {}
func (Broadcast) state()        {}
func (EditDescription) state()  {}
func (EditImageURL) state()     {}
func (EditImageUpload) state()  {}
func (EditRequestInfo) state()  {}
func (AskMore) state()          {}
