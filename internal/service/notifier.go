package service

import "context"

// Notifier delivers messages to chats. opts are transport send options
// such as reply markup.
type Notifier interface {
	SendText(ctx context.Context, chatID int64, text string, opts ...interface{}) error
	SendPhoto(ctx context.Context, chatID int64, photoRef, caption string, opts ...interface{}) error
}
