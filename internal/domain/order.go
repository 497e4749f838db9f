package domain

import (
	"fmt"
	"time"
)

// OrderStatus is the review state of an order
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderApproved  OrderStatus = "approved"
	OrderRejected  OrderStatus = "rejected"
	OrderNeedsMore OrderStatus = "needs_more"
)

// Closed reports whether no further review is possible
func (s OrderStatus) Closed() bool {
	return s == OrderApproved || s == OrderRejected
}

// AnswerKind tells how a user answered a request_info prompt
type AnswerKind string

const (
	AnswerText  AnswerKind = "text"
	AnswerPhoto AnswerKind = "photo"
)

// Answer is the captured reply of a user
type Answer struct {
	Kind   AnswerKind `json:"type"`
	Text   string     `json:"text,omitempty"`
	FileID string     `json:"file_id,omitempty"`
}

// TextAnswer builds a text answer
func TextAnswer(text string) Answer {
	return Answer{Kind: AnswerText, Text: text}
}

// PhotoAnswer builds a photo answer
func PhotoAnswer(fileID string) Answer {
	return Answer{Kind: AnswerPhoto, FileID: fileID}
}

// Order is created from a consumed awaiting slot
type Order struct {
	ID         string      `json:"order_id"`
	UserID     int64       `json:"user_id"`
	UserName   string      `json:"user_name"`
	ButtonID   string      `json:"button_id"`
	ButtonText string      `json:"button_text"`
	Info       Answer      `json:"info"`
	Status     OrderStatus `json:"status"`
	CreatedAt  time.Time   `json:"created_at"`
	HandledAt  *time.Time  `json:"handled_at,omitempty"`
}

// Transition moves the order to status. Approved and rejected orders are final.
func (o *Order) Transition(status OrderStatus, at time.Time) error {
	if o.Status.Closed() {
		return fmt.Errorf("%w: %s is %s", ErrOrderClosed, o.ID, o.Status)
	}
	if status == OrderPending {
		return fmt.Errorf("%w: cannot return order to %s", ErrInvalidInput, status)
	}
	o.Status = status
	o.HandledAt = &at
	return nil
}
