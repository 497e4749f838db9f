package domain

import (
	"strconv"
	"time"
)

// Awaiting records the request_info button a user has been asked to answer
type Awaiting struct {
	ButtonID   string `json:"button_id"`
	ButtonText string `json:"button_text"`
	Prompt     string `json:"prompt"`
}

// User is a bot user record
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	FirstSeen    time.Time `json:"first_seen"`
	Awaiting     *Awaiting `json:"awaiting"`
	CurrencyPref Currency  `json:"currency_pref"`
}

// Users is the persisted users document keyed by decimal user id
type Users map[string]User

// UserKey returns the document key for a user id
func UserKey(id int64) string {
	return strconv.FormatInt(id, 10)
}

// UserState represents user's current dialog state outside the menu
type UserState string

const (
	StateIdle           UserState = "idle"
	StateWritingToAdmin UserState = "writing_to_admin"
)

// StateData holds the in-memory dialog state of a user
type StateData struct {
	State UserState
}
