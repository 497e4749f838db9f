package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// localLayout matches Python's datetime.isoformat() without a zone. Fractional
// seconds are accepted after the seconds field when parsing.
const localLayout = "2006-01-02T15:04:05"

// parseTimestamp reads RFC3339 or zone-less ISO 8601 as local time.
// An empty string is the zero time.
func parseTimestamp(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(localLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	return t, nil
}

// UnmarshalJSON accepts zone-less first_seen values
func (u *User) UnmarshalJSON(data []byte) error {
	type plain User
	aux := struct {
		*plain
		FirstSeen string `json:"first_seen"`
	}{plain: (*plain)(u)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	t, err := parseTimestamp(aux.FirstSeen)
	if err != nil {
		return err
	}
	u.FirstSeen = t
	return nil
}

// UnmarshalJSON accepts zone-less created_at and handled_at values
func (o *Order) UnmarshalJSON(data []byte) error {
	type plain Order
	aux := struct {
		*plain
		CreatedAt string  `json:"created_at"`
		HandledAt *string `json:"handled_at"`
	}{plain: (*plain)(o)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	created, err := parseTimestamp(aux.CreatedAt)
	if err != nil {
		return err
	}
	o.CreatedAt = created

	o.HandledAt = nil
	if aux.HandledAt != nil && *aux.HandledAt != "" {
		handled, err := parseTimestamp(*aux.HandledAt)
		if err != nil {
			return err
		}
		o.HandledAt = &handled
	}
	return nil
}
