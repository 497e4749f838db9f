package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_DecodesZonelessFirstSeen(t *testing.T) {
	var users Users
	data := `{"5": {"id": 5, "name": "Ali", "first_seen": "2024-03-01T10:20:30.123456", "awaiting": null, "currency_pref": "AUTO"}}`

	require.NoError(t, json.Unmarshal([]byte(data), &users))

	u := users["5"]
	assert.Equal(t, int64(5), u.ID)
	assert.Equal(t, "Ali", u.Name)
	assert.Equal(t, CurrencyAuto, u.CurrencyPref)
	expected := time.Date(2024, 3, 1, 10, 20, 30, 123456000, time.Local)
	assert.True(t, expected.Equal(u.FirstSeen))
}

func TestOrder_DecodesZonelessTimes(t *testing.T) {
	var orders []Order
	data := `[
		{"order_id": "a", "user_id": 5, "status": "pending", "info": {"type": "text", "text": "id 1"}, "created_at": "2024-03-01T10:20:30"},
		{"order_id": "b", "user_id": 5, "status": "approved", "created_at": "2024-03-01T10:20:30", "handled_at": "2024-03-02T08:00:00.5"}
	]`

	require.NoError(t, json.Unmarshal([]byte(data), &orders))

	require.Len(t, orders, 2)
	assert.Equal(t, TextAnswer("id 1"), orders[0].Info)
	assert.True(t, time.Date(2024, 3, 1, 10, 20, 30, 0, time.Local).Equal(orders[0].CreatedAt))
	assert.Nil(t, orders[0].HandledAt)
	require.NotNil(t, orders[1].HandledAt)
	assert.True(t, time.Date(2024, 3, 2, 8, 0, 0, 500000000, time.Local).Equal(*orders[1].HandledAt))
}

func TestOrder_TimestampRoundTrip(t *testing.T) {
	handled := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
	order := Order{
		ID:        "x",
		Status:    OrderApproved,
		Info:      TextAnswer("t"),
		CreatedAt: time.Date(2024, 5, 6, 7, 0, 0, 0, time.UTC),
		HandledAt: &handled,
	}

	data, err := json.Marshal(order)
	require.NoError(t, err)
	var decoded Order
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.True(t, order.CreatedAt.Equal(decoded.CreatedAt))
	require.NotNil(t, decoded.HandledAt)
	assert.True(t, handled.Equal(*decoded.HandledAt))
}

func TestUser_RejectsGarbageTimestamp(t *testing.T) {
	var u User
	err := json.Unmarshal([]byte(`{"id": 1, "first_seen": "yesterday"}`), &u)
	assert.Error(t, err)
}
