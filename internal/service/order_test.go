package service

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain"
	"storefront/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrderService(repos *testutil.Repos) *OrderService {
	service := NewOrderService(repos.Orders)
	seq := 0
	service.newID = func() string {
		seq++
		return "order-" + string(rune('0'+seq))
	}
	service.now = func() time.Time {
		return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	}
	return service
}

func TestOrderService_Submit(t *testing.T) {
	ctx := context.Background()
	repos := testutil.NewRepos(t)
	users := NewUserService(repos.Users, repos.Settings)
	orders := newTestOrderService(repos)

	order, err := orders.Submit(ctx, 5, domain.TextAnswer("id 123"))
	require.NoError(t, err)
	assert.Nil(t, order, "no awaiting slot means no order")

	_, err = users.BeginAwaiting(ctx, 5, "Lina", domain.NewRequestInfo("pubg", "PUBG (1$)", "id?"))
	require.NoError(t, err)

	order, err = orders.Submit(ctx, 5, domain.TextAnswer("id 123"))
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, "order-1", order.ID)
	assert.Equal(t, "Lina", order.UserName)
	assert.Equal(t, "pubg", order.ButtonID)
	assert.Equal(t, "PUBG (1$)", order.ButtonText)
	assert.Equal(t, domain.OrderPending, order.Status)
	assert.Equal(t, "id 123", order.Info.Text)

	again, err := orders.Submit(ctx, 5, domain.TextAnswer("id 123"))
	require.NoError(t, err)
	assert.Nil(t, again)

	u, err := users.Get(ctx, 5)
	require.NoError(t, err)
	assert.Nil(t, u.Awaiting)
}

func TestOrderService_Recent(t *testing.T) {
	ctx := context.Background()
	repos := testutil.NewRepos(t)
	users := NewUserService(repos.Users, repos.Settings)
	orders := newTestOrderService(repos)

	for i := 0; i < 3; i++ {
		_, err := users.BeginAwaiting(ctx, 5, "Lina", domain.NewRequestInfo("pubg", "PUBG", ""))
		require.NoError(t, err)
		_, err = orders.Submit(ctx, 5, domain.PhotoAnswer("file"))
		require.NoError(t, err)
	}

	recent, err := orders.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "order-3", recent[0].ID)
	assert.Equal(t, "order-2", recent[1].ID)
}

func TestOrderService_Review(t *testing.T) {
	tests := []struct {
		name          string
		steps         []domain.OrderStatus
		expected      domain.OrderStatus
		expectedError error
	}{
		{
			name:     "approve",
			steps:    []domain.OrderStatus{domain.OrderApproved},
			expected: domain.OrderApproved,
		},
		{
			name:     "ask more then reject",
			steps:    []domain.OrderStatus{domain.OrderNeedsMore, domain.OrderRejected},
			expected: domain.OrderRejected,
		},
		{
			name:          "approved is final",
			steps:         []domain.OrderStatus{domain.OrderApproved, domain.OrderRejected},
			expected:      domain.OrderApproved,
			expectedError: domain.ErrOrderClosed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			repos := testutil.NewRepos(t)
			users := NewUserService(repos.Users, repos.Settings)
			orders := newTestOrderService(repos)

			_, err := users.BeginAwaiting(ctx, 5, "Lina", domain.NewRequestInfo("pubg", "PUBG", ""))
			require.NoError(t, err)
			order, err := orders.Submit(ctx, 5, domain.TextAnswer("x"))
			require.NoError(t, err)

			var lastErr error
			for _, status := range tt.steps {
				_, lastErr = orders.Review(ctx, order.ID, status)
			}
			if tt.expectedError != nil {
				assert.ErrorIs(t, lastErr, tt.expectedError)
			} else {
				assert.NoError(t, lastErr)
			}

			stored, err := orders.Get(ctx, order.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, stored.Status)
			require.NotNil(t, stored.HandledAt)
		})
	}
}
