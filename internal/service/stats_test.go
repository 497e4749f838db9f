package service

import (
	"context"
	"fmt"
	"testing"

	"storefront/internal/domain"
	"storefront/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestStatsService_Collect(t *testing.T) {
	approved := testutil.NewTestOrder("o3", 2, "PUBG")
	approved.Status = domain.OrderApproved

	tests := []struct {
		name          string
		users         []domain.User
		orders        []domain.Order
		ordersError   error
		expected      Stats
		expectedError bool
	}{
		{
			name:  "no orders",
			users: []domain.User{*testutil.NewTestUser(1, "a")},
			expected: Stats{
				Users:    1,
				ByStatus: map[domain.OrderStatus]int{},
			},
		},
		{
			name: "most ordered wins",
			users: []domain.User{
				*testutil.NewTestUser(1, "a"),
				*testutil.NewTestUser(2, "b"),
			},
			orders: []domain.Order{
				testutil.NewTestOrder("o1", 1, "Free Fire"),
				testutil.NewTestOrder("o2", 1, "PUBG"),
				approved,
			},
			expected: Stats{
				Users:  2,
				Orders: 3,
				ByStatus: map[domain.OrderStatus]int{
					domain.OrderPending:  2,
					domain.OrderApproved: 1,
				},
				MostOrdered: "PUBG",
			},
		},
		{
			name: "tie goes to first ordered",
			orders: []domain.Order{
				testutil.NewTestOrder("o1", 1, "Free Fire"),
				testutil.NewTestOrder("o2", 1, "PUBG"),
			},
			expected: Stats{
				Orders:      2,
				ByStatus:    map[domain.OrderStatus]int{domain.OrderPending: 2},
				MostOrdered: "Free Fire",
			},
		},
		{
			name:          "orders error",
			ordersError:   fmt.Errorf("disk error"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := new(testutil.MockUserRepository)
			orderRepo := new(testutil.MockOrderRepository)
			userRepo.On("List", mock.Anything).Return(tt.users, nil)
			orderRepo.On("List", mock.Anything).Return(tt.orders, tt.ordersError)

			service := NewStatsService(userRepo, orderRepo, testutil.NewTestLogger())
			stats, err := service.Collect(context.Background())

			if tt.expectedError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, stats)
			userRepo.AssertExpectations(t)
			orderRepo.AssertExpectations(t)
		})
	}
}
