package service

import (
	"context"
	"time"

	"storefront/internal/domain"
	"storefront/internal/repository"

	"github.com/google/uuid"
)

// OrderService handles order intake and review
type OrderService struct {
	repo  repository.OrderRepository
	now   func() time.Time
	newID func() string
}

// NewOrderService creates a new order service
func NewOrderService(repo repository.OrderRepository) *OrderService {
	return &OrderService{
		repo:  repo,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Submit turns the user's awaiting slot into a pending order.
// It returns nil when the user is not awaiting anything.
func (s *OrderService) Submit(ctx context.Context, userID int64, answer domain.Answer) (*domain.Order, error) {
	return s.repo.SubmitAwaiting(ctx, userID, func(u domain.User, a domain.Awaiting) domain.Order {
		return domain.Order{
			ID:         s.newID(),
			UserID:     u.ID,
			UserName:   u.Name,
			ButtonID:   a.ButtonID,
			ButtonText: a.ButtonText,
			Info:       answer,
			Status:     domain.OrderPending,
			CreatedAt:  s.now(),
		}
	})
}

// Get returns one order
func (s *OrderService) Get(ctx context.Context, orderID string) (*domain.Order, error) {
	return s.repo.Get(ctx, orderID)
}

// Recent returns up to limit orders, newest first
func (s *OrderService) Recent(ctx context.Context, limit int) ([]domain.Order, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if limit > 0 && len(orders) > limit {
		orders = orders[len(orders)-limit:]
	}
	recent := make([]domain.Order, 0, len(orders))
	for i := len(orders) - 1; i >= 0; i-- {
		recent = append(recent, orders[i])
	}
	return recent, nil
}

// Review moves an order to approved, rejected or needs_more
func (s *OrderService) Review(ctx context.Context, orderID string, status domain.OrderStatus) (domain.Order, error) {
	return s.repo.Update(ctx, orderID, func(o *domain.Order) error {
		return o.Transition(status, s.now())
	})
}
