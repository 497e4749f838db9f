package document

import (
	"context"
	"errors"
	"fmt"

	"storefront/internal/domain"
	"storefront/internal/storage"
)

// OrderRepo implements repository.OrderRepository
type OrderRepo struct {
	store *storage.Store
}

// NewOrderRepo creates a new order repository
func NewOrderRepo(store *storage.Store) *OrderRepo {
	return &OrderRepo{store: store}
}

// List returns orders in creation order
func (r *OrderRepo) List(ctx context.Context) ([]domain.Order, error) {
	orders := []domain.Order{}
	err := r.store.Load(ctx, storage.DocOrders, &orders)
	if err != nil && !errors.Is(err, storage.ErrNotExist) {
		return nil, err
	}
	return orders, nil
}

// Get returns the order with orderID
func (r *OrderRepo) Get(ctx context.Context, orderID string) (*domain.Order, error) {
	orders, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range orders {
		if orders[i].ID == orderID {
			return &orders[i], nil
		}
	}
	return nil, fmt.Errorf("order %s: %w", orderID, domain.ErrNotFound)
}

// Update mutates and persists one order
func (r *OrderRepo) Update(ctx context.Context, orderID string, fn func(o *domain.Order) error) (domain.Order, error) {
	var updated domain.Order
	orders := []domain.Order{}
	err := r.store.Update(ctx, storage.DocOrders, &orders, func() error {
		for i := range orders {
			if orders[i].ID != orderID {
				continue
			}
			if err := fn(&orders[i]); err != nil {
				return err
			}
			updated = orders[i]
			return nil
		}
		return fmt.Errorf("order %s: %w", orderID, domain.ErrNotFound)
	})
	if err != nil {
		return domain.Order{}, err
	}
	return updated, nil
}

// SubmitAwaiting consumes the user's awaiting slot into a new order
func (r *OrderRepo) SubmitAwaiting(ctx context.Context, userID int64, build func(u domain.User, a domain.Awaiting) domain.Order) (*domain.Order, error) {
	var order *domain.Order
	err := r.store.Do(ctx, func(tx *storage.Tx) error {
		users := domain.Users{}
		if err := tx.Load(storage.DocUsers, &users); err != nil {
			if errors.Is(err, storage.ErrNotExist) {
				return nil
			}
			return err
		}

		key := domain.UserKey(userID)
		u, ok := users[key]
		if !ok || u.Awaiting == nil {
			return nil
		}

		orders := []domain.Order{}
		if err := tx.Load(storage.DocOrders, &orders); err != nil && !errors.Is(err, storage.ErrNotExist) {
			return err
		}

		o := build(u, *u.Awaiting)
		orders = append(orders, o)
		if err := tx.Save(storage.DocOrders, orders); err != nil {
			return err
		}

		u.Awaiting = nil
		users[key] = u
		if err := tx.Save(storage.DocUsers, users); err != nil {
			return err
		}

		order = &o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}
