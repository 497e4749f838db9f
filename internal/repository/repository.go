package repository

import (
	"context"

	"storefront/internal/domain"
)

// SettingsRepository defines config document operations
type SettingsRepository interface {
	Get(ctx context.Context) (domain.Settings, error)
	Update(ctx context.Context, fn func(s *domain.Settings) error) (domain.Settings, error)
}

// MenuRepository defines menu tree operations
type MenuRepository interface {
	Get(ctx context.Context) (domain.Menu, error)
	Update(ctx context.Context, fn func(m *domain.Menu) error) error
}

// UserRepository defines user record operations
type UserRepository interface {
	// Get returns nil when the user is unknown
	Get(ctx context.Context, userID int64) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	EnsureUserExists(ctx context.Context, user domain.User) (created bool, err error)
	Update(ctx context.Context, userID int64, fn func(u *domain.User) error) error
}

// OrderRepository defines order operations
type OrderRepository interface {
	List(ctx context.Context) ([]domain.Order, error)
	Get(ctx context.Context, orderID string) (*domain.Order, error)
	Update(ctx context.Context, orderID string, fn func(o *domain.Order) error) (domain.Order, error)
	// SubmitAwaiting clears the user's awaiting slot and appends the order built
	// from it in one locked step. It returns nil when nothing is awaited.
	SubmitAwaiting(ctx context.Context, userID int64, build func(u domain.User, a domain.Awaiting) domain.Order) (*domain.Order, error)
}

// AdminRepository defines admin registry operations
type AdminRepository interface {
	List(ctx context.Context) ([]domain.Admin, error)
	Add(ctx context.Context, admin domain.Admin) error
	Remove(ctx context.Context, adminID int64) (bool, error)
}
