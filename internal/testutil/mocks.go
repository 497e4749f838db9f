package testutil

import (
	"context"

	"storefront/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockSettingsRepository is a mock for SettingsRepository.
// Update applies fn to the settings returned by the "Update" expectation.
type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) Get(ctx context.Context) (domain.Settings, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Settings), args.Error(1)
}

func (m *MockSettingsRepository) Update(ctx context.Context, fn func(s *domain.Settings) error) (domain.Settings, error) {
	args := m.Called(ctx)
	if err := args.Error(1); err != nil {
		return domain.Settings{}, err
	}
	s := args.Get(0).(domain.Settings)
	if err := fn(&s); err != nil {
		return domain.Settings{}, err
	}
	return s, nil
}

// MockUserRepository is a mock for UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Get(ctx context.Context, userID int64) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) EnsureUserExists(ctx context.Context, user domain.User) (bool, error) {
	args := m.Called(ctx, user.ID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, userID int64, fn func(u *domain.User) error) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockOrderRepository is a mock for OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) List(ctx context.Context) ([]domain.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderRepository) Get(ctx context.Context, orderID string) (*domain.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) Update(ctx context.Context, orderID string, fn func(o *domain.Order) error) (domain.Order, error) {
	args := m.Called(ctx, orderID)
	if err := args.Error(1); err != nil {
		return domain.Order{}, err
	}
	o := args.Get(0).(domain.Order)
	if err := fn(&o); err != nil {
		return domain.Order{}, err
	}
	return o, nil
}

func (m *MockOrderRepository) SubmitAwaiting(ctx context.Context, userID int64, build func(u domain.User, a domain.Awaiting) domain.Order) (*domain.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

// MockAdminRepository is a mock for AdminRepository
type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) List(ctx context.Context) ([]domain.Admin, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Admin), args.Error(1)
}

func (m *MockAdminRepository) Add(ctx context.Context, admin domain.Admin) error {
	args := m.Called(ctx, admin)
	return args.Error(0)
}

func (m *MockAdminRepository) Remove(ctx context.Context, adminID int64) (bool, error) {
	args := m.Called(ctx, adminID)
	return args.Bool(0), args.Error(1)
}

// MockNotifier is a mock for service.Notifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) SendText(ctx context.Context, chatID int64, text string, opts ...interface{}) error {
	args := m.Called(ctx, chatID, text)
	return args.Error(0)
}

func (m *MockNotifier) SendPhoto(ctx context.Context, chatID int64, photoRef, caption string, opts ...interface{}) error {
	args := m.Called(ctx, chatID, photoRef, caption)
	return args.Error(0)
}
