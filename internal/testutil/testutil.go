package testutil

import (
	"testing"
	"time"

	"storefront/internal/domain"
	"storefront/internal/repository/document"
	"storefront/internal/storage"
	"storefront/internal/storage/filestore"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// Repos bundles document repositories over one store
type Repos struct {
	Store    *storage.Store
	Settings *document.SettingsRepo
	Menu     *document.MenuRepo
	Users    *document.UserRepo
	Orders   *document.OrderRepo
	Admins   *document.AdminRepo
}

// NewRepos creates repositories backed by JSON files in a temp dir
func NewRepos(t *testing.T) *Repos {
	t.Helper()
	backend, err := filestore.New(t.TempDir())
	require.NoError(t, err)

	store := storage.New(backend, NewTestLogger())
	return &Repos{
		Store:    store,
		Settings: document.NewSettingsRepo(store),
		Menu:     document.NewMenuRepo(store),
		Users:    document.NewUserRepo(store),
		Orders:   document.NewOrderRepo(store),
		Admins:   document.NewAdminRepo(store),
	}
}

// NewTestUser creates a test user
func NewTestUser(userID int64, name string) *domain.User {
	return &domain.User{
		ID:           userID,
		Name:         name,
		FirstSeen:    time.Now(),
		CurrencyPref: domain.CurrencyAuto,
	}
}

// NewTestOrder creates a pending test order
func NewTestOrder(id string, userID int64, buttonText string) domain.Order {
	return domain.Order{
		ID:         id,
		UserID:     userID,
		UserName:   "tester",
		ButtonID:   buttonText,
		ButtonText: buttonText,
		Info:       domain.TextAnswer("info"),
		Status:     domain.OrderPending,
		CreatedAt:  time.Now(),
	}
}
