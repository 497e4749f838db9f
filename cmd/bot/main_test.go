package main

import (
	"context"
	"testing"

	"storefront/internal/domain"
	"storefront/internal/repository/document"
	"storefront/internal/service"
	"storefront/internal/storage"
	"storefront/internal/storage/filestore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newSeededStore(t *testing.T) *storage.Store {
	t.Helper()
	backend, err := filestore.New(t.TempDir())
	require.NoError(t, err)

	store := storage.New(backend, zap.NewNop())
	require.NoError(t, seedDocuments(context.Background(), store))
	return store
}

func TestSeedDocuments_ReadableByRepositories(t *testing.T) {
	ctx := context.Background()
	store := newSeededStore(t)

	settings, err := document.NewSettingsRepo(store).Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), settings)

	menu, err := document.NewMenuRepo(store).Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultMenu(), menu)

	userRepo := document.NewUserRepo(store)
	users, err := userRepo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)
	created, err := userRepo.EnsureUserExists(ctx, domain.User{ID: 7, Name: "u", CurrencyPref: domain.CurrencyAuto})
	require.NoError(t, err)
	assert.True(t, created)

	orders, err := document.NewOrderRepo(store).List(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)

	adminRepo := document.NewAdminRepo(store)
	admins, err := adminRepo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, admins)
	require.NoError(t, adminRepo.Add(ctx, domain.Admin{ID: 9, Name: "a", Perms: []string{"all"}}))
	admins, err = adminRepo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, admins, 1)
}

func TestSeedDocuments_NonAdminCheck(t *testing.T) {
	ctx := context.Background()
	store := newSeededStore(t)
	auth := service.NewAuthService(document.NewSettingsRepo(store), document.NewAdminRepo(store))

	isAdmin, err := auth.IsAdmin(ctx, 12345)
	require.NoError(t, err)
	assert.False(t, isAdmin)

	served, err := auth.Serves(ctx, 12345)
	require.NoError(t, err)
	assert.True(t, served)
}

func TestSeedDocuments_KeepsExisting(t *testing.T) {
	ctx := context.Background()
	store := newSeededStore(t)
	repo := document.NewSettingsRepo(store)

	_, err := repo.Update(ctx, func(s *domain.Settings) error {
		s.AllowLinks = true
		return nil
	})
	require.NoError(t, err)
	require.NoError(t, seedDocuments(ctx, store))

	settings, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.True(t, settings.AllowLinks)
}
