package document

import (
	"context"
	"errors"

	"storefront/internal/domain"
	"storefront/internal/storage"
)

// SettingsRepo implements repository.SettingsRepository
type SettingsRepo struct {
	store *storage.Store
}

// NewSettingsRepo creates a new settings repository
func NewSettingsRepo(store *storage.Store) *SettingsRepo {
	return &SettingsRepo{store: store}
}

// Get returns the config document, or the defaults when it does not exist
func (r *SettingsRepo) Get(ctx context.Context) (domain.Settings, error) {
	s := domain.DefaultSettings()
	err := r.store.Load(ctx, storage.DocConfig, &s)
	if err != nil && !errors.Is(err, storage.ErrNotExist) {
		return domain.Settings{}, err
	}
	return s, nil
}

// Update mutates and persists the config document
func (r *SettingsRepo) Update(ctx context.Context, fn func(s *domain.Settings) error) (domain.Settings, error) {
	s := domain.DefaultSettings()
	err := r.store.Update(ctx, storage.DocConfig, &s, func() error {
		return fn(&s)
	})
	if err != nil {
		return domain.Settings{}, err
	}
	return s, nil
}
