package document

import (
	"context"
	"errors"

	"storefront/internal/domain"
	"storefront/internal/storage"
)

// MenuRepo implements repository.MenuRepository
type MenuRepo struct {
	store *storage.Store
}

// NewMenuRepo creates a new menu repository
func NewMenuRepo(store *storage.Store) *MenuRepo {
	return &MenuRepo{store: store}
}

// Get returns the buttons document
func (r *MenuRepo) Get(ctx context.Context) (domain.Menu, error) {
	var m domain.Menu
	err := r.store.Do(ctx, func(tx *storage.Tx) error {
		var err error
		m, err = loadMenu(tx)
		return err
	})
	return m, err
}

// Update mutates and persists the buttons document
func (r *MenuRepo) Update(ctx context.Context, fn func(m *domain.Menu) error) error {
	return r.store.Do(ctx, func(tx *storage.Tx) error {
		m, err := loadMenu(tx)
		if err != nil {
			return err
		}
		if err := fn(&m); err != nil {
			return err
		}
		return tx.Save(storage.DocMenu, m)
	})
}

// loadMenu decodes into a zero Menu; decoding over the default tree would
// merge stored nodes into the default nodes' fields.
func loadMenu(tx *storage.Tx) (domain.Menu, error) {
	var m domain.Menu
	err := tx.Load(storage.DocMenu, &m)
	if errors.Is(err, storage.ErrNotExist) {
		return domain.DefaultMenu(), nil
	}
	if err != nil {
		return domain.Menu{}, err
	}
	return m, nil
}
