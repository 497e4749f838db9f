package document

import (
	"context"
	"errors"
	"fmt"

	"storefront/internal/domain"
	"storefront/internal/storage"
)

// AdminRepo implements repository.AdminRepository
type AdminRepo struct {
	store *storage.Store
}

// NewAdminRepo creates a new admin registry repository
func NewAdminRepo(store *storage.Store) *AdminRepo {
	return &AdminRepo{store: store}
}

// List returns registered admins
func (r *AdminRepo) List(ctx context.Context) ([]domain.Admin, error) {
	reg := domain.AdminRegistry{Admins: []domain.Admin{}}
	err := r.store.Load(ctx, storage.DocAdmins, &reg)
	if err != nil && !errors.Is(err, storage.ErrNotExist) {
		return nil, err
	}
	return reg.Admins, nil
}

// Add registers an admin; registering the same id twice fails
func (r *AdminRepo) Add(ctx context.Context, admin domain.Admin) error {
	reg := domain.AdminRegistry{Admins: []domain.Admin{}}
	return r.store.Update(ctx, storage.DocAdmins, &reg, func() error {
		if reg.Contains(admin.ID) {
			return fmt.Errorf("admin %d: %w", admin.ID, domain.ErrDuplicateID)
		}
		reg.Admins = append(reg.Admins, admin)
		return nil
	})
}

// Remove deletes an admin from the registry
func (r *AdminRepo) Remove(ctx context.Context, adminID int64) (bool, error) {
	reg := domain.AdminRegistry{Admins: []domain.Admin{}}
	err := r.store.Update(ctx, storage.DocAdmins, &reg, func() error {
		for i, a := range reg.Admins {
			if a.ID == adminID {
				reg.Admins = append(reg.Admins[:i], reg.Admins[i+1:]...)
				return nil
			}
		}
		return errUnchanged
	})
	if errors.Is(err, errUnchanged) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
