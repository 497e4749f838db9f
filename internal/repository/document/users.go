package document

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"storefront/internal/domain"
	"storefront/internal/storage"
)

// UserRepo implements repository.UserRepository
type UserRepo struct {
	store *storage.Store
}

// NewUserRepo creates a new user repository
func NewUserRepo(store *storage.Store) *UserRepo {
	return &UserRepo{store: store}
}

// Get returns the user record or nil
func (r *UserRepo) Get(ctx context.Context, userID int64) (*domain.User, error) {
	users, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	u, ok := users[domain.UserKey(userID)]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

// List returns every user ordered by id
func (r *UserRepo) List(ctx context.Context) ([]domain.User, error) {
	users, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	list := make([]domain.User, 0, len(users))
	for _, u := range users {
		list = append(list, u)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

// EnsureUserExists stores user unless a record with the same id exists
func (r *UserRepo) EnsureUserExists(ctx context.Context, user domain.User) (bool, error) {
	created := false
	users := domain.Users{}
	err := r.store.Update(ctx, storage.DocUsers, &users, func() error {
		key := domain.UserKey(user.ID)
		if _, ok := users[key]; ok {
			return errUnchanged
		}
		users[key] = user
		created = true
		return nil
	})
	if errors.Is(err, errUnchanged) {
		return false, nil
	}
	return created, err
}

// Update mutates and persists an existing user record
func (r *UserRepo) Update(ctx context.Context, userID int64, fn func(u *domain.User) error) error {
	users := domain.Users{}
	return r.store.Update(ctx, storage.DocUsers, &users, func() error {
		key := domain.UserKey(userID)
		u, ok := users[key]
		if !ok {
			return fmt.Errorf("user %d: %w", userID, domain.ErrNotFound)
		}
		if err := fn(&u); err != nil {
			return err
		}
		users[key] = u
		return nil
	})
}

func (r *UserRepo) load(ctx context.Context) (domain.Users, error) {
	users := domain.Users{}
	err := r.store.Load(ctx, storage.DocUsers, &users)
	if err != nil && !errors.Is(err, storage.ErrNotExist) {
		return nil, err
	}
	return users, nil
}
