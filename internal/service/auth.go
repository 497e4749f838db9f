package service

import (
	"context"
	"fmt"
	"sort"

	"storefront/internal/domain"
	"storefront/internal/repository"
)

// AuthService decides who holds admin rights
type AuthService struct {
	settingsRepo repository.SettingsRepository
	adminRepo    repository.AdminRepository
}

// NewAuthService creates a new auth service
func NewAuthService(settingsRepo repository.SettingsRepository, adminRepo repository.AdminRepository) *AuthService {
	return &AuthService{
		settingsRepo: settingsRepo,
		adminRepo:    adminRepo,
	}
}

// IsAdmin checks ADMIN_IDS first, then the admin registry
func (s *AuthService) IsAdmin(ctx context.Context, userID int64) (bool, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return false, err
	}
	if settings.IsStaticAdmin(userID) {
		return true, nil
	}

	admins, err := s.adminRepo.List(ctx)
	if err != nil {
		return false, err
	}
	return domain.AdminRegistry{Admins: admins}.Contains(userID), nil
}

// AdminIDs returns the union of ADMIN_IDS and the registry, sorted
func (s *AuthService) AdminIDs(ctx context.Context) ([]int64, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	admins, err := s.adminRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[int64]struct{}, len(settings.AdminIDs)+len(admins))
	for _, id := range settings.AdminIDs {
		seen[id] = struct{}{}
	}
	for _, a := range admins {
		seen[a.ID] = struct{}{}
	}

	ids := make([]int64, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

// Admins returns the registry entries
func (s *AuthService) Admins(ctx context.Context) ([]domain.Admin, error) {
	return s.adminRepo.List(ctx)
}

// AddAdmin grants admin rights to userID
func (s *AuthService) AddAdmin(ctx context.Context, userID int64, name string) error {
	isAdmin, err := s.IsAdmin(ctx, userID)
	if err != nil {
		return err
	}
	if isAdmin {
		return fmt.Errorf("admin %d: %w", userID, domain.ErrDuplicateID)
	}

	return s.adminRepo.Add(ctx, domain.Admin{
		ID:    userID,
		Name:  name,
		Perms: []string{domain.PermAll},
	})
}

// RemoveAdmin revokes registry admin rights. ADMIN_IDS entries are not touched.
func (s *AuthService) RemoveAdmin(ctx context.Context, userID int64) error {
	removed, err := s.adminRepo.Remove(ctx, userID)
	if err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("admin %d: %w", userID, domain.ErrNotFound)
	}
	return nil
}

// Serves reports whether userID may use the bot. While BOT_STATUS is off only
// admins are served.
func (s *AuthService) Serves(ctx context.Context, userID int64) (bool, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return false, err
	}
	if settings.Enabled() {
		return true, nil
	}
	return s.IsAdmin(ctx, userID)
}
