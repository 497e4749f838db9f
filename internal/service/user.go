package service

import (
	"context"
	"time"

	"storefront/internal/domain"
	"storefront/internal/repository"
)

// UserService handles user records, currency preference and awaiting slots
type UserService struct {
	userRepo     repository.UserRepository
	settingsRepo repository.SettingsRepository
	now          func() time.Time
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository, settingsRepo repository.SettingsRepository) *UserService {
	return &UserService{
		userRepo:     userRepo,
		settingsRepo: settingsRepo,
		now:          time.Now,
	}
}

// EnsureUser creates the record on first contact
func (s *UserService) EnsureUser(ctx context.Context, userID int64, name string) (bool, error) {
	return s.userRepo.EnsureUserExists(ctx, domain.User{
		ID:           userID,
		Name:         name,
		FirstSeen:    s.now(),
		CurrencyPref: domain.CurrencyAuto,
	})
}

// Get returns the user record or nil
func (s *UserService) Get(ctx context.Context, userID int64) (*domain.User, error) {
	return s.userRepo.Get(ctx, userID)
}

// IDs returns every known user id
func (s *UserService) IDs(ctx context.Context) ([]int64, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}
	return ids, nil
}

// PriceView resolves how prices are shown to userID
func (s *UserService) PriceView(ctx context.Context, userID int64) (domain.PriceView, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return domain.PriceView{}, err
	}

	var pref domain.Currency
	u, err := s.userRepo.Get(ctx, userID)
	if err != nil {
		return domain.PriceView{}, err
	}
	if u != nil {
		pref = u.CurrencyPref
	}

	rate := settings.Rate()
	return domain.PriceView{
		Currency: domain.ResolveCurrency(pref, settings.CurrencyDefault, rate != nil),
		Rate:     rate,
	}, nil
}

// ToggleCurrency advances the stored preference AUTO -> USD -> SYP -> AUTO
func (s *UserService) ToggleCurrency(ctx context.Context, userID int64, name string) (domain.Currency, error) {
	if _, err := s.EnsureUser(ctx, userID, name); err != nil {
		return "", err
	}

	var next domain.Currency
	err := s.userRepo.Update(ctx, userID, func(u *domain.User) error {
		next = u.CurrencyPref.Next()
		u.CurrencyPref = next
		return nil
	})
	if err != nil {
		return "", err
	}
	return next, nil
}

// BeginAwaiting asks userID to answer the request_info node
func (s *UserService) BeginAwaiting(ctx context.Context, userID int64, name string, node domain.Node) (domain.Awaiting, error) {
	awaiting := domain.Awaiting{
		ButtonID:   node.ID,
		ButtonText: node.Text,
		Prompt:     node.PromptText(),
	}
	if err := s.Rearm(ctx, userID, name, awaiting); err != nil {
		return domain.Awaiting{}, err
	}
	return awaiting, nil
}

// Rearm sets the awaiting slot, replacing any previous one
func (s *UserService) Rearm(ctx context.Context, userID int64, name string, awaiting domain.Awaiting) error {
	if _, err := s.EnsureUser(ctx, userID, name); err != nil {
		return err
	}
	return s.userRepo.Update(ctx, userID, func(u *domain.User) error {
		a := awaiting
		u.Awaiting = &a
		return nil
	})
}
