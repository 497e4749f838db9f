package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"storefront/internal/domain"
	"storefront/internal/repository"

	"github.com/shopspring/decimal"
)

// SettingsService handles the config document
type SettingsService struct {
	repo repository.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(repo repository.SettingsRepository) *SettingsService {
	return &SettingsService{repo: repo}
}

// Get returns the current settings
func (s *SettingsService) Get(ctx context.Context) (domain.Settings, error) {
	return s.repo.Get(ctx)
}

// SetExchangeRate parses and stores a positive SYP-per-USD rate
func (s *SettingsService) SetExchangeRate(ctx context.Context, raw string) (decimal.Decimal, error) {
	rate, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || !rate.IsPositive() {
		return decimal.Decimal{}, fmt.Errorf("%w: exchange rate %q", domain.ErrInvalidInput, raw)
	}

	_, err = s.repo.Update(ctx, func(settings *domain.Settings) error {
		settings.ExchangeRate = decimal.NewNullDecimal(rate)
		return nil
	})
	if err != nil {
		return decimal.Decimal{}, err
	}
	return rate, nil
}

// SetLayoutType switches the button layout
func (s *SettingsService) SetLayoutType(ctx context.Context, kind domain.LayoutKind) error {
	_, err := s.repo.Update(ctx, func(settings *domain.Settings) error {
		settings.ButtonLayout.Type = kind
		return nil
	})
	return err
}

// SetGridColumns parses and stores the grid width
func (s *SettingsService) SetGridColumns(ctx context.Context, raw string) (int, error) {
	cols, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || cols < 1 {
		return 0, fmt.Errorf("%w: grid columns %q", domain.ErrInvalidInput, raw)
	}

	_, err = s.repo.Update(ctx, func(settings *domain.Settings) error {
		settings.ButtonLayout.GridColumns = cols
		return nil
	})
	if err != nil {
		return 0, err
	}
	return cols, nil
}

// ToggleStatus flips BOT_STATUS between on and off
func (s *SettingsService) ToggleStatus(ctx context.Context) (domain.BotStatus, error) {
	settings, err := s.repo.Update(ctx, func(settings *domain.Settings) error {
		if settings.Enabled() {
			settings.BotStatus = domain.BotOff
		} else {
			settings.BotStatus = domain.BotOn
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return settings.BotStatus, nil
}

// MergeAdminIDs adds ids missing from ADMIN_IDS
func (s *SettingsService) MergeAdminIDs(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := s.repo.Update(ctx, func(settings *domain.Settings) error {
		for _, id := range ids {
			if !settings.IsStaticAdmin(id) {
				settings.AdminIDs = append(settings.AdminIDs, id)
			}
		}
		return nil
	})
	return err
}
