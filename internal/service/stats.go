package service

import (
	"context"

	"storefront/internal/domain"
	"storefront/internal/repository"

	"go.uber.org/zap"
)

// Stats is the admin statistics snapshot
type Stats struct {
	Users       int
	Orders      int
	ByStatus    map[domain.OrderStatus]int
	MostOrdered string
}

// StatsService handles statistics
type StatsService struct {
	userRepo  repository.UserRepository
	orderRepo repository.OrderRepository
	logger    *zap.Logger
}

// NewStatsService creates a new stats service
func NewStatsService(userRepo repository.UserRepository, orderRepo repository.OrderRepository, logger *zap.Logger) *StatsService {
	return &StatsService{
		userRepo:  userRepo,
		orderRepo: orderRepo,
		logger:    logger,
	}
}

// Collect counts users and orders and finds the most ordered button.
// Ties go to the button that was ordered first.
func (s *StatsService) Collect(ctx context.Context) (Stats, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		s.logger.Error("Failed to list users for stats", zap.Error(err))
		return Stats{}, err
	}
	orders, err := s.orderRepo.List(ctx)
	if err != nil {
		s.logger.Error("Failed to list orders for stats", zap.Error(err))
		return Stats{}, err
	}

	stats := Stats{
		Users:    len(users),
		Orders:   len(orders),
		ByStatus: make(map[domain.OrderStatus]int),
	}

	counts := make(map[string]int)
	best := 0
	for _, o := range orders {
		stats.ByStatus[o.Status]++
		counts[o.ButtonText]++
		if counts[o.ButtonText] > best {
			best = counts[o.ButtonText]
		}
	}
	for _, o := range orders {
		if counts[o.ButtonText] == best {
			stats.MostOrdered = o.ButtonText
			break
		}
	}

	return stats, nil
}
