package service

import (
	"context"

	"go.uber.org/zap"
)

// MessengerService sends best-effort notifications. Delivery failures are
// logged and counted, never returned.
type MessengerService struct {
	notifier Notifier
	auth     *AuthService
	users    *UserService
	logger   *zap.Logger
}

// NewMessengerService creates a new messenger service
func NewMessengerService(notifier Notifier, auth *AuthService, users *UserService, logger *zap.Logger) *MessengerService {
	return &MessengerService{
		notifier: notifier,
		auth:     auth,
		users:    users,
		logger:   logger,
	}
}

// NotifyUser sends text to one chat and reports whether it was delivered
func (s *MessengerService) NotifyUser(ctx context.Context, chatID int64, text string, opts ...interface{}) bool {
	if err := s.notifier.SendText(ctx, chatID, text, opts...); err != nil {
		s.logger.Warn("Failed to notify user",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
		return false
	}
	return true
}

// NotifyAdmins sends text to every admin and returns how many received it
func (s *MessengerService) NotifyAdmins(ctx context.Context, text string, opts ...interface{}) int {
	ids, err := s.auth.AdminIDs(ctx)
	if err != nil {
		s.logger.Error("Failed to list admins", zap.Error(err))
		return 0
	}
	return s.fanOut(ctx, ids, text, opts...)
}

// SendPhotoToAdmins sends a photo to every admin and returns how many received it
func (s *MessengerService) SendPhotoToAdmins(ctx context.Context, photoRef, caption string, opts ...interface{}) int {
	ids, err := s.auth.AdminIDs(ctx)
	if err != nil {
		s.logger.Error("Failed to list admins", zap.Error(err))
		return 0
	}

	sent := 0
	for _, id := range ids {
		if err := s.notifier.SendPhoto(ctx, id, photoRef, caption, opts...); err != nil {
			s.logger.Warn("Failed to send photo to admin",
				zap.Int64("admin_id", id),
				zap.Error(err),
			)
			continue
		}
		sent++
	}
	return sent
}

// Broadcast sends text to every known user
func (s *MessengerService) Broadcast(ctx context.Context, text string) (int, error) {
	ids, err := s.users.IDs(ctx)
	if err != nil {
		return 0, err
	}

	sent := s.fanOut(ctx, ids, text)
	s.logger.Info("Broadcast finished",
		zap.Int("recipients", len(ids)),
		zap.Int("delivered", sent),
	)
	return sent, nil
}

func (s *MessengerService) fanOut(ctx context.Context, ids []int64, text string, opts ...interface{}) int {
	sent := 0
	for _, id := range ids {
		if s.NotifyUser(ctx, id, text, opts...) {
			sent++
		}
	}
	return sent
}
