package handler

import (
	"context"

	"storefront/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start and /help
func (h *Handler) handleStart(c tele.Context) error {
	ctx := context.Background()
	userID := c.Sender().ID

	created, err := h.svc.Users.EnsureUser(ctx, userID, fullName(c.Sender()))
	if err != nil {
		h.logger.Error("Failed to ensure user exists", zap.Error(err))
		return c.Send(msgError)
	}
	if created {
		h.logger.Info("New user",
			zap.Int64("user_id", userID),
			zap.String("username", c.Sender().Username),
		)
	}

	allowed, err := h.svc.Auth.Serves(ctx, userID)
	if err != nil {
		h.logger.Error("Failed to check bot status", zap.Error(err))
		return c.Send(msgError)
	}
	if !allowed {
		return c.Send(msgBotStopped)
	}

	h.ResetState(userID)
	markup, err := h.mainMenu(ctx, userID)
	if err != nil {
		h.logger.Error("Failed to build main menu", zap.Error(err))
		return c.Send(msgError)
	}
	return c.Send(msgWelcome, markup)
}

// mainMenu renders the root of the menu tree for userID
func (h *Handler) mainMenu(ctx context.Context, userID int64) (*tele.ReplyMarkup, error) {
	menu, err := h.svc.Menu.Menu(ctx)
	if err != nil {
		return nil, err
	}
	return h.nodesMarkup(ctx, userID, menu.MainMenu)
}

func (h *Handler) nodesMarkup(ctx context.Context, userID int64, nodes []domain.Node) (*tele.ReplyMarkup, error) {
	settings, err := h.svc.Settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	view, err := h.svc.Users.PriceView(ctx, userID)
	if err != nil {
		return nil, err
	}
	return menuMarkup(nodes, settings.ButtonLayout, view), nil
}
