package handler

import (
	"context"
	"fmt"
	"strings"

	"storefront/internal/domain"
	"storefront/internal/session"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleMessage handles free text and photos: admin wizard first, then a
// pending message to the admins, then an awaited order answer
func (h *Handler) handleMessage(c tele.Context) error {
	ctx := context.Background()
	userID := c.Sender().ID
	in := inputOf(c.Message())

	if strings.HasPrefix(in.Text, "/") {
		return nil
	}

	isAdmin, err := h.svc.Auth.IsAdmin(ctx, userID)
	if err != nil {
		h.logger.Error("Failed to check admin rights", zap.Error(err))
		return c.Send(msgError)
	}

	if isAdmin {
		if reply, ok := h.sessions.Advance(ctx, userID, in); ok {
			return c.Send(reply)
		}
	}

	if h.GetState(userID).State == domain.StateWritingToAdmin {
		h.ResetState(userID)
		return h.forwardToAdmins(c, in)
	}

	user, err := h.svc.Users.Get(ctx, userID)
	if err != nil {
		h.logger.Error("Failed to load user", zap.Error(err), zap.Int64("user_id", userID))
		return c.Send(msgError)
	}
	if user != nil && user.Awaiting != nil {
		return h.submitAnswer(c, in)
	}

	if isAdmin {
		return nil
	}
	markup, err := h.mainMenu(ctx, userID)
	if err != nil {
		h.logger.Error("Failed to build main menu", zap.Error(err))
		return c.Send(msgUseButtons)
	}
	return c.Send(msgUseButtons, markup)
}

func inputOf(m *tele.Message) session.Input {
	if m == nil {
		return session.Input{}
	}
	in := session.Input{Text: m.Text}
	if m.Photo != nil {
		in.PhotoID = m.Photo.FileID
	}
	return in
}

// submitAnswer turns the message into an order for the awaited button
func (h *Handler) submitAnswer(c tele.Context, in session.Input) error {
	ctx := context.Background()
	userID := c.Sender().ID

	settings, err := h.svc.Settings.Get(ctx)
	if err != nil {
		h.logger.Error("Failed to load settings", zap.Error(err))
		return c.Send(msgError)
	}

	answer := domain.TextAnswer(in.Text)
	if in.PhotoID != "" {
		answer = domain.PhotoAnswer(in.PhotoID)
	} else if !settings.AllowLinks && isLink(strings.TrimSpace(in.Text)) {
		markup, err := h.mainMenu(ctx, userID)
		if err != nil {
			return c.Send(msgLinksBlocked)
		}
		return c.Send(msgLinksBlocked, markup)
	}

	order, err := h.svc.Orders.Submit(ctx, userID, answer)
	if err != nil {
		h.logger.Error("Failed to create order", zap.Error(err), zap.Int64("user_id", userID))
		return c.Send(msgError)
	}
	if order == nil {
		return c.Send(msgUseButtons)
	}

	h.logger.Info("Order created",
		zap.String("order_id", order.ID),
		zap.Int64("user_id", userID),
		zap.String("node_id", order.ButtonID),
	)
	if err := c.Send(msgOrderReceived); err != nil {
		h.logger.Warn("Failed to confirm order", zap.Error(err))
	}

	alert := orderAlert(*order)
	if answer.Kind == domain.AnswerPhoto {
		h.svc.Messenger.SendPhotoToAdmins(ctx, answer.FileID, alert, orderViewMarkup(order.ID))
	} else {
		h.svc.Messenger.NotifyAdmins(ctx, alert, orderViewMarkup(order.ID))
	}
	return nil
}

// forwardToAdmins relays a user message to every admin
func (h *Handler) forwardToAdmins(c tele.Context, in session.Input) error {
	ctx := context.Background()
	sender := c.Sender()
	name := esc(fullName(sender))

	if in.PhotoID != "" {
		h.svc.Messenger.SendPhotoToAdmins(ctx, in.PhotoID, fmt.Sprintf(msgFromUserFmt, name, sender.ID))
	} else {
		h.svc.Messenger.NotifyAdmins(ctx, fmt.Sprintf(msgFromUserText, name, sender.ID, esc(in.Text)))
	}
	return c.Send(msgMessageSent)
}
