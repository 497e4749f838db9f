package handler

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"storefront/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// parseCallback splits "<namespace>|<payload>"
func parseCallback(data string) (namespace, payload string, ok bool) {
	namespace, payload, ok = strings.Cut(data, "|")
	if !ok || namespace == "" {
		return "", "", false
	}
	return namespace, payload, true
}

// handleEditError handles errors from c.Edit() - if message is not modified, just acknowledge callback
// Otherwise return error so caller can send new message
func (h *Handler) handleEditError(err error, c tele.Context) error {
	if err == nil {
		return nil
	}

	if strings.Contains(err.Error(), "message is not modified") {
		h.logger.Debug("Message already up to date",
			zap.Int64("user_id", c.Sender().ID),
		)
		return nil
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("user_id", c.Sender().ID),
	)
	return err
}

// editOrSend edits the callback message, falling back to a new message
func (h *Handler) editOrSend(c tele.Context, what interface{}, opts ...interface{}) error {
	if c.Callback() != nil && c.Message() != nil {
		if err := h.handleEditError(c.Edit(what, opts...), c); err == nil {
			return nil
		}
	}
	return c.Send(what, opts...)
}

// handleCallback handles callback queries that bypassed the namespace endpoints
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	data := cleanCallbackData(callback.Data)
	namespace, payload, ok := parseCallback(data)
	if !ok {
		h.logger.Warn("Unhandled callback",
			zap.String("data", data),
			zap.String("unique", callback.Unique),
		)
		return c.Respond(&tele.CallbackResponse{Text: msgUnknownAction})
	}
	return h.dispatch(c, namespace, payload)
}

// dispatch routes a button press by namespace
func (h *Handler) dispatch(c tele.Context, namespace, payload string) error {
	h.logger.Debug("Processing callback",
		zap.String("namespace", namespace),
		zap.String("payload", payload),
		zap.Int64("user_id", c.Sender().ID),
	)

	switch namespace {
	case nsNav:
		return h.handleNav(c, payload)
	case nsButton:
		return h.handleButton(c, payload)
	case nsContact:
		return h.handleContact(c, payload)
	case nsAdmin, nsAdminEdit, nsOrder:
		return h.handleAdminCallback(c, namespace, payload)
	}

	return c.Respond(&tele.CallbackResponse{Text: msgUnknownAction})
}

// handleNav handles home and currency toggle
func (h *Handler) handleNav(c tele.Context, action string) error {
	ctx := context.Background()
	userID := c.Sender().ID

	switch action {
	case navHome:
		if err := c.Respond(); err != nil {
			h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
		}
	case navToggleCurrency:
		pref, err := h.svc.Users.ToggleCurrency(ctx, userID, fullName(c.Sender()))
		if err != nil {
			h.logger.Error("Failed to toggle currency", zap.Error(err), zap.Int64("user_id", userID))
			return c.Respond(&tele.CallbackResponse{Text: msgError})
		}
		if err := c.Respond(&tele.CallbackResponse{Text: fmt.Sprintf(msgCurrencyFmt, pref)}); err != nil {
			h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
		}
	default:
		return c.Respond(&tele.CallbackResponse{Text: msgUnknownAction})
	}

	markup, err := h.mainMenu(ctx, userID)
	if err != nil {
		h.logger.Error("Failed to build main menu", zap.Error(err))
		return c.Send(msgError)
	}
	return h.editOrSend(c, msgWelcome, markup)
}

// handleButton opens a menu node
func (h *Handler) handleButton(c tele.Context, nodeID string) error {
	ctx := context.Background()
	userID := c.Sender().ID

	node, err := h.svc.Menu.Find(ctx, nodeID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			h.logger.Error("Failed to look up button", zap.Error(err), zap.String("node_id", nodeID))
		}
		return c.Respond(&tele.CallbackResponse{Text: msgUnknownButton})
	}
	view, err := h.svc.Users.PriceView(ctx, userID)
	if err != nil {
		h.logger.Error("Failed to resolve currency", zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: msgError})
	}
	if err := c.Respond(); err != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
	}

	switch node.Kind {
	case domain.KindSubmenu:
		return h.showSubmenu(c, node, view)

	case domain.KindContent:
		text := view.Render(node.Content)
		if node.Image != "" {
			if err := c.Send(photo(node.Image, text), homeMarkup()); err == nil {
				return nil
			}
			h.logger.Warn("Failed to send content image", zap.String("node_id", node.ID))
		}
		return c.Send(text, homeMarkup())

	case domain.KindRequestInfo:
		awaiting, err := h.svc.Users.BeginAwaiting(ctx, userID, fullName(c.Sender()), node)
		if err != nil {
			h.logger.Error("Failed to set awaiting", zap.Error(err), zap.Int64("user_id", userID))
			return c.Send(msgError)
		}
		return c.Send(view.Render(awaiting.Prompt), homeMarkup())

	case domain.KindContactAdmin:
		return c.Send(msgChoose, contactMarkup())
	}

	return c.Send(msgUnknownAction)
}

// showSubmenu renders a submenu with its optional image and description
func (h *Handler) showSubmenu(c tele.Context, node domain.Node, view domain.PriceView) error {
	ctx := context.Background()
	markup, err := h.nodesMarkup(ctx, c.Sender().ID, node.Children)
	if err != nil {
		h.logger.Error("Failed to build submenu", zap.Error(err), zap.String("node_id", node.ID))
		return c.Send(msgError)
	}

	header := view.Render(node.Text)
	desc := view.Render(node.Description)

	if node.Image != "" {
		caption := header
		if desc != "" {
			caption += "\n\n" + desc
		}
		if err := c.Send(photo(node.Image, caption), markup); err == nil {
			return nil
		}
		h.logger.Warn("Failed to send submenu image", zap.String("node_id", node.ID))
	}
	return h.editOrSend(c, fmt.Sprintf("<b>%s</b>\n%s", header, desc), markup)
}

// handleContact starts a one-shot message to the admins
func (h *Handler) handleContact(c tele.Context, action string) error {
	if action != "send" {
		return c.Respond(&tele.CallbackResponse{Text: msgUnknownAction})
	}
	h.SetState(c.Sender().ID, &domain.StateData{State: domain.StateWritingToAdmin})
	if err := c.Respond(); err != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
	}
	return c.Send(msgWriteToAdmin)
}
