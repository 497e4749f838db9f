package handler

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"storefront/internal/domain"
	"storefront/internal/session"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const recentOrdersLimit = 40

// handleAdminPanel handles /admin and /panel
func (h *Handler) handleAdminPanel(c tele.Context) error {
	isAdmin, err := h.svc.Auth.IsAdmin(context.Background(), c.Sender().ID)
	if err != nil {
		h.logger.Error("Failed to check admin rights", zap.Error(err))
		return c.Send(msgError)
	}
	if !isAdmin {
		return c.Reply(msgNoPanelAccess)
	}
	return c.Send(msgPanel, adminPanelMarkup())
}

// handleAdminCallback guards ADMIN, ADMIN_EDIT and ORDER buttons
func (h *Handler) handleAdminCallback(c tele.Context, namespace, payload string) error {
	adminID := c.Sender().ID
	isAdmin, err := h.svc.Auth.IsAdmin(context.Background(), adminID)
	if err != nil {
		h.logger.Error("Failed to check admin rights", zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: msgError})
	}
	if !isAdmin {
		h.logger.Warn("Admin callback from non-admin",
			zap.Int64("user_id", adminID),
			zap.String("namespace", namespace),
		)
		return c.Respond(&tele.CallbackResponse{Text: msgAdminsOnly})
	}
	if err := c.Respond(); err != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
	}

	switch namespace {
	case nsAdmin:
		return h.handleAdminAction(c, payload)
	case nsAdminEdit:
		nodeID, action, _ := strings.Cut(payload, "|")
		return h.handleAdminEdit(c, nodeID, action)
	default:
		orderID, action, _ := strings.Cut(payload, "|")
		return h.handleOrderAction(c, orderID, action)
	}
}

// begin starts an admin wizard and sends its prompt
func (h *Handler) begin(c tele.Context, st session.State) error {
	return c.Send(h.sessions.Begin(c.Sender().ID, st))
}

// handleAdminAction handles the admin panel entries
func (h *Handler) handleAdminAction(c tele.Context, action string) error {
	ctx := context.Background()

	switch action {
	case "manage_buttons":
		return c.Send(msgManageButtons, manageButtonsMarkup())
	case "add_button":
		return h.begin(c, session.AddButtonText{})
	case "del_button":
		return h.begin(c, session.DeleteButton{})
	case "edit_main_list":
		menu, err := h.svc.Menu.Menu(ctx)
		if err != nil {
			return h.adminError(c, "load menu", err)
		}
		return c.Send(msgChooseMain, editListMarkup(menu.MainMenu))
	case "show_buttons":
		menu, err := h.svc.Menu.Menu(ctx)
		if err != nil {
			return h.adminError(c, "load menu", err)
		}
		return c.Send(buttonTree(menu))

	case "manage_orders":
		orders, err := h.svc.Orders.Recent(ctx, recentOrdersLimit)
		if err != nil {
			return h.adminError(c, "list orders", err)
		}
		if len(orders) == 0 {
			return c.Send(msgNoOrders)
		}
		return c.Send(msgOrdersHeader, ordersMarkup(orders))

	case "broadcast":
		return h.begin(c, session.Broadcast{})
	case "set_rate":
		return h.begin(c, session.SetRate{})

	case "set_layout":
		return c.Send(msgChooseLayout, layoutMarkup())
	case "layout_vertical", "layout_horizontal", "layout_grid":
		kind := domain.LayoutKind(strings.TrimPrefix(action, "layout_"))
		if err := h.svc.Settings.SetLayoutType(ctx, kind); err != nil {
			return h.adminError(c, "set layout", err)
		}
		if kind == domain.LayoutGrid {
			return h.begin(c, session.SetGridColumns{})
		}
		return c.Send(fmt.Sprintf(msgLayoutSetFmt, kind))

	case "manage_admins":
		ids, err := h.svc.Auth.AdminIDs(ctx)
		if err != nil {
			return h.adminError(c, "list admins", err)
		}
		return c.Send(adminsText(ids), manageAdminsMarkup())
	case "add_admin":
		return h.begin(c, session.AddAdmin{})
	case "del_admin":
		return h.begin(c, session.RemoveAdmin{})

	case "stats":
		stats, err := h.svc.Stats.Collect(ctx)
		if err != nil {
			return h.adminError(c, "collect stats", err)
		}
		return c.Send(statsText(stats))

	case "toggle":
		status, err := h.svc.Settings.ToggleStatus(ctx)
		if err != nil {
			return h.adminError(c, "toggle status", err)
		}
		h.logger.Info("Bot status changed",
			zap.Int64("admin_id", c.Sender().ID),
			zap.String("status", string(status)),
		)
		return c.Send(fmt.Sprintf(msgStatusFmt, status))
	}

	return c.Send(msgUnknownAction)
}

// handleAdminEdit handles ADMIN_EDIT|<node id>|<action>
func (h *Handler) handleAdminEdit(c tele.Context, nodeID, action string) error {
	node, err := h.svc.Menu.Find(context.Background(), nodeID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Send(msgButtonMissing)
		}
		return h.adminError(c, "find button", err)
	}

	switch action {
	case "menu":
		return c.Send(fmt.Sprintf(msgEditMainFmt, esc(node.Text)), editNodeMarkup(node.ID))
	case "add_text":
		return h.begin(c, session.EditDescription{NodeID: node.ID})
	case "add_image_url":
		return h.begin(c, session.EditImageURL{NodeID: node.ID})
	case "add_image_upload":
		return h.begin(c, session.EditImageUpload{NodeID: node.ID})
	case "set_request_info":
		return h.begin(c, session.EditRequestInfo{NodeID: node.ID})
	case "show_subs":
		if len(node.Children) == 0 {
			return c.Send(msgNoSubs)
		}
		return c.Send(subItems(node))
	}

	return c.Send(msgUnknownAction)
}

// handleOrderAction handles ORDER|<order id>|<action>
func (h *Handler) handleOrderAction(c tele.Context, orderID, action string) error {
	ctx := context.Background()

	var status domain.OrderStatus
	switch action {
	case "view":
		order, err := h.svc.Orders.Get(ctx, orderID)
		if err != nil {
			return h.orderError(c, orderID, err)
		}
		return c.Send(orderDetails(*order), orderReviewMarkup(order.ID))
	case "approve":
		status = domain.OrderApproved
	case "reject":
		status = domain.OrderRejected
	case "askmore":
		status = domain.OrderNeedsMore
	default:
		return c.Send(msgUnknownAction)
	}

	order, err := h.svc.Orders.Review(ctx, orderID, status)
	if err != nil {
		return h.orderError(c, orderID, err)
	}
	h.logger.Info("Order reviewed",
		zap.String("order_id", order.ID),
		zap.String("status", string(order.Status)),
		zap.Int64("admin_id", c.Sender().ID),
	)

	switch status {
	case domain.OrderApproved:
		h.svc.Messenger.NotifyUser(ctx, order.UserID, fmt.Sprintf(msgApprovedUserFmt, order.ID))
		return c.Send(msgApproved)
	case domain.OrderRejected:
		h.svc.Messenger.NotifyUser(ctx, order.UserID, fmt.Sprintf(msgRejectedUserFmt, order.ID))
		return c.Send(msgRejected)
	default:
		return h.begin(c, session.AskMore{OrderID: order.ID})
	}
}

func (h *Handler) orderError(c tele.Context, orderID string, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Send(msgOrderNotFound)
	case errors.Is(err, domain.ErrOrderClosed):
		return c.Send(msgOrderClosed)
	}
	h.logger.Error("Order action failed", zap.String("order_id", orderID), zap.Error(err))
	return c.Send(msgError)
}

func (h *Handler) adminError(c tele.Context, op string, err error) error {
	h.logger.Error("Admin action failed",
		zap.String("op", op),
		zap.Int64("admin_id", c.Sender().ID),
		zap.Error(err),
	)
	return c.Send(msgError)
}
