package handler

import (
	"fmt"

	"storefront/internal/domain"

	tele "gopkg.in/telebot.v3"
)

// Callback namespaces. Buttons carry "<namespace>|<payload>".
const (
	nsNav       = "NAV"
	nsAdmin     = "ADMIN"
	nsAdminEdit = "ADMIN_EDIT"
	nsContact   = "CONTACT"
	nsOrder     = "ORDER"
	nsButton    = "BTN"
)

// Navigation payloads
const (
	navHome           = "home"
	navToggleCurrency = "toggle_currency"
)

// menuMarkup renders sibling nodes with the configured layout, followed by the
// currency toggle and home rows
func menuMarkup(nodes []domain.Node, layout domain.Layout, view domain.PriceView) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}

	keys := make([]domain.Key, 0, len(nodes))
	for _, n := range nodes {
		keys = append(keys, domain.Key{ID: n.ID, Label: view.Render(n.Text)})
	}

	rows := []tele.Row{}
	for _, line := range layout.Arrange(keys) {
		row := tele.Row{}
		for _, k := range line {
			row = append(row, markup.Data(k.Label, nsButton, k.ID))
		}
		rows = append(rows, row)
	}
	rows = append(rows,
		markup.Row(markup.Data(lblToggleCurrency, nsNav, navToggleCurrency)),
		markup.Row(markup.Data(lblHome, nsNav, navHome)),
	)

	markup.Inline(rows...)
	return markup
}

// homeMarkup is a single return-to-root button
func homeMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(markup.Data(lblHome, nsNav, navHome)))
	return markup
}

func contactMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(markup.Data(lblSendToAdmin, nsContact, "send")),
		markup.Row(markup.Data(lblHome, nsNav, navHome)),
	)
	return markup
}

// verticalMarkup puts one button per row
func verticalMarkup(btns ...tele.Btn) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	rows := make([]tele.Row, 0, len(btns))
	for _, b := range btns {
		rows = append(rows, markup.Row(b))
	}
	markup.Inline(rows...)
	return markup
}

func adminBtn(text, action string) tele.Btn {
	return tele.Btn{Text: text, Unique: nsAdmin, Data: action}
}

func adminEditBtn(text, nodeID, action string) tele.Btn {
	return tele.Btn{Text: text, Unique: nsAdminEdit, Data: nodeID + "|" + action}
}

func orderBtn(text, orderID, action string) tele.Btn {
	return tele.Btn{Text: text, Unique: nsOrder, Data: orderID + "|" + action}
}

func backBtn() tele.Btn {
	return tele.Btn{Text: lblBack, Unique: nsNav, Data: navHome}
}

func adminPanelMarkup() *tele.ReplyMarkup {
	return verticalMarkup(
		adminBtn(lblManageButtons, "manage_buttons"),
		adminBtn(lblOrders, "manage_orders"),
		adminBtn(lblBroadcast, "broadcast"),
		adminBtn(lblSetRate, "set_rate"),
		adminBtn(lblLayout, "set_layout"),
		adminBtn(lblManageAdmins, "manage_admins"),
		adminBtn(lblStats, "stats"),
		adminBtn(lblToggleBot, "toggle"),
	)
}

func manageButtonsMarkup() *tele.ReplyMarkup {
	return verticalMarkup(
		adminBtn(lblAddButton, "add_button"),
		adminBtn(lblEditMain, "edit_main_list"),
		adminBtn(lblDeleteBtn, "del_button"),
		adminBtn(lblShowButtons, "show_buttons"),
		backBtn(),
	)
}

func layoutMarkup() *tele.ReplyMarkup {
	return verticalMarkup(
		adminBtn(lblVertical, "layout_vertical"),
		adminBtn(lblHorizontal, "layout_horizontal"),
		adminBtn(lblGrid, "layout_grid"),
	)
}

func manageAdminsMarkup() *tele.ReplyMarkup {
	return verticalMarkup(
		adminBtn(lblAddAdmin, "add_admin"),
		adminBtn(lblRemoveAdmin, "del_admin"),
	)
}

// editListMarkup lists top-level nodes for editing
func editListMarkup(nodes []domain.Node) *tele.ReplyMarkup {
	btns := make([]tele.Btn, 0, len(nodes)+1)
	for _, n := range nodes {
		btns = append(btns, adminEditBtn(n.Text, n.ID, "menu"))
	}
	btns = append(btns, backBtn())
	return verticalMarkup(btns...)
}

func editNodeMarkup(nodeID string) *tele.ReplyMarkup {
	return verticalMarkup(
		adminEditBtn(lblEditText, nodeID, "add_text"),
		adminEditBtn(lblEditImageURL, nodeID, "add_image_url"),
		adminEditBtn(lblEditImageUp, nodeID, "add_image_upload"),
		adminEditBtn(lblEditToRequest, nodeID, "set_request_info"),
		adminEditBtn(lblEditShowSubs, nodeID, "show_subs"),
		backBtn(),
	)
}

// ordersMarkup lists orders, one per row, opening the order view
func ordersMarkup(orders []domain.Order) *tele.ReplyMarkup {
	btns := make([]tele.Btn, 0, len(orders))
	for _, o := range orders {
		btns = append(btns, orderBtn(fmt.Sprintf("%s - %s", o.ButtonText, o.UserName), o.ID, "view"))
	}
	return verticalMarkup(btns...)
}

func orderReviewMarkup(orderID string) *tele.ReplyMarkup {
	return verticalMarkup(
		orderBtn(lblOrderApprove, orderID, "approve"),
		orderBtn(lblOrderReject, orderID, "reject"),
		orderBtn(lblOrderAskMore, orderID, "askmore"),
	)
}

func orderViewMarkup(orderID string) *tele.ReplyMarkup {
	return verticalMarkup(orderBtn(lblOrderView, orderID, "view"))
}
