package handler

import (
	"fmt"
	"html"
	"strings"

	"storefront/internal/domain"
	"storefront/internal/service"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	tele "gopkg.in/telebot.v3"
)

var printer = message.NewPrinter(language.English)

// esc escapes user-authored text for HTML parse mode
func esc(s string) string {
	return html.EscapeString(s)
}

// fullName mirrors the Telegram client display name
func fullName(u *tele.User) string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return u.Username
	}
	return name
}

func orderAlert(o domain.Order) string {
	text := fmt.Sprintf(msgNewOrderFmt, esc(o.UserName), o.UserID, esc(o.ButtonText), o.ID)
	if o.Info.Kind == domain.AnswerPhoto {
		return text + fmt.Sprintf(msgOrderPhotoFmt, o.Info.FileID)
	}
	return text + fmt.Sprintf(msgOrderTextFmt, esc(o.Info.Text))
}

func orderDetails(o domain.Order) string {
	info := esc(o.Info.Text)
	if o.Info.Kind == domain.AnswerPhoto {
		info = msgOrderPhoto
	}
	return fmt.Sprintf(msgOrderViewFmt, o.ID, esc(o.UserName), o.UserID, esc(o.ButtonText), info, o.Status)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// buttonTree lists top-level nodes and their direct children
func buttonTree(menu domain.Menu) string {
	lines := []string{msgButtonsHeader}
	for _, n := range menu.MainMenu {
		lines = append(lines, fmt.Sprintf("- %s | %s | %s | image:%s", esc(n.ID), esc(n.Text), n.Kind, yesNo(n.Image != "")))
		if n.Kind == domain.KindSubmenu {
			for _, c := range n.Children {
				lines = append(lines, fmt.Sprintf("   • %s | %s | %s", esc(c.ID), esc(c.Text), c.Kind))
			}
		}
	}
	return strings.Join(lines, "\n")
}

func subItems(n domain.Node) string {
	lines := []string{fmt.Sprintf(msgSubsFmt, esc(n.Text))}
	for _, c := range n.Children {
		lines = append(lines, fmt.Sprintf("- %s | %s | %s", esc(c.ID), esc(c.Text), c.Kind))
	}
	return strings.Join(lines, "\n")
}

func statsText(s service.Stats) string {
	most := esc(s.MostOrdered)
	if most == "" {
		most = msgStatsNone
	}
	return printer.Sprintf(msgStatsFmt,
		s.Users,
		s.Orders,
		s.ByStatus[domain.OrderPending],
		s.ByStatus[domain.OrderApproved],
		s.ByStatus[domain.OrderRejected],
		s.ByStatus[domain.OrderNeedsMore],
		most,
	)
}

func adminsText(ids []int64) string {
	lines := []string{msgManageAdmins}
	for _, id := range ids {
		lines = append(lines, fmt.Sprintf("- %d", id))
	}
	return strings.Join(lines, "\n")
}
