package session

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strconv"
	"strings"
	"sync"

	"storefront/internal/domain"
	"storefront/internal/service"

	"go.uber.org/zap"
)

const doneSentinel = "done"

// Input is one inbound admin message
type Input struct {
	Text    string
	PhotoID string
}

// Services are the operations wizards commit through
type Services struct {
	Menu      *service.MenuService
	Settings  *service.SettingsService
	Auth      *service.AuthService
	Users     *service.UserService
	Orders    *service.OrderService
	Messenger *service.MessengerService
}

// Engine holds the active wizard of every admin
type Engine struct {
	mu       sync.Mutex
	sessions map[int64]State
	svc      Services
	logger   *zap.Logger
}

// NewEngine creates a new session engine
func NewEngine(svc Services, logger *zap.Logger) *Engine {
	return &Engine{
		sessions: make(map[int64]State),
		svc:      svc,
		logger:   logger,
	}
}

// Begin starts st for adminID, replacing any active wizard, and returns its prompt
func (e *Engine) Begin(adminID int64, st State) string {
	e.set(adminID, st)
	e.logger.Debug("Admin session started",
		zap.Int64("admin_id", adminID),
		zap.String("state", st.Name()),
	)
	return promptFor(st)
}

// Active reports whether adminID is inside a wizard
func (e *Engine) Active(adminID int64) bool {
	return e.Current(adminID) != nil
}

// Current returns the active state of adminID or nil
func (e *Engine) Current(adminID int64) State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sessions[adminID]
}

// Cancel drops the active wizard of adminID
func (e *Engine) Cancel(adminID int64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.sessions, adminID)
}

// Advance feeds in to the active wizard of adminID and returns the reply.
// ok is false when adminID has no active wizard.
func (e *Engine) Advance(ctx context.Context, adminID int64, in Input) (reply string, ok bool) {
	st := e.Current(adminID)
	if st == nil {
		return "", false
	}

	next, reply, err := e.safeStep(ctx, st, in)
	if err != nil {
		e.logger.Error("Admin session step failed",
			zap.Int64("admin_id", adminID),
			zap.String("state", st.Name()),
			zap.Error(err),
		)
		e.Cancel(adminID)
		return msgSessionFailed, true
	}

	if next == nil {
		e.Cancel(adminID)
		e.logger.Debug("Admin session finished",
			zap.Int64("admin_id", adminID),
			zap.String("state", st.Name()),
		)
	} else {
		e.set(adminID, next)
	}
	return reply, true
}

func (e *Engine) set(adminID int64, st State) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.sessions[adminID] = st
}

func (e *Engine) safeStep(ctx context.Context, st State, in Input) (next State, reply string, err error) {
	defer func() {
		if r := recover(); r != nil {
			next, reply, err = nil, "", fmt.Errorf("panic in %s: %v", st.Name(), r)
		}
	}()
	return e.step(ctx, st, in)
}

// step returns the next state (nil ends the wizard) and the reply for the admin
func (e *Engine) step(ctx context.Context, st State, in Input) (State, string, error) {
	if _, ok := st.(EditImageUpload); !ok && strings.TrimSpace(in.Text) == "" {
		return nil, msgTextRequired, nil
	}
	text := strings.TrimSpace(in.Text)

	switch s := st.(type) {
	case AddButtonText:
		return AddButtonID{Text: text}, msgAskButtonID, nil

	case AddButtonID:
		if err := domain.ValidateNodeID(text); err != nil {
			return nil, msgBadID, nil
		}
		taken, err := e.svc.Menu.HasID(ctx, text)
		if err != nil {
			return nil, "", err
		}
		if taken {
			return nil, msgDuplicateID, nil
		}
		return AddButtonKind{Text: s.Text, ID: text}, msgAskButtonKind, nil

	case AddButtonKind:
		kind, err := domain.ParseNodeKind(text)
		if err != nil {
			return nil, msgUnknownKind, nil
		}
		switch kind {
		case domain.KindSubmenu:
			return AddSubmenuItems{Draft: domain.NewSubmenu(s.ID, s.Text, nil)}, msgAskSubmenuItems, nil
		case domain.KindRequestInfo:
			return AddRequestPrompt{Text: s.Text, ID: s.ID}, msgAskRequestPrompt, nil
		case domain.KindContent:
			return AddContentText{Text: s.Text, ID: s.ID}, msgAskContentText, nil
		default:
			return e.commit(ctx, domain.NewContactAdmin(s.ID, s.Text), msgAddedContact)
		}

	case AddSubmenuItems:
		return e.submenuItem(ctx, s, text)

	case AddSubmenuPrompt:
		item := s.Pending
		item.Prompt = in.Text
		draft := s.Draft
		draft.Children = append(draft.Children, item)
		return AddSubmenuItems{Draft: draft}, msgItemSaved, nil

	case AddRequestPrompt:
		return e.commit(ctx, domain.NewRequestInfo(s.ID, s.Text, in.Text), msgAddedRequestInfo)

	case AddContentText:
		return AddContentImage{Text: s.Text, ID: s.ID, Content: in.Text}, msgAskContentImage, nil

	case AddContentImage:
		image := text
		if strings.EqualFold(image, "no") {
			image = ""
		}
		return e.commit(ctx, domain.NewContent(s.ID, s.Text, s.Content, image), msgAddedContent)

	case DeleteButton:
		if _, err := e.svc.Menu.Delete(ctx, text); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, msgDeleteNotFound, nil
			}
			return nil, "", err
		}
		return nil, fmt.Sprintf(msgDeletedFmt, html.EscapeString(text)), nil

	case SetRate:
		rate, err := e.svc.Settings.SetExchangeRate(ctx, text)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidInput) {
				return nil, msgBadRate, nil
			}
			return nil, "", err
		}
		if _, err := e.svc.Messenger.Broadcast(ctx, fmt.Sprintf(msgRateNoticeFmt, rate.String())); err != nil {
			e.logger.Warn("Failed to announce exchange rate", zap.Error(err))
		}
		return nil, fmt.Sprintf(msgRateSavedFmt, rate.String()), nil

	case SetGridColumns:
		cols, err := e.svc.Settings.SetGridColumns(ctx, text)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidInput) {
				return nil, msgBadColumns, nil
			}
			return nil, "", err
		}
		return nil, fmt.Sprintf(msgColumnsSavedFmt, cols), nil

	case AddAdmin:
		return e.addAdmin(ctx, text)

	case RemoveAdmin:
		id, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return nil, msgBadAdminID, nil
		}
		if err := e.svc.Auth.RemoveAdmin(ctx, id); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, msgAdminNotFound, nil
			}
			return nil, "", err
		}
		return nil, fmt.Sprintf(msgAdminRemovedFmt, id), nil

	case Broadcast:
		sent, err := e.svc.Messenger.Broadcast(ctx, in.Text)
		if err != nil {
			return nil, "", err
		}
		return nil, fmt.Sprintf(msgBroadcastFmt, sent), nil

	case EditDescription:
		return e.edit(ctx, s.NodeID, msgDescriptionFmt, func() (domain.Node, error) {
			return e.svc.Menu.SetDescription(ctx, s.NodeID, in.Text)
		})

	case EditImageURL:
		return e.edit(ctx, s.NodeID, msgImageURLFmt, func() (domain.Node, error) {
			return e.svc.Menu.SetImage(ctx, s.NodeID, text)
		})

	case EditImageUpload:
		if in.PhotoID == "" {
			return s, msgPhotoRequired, nil
		}
		return e.edit(ctx, s.NodeID, msgImageUploadFmt, func() (domain.Node, error) {
			return e.svc.Menu.SetImage(ctx, s.NodeID, in.PhotoID)
		})

	case EditRequestInfo:
		return e.edit(ctx, s.NodeID, "", func() (domain.Node, error) {
			return e.svc.Menu.ConvertToRequestInfo(ctx, s.NodeID, in.Text)
		})

	case AskMore:
		return e.askMore(ctx, s.OrderID, in.Text)
	}

	return nil, "", fmt.Errorf("unhandled session state %T", st)
}

func (e *Engine) submenuItem(ctx context.Context, s AddSubmenuItems, text string) (State, string, error) {
	if strings.EqualFold(text, doneSentinel) {
		return e.commit(ctx, s.Draft, msgAddedSubmenu)
	}

	parts := strings.Split(text, "|")
	if len(parts) < 3 {
		return s, msgItemFormat, nil
	}
	id, label := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	kind, err := domain.ParseNodeKind(parts[2])
	if err != nil || id == "" || label == "" {
		return s, msgItemKind, nil
	}
	if err := domain.ValidateNodeID(id); err != nil {
		return s, msgItemBadID, nil
	}

	taken, err := e.svc.Menu.HasID(ctx, id)
	if err != nil {
		return nil, "", err
	}
	draft := domain.Menu{MainMenu: []domain.Node{s.Draft}}
	if taken || draft.HasID(id) {
		return s, msgItemDuplicate, nil
	}

	item := domain.Node{ID: id, Text: label, Kind: kind}
	if kind == domain.KindRequestInfo {
		return AddSubmenuPrompt{Draft: s.Draft, Pending: item}, fmt.Sprintf(msgAskItemPromptFmt, html.EscapeString(label)), nil
	}
	s.Draft.Children = append(s.Draft.Children, item)
	return s, msgItemAdded, nil
}

func (e *Engine) commit(ctx context.Context, node domain.Node, reply string) (State, string, error) {
	if err := e.svc.Menu.Add(ctx, node); err != nil {
		if errors.Is(err, domain.ErrDuplicateID) {
			return nil, msgDuplicateID, nil
		}
		return nil, "", err
	}
	e.logger.Info("Menu button added",
		zap.String("node_id", node.ID),
		zap.String("kind", string(node.Kind)),
	)
	return nil, reply, nil
}

func (e *Engine) edit(ctx context.Context, nodeID, replyFmt string, apply func() (domain.Node, error)) (State, string, error) {
	node, err := apply()
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, msgNodeNotFound, nil
		}
		return nil, "", err
	}
	e.logger.Info("Menu button edited", zap.String("node_id", nodeID))
	if replyFmt == "" {
		return nil, msgConverted, nil
	}
	return nil, fmt.Sprintf(replyFmt, node.ID), nil
}

func (e *Engine) addAdmin(ctx context.Context, text string) (State, string, error) {
	id, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return nil, msgBadAdminID, nil
	}

	var name string
	u, err := e.svc.Users.Get(ctx, id)
	if err != nil {
		return nil, "", err
	}
	if u != nil {
		name = u.Name
	}

	if err := e.svc.Auth.AddAdmin(ctx, id, name); err != nil {
		if errors.Is(err, domain.ErrDuplicateID) {
			return nil, msgAlreadyAdmin, nil
		}
		return nil, "", err
	}
	return nil, fmt.Sprintf(msgAdminAddedFmt, id), nil
}

func (e *Engine) askMore(ctx context.Context, orderID, question string) (State, string, error) {
	order, err := e.svc.Orders.Get(ctx, orderID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, msgOrderNotFound, nil
		}
		return nil, "", err
	}

	awaiting := domain.Awaiting{
		ButtonID:   order.ButtonID,
		ButtonText: order.ButtonText,
		Prompt:     question,
	}
	if err := e.svc.Users.Rearm(ctx, order.UserID, order.UserName, awaiting); err != nil {
		return nil, "", err
	}

	if !e.svc.Messenger.NotifyUser(ctx, order.UserID, fmt.Sprintf(msgAskMoreToUserFmt, question)) {
		return nil, msgAskMoreFailed, nil
	}
	return nil, msgAskMoreSent, nil
}

func promptFor(st State) string {
	switch st.(type) {
	case AddButtonText:
		return msgAskButtonText
	case DeleteButton:
		return msgAskDelete
	case SetRate:
		return msgAskRate
	case SetGridColumns:
		return msgAskGridColumns
	case AddAdmin:
		return msgAskAddAdmin
	case RemoveAdmin:
		return msgAskRemoveAdmin
	case Broadcast:
		return msgAskBroadcast
	case EditDescription:
		return msgAskDescription
	case EditImageURL:
		return msgAskImageURL
	case EditImageUpload:
		return msgAskImageUpload
	case EditRequestInfo:
		return msgAskRequestInfo
	case AskMore:
		return msgAskMore
	}
	return ""
}
