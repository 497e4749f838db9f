package handler

import (
	"sync"

	"storefront/internal/domain"
	"storefront/internal/service"
	"storefront/internal/session"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Services groups the services used by the handlers
type Services struct {
	Auth      *service.AuthService
	Settings  *service.SettingsService
	Menu      *service.MenuService
	Users     *service.UserService
	Orders    *service.OrderService
	Stats     *service.StatsService
	Messenger *service.MessengerService
}

// Handler manages all bot interactions
type Handler struct {
	bot      *tele.Bot
	svc      Services
	sessions *session.Engine
	logger   *zap.Logger

	// User states outside the menu (contact admin)
	states   map[int64]*domain.StateData
	stateMux sync.RWMutex
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	svc Services,
	sessions *session.Engine,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:      bot,
		svc:      svc,
		sessions: sessions,
		logger:   logger,
		states:   make(map[int64]*domain.StateData),
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/help", h.handleStart)
	h.bot.Handle("/admin", h.handleAdminPanel)
	h.bot.Handle("/panel", h.handleAdminPanel)

	// Free text and photos
	h.bot.Handle(tele.OnText, h.handleMessage)
	h.bot.Handle(tele.OnPhoto, h.handleMessage)

	// Inline buttons, one endpoint per namespace
	for _, ns := range []string{nsNav, nsAdmin, nsAdminEdit, nsContact, nsOrder, nsButton} {
		ns := ns
		h.bot.Handle(&tele.Btn{Unique: ns}, func(c tele.Context) error {
			return h.dispatch(c, ns, cleanCallbackData(c.Callback().Data))
		})
	}

	// Raw "<namespace>|<payload>" data
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// GetState returns user's current state
func (h *Handler) GetState(userID int64) *domain.StateData {
	h.stateMux.RLock()
	defer h.stateMux.RUnlock()

	state, exists := h.states[userID]
	if !exists {
		return &domain.StateData{State: domain.StateIdle}
	}
	return state
}

// SetState sets user's state
func (h *Handler) SetState(userID int64, state *domain.StateData) {
	h.stateMux.Lock()
	defer h.stateMux.Unlock()
	h.states[userID] = state
}

// ResetState resets user to idle state
func (h *Handler) ResetState(userID int64) {
	h.SetState(userID, &domain.StateData{State: domain.StateIdle})
}
