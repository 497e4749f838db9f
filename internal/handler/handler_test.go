package handler

import (
	"context"
	"testing"

	"storefront/internal/domain"
	"storefront/internal/service"
	"storefront/internal/session"
	"storefront/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	tele "gopkg.in/telebot.v3"
)

const (
	testAdminID int64 = 1
	testUserID  int64 = 5
)

// fakeContext records what handlers send. Methods not overridden panic.
type fakeContext struct {
	tele.Context
	sender    *tele.User
	message   *tele.Message
	callback  *tele.Callback
	sent      []interface{}
	markups   []*tele.ReplyMarkup
	responses []*tele.CallbackResponse
}

func (c *fakeContext) Sender() *tele.User       { return c.sender }
func (c *fakeContext) Message() *tele.Message   { return c.message }
func (c *fakeContext) Callback() *tele.Callback { return c.callback }

func (c *fakeContext) Text() string {
	if c.message == nil {
		return ""
	}
	return c.message.Text
}

func (c *fakeContext) Send(what interface{}, opts ...interface{}) error {
	c.sent = append(c.sent, what)
	var markup *tele.ReplyMarkup
	for _, opt := range opts {
		if m, ok := opt.(*tele.ReplyMarkup); ok {
			markup = m
		}
	}
	c.markups = append(c.markups, markup)
	return nil
}

func (c *fakeContext) Reply(what interface{}, opts ...interface{}) error {
	return c.Send(what, opts...)
}

func (c *fakeContext) Edit(what interface{}, opts ...interface{}) error {
	return c.Send(what, opts...)
}

func (c *fakeContext) Respond(resp ...*tele.CallbackResponse) error {
	c.responses = append(c.responses, resp...)
	return nil
}

func (c *fakeContext) lastText() string {
	if len(c.sent) == 0 {
		return ""
	}
	text, _ := c.sent[len(c.sent)-1].(string)
	return text
}

func textFrom(userID int64, text string) *fakeContext {
	user := &tele.User{ID: userID, FirstName: "Test", LastName: "User"}
	return &fakeContext{
		sender:  user,
		message: &tele.Message{Sender: user, Text: text},
	}
}

func photoFrom(userID int64, fileID string) *fakeContext {
	c := textFrom(userID, "")
	c.message.Photo = &tele.Photo{File: tele.File{FileID: fileID}}
	return c
}

func pressFrom(userID int64) *fakeContext {
	user := &tele.User{ID: userID, FirstName: "Test"}
	msg := &tele.Message{ID: 10, Sender: user}
	return &fakeContext{
		sender:   user,
		message:  msg,
		callback: &tele.Callback{ID: "cb", Sender: user, Message: msg},
	}
}

type testEnv struct {
	handler  *Handler
	repos    *testutil.Repos
	notifier *testutil.MockNotifier
	svc      Services
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	repos := testutil.NewRepos(t)
	logger := testutil.NewTestLogger()
	notifier := new(testutil.MockNotifier)

	_, err := repos.Settings.Update(context.Background(), func(s *domain.Settings) error {
		s.AdminIDs = []int64{testAdminID}
		return nil
	})
	require.NoError(t, err)

	auth := service.NewAuthService(repos.Settings, repos.Admins)
	users := service.NewUserService(repos.Users, repos.Settings)
	svc := Services{
		Auth:      auth,
		Settings:  service.NewSettingsService(repos.Settings),
		Menu:      service.NewMenuService(repos.Menu),
		Users:     users,
		Orders:    service.NewOrderService(repos.Orders),
		Stats:     service.NewStatsService(repos.Users, repos.Orders, logger),
		Messenger: service.NewMessengerService(notifier, auth, users, logger),
	}
	engine := session.NewEngine(session.Services{
		Menu:      svc.Menu,
		Settings:  svc.Settings,
		Auth:      svc.Auth,
		Users:     svc.Users,
		Orders:    svc.Orders,
		Messenger: svc.Messenger,
	}, logger)

	return &testEnv{
		handler:  NewHandler(nil, svc, engine, logger),
		repos:    repos,
		notifier: notifier,
		svc:      svc,
	}
}

func TestHandleStart(t *testing.T) {
	env := newTestEnv(t)
	c := textFrom(testUserID, "/start")

	require.NoError(t, env.handler.handleStart(c))

	assert.Equal(t, msgWelcome, c.lastText())
	markup := c.markups[0]
	require.NotNil(t, markup)
	assert.Equal(t, "services", markup.InlineKeyboard[0][0].Data)

	u, err := env.svc.Users.Get(context.Background(), testUserID)
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "Test User", u.Name)
	assert.Equal(t, domain.CurrencyAuto, u.CurrencyPref)
}

func TestHandleStart_BotOff(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.svc.Settings.ToggleStatus(context.Background())
	require.NoError(t, err)

	user := textFrom(testUserID, "/start")
	require.NoError(t, env.handler.handleStart(user))
	assert.Equal(t, msgBotStopped, user.lastText())

	admin := textFrom(testAdminID, "/start")
	require.NoError(t, env.handler.handleStart(admin))
	assert.Equal(t, msgWelcome, admin.lastText())
}

func TestHandleMessage_BlocksFreeText(t *testing.T) {
	env := newTestEnv(t)
	c := textFrom(testUserID, "hello")

	require.NoError(t, env.handler.handleMessage(c))

	assert.Equal(t, msgUseButtons, c.lastText())
}

func TestHandleMessage_AwaitingAnswerCreatesOrder(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.notifier.On("SendText", mock.Anything, testAdminID, mock.Anything).Return(nil)

	press := pressFrom(testUserID)
	require.NoError(t, env.handler.dispatch(press, nsButton, "pubg"))
	assert.Equal(t, "أرسل ID اللعبة + الباقة المطلوبة", press.lastText())

	c := textFrom(testUserID, "id 5555 / 60 UC")
	require.NoError(t, env.handler.handleMessage(c))
	assert.Equal(t, msgOrderReceived, c.lastText())

	orders, err := env.repos.Orders.List(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "pubg", orders[0].ButtonID)
	assert.Equal(t, "id 5555 / 60 UC", orders[0].Info.Text)
	assert.Equal(t, domain.OrderPending, orders[0].Status)

	u, err := env.svc.Users.Get(ctx, testUserID)
	require.NoError(t, err)
	assert.Nil(t, u.Awaiting)
	env.notifier.AssertNumberOfCalls(t, "SendText", 1)

	again := textFrom(testUserID, "another")
	require.NoError(t, env.handler.handleMessage(again))
	assert.Equal(t, msgUseButtons, again.lastText())
}

func TestHandleMessage_PhotoAnswer(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.notifier.On("SendPhoto", mock.Anything, testAdminID, "photo-1", mock.Anything).Return(nil)

	require.NoError(t, env.handler.dispatch(pressFrom(testUserID), nsButton, "ff"))
	require.NoError(t, env.handler.handleMessage(photoFrom(testUserID, "photo-1")))

	orders, err := env.repos.Orders.List(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, domain.PhotoAnswer("photo-1"), orders[0].Info)
	env.notifier.AssertExpectations(t)
}

func TestHandleMessage_LinksGuard(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	require.NoError(t, env.handler.dispatch(pressFrom(testUserID), nsButton, "pubg"))

	c := textFrom(testUserID, "https://example.com/proof")
	require.NoError(t, env.handler.handleMessage(c))

	assert.Equal(t, msgLinksBlocked, c.lastText())
	u, err := env.svc.Users.Get(ctx, testUserID)
	require.NoError(t, err)
	assert.NotNil(t, u.Awaiting)
	orders, err := env.repos.Orders.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestHandleMessage_AdminSessionFirst(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.handler.sessions.Begin(testAdminID, session.DeleteButton{})

	c := textFrom(testAdminID, "contact")
	require.NoError(t, env.handler.handleMessage(c))

	assert.Equal(t, "✅ تم حذف contact", c.lastText())
	_, err := env.svc.Menu.Find(ctx, "contact")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestContactAdmin(t *testing.T) {
	env := newTestEnv(t)
	env.notifier.On("SendText", mock.Anything, testAdminID, "📩 رسالة من Test User (ID:5):\n\nneed help").Return(nil)

	press := pressFrom(testUserID)
	require.NoError(t, env.handler.dispatch(press, nsContact, "send"))
	assert.Equal(t, msgWriteToAdmin, press.lastText())
	assert.Equal(t, domain.StateWritingToAdmin, env.handler.GetState(testUserID).State)

	c := textFrom(testUserID, "need help")
	require.NoError(t, env.handler.handleMessage(c))

	assert.Equal(t, msgMessageSent, c.lastText())
	assert.Equal(t, domain.StateIdle, env.handler.GetState(testUserID).State)
	env.notifier.AssertExpectations(t)
}

func TestAdminCallback_RejectsNonAdmin(t *testing.T) {
	env := newTestEnv(t)
	c := pressFrom(testUserID)

	require.NoError(t, env.handler.dispatch(c, nsAdmin, "toggle"))

	require.Len(t, c.responses, 1)
	assert.Equal(t, msgAdminsOnly, c.responses[0].Text)
	settings, err := env.svc.Settings.Get(context.Background())
	require.NoError(t, err)
	assert.True(t, settings.Enabled())
}

func TestOrderReview(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.notifier.On("SendText", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	require.NoError(t, env.handler.dispatch(pressFrom(testUserID), nsButton, "pubg"))
	require.NoError(t, env.handler.handleMessage(textFrom(testUserID, "id 1")))
	orders, err := env.repos.Orders.List(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	orderID := orders[0].ID

	view := pressFrom(testAdminID)
	require.NoError(t, env.handler.dispatch(view, nsOrder, orderID+"|view"))
	assert.Contains(t, view.lastText(), orderID)

	approve := pressFrom(testAdminID)
	require.NoError(t, env.handler.dispatch(approve, nsOrder, orderID+"|approve"))
	assert.Equal(t, msgApproved, approve.lastText())
	env.notifier.AssertCalled(t, "SendText", mock.Anything, testUserID, "✅ تمت الموافقة على طلبك (OrderID:"+orderID+"). سيتم إتمامه قريبًا.")

	again := pressFrom(testAdminID)
	require.NoError(t, env.handler.dispatch(again, nsOrder, orderID+"|reject"))
	assert.Equal(t, msgOrderClosed, again.lastText())

	missing := pressFrom(testAdminID)
	require.NoError(t, env.handler.dispatch(missing, nsOrder, "nope|approve"))
	assert.Equal(t, msgOrderNotFound, missing.lastText())
}

func TestOrderAskMore(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.notifier.On("SendText", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	require.NoError(t, env.handler.dispatch(pressFrom(testUserID), nsButton, "pubg"))
	require.NoError(t, env.handler.handleMessage(textFrom(testUserID, "id 1")))
	orders, err := env.repos.Orders.List(ctx)
	require.NoError(t, err)
	orderID := orders[0].ID

	press := pressFrom(testAdminID)
	require.NoError(t, env.handler.dispatch(press, nsOrder, orderID+"|askmore"))
	assert.Equal(t, "✏️ أرسل نص السؤال/الطلب الإضافي للمستخدم:", press.lastText())

	reply := textFrom(testAdminID, "which server?")
	require.NoError(t, env.handler.handleMessage(reply))
	assert.Equal(t, "تم إرسال الطلب الإضافي للمستخدم.", reply.lastText())

	order, err := env.svc.Orders.Get(ctx, orderID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderNeedsMore, order.Status)

	require.NoError(t, env.handler.handleMessage(textFrom(testUserID, "EU")))
	orders, err = env.repos.Orders.List(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "EU", orders[1].Info.Text)
}

func TestToggleCurrency(t *testing.T) {
	env := newTestEnv(t)
	c := pressFrom(testUserID)

	require.NoError(t, env.handler.dispatch(c, nsNav, navToggleCurrency))

	require.Len(t, c.responses, 1)
	assert.Equal(t, "تم تغيير العرض إلى: USD", c.responses[0].Text)
	assert.Equal(t, msgWelcome, c.lastText())
}

func TestAdminStats(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.svc.Users.EnsureUser(context.Background(), testUserID, "u")
	require.NoError(t, err)
	c := pressFrom(testAdminID)

	require.NoError(t, env.handler.dispatch(c, nsAdmin, "stats"))

	assert.Contains(t, c.lastText(), "👥 المستخدمين: 1")
	assert.Contains(t, c.lastText(), msgStatsNone)
}
