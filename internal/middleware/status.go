package middleware

import (
	"context"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const msgBotStopped = "🚫 البوت متوقف حالياً."

// StatusChecker reports whether a user is served in the current bot status
type StatusChecker interface {
	Serves(ctx context.Context, userID int64) (bool, error)
}

// BotStatusMiddleware stops non-admins while BOT_STATUS is off.
// /start and /help pass through so new users are still recorded.
func BotStatusMiddleware(checker StatusChecker, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			if c.Sender() == nil {
				return next(c)
			}
			if c.Callback() == nil {
				switch c.Text() {
				case "/start", "/help":
					return next(c)
				}
			}

			served, err := checker.Serves(context.Background(), c.Sender().ID)
			if err != nil {
				logger.Error("Failed to check bot status in middleware", zap.Error(err))
				return next(c)
			}
			if served {
				return next(c)
			}

			if c.Callback() != nil {
				return c.Respond(&tele.CallbackResponse{Text: msgBotStopped})
			}
			return c.Send(msgBotStopped)
		}
	}
}
