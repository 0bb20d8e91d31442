package notify

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// TelegramSink forwards messages to a Telegram chat, used for the daily
// writing reminder when the terminal is not open.
type TelegramSink struct {
	api    *tgbotapi.BotAPI
	chatID int64
	logger *zap.Logger
}

// NewTelegramSink creates the sink, or (nil, nil) when no token is
// configured so callers can treat the feature as disabled.
func NewTelegramSink(token string, chatID int64, logger *zap.Logger) (*TelegramSink, error) {
	if token == "" || chatID == 0 {
		logger.Info("Telegram reminders are disabled (token or chat id is empty)")
		return nil, nil
	}

	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Telegram bot API: %w", err)
	}

	logger.Info("Telegram bot authorized", zap.String("username", api.Self.UserName))
	return &TelegramSink{api: api, chatID: chatID, logger: logger}, nil
}

func (s *TelegramSink) Notify(level Level, message string) {
	if s == nil {
		return
	}
	if _, err := s.api.Send(tgbotapi.NewMessage(s.chatID, message)); err != nil {
		s.logger.Error("Failed to send Telegram notification", zap.Error(err))
	}
}
