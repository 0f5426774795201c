package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/ihor-metko/RSP-sub004/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/wb-go/wbf/logger"
)

// TelegramNotifier шлёт события по броням в админский чат
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, chatID: chatID, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBookingPaid(ctx context.Context, b *domain.Booking) {
	text := fmt.Sprintf(
		"*Бронь оплачена*\n\n"+"Корт: %s\n"+"Время (UTC): %s — %s\n"+"Сумма: %s",
		b.CourtID,
		b.StartTime.Format("02.01.2006 15:04"),
		b.EndTime.Format("15:04"),
		decimal.New(b.PriceCents, -2).StringFixed(2),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyBookingCancelled(ctx context.Context, b *domain.Booking, reason string) {
	text := fmt.Sprintf(
		"*Бронь отменена*\n\n"+"Корт: %s\n"+"Время (UTC): %s — %s\n"+"Причина: %s",
		b.CourtID,
		b.StartTime.Format("02.01.2006 15:04"),
		b.EndTime.Format("15:04"),
		reason,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if n.chatID == 0 {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", n.chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}
