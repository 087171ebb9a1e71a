package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/mkhlv/HotelBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBookingCreated(ctx context.Context, user *domain.User, booking *domain.Booking) {
	text := fmt.Sprintf(
		"*Номер забронирован!*\n\n"+"Заезд: %s\n"+"Выезд: %s\n"+"Гостей: %d\n"+"К оплате: %s",
		booking.CheckIn.Format("02.01.2006"),
		booking.CheckOut.Format("02.01.2006"),
		booking.Guests,
		booking.TotalPrice.StringFixed(2),
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyBookingConfirmed(ctx context.Context, user *domain.User, booking *domain.Booking) {
	text := fmt.Sprintf(
		"*Бронирование подтверждено!*\n\n"+"Заезд: %s\n"+"Выезд: %s",
		booking.CheckIn.Format("02.01.2006"),
		booking.CheckOut.Format("02.01.2006"),
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyBookingCancelled(ctx context.Context, user *domain.User, booking *domain.Booking) {
	text := fmt.Sprintf(
		"*Бронирование отменено*\n\n"+"Заезд: %s\n"+"Выезд: %s",
		booking.CheckIn.Format("02.01.2006"),
		booking.CheckOut.Format("02.01.2006"),
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
