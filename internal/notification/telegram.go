package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"

	"github.com/Daemon403/housing-platform/internal/domain"
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

func (n *TelegramNotifier) NotifyBookingRequested(ctx context.Context, owner *domain.User, listing *domain.Listing, booking *domain.Booking) {
	text := fmt.Sprintf(
		"*New booking request*\n\nListing: %s\nDates: %s to %s",
		listing.Title, booking.StartDate.Format(domain.DateFormat), booking.EndDate.Format(domain.DateFormat),
	)
	n.send(ctx, owner.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyBookingApproved(ctx context.Context, renter *domain.User, listing *domain.Listing, booking *domain.Booking) {
	text := fmt.Sprintf(
		"*Booking approved!*\n\nListing: %s\nDates: %s to %s",
		listing.Title, booking.StartDate.Format(domain.DateFormat), booking.EndDate.Format(domain.DateFormat),
	)
	n.send(ctx, renter.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyBookingRejected(ctx context.Context, renter *domain.User, listing *domain.Listing, booking *domain.Booking) {
	text := fmt.Sprintf(
		"*Booking rejected*\n\nListing: %s\nDates: %s to %s",
		listing.Title, booking.StartDate.Format(domain.DateFormat), booking.EndDate.Format(domain.DateFormat),
	)
	n.send(ctx, renter.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyBookingCancelled(ctx context.Context, user *domain.User, listing *domain.Listing, booking *domain.Booking) {
	text := fmt.Sprintf(
		"*Booking cancelled*\n\nListing: %s\nDates: %s to %s",
		listing.Title, booking.StartDate.Format(domain.DateFormat), booking.EndDate.Format(domain.DateFormat),
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyMaintenanceUpdated(ctx context.Context, renter *domain.User, listing *domain.Listing, req *domain.MaintenanceRequest) {
	text := fmt.Sprintf(
		"*Maintenance request update*\n\nListing: %s\nStatus: %s",
		listing.Title, req.Status,
	)
	n.send(ctx, renter.TelegramChatID, text)
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
