package service

import (
	"fmt"

	"buymyshop/internal/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// Notifier delivers out-of-band admin notifications. Submission and review
// never fail because a notification could not be sent.
type Notifier interface {
	NotifyNewPayment(p *models.WebsitePayment)
	NotifyDecision(p *models.WebsitePayment)
}

// TelegramNotifier posts review notifications to the admin chat.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	log    *zap.Logger
}

func NewTelegramNotifier(botToken string, chatID int64, log *zap.Logger) (*TelegramNotifier, error) {
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, err
	}
	return &TelegramNotifier{bot: bot, chatID: chatID, log: log}, nil
}

func (n *TelegramNotifier) NotifyNewPayment(p *models.WebsitePayment) {
	text := fmt.Sprintf(
		"New payment proof #%d\nUser: %s %s (@%s, id %d)\nMethod: %s, price %d\nProof: %s",
		p.ID, p.FirstName, p.LastName, p.TelegramUsername, p.UserID,
		p.PaymentMethod, p.CustomPrice, p.ProofImage,
	)
	n.send(text)
}

func (n *TelegramNotifier) NotifyDecision(p *models.WebsitePayment) {
	text := fmt.Sprintf("Payment #%d for user %d is now %s", p.ID, p.UserID, p.Status)
	if p.RejectReason != "" {
		text += "\nReason: " + p.RejectReason
	}
	n.send(text)
}

func (n *TelegramNotifier) send(text string) {
	if n.chatID == 0 {
		return
	}
	if _, err := n.bot.Send(tgbotapi.NewMessage(n.chatID, text)); err != nil {
		n.log.Warn("admin notification failed", zap.Error(err))
	}
}

// NopNotifier is used when no bot token is configured, and in tests.
type NopNotifier struct{}

func (NopNotifier) NotifyNewPayment(*models.WebsitePayment) {}
func (NopNotifier) NotifyDecision(*models.WebsitePayment)   {}
