package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// BookingSummary данные бронирования для уведомления администратора
// Slots перечисляет каждый забронированный интервал отдельно:
// оплаченные слоты не обязаны идти подряд
type BookingSummary struct {
	UserName  string
	UserEmail string
	CourtName string
	Date      string   // YYYY-MM-DD
	Slots     []string // интервалы "HH:MM - HH:MM"
}

// Notifier отправляет уведомления администратору в Telegram
// Все отправки best-effort: ошибки логируются и не влияют на вызывающую операцию.
// Без токена или chat_id уведомления отключены (no-op)
type Notifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	log    Logger
}

// NewNotifier создает notifier; при пустом токене возвращает выключенный экземпляр
func NewNotifier(botToken string, chatID int64, log Logger) (*Notifier, error) {
	if botToken == "" || chatID == 0 {
		log.Info("Telegram notifications disabled (no bot token or chat id configured)")
		return &Notifier{chatID: chatID, log: log}, nil
	}

	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	log.Info("Telegram notifications enabled (bot=%s, chat=%d)", bot.Self.UserName, chatID)
	return &Notifier{bot: bot, chatID: chatID, log: log}, nil
}

// Enabled возвращает true, если notifier сконфигурирован
func (n *Notifier) Enabled() bool {
	return n.bot != nil
}

// NotifyNewBooking уведомляет администратора о новом бронировании
func (n *Notifier) NotifyNewBooking(summary BookingSummary) error {
	if !n.Enabled() {
		return nil
	}

	text := fmt.Sprintf(
		"📅 *Новое бронирование*\n\n"+
			"*Клиент:* %s (%s)\n"+
			"*Квадра:* %s\n"+
			"*Дата:* %s\n"+
			"*Время:* %s",
		summary.UserName, summary.UserEmail,
		summary.CourtName,
		summary.Date,
		strings.Join(summary.Slots, ", "),
	)

	return n.send(text)
}

// NotifySlotLost уведомляет администратора, что оплаченный слот не удалось
// забронировать (проигран конкурентному бронированию между initiate и approval).
// Требуется ручная сверка/возврат средств оператором
func (n *Notifier) NotifySlotLost(pendingID int64, courtName string, date string, slot string) error {
	if !n.Enabled() {
		return nil
	}

	text := fmt.Sprintf(
		"⚠️ *Оплаченный слот потерян*\n\n"+
			"Платеж #%d подтвержден, но слот %s (%s, %s) уже занят.\n"+
			"Требуется сверка и возврат средств.",
		pendingID, slot, courtName, date,
	)

	return n.send(text)
}

func (n *Notifier) send(text string) error {
	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := n.bot.Send(msg); err != nil {
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	return nil
}
