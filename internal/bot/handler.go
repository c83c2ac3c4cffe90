// Package bot wires the ledger service to Telegram. Every failure becomes a
// reply message; the bot never crashes over a bad input.
package bot

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"gastos/internal/core"
	"gastos/internal/services"
)

type Handler struct {
	api *tgbotapi.BotAPI
	svc *services.LedgerService

	// Chat that receives the monthly reminder. Seeded from config, updated
	// whenever someone sends /start in a private chat.
	reminderChat atomic.Int64
}

func NewHandler(api *tgbotapi.BotAPI, svc *services.LedgerService, reminderChatID int64) *Handler {
	h := &Handler{api: api, svc: svc}
	h.reminderChat.Store(reminderChatID)
	return h
}

// ReminderChat returns the chat registered for the monthly reminder, if any.
func (h *Handler) ReminderChat() (int64, bool) {
	id := h.reminderChat.Load()
	return id, id != 0
}

func (h *Handler) HandleUpdate(ctx context.Context, upd tgbotapi.Update) {
	if upd.Message == nil {
		return
	}
	msg := upd.Message
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return
	}

	pair := h.svc.Pair()
	switch msg.Command() {
	case "start":
		if msg.Chat.IsPrivate() {
			h.reminderChat.Store(msg.Chat.ID)
		}
		h.reply(msg.Chat.ID, "¡Hola! Soy tu bot de gastos compartidos. Mandame los gastos en el formato:\n"+core.FormatHint)
		return
	case "resumen":
		h.replyResult(ctx, msg.Chat.ID, func() (string, error) { return h.svc.Summary(ctx) })
		return
	case "gastos_" + pair.A:
		h.replyResult(ctx, msg.Chat.ID, func() (string, error) { return h.svc.PersonExpenses(ctx, pair.A) })
		return
	case "gastos_" + pair.B:
		h.replyResult(ctx, msg.Chat.ID, func() (string, error) { return h.svc.PersonExpenses(ctx, pair.B) })
		return
	case "cerrar_mes":
		h.replyResult(ctx, msg.Chat.ID, func() (string, error) { return h.svc.CloseMonth(ctx) })
		return
	}

	// Canned replies short-circuit before expense parsing.
	if reply, ok := CannedReply(text); ok {
		h.reply(msg.Chat.ID, reply)
		return
	}

	h.replyResult(ctx, msg.Chat.ID, func() (string, error) { return h.svc.RegisterExpense(ctx, text) })
}

// SendReminder delivers the previous-month summary to the registered chat.
// Used by the daily scheduler callback.
func (h *Handler) SendReminder(ctx context.Context, text string) error {
	chatID, ok := h.ReminderChat()
	if !ok {
		return fmt.Errorf("no reminder chat registered")
	}
	if _, err := h.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		return fmt.Errorf("send reminder: %w", err)
	}
	return nil
}

func (h *Handler) replyResult(ctx context.Context, chatID int64, op func() (string, error)) {
	text, err := op()
	if err != nil {
		slog.ErrorContext(ctx, "Operation failed", "chat_id", chatID, "error", err)
		text = err.Error()
	}
	h.reply(chatID, text)
}

func (h *Handler) reply(chatID int64, text string) {
	if _, err := h.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		slog.Error("Failed to send reply", "chat_id", chatID, "error", err)
	}
}
