package telegram

import (
	"context"
	"fmt"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// broadcastDrafts keeps at most one pending broadcast text per chat while
// the admin is between composing and confirming. Starting a new draft
// replaces the old one.
type broadcastDrafts struct {
	mu     sync.Mutex
	byChat map[int64]string
}

func newBroadcastDrafts() *broadcastDrafts {
	return &broadcastDrafts{byChat: make(map[int64]string)}
}

func (d *broadcastDrafts) put(chatID int64, text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.byChat[chatID] = text
}

// take returns the pending draft and clears it.
func (d *broadcastDrafts) take(chatID int64) (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	text, ok := d.byChat[chatID]
	if ok {
		delete(d.byChat, chatID)
	}
	return text, ok
}

func (d *broadcastDrafts) drop(chatID int64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.byChat, chatID)
}

// cbBroadcastStart begins the compose step: the next text message from this
// chat becomes the draft, shown back with confirm and cancel buttons.
func (h *Handler) cbBroadcastStart(ctx context.Context, cb *tgbotapi.CallbackQuery, _ Action) error {
	chatID := cb.Message.Chat.ID
	if !h.requireAdmin(ctx, chatID, cb.From.ID) {
		return nil
	}

	h.continuations.awaitText(chatID, func(ctx context.Context, msg *tgbotapi.Message) error {
		text := strings.TrimSpace(msg.Text)
		if text == "" {
			h.sendPlain(chatID, msgBroadcastEmpty)
			return nil
		}

		h.drafts.put(chatID, text)

		preview := tgbotapi.NewMessage(chatID, "📋 معاينة الرسالة:\n\n"+text)
		preview.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				btn(btnConfirmSend, newAction(domainBroadcast, broadcastConfirm)),
				btn(btnCancel, newAction(domainBroadcast, broadcastCancel)),
			),
		)
		h.send(preview)
		return nil
	})

	h.sendPlain(chatID, msgAskBroadcast)
	return nil
}

// cbBroadcastConfirm hands the draft to the broadcast service. Delivery runs
// in the background so the update loop keeps serving other chats; the admin
// gets a completion report when the fan-out finishes.
func (h *Handler) cbBroadcastConfirm(ctx context.Context, cb *tgbotapi.CallbackQuery, _ Action) error {
	chatID := cb.Message.Chat.ID
	if !h.requireAdmin(ctx, chatID, cb.From.ID) {
		return nil
	}

	text, ok := h.drafts.take(chatID)
	if !ok {
		h.sendPlain(chatID, msgBroadcastNoPending)
		return nil
	}

	h.sendPlain(chatID, msgBroadcastSending)

	go func() {
		report, err := h.broadcast.Send(context.WithoutCancel(ctx), text)
		if err != nil {
			h.logger.Error("broadcast failed", zap.Error(err))
			h.sendPlain(chatID, msgInternalError)
			return
		}

		h.sendPlain(chatID, fmt.Sprintf(
			"✅ تم الإرسال إلى %d من أصل %d مستخدم (فشل: %d).",
			report.Sent, report.Total, report.Failed,
		))
	}()

	return nil
}

func (h *Handler) cbBroadcastCancel(ctx context.Context, cb *tgbotapi.CallbackQuery, _ Action) error {
	chatID := cb.Message.Chat.ID

	h.drafts.drop(chatID)
	h.continuations.cancel(chatID)
	h.sendPlain(chatID, msgBroadcastCanceled)
	h.showAdminMenu(ctx, chatID, cb.From.ID, cb.Message.MessageID)
	return nil
}
