package telegram

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

func (h *Handler) cbComplaintNew(_ context.Context, cb *tgbotapi.CallbackQuery, _ Action) error {
	h.startComplaint(cb.Message.Chat.ID)
	return nil
}

// startComplaint waits for the complaint text in the next message.
func (h *Handler) startComplaint(chatID int64) {
	h.continuations.awaitText(chatID, func(ctx context.Context, msg *tgbotapi.Message) error {
		text := strings.TrimSpace(msg.Text)
		if text == "" {
			h.sendPlain(chatID, msgComplaintFailed)
			return nil
		}

		if _, err := h.complaints.Submit(ctx, msg.From.ID, text); err != nil {
			h.logger.Error("complaint submit failed",
				zap.Int64("user_id", msg.From.ID),
				zap.Error(err),
			)
			h.sendPlain(chatID, msgComplaintFailed)
			return nil
		}

		h.sendPlain(chatID, msgComplaintSaved)
		return nil
	})

	h.sendPlain(chatID, msgAskComplaint)
}
