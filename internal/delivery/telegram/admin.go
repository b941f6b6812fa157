package telegram

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"noorbot/internal/repository"
	"noorbot/internal/service"
)

const (
	// complaintsPerScreen bounds the list so a screen of capped previews
	// always fits in a single Telegram message.
	complaintsPerScreen   = 8
	complaintPreviewLimit = 400
)

// requireAdmin checks the caller's role. A non-admin gets a short notice,
// never an error trace.
func (h *Handler) requireAdmin(ctx context.Context, chatID, userID int64) bool {
	isAdmin, err := h.admin.IsAdmin(ctx, userID)
	if err != nil {
		h.logger.Error("admin check failed", zap.Int64("user_id", userID), zap.Error(err))
		return false
	}
	if !isAdmin {
		h.sendPlain(chatID, msgAdminOnly)
	}
	return isAdmin
}

func (h *Handler) cbAdminMenu(ctx context.Context, cb *tgbotapi.CallbackQuery, _ Action) error {
	h.showAdminMenu(ctx, cb.Message.Chat.ID, cb.From.ID, cb.Message.MessageID)
	return nil
}

func (h *Handler) showAdminMenu(ctx context.Context, chatID, userID int64, messageID int) {
	if !h.requireAdmin(ctx, chatID, userID) {
		return
	}

	kb := withHomeRow(
		tgbotapi.NewInlineKeyboardRow(
			btn(btnAdminStats, newAction(domainAdmin, adminStats)),
			btn(btnAdminBroadcast, newAction(domainBroadcast, broadcastStart)),
		),
		tgbotapi.NewInlineKeyboardRow(
			btn(btnAdminAdd, newAction(domainAdmin, adminAdd)),
			btn(btnAdminList, newAction(domainAdmin, adminList)),
		),
		tgbotapi.NewInlineKeyboardRow(
			btn(btnAdminComplaints, newAction(domainAdmin, adminComplaints)),
		),
	)

	if messageID != 0 {
		h.edit(chatID, messageID, msgAdminMenu, &kb)
		return
	}

	msg := tgbotapi.NewMessage(chatID, msgAdminMenu)
	msg.ReplyMarkup = kb
	h.send(msg)
}

func (h *Handler) cbAdminStats(ctx context.Context, cb *tgbotapi.CallbackQuery, _ Action) error {
	chatID := cb.Message.Chat.ID
	if !h.requireAdmin(ctx, chatID, cb.From.ID) {
		return nil
	}

	stats, err := h.admin.Stats(ctx)
	if err != nil {
		h.logger.Error("stats fetch failed", zap.Error(err))
		h.sendPlain(chatID, msgStatsFailed)
		return nil
	}

	text := fmt.Sprintf(
		"📊 إحصائيات البوت:\n\n👤 المستخدمون: %d\n⭐ المفضلة: %d\n📝 الشكاوى: %d",
		stats.TotalUsers, stats.TotalFavorites, stats.TotalComplaints,
	)

	kb := withHomeRow(
		tgbotapi.NewInlineKeyboardRow(
			btn(btnBack, newAction(domainAdmin, adminMenu)),
		),
	)
	h.edit(chatID, cb.Message.MessageID, text, &kb)
	return nil
}

func (h *Handler) cbAdminList(ctx context.Context, cb *tgbotapi.CallbackQuery, _ Action) error {
	chatID := cb.Message.Chat.ID
	if !h.requireAdmin(ctx, chatID, cb.From.ID) {
		return nil
	}

	admins, err := h.admin.ListAdmins(ctx)
	if err != nil {
		h.logger.Error("admin list failed", zap.Error(err))
		h.sendPlain(chatID, msgInternalError)
		return nil
	}

	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(admins)+1)
	for _, id := range admins {
		if h.admin.IsOwner(id) {
			rows = append(rows, tgbotapi.NewInlineKeyboardRow(
				btn(fmt.Sprintf("🧑‍💼 %d 👑", id), newAction(domainAdmin, adminMenu)),
			))
			continue
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			btn(fmt.Sprintf("🧑‍💼 %d ❌ إزالة", id), newAction(domainAdmin, adminRemove, strconv.FormatInt(id, 10))),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		btn(btnBack, newAction(domainAdmin, adminMenu)),
	))

	kb := withHomeRow(rows...)
	h.edit(chatID, cb.Message.MessageID, "👥 قائمة المشرفين:", &kb)
	return nil
}

// cbAdminAdd asks for the target user ID. Only the owner may add admins.
func (h *Handler) cbAdminAdd(ctx context.Context, cb *tgbotapi.CallbackQuery, _ Action) error {
	chatID := cb.Message.Chat.ID
	if !h.admin.IsOwner(cb.From.ID) {
		h.sendPlain(chatID, msgOwnerOnly)
		return nil
	}

	h.continuations.awaitText(chatID, func(ctx context.Context, msg *tgbotapi.Message) error {
		input := strings.TrimSpace(strings.TrimPrefix(msg.Text, "@"))
		targetID, err := strconv.ParseInt(input, 10, 64)
		if err != nil || targetID <= 0 {
			h.sendPlain(chatID, msgInvalidAdminID)
			return nil
		}

		err = h.admin.AddAdmin(ctx, msg.From.ID, targetID)
		switch {
		case errors.Is(err, service.ErrPermissionDenied):
			h.sendPlain(chatID, msgOwnerOnly)
		case errors.Is(err, repository.ErrNotFound):
			h.sendPlain(chatID, msgAdminAddFailed)
		case err != nil:
			return err
		default:
			h.sendPlain(chatID, msgAdminAdded)
		}
		return nil
	})

	h.sendPlain(chatID, msgAskAdminID)
	return nil
}

func (h *Handler) cbAdminRemove(ctx context.Context, cb *tgbotapi.CallbackQuery, action Action) error {
	chatID := cb.Message.Chat.ID

	if len(action.Args) != 1 {
		return ErrMalformedToken
	}
	targetID, err := strconv.ParseInt(action.Args[0], 10, 64)
	if err != nil {
		return ErrMalformedToken
	}

	if !h.admin.IsOwner(cb.From.ID) {
		h.sendPlain(chatID, msgOwnerOnly)
		return nil
	}
	if h.admin.IsOwner(targetID) {
		h.sendPlain(chatID, msgCannotRemoveSelf)
		return nil
	}

	if err := h.admin.RemoveAdmin(ctx, cb.From.ID, targetID); err != nil {
		h.logger.Error("remove admin failed", zap.Int64("target_id", targetID), zap.Error(err))
		h.sendPlain(chatID, msgAdminRemoveFail)
		return nil
	}

	h.sendPlain(chatID, msgAdminRemoved)
	h.showAdminMenu(ctx, chatID, cb.From.ID, cb.Message.MessageID)
	return nil
}

func (h *Handler) cbAdminComplaints(ctx context.Context, cb *tgbotapi.CallbackQuery, _ Action) error {
	chatID := cb.Message.Chat.ID
	if !h.requireAdmin(ctx, chatID, cb.From.ID) {
		return nil
	}

	complaints, err := h.complaints.ListOpen(ctx)
	if err != nil {
		h.logger.Error("list complaints failed", zap.Error(err))
		h.sendPlain(chatID, msgInternalError)
		return nil
	}

	if len(complaints) == 0 {
		kb := withHomeRow(tgbotapi.NewInlineKeyboardRow(
			btn(btnBack, newAction(domainAdmin, adminMenu)),
		))
		h.edit(chatID, cb.Message.MessageID, msgNoOpenComplaints, &kb)
		return nil
	}

	// The oldest complaints come first; the rest wait for the next visit
	// so every listed entry stays fully readable on one screen.
	shown := complaints
	if len(shown) > complaintsPerScreen {
		shown = shown[:complaintsPerScreen]
	}

	var sb strings.Builder
	sb.WriteString("📨 الشكاوى المفتوحة:\n")
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(shown)+1)
	for _, c := range shown {
		sb.WriteString(fmt.Sprintf("\n#%d من %d:\n%s\n", c.ID, c.UserID, ellipsize(c.Text, complaintPreviewLimit)))
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			btn(fmt.Sprintf("%s #%d", btnReply, c.ID), newAction(domainAdmin, adminReply, strconv.FormatInt(c.ID, 10))),
		))
	}
	if rest := len(complaints) - len(shown); rest > 0 {
		sb.WriteString(fmt.Sprintf("\n⏳ وهناك %d شكاوى أخرى بانتظار الرد.\n", rest))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		btn(btnBack, newAction(domainAdmin, adminMenu)),
	))

	kb := withHomeRow(rows...)
	h.edit(chatID, cb.Message.MessageID, sb.String(), &kb)
	return nil
}

// cbAdminReply asks for the reply text, then delivers it and closes the
// complaint.
func (h *Handler) cbAdminReply(ctx context.Context, cb *tgbotapi.CallbackQuery, action Action) error {
	chatID := cb.Message.Chat.ID
	if !h.requireAdmin(ctx, chatID, cb.From.ID) {
		return nil
	}

	if len(action.Args) != 1 {
		return ErrMalformedToken
	}
	complaintID, err := strconv.ParseInt(action.Args[0], 10, 64)
	if err != nil {
		return ErrMalformedToken
	}

	h.continuations.awaitText(chatID, func(ctx context.Context, msg *tgbotapi.Message) error {
		reply := strings.TrimSpace(msg.Text)
		if reply == "" {
			h.sendPlain(chatID, msgComplaintReplyFail)
			return nil
		}

		if err := h.complaints.Reply(ctx, complaintID, reply); err != nil {
			h.logger.Error("complaint reply failed",
				zap.Int64("complaint_id", complaintID),
				zap.Error(err),
			)
			h.sendPlain(chatID, msgComplaintReplyFail)
			return nil
		}

		h.sendPlain(chatID, msgComplaintReplySent)
		return nil
	})

	h.sendPlain(chatID, msgAskComplaintReply)
	return nil
}
