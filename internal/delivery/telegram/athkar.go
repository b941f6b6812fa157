package telegram

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"noorbot/internal/content"
	"noorbot/internal/domain/entities"
)

// Athkar collections are small and fetched whole, so navigation is by index
// only: page is fixed at 1.

func (h *Handler) sendAthkarMenu(chatID int64, messageID int) {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(content.AthkarCategories))
	for _, cat := range content.AthkarCategories {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			btn(cat.Title, newAction(domainAthkar, athkarCat, cat.Key)),
		))
	}

	kb := withHomeRow(rows...)

	if messageID != 0 {
		h.edit(chatID, messageID, msgAthkarMenu, &kb)
		return
	}

	msg := tgbotapi.NewMessage(chatID, msgAthkarMenu)
	msg.ReplyMarkup = kb
	h.send(msg)
}

func (h *Handler) cbAthkarMenu(_ context.Context, cb *tgbotapi.CallbackQuery, _ Action) error {
	h.sendAthkarMenu(cb.Message.Chat.ID, cb.Message.MessageID)
	return nil
}

func (h *Handler) cbAthkarCategory(ctx context.Context, cb *tgbotapi.CallbackQuery, action Action) error {
	if len(action.Args) != 1 || action.Args[0] == "" {
		return ErrMalformedToken
	}

	state := navState{
		Domain:     domainAthkar,
		Collection: action.Args[0],
		Page:       1,
	}

	return h.showThikr(ctx, cb.Message.Chat.ID, cb.Message.MessageID, state)
}

func (h *Handler) cbAthkarNav(ctx context.Context, cb *tgbotapi.CallbackQuery, action Action) error {
	state, err := decodeNavState(action)
	if err != nil {
		return err
	}

	return h.showThikr(ctx, cb.Message.Chat.ID, cb.Message.MessageID, state)
}

func (h *Handler) showThikr(ctx context.Context, chatID int64, messageID int, state navState) error {
	list, err := h.athkar.GetCategory(ctx, state.Collection)
	if err != nil {
		h.logger.Error("athkar fetch failed",
			zap.String("category", state.Collection),
			zap.Error(err),
		)
		h.sendPlain(chatID, msgAthkarLoadFailed)
		return nil
	}

	if len(list) == 0 {
		h.sendPlain(chatID, msgAthkarEmpty)
		return nil
	}

	if state.Index >= len(list) {
		state.Index = len(list) - 1
	}

	full := formatThikr(state.Collection, list[state.Index])
	chunk, hasMore, part := chunkAt(full, state.Part)
	state.Part = part

	prev, next := neighbors(state, len(list), len(list), 1)

	kb := withHomeRow(
		navRow(prev, next, athkarNav),
		moreRow(state, athkarNav, hasMore),
		tgbotapi.NewInlineKeyboardRow(
			btn(btnSaveFav, state.action(athkarFav)),
		),
		tgbotapi.NewInlineKeyboardRow(
			btn(btnBack, newAction(domainAthkar, athkarMenu)),
		),
	)

	if messageID != 0 {
		h.edit(chatID, messageID, chunk, &kb)
		return nil
	}

	msg := tgbotapi.NewMessage(chatID, chunk)
	msg.ReplyMarkup = kb
	h.send(msg)
	return nil
}

// formatThikr renders a remembrance; repetition count and reference are
// optional and omitted when the provider left them empty.
func formatThikr(category string, t entities.Thikr) string {
	var sb strings.Builder
	sb.WriteString(content.AthkarCategoryTitle(category))
	sb.WriteString("\n\n")
	sb.WriteString(strings.TrimSpace(t.Text))

	if t.Repeat != "" {
		sb.WriteString(fmt.Sprintf("\n\n📌 التكرار: %s", t.Repeat))
	}
	if t.Reference != "" {
		sb.WriteString(fmt.Sprintf("\n📖 المرجع: %s", t.Reference))
	}

	return sb.String()
}

func (h *Handler) cbAthkarFav(ctx context.Context, cb *tgbotapi.CallbackQuery, action Action) error {
	state, err := decodeNavState(action)
	if err != nil {
		return err
	}

	list, err := h.athkar.GetCategory(ctx, state.Collection)
	if err != nil || len(list) == 0 {
		h.sendPlain(cb.Message.Chat.ID, msgFavSaveFailed)
		return nil
	}

	if state.Index >= len(list) {
		state.Index = len(list) - 1
	}

	thikr := list[state.Index]
	if strings.TrimSpace(thikr.Text) == "" {
		h.sendPlain(cb.Message.Chat.ID, msgFavSaveFailed)
		return nil
	}

	if err := h.users.AddFavorite(ctx, cb.From.ID, entities.FavoriteAthkar, formatThikr(state.Collection, thikr)); err != nil {
		h.logger.Error("add favorite failed", zap.Int64("user_id", cb.From.ID), zap.Error(err))
		h.sendPlain(cb.Message.Chat.ID, msgFavSaveFailed)
		return nil
	}

	h.sendPlain(cb.Message.Chat.ID, msgFavSaved)
	return nil
}
