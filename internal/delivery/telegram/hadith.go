package telegram

import (
	"context"
	"fmt"
	"math/rand"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"noorbot/internal/content"
	"noorbot/internal/domain/entities"
)

func (h *Handler) sendHadithMenu(chatID int64, messageID int) {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(content.HadithBooks))
	for _, book := range content.HadithBooks {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			btn(book.Title, newAction(domainHadith, hadithBook, book.Key)),
		))
	}

	kb := withHomeRow(rows...)

	if messageID != 0 {
		h.edit(chatID, messageID, msgHadithMenu, &kb)
		return
	}

	msg := tgbotapi.NewMessage(chatID, msgHadithMenu)
	msg.ReplyMarkup = kb
	h.send(msg)
}

func (h *Handler) cbHadithMenu(_ context.Context, cb *tgbotapi.CallbackQuery, _ Action) error {
	h.sendHadithMenu(cb.Message.Chat.ID, cb.Message.MessageID)
	return nil
}

// cbHadithBook opens a book at a random hadith from the first page.
func (h *Handler) cbHadithBook(ctx context.Context, cb *tgbotapi.CallbackQuery, action Action) error {
	if len(action.Args) != 1 || action.Args[0] == "" {
		return ErrMalformedToken
	}
	book := action.Args[0]

	page, err := h.hadith.GetPage(ctx, book, 1)
	if err != nil {
		h.logger.Error("hadith page fetch failed",
			zap.String("book", book),
			zap.Error(err),
		)
		h.sendPlain(cb.Message.Chat.ID, msgHadithLoadFailed)
		return nil
	}

	if len(page.Hadiths) == 0 {
		h.sendPlain(cb.Message.Chat.ID, msgHadithEmptyBook)
		return nil
	}

	state := navState{
		Domain:     domainHadith,
		Collection: book,
		Page:       1,
		Index:      rand.Intn(len(page.Hadiths)),
	}

	h.showHadith(cb.Message.Chat.ID, cb.Message.MessageID, page, state)
	return nil
}

func (h *Handler) cbHadithNav(ctx context.Context, cb *tgbotapi.CallbackQuery, action Action) error {
	state, err := decodeNavState(action)
	if err != nil {
		return err
	}
	if state.Page < 1 {
		return ErrMalformedToken
	}

	page, err := h.hadith.GetPage(ctx, state.Collection, state.Page)
	if err != nil {
		h.logger.Error("hadith page fetch failed",
			zap.String("book", state.Collection),
			zap.Int("page", state.Page),
			zap.Error(err),
		)
		h.sendPlain(cb.Message.Chat.ID, msgHadithLoadFailed)
		return nil
	}

	if len(page.Hadiths) == 0 {
		h.sendPlain(cb.Message.Chat.ID, msgHadithEmptyBook)
		return nil
	}

	h.showHadith(cb.Message.Chat.ID, cb.Message.MessageID, page, state)
	return nil
}

// showHadith renders one hadith with navigation. The encoded index is
// clamped against the fetched page: a backward wrap targets pageSize-1,
// which the final provider page may not have.
func (h *Handler) showHadith(chatID int64, messageID int, page *entities.HadithPage, state navState) {
	if state.Index >= len(page.Hadiths) {
		state.Index = len(page.Hadiths) - 1
	}
	hadith := page.Hadiths[state.Index]

	full := fmt.Sprintf("%s\n\n🆔 الحديث رقم %s\n\n%s",
		content.HadithBookTitle(page.Book), hadith.Number, hadith.Arabic)
	chunk, hasMore, part := chunkAt(full, state.Part)
	state.Part = part

	prev, next := neighbors(state, len(page.Hadiths), content.HadithPageSize, page.TotalPages)

	kb := withHomeRow(
		navRow(prev, next, hadithNav),
		moreRow(state, hadithNav, hasMore),
		tgbotapi.NewInlineKeyboardRow(
			btn(btnSaveFav, state.action(hadithFav)),
		),
		tgbotapi.NewInlineKeyboardRow(
			btn(btnBack, newAction(domainHadith, hadithMenu)),
		),
	)

	if messageID != 0 {
		h.edit(chatID, messageID, chunk, &kb)
		return
	}

	msg := tgbotapi.NewMessage(chatID, chunk)
	msg.ReplyMarkup = kb
	h.send(msg)
}

func (h *Handler) cbHadithFav(ctx context.Context, cb *tgbotapi.CallbackQuery, action Action) error {
	state, err := decodeNavState(action)
	if err != nil {
		return err
	}

	page, err := h.hadith.GetPage(ctx, state.Collection, state.Page)
	if err != nil || len(page.Hadiths) == 0 {
		h.sendPlain(cb.Message.Chat.ID, msgFavSaveFailed)
		return nil
	}

	if state.Index >= len(page.Hadiths) {
		state.Index = len(page.Hadiths) - 1
	}
	hadith := page.Hadiths[state.Index]

	favContent := fmt.Sprintf("%s - رقم %s\n\n%s",
		content.HadithBookTitle(state.Collection), hadith.Number, hadith.Arabic)

	if err := h.users.AddFavorite(ctx, cb.From.ID, entities.FavoriteHadith, favContent); err != nil {
		h.logger.Error("add favorite failed", zap.Int64("user_id", cb.From.ID), zap.Error(err))
		h.sendPlain(cb.Message.Chat.ID, msgFavSaveFailed)
		return nil
	}

	h.sendPlain(cb.Message.Chat.ID, msgFavSaved)
	return nil
}
