package telegram

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"noorbot/internal/content"
	"noorbot/internal/domain/entities"
)

// Quran navigation uses the surah number as the "page" and the 1-based ayah
// number as the "index". An encoded index of 0 means "last ayah", used when
// a previous-button crosses into the preceding surah whose length is not
// known until fetched.

func (h *Handler) sendQuranMenu(chatID int64, messageID int) {
	kb := withHomeRow(
		tgbotapi.NewInlineKeyboardRow(
			btn(btnBrowseQuran, newAction(domainQuran, quranBrowse)),
			btn(btnRandomAyah, newAction(domainQuran, quranRandom)),
		),
		tgbotapi.NewInlineKeyboardRow(
			btn(btnChooseReciter, newAction(domainSettings, settingsReciters)),
		),
	)

	if messageID != 0 {
		h.edit(chatID, messageID, msgQuranMenu, &kb)
		return
	}

	msg := tgbotapi.NewMessage(chatID, msgQuranMenu)
	msg.ReplyMarkup = kb
	h.send(msg)
}

func (h *Handler) cbQuranMenu(_ context.Context, cb *tgbotapi.CallbackQuery, _ Action) error {
	h.sendQuranMenu(cb.Message.Chat.ID, cb.Message.MessageID)
	return nil
}

// cbQuranBrowse asks for a surah number and waits for the reply.
func (h *Handler) cbQuranBrowse(_ context.Context, cb *tgbotapi.CallbackQuery, _ Action) error {
	chatID := cb.Message.Chat.ID

	h.continuations.awaitText(chatID, func(ctx context.Context, msg *tgbotapi.Message) error {
		n, err := strconv.Atoi(strings.TrimSpace(msg.Text))
		if err != nil || n < 1 || n > 114 {
			h.sendPlain(chatID, msgInvalidSurahNumber)
			return nil
		}

		h.showAyah(ctx, chatID, msg.From.ID, 0, n, 1, 0)
		return nil
	})

	h.sendPlain(chatID, msgAskSurahNumber)
	return nil
}

func (h *Handler) cbQuranRandom(ctx context.Context, cb *tgbotapi.CallbackQuery, _ Action) error {
	surahNum := rand.Intn(content.SurahCount) + 1

	surah, err := h.getSurah(ctx, cb.From.ID, surahNum)
	if err != nil {
		h.logger.Error("random ayah fetch failed", zap.Error(err))
		h.sendPlain(cb.Message.Chat.ID, msgQuranLoadFailed)
		return nil
	}

	ayah := surah.Ayahs[rand.Intn(len(surah.Ayahs))].NumberInSurah
	h.showAyah(ctx, cb.Message.Chat.ID, cb.From.ID, cb.Message.MessageID, surahNum, ayah, 0)
	return nil
}

func (h *Handler) cbQuranNav(ctx context.Context, cb *tgbotapi.CallbackQuery, action Action) error {
	state, err := decodeNavState(action)
	if err != nil {
		return err
	}

	h.showAyah(ctx, cb.Message.Chat.ID, cb.From.ID, cb.Message.MessageID, state.Page, state.Index, state.Part)
	return nil
}

// showAyah renders one verse with navigation. ayahNum 0 resolves to the last
// ayah of the surah (backward wrap across a surah boundary).
func (h *Handler) showAyah(ctx context.Context, chatID, userID int64, messageID, surahNum, ayahNum, part int) {
	surah, err := h.getSurah(ctx, userID, surahNum)
	if err != nil {
		h.logger.Error("surah fetch failed",
			zap.Int("surah", surahNum),
			zap.Error(err),
		)
		h.sendPlain(chatID, msgQuranLoadFailed)
		return
	}

	if ayahNum == 0 || ayahNum > len(surah.Ayahs) {
		ayahNum = len(surah.Ayahs)
	}
	ayah := surah.Ayahs[ayahNum-1]

	full := fmt.Sprintf("📖 %s (%s)\nالآية %d من %d\n\n%s",
		surah.Name, surah.EnglishName, ayahNum, surah.NumberOfAyahs, ayah.Text)
	chunk, hasMore, part := chunkAt(full, part)

	state := navState{
		Domain:     domainQuran,
		Collection: "surah",
		Page:       surahNum,
		Index:      ayahNum,
		Part:       part,
	}

	var prev, next *navState
	switch {
	case ayahNum > 1:
		p := state
		p.Index--
		p.Part = 0
		prev = &p
	case surahNum > 1:
		p := state
		p.Page--
		p.Index = 0 // resolved to the last ayah after fetch
		p.Part = 0
		prev = &p
	}
	switch {
	case ayahNum < len(surah.Ayahs):
		n := state
		n.Index++
		n.Part = 0
		next = &n
	case surahNum < content.SurahCount:
		n := state
		n.Page++
		n.Index = 1
		n.Part = 0
		next = &n
	}

	actionRow := tgbotapi.NewInlineKeyboardRow(
		btn(btnSaveFav, state.action(quranFav)),
	)
	if ayah.Audio != "" {
		actionRow = append(actionRow, btn(btnListen, state.action(quranListen)))
	}

	kb := withHomeRow(
		navRow(prev, next, quranNav),
		moreRow(state, quranNav, hasMore),
		actionRow,
		tgbotapi.NewInlineKeyboardRow(
			btn(btnRandomAyah, newAction(domainQuran, quranRandom)),
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

func (h *Handler) cbQuranListen(ctx context.Context, cb *tgbotapi.CallbackQuery, action Action) error {
	state, err := decodeNavState(action)
	if err != nil {
		return err
	}

	surah, err := h.getSurah(ctx, cb.From.ID, state.Page)
	if err != nil || state.Index < 1 || state.Index > len(surah.Ayahs) {
		h.sendPlain(cb.Message.Chat.ID, msgNoAudio)
		return nil
	}

	ayah := surah.Ayahs[state.Index-1]
	if ayah.Audio == "" {
		h.sendPlain(cb.Message.Chat.ID, msgNoAudio)
		return nil
	}

	audio := tgbotapi.NewAudio(cb.Message.Chat.ID, tgbotapi.FileURL(ayah.Audio))
	audio.Caption = fmt.Sprintf("%s — الآية %d", surah.Name, state.Index)
	h.send(audio)
	return nil
}

// cbQuranFav saves the verse text to the user's favorites. Saving never
// alters the navigation state of the rendered message.
func (h *Handler) cbQuranFav(ctx context.Context, cb *tgbotapi.CallbackQuery, action Action) error {
	state, err := decodeNavState(action)
	if err != nil {
		return err
	}

	surah, err := h.getSurah(ctx, cb.From.ID, state.Page)
	if err != nil || state.Index < 1 || state.Index > len(surah.Ayahs) {
		h.sendPlain(cb.Message.Chat.ID, msgFavSaveFailed)
		return nil
	}

	favContent := fmt.Sprintf("📖 %s - الآية %d\n\n%s",
		surah.Name, state.Index, surah.Ayahs[state.Index-1].Text)

	if err := h.users.AddFavorite(ctx, cb.From.ID, entities.FavoriteQuranVerse, favContent); err != nil {
		h.logger.Error("add favorite failed", zap.Int64("user_id", cb.From.ID), zap.Error(err))
		h.sendPlain(cb.Message.Chat.ID, msgFavSaveFailed)
		return nil
	}

	h.sendPlain(cb.Message.Chat.ID, msgFavSaved)
	return nil
}

// getSurah fetches a surah using the user's preferred reciter edition.
func (h *Handler) getSurah(ctx context.Context, userID int64, number int) (*entities.Surah, error) {
	reciter := ""
	if profile, err := h.users.GetProfile(ctx, userID); err == nil {
		reciter = profile.Reciter
	}

	return h.quran.GetSurah(ctx, number, reciter)
}
