package telegram

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"noorbot/internal/domain/entities"
)

const (
	favoritesPerPage = 5

	// favoritePreviewLimit bounds one entry's preview so a full page of
	// entries always fits a single message.
	favoritePreviewLimit = 700
)

func (h *Handler) cbFavoritesFirstPage(ctx context.Context, cb *tgbotapi.CallbackQuery, _ Action) error {
	h.showFavorites(ctx, cb.Message.Chat.ID, cb.From.ID, 1, cb.Message.MessageID)
	return nil
}

func (h *Handler) cbFavoritesList(ctx context.Context, cb *tgbotapi.CallbackQuery, action Action) error {
	if len(action.Args) != 1 {
		return ErrMalformedToken
	}
	page, err := parseNonNegative(action.Args[0])
	if err != nil || page < 1 {
		return ErrMalformedToken
	}

	h.showFavorites(ctx, cb.Message.Chat.ID, cb.From.ID, page, cb.Message.MessageID)
	return nil
}

// showFavorites renders one page of the user's saved entries. Pages are
// 1-based and hold favoritesPerPage entries each.
func (h *Handler) showFavorites(ctx context.Context, chatID, userID int64, page, messageID int) {
	favorites, err := h.users.ListFavorites(ctx, userID)
	if err != nil {
		h.logger.Error("list favorites failed", zap.Int64("user_id", userID), zap.Error(err))
		h.sendPlain(chatID, msgFavLoadFailed)
		return
	}

	if len(favorites) == 0 {
		kb := withHomeRow()
		if messageID != 0 {
			h.edit(chatID, messageID, msgFavEmpty, &kb)
		} else {
			msg := tgbotapi.NewMessage(chatID, msgFavEmpty)
			msg.ReplyMarkup = kb
			h.send(msg)
		}
		return
	}

	totalPages := (len(favorites) + favoritesPerPage - 1) / favoritesPerPage
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * favoritesPerPage
	end := start + favoritesPerPage
	if end > len(favorites) {
		end = len(favorites)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("⭐ المفضلة (%d/%d)\n", page, totalPages))
	for i, fav := range favorites[start:end] {
		preview := ellipsize(fav.Content, favoritePreviewLimit)
		sb.WriteString(fmt.Sprintf("\n%d. %s %s\n", start+i+1, favoriteIcon(fav.Type), preview))
	}

	text := sb.String()

	var row []tgbotapi.InlineKeyboardButton
	if page > 1 {
		row = append(row, btn(btnPrev, newAction(domainFav, favList, strconv.Itoa(page-1))))
	}
	if page < totalPages {
		row = append(row, btn(btnNext, newAction(domainFav, favList, strconv.Itoa(page+1))))
	}

	kb := withHomeRow(row)

	if messageID != 0 {
		h.edit(chatID, messageID, text, &kb)
		return
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = kb
	h.send(msg)
}

func favoriteIcon(t entities.FavoriteType) string {
	switch t {
	case entities.FavoriteQuranVerse:
		return "📖"
	case entities.FavoriteHadith:
		return "📜"
	case entities.FavoriteAthkar:
		return "📿"
	default:
		return "⭐"
	}
}
