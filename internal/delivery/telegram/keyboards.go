package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func btn(label string, a Action) tgbotapi.InlineKeyboardButton {
	return tgbotapi.NewInlineKeyboardButtonData(label, a.Encode())
}

func homeButton() tgbotapi.InlineKeyboardButton {
	return btn(btnHome, newAction(domainMenu, menuHome))
}

// withHomeRow appends the "return home" row to the given rows. Every menu
// goes through this, so no screen is a navigation dead-end.
func withHomeRow(rows ...[]tgbotapi.InlineKeyboardButton) tgbotapi.InlineKeyboardMarkup {
	out := make([][]tgbotapi.InlineKeyboardButton, 0, len(rows)+1)
	for _, row := range rows {
		if len(row) > 0 {
			out = append(out, row)
		}
	}
	out = append(out, tgbotapi.NewInlineKeyboardRow(homeButton()))

	return tgbotapi.InlineKeyboardMarkup{InlineKeyboard: out}
}

// navRow builds the previous/next row for a content view. Buttons appear
// only for directions where a neighbor exists.
func navRow(prev, next *navState, verb string) []tgbotapi.InlineKeyboardButton {
	var row []tgbotapi.InlineKeyboardButton
	if prev != nil {
		row = append(row, btn(btnPrev, prev.action(verb)))
	}
	if next != nil {
		row = append(row, btn(btnNext, next.action(verb)))
	}

	return row
}

// moreRow builds the "continue reading" row when a further chunk exists.
func moreRow(s navState, verb string, hasMore bool) []tgbotapi.InlineKeyboardButton {
	if !hasMore {
		return nil
	}

	return tgbotapi.NewInlineKeyboardRow(btn(btnMore, s.withPart(s.Part+1).action(verb)))
}

// mainMenuKeyboard builds the top-level menu. The admin entry is shown only
// to admins.
func mainMenuKeyboard(isAdmin bool) tgbotapi.InlineKeyboardMarkup {
	rows := [][]tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardRow(
			btn(btnMenuPrayer, newAction(domainMenu, menuPrayer)),
			btn(btnMenuQuran, newAction(domainMenu, menuQuran)),
		),
		tgbotapi.NewInlineKeyboardRow(
			btn(btnMenuAthkar, newAction(domainMenu, menuAthkar)),
			btn(btnMenuHadith, newAction(domainMenu, menuHadith)),
		),
		tgbotapi.NewInlineKeyboardRow(
			btn(btnMenuFav, newAction(domainMenu, menuFav)),
			btn(btnMenuComplain, newAction(domainMenu, menuComplain)),
		),
		tgbotapi.NewInlineKeyboardRow(
			btn(btnMenuSettings, newAction(domainMenu, menuSettings)),
		),
	}

	if isAdmin {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			btn(btnMenuAdmin, newAction(domainMenu, menuAdmin)),
		))
	}

	return tgbotapi.InlineKeyboardMarkup{InlineKeyboard: rows}
}
