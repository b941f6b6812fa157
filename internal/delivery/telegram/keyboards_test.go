package telegram

import (
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hasHomeButton(kb tgbotapi.InlineKeyboardMarkup) bool {
	home := homeButton()
	for _, row := range kb.InlineKeyboard {
		for _, b := range row {
			if b.CallbackData != nil && *b.CallbackData == *home.CallbackData {
				return true
			}
		}
	}
	return false
}

func TestWithHomeRowAlwaysAppendsHome(t *testing.T) {
	empty := withHomeRow()
	assert.True(t, hasHomeButton(empty))

	withRows := withHomeRow(
		tgbotapi.NewInlineKeyboardRow(btn("x", newAction(domainQuran, quranRandom))),
	)
	assert.True(t, hasHomeButton(withRows))
}

func TestWithHomeRowSkipsEmptyRows(t *testing.T) {
	kb := withHomeRow(
		nil,
		tgbotapi.NewInlineKeyboardRow(btn("x", newAction(domainQuran, quranRandom))),
		nil,
	)

	require.Len(t, kb.InlineKeyboard, 2)
}

func TestNavRowOmitsMissingNeighbors(t *testing.T) {
	s := &navState{Domain: domainHadith, Collection: "bukhari", Page: 1, Index: 1}

	assert.Len(t, navRow(s, s, hadithNav), 2)
	assert.Len(t, navRow(nil, s, hadithNav), 1)
	assert.Len(t, navRow(s, nil, hadithNav), 1)
	assert.Empty(t, navRow(nil, nil, hadithNav))
}

func TestMoreRow(t *testing.T) {
	s := navState{Domain: domainAthkar, Collection: "sabah", Page: 1, Index: 0, Part: 1}

	row := moreRow(s, athkarNav, true)
	require.Len(t, row, 1)

	// The button targets the next chunk of the same item.
	decoded, err := decodeAction(*row[0].CallbackData)
	require.NoError(t, err)
	state, err := decodeNavState(decoded)
	require.NoError(t, err)
	assert.Equal(t, 2, state.Part)
	assert.Equal(t, s.Index, state.Index)

	assert.Nil(t, moreRow(s, athkarNav, false))
}

func TestMainMenuKeyboardAdminEntry(t *testing.T) {
	plain := mainMenuKeyboard(false)
	admin := mainMenuKeyboard(true)

	assert.Len(t, admin.InlineKeyboard, len(plain.InlineKeyboard)+1)
}

func TestCallbackDataWithinTelegramLimit(t *testing.T) {
	// Telegram rejects callback data over 64 bytes; the deepest state must
	// stay comfortably inside.
	s := navState{Domain: domainHadith, Collection: "abudawud", Page: 9999, Index: 24, Part: 12}
	assert.LessOrEqual(t, len(s.action(hadithNav).Encode()), 64)
}
