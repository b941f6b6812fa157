package telegram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActionEncodeDecodeRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		action Action
	}{
		{
			name:   "no args",
			action: newAction(domainMenu, menuHome),
		},
		{
			name:   "single arg",
			action: newAction(domainHadith, hadithBook, "bukhari"),
		},
		{
			name:   "navigation args",
			action: newAction(domainQuran, quranNav, "surah", "2", "255", "1"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decoded, err := decodeAction(tt.action.Encode())
			require.NoError(t, err)
			assert.Equal(t, tt.action.Domain, decoded.Domain)
			assert.Equal(t, tt.action.Verb, decoded.Verb)
			assert.ElementsMatch(t, tt.action.Args, decoded.Args)
		})
	}
}

func TestDecodeActionMalformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "empty", data: ""},
		{name: "domain only", data: "quran"},
		{name: "empty domain", data: ":nav:1"},
		{name: "empty verb", data: "quran::1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeAction(tt.data)
			assert.ErrorIs(t, err, ErrMalformedToken)
		})
	}
}
