package telegram

import (
	"context"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noopCallback(context.Context, *tgbotapi.CallbackQuery, Action) error { return nil }

func TestRouterRejectsDuplicateRoute(t *testing.T) {
	r := newRouter()

	require.NoError(t, r.register(domainQuran, quranNav, noopCallback))

	err := r.register(domainQuran, quranNav, noopCallback)
	require.Error(t, err)

	var dup *DuplicateRouteError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, domainQuran, dup.Domain)
	assert.Equal(t, quranNav, dup.Verb)
}

func TestRouterSameVerbDifferentDomains(t *testing.T) {
	r := newRouter()

	require.NoError(t, r.register(domainQuran, "nav", noopCallback))
	require.NoError(t, r.register(domainHadith, "nav", noopCallback))
}

func TestRouterRoute(t *testing.T) {
	r := newRouter()
	require.NoError(t, r.register(domainAthkar, athkarCat, noopCallback))

	_, ok := r.route(newAction(domainAthkar, athkarCat))
	assert.True(t, ok)

	_, ok = r.route(newAction(domainAthkar, "unknown"))
	assert.False(t, ok)
}

func TestNewHandlerRegistersAllRoutesOnce(t *testing.T) {
	h := &Handler{router: newRouter()}

	require.NoError(t, h.registerRoutes())

	_, ok := h.router.route(newAction(domainMenu, menuHome))
	assert.True(t, ok)
	_, ok = h.router.route(newAction(domainBroadcast, broadcastConfirm))
	assert.True(t, ok)
}
