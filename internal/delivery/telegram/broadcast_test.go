package telegram

import (
	"context"
	"sync"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"noorbot/internal/service"
)

type fakeAdminService struct {
	admins map[int64]bool
	owner  int64
}

func (f *fakeAdminService) IsOwner(userID int64) bool { return userID == f.owner }

func (f *fakeAdminService) IsAdmin(_ context.Context, userID int64) (bool, error) {
	return userID == f.owner || f.admins[userID], nil
}

func (f *fakeAdminService) AddAdmin(context.Context, int64, int64) error    { return nil }
func (f *fakeAdminService) RemoveAdmin(context.Context, int64, int64) error { return nil }
func (f *fakeAdminService) ListAdmins(context.Context) ([]int64, error)     { return nil, nil }
func (f *fakeAdminService) Stats(context.Context) (*service.BotStats, error) {
	return &service.BotStats{}, nil
}

type fakeBroadcastService struct {
	mu     sync.Mutex
	texts  []string
	report *service.BroadcastReport
	err    error
	done   chan struct{}
}

func (f *fakeBroadcastService) Send(_ context.Context, text string) (*service.BroadcastReport, error) {
	f.mu.Lock()
	f.texts = append(f.texts, text)
	f.mu.Unlock()
	defer close(f.done)

	if f.err != nil {
		return nil, f.err
	}
	return f.report, nil
}

func textMessage(chatID, userID int64, text string) *tgbotapi.Message {
	return &tgbotapi.Message{
		Text: text,
		From: &tgbotapi.User{ID: userID},
		Chat: &tgbotapi.Chat{ID: chatID},
	}
}

func TestBroadcastComposeConfirmFlow(t *testing.T) {
	bot := &fakeBot{}
	h := newTestHandler(t, bot)
	h.admin = &fakeAdminService{owner: 10}
	svc := &fakeBroadcastService{
		report: &service.BroadcastReport{Total: 4, Sent: 3, Failed: 1},
		done:   make(chan struct{}),
	}
	h.broadcast = svc

	// Start: the bot asks for the message text.
	h.handleCallback(context.Background(), callback(newAction(domainBroadcast, broadcastStart).Encode()))
	assert.Contains(t, bot.sentTexts(), msgAskBroadcast)

	// Compose: the next message becomes the draft and a preview appears.
	fn, ok := h.continuations.consume(42)
	require.True(t, ok)
	require.NoError(t, fn(context.Background(), textMessage(42, 10, "إعلان مهم")))

	draft, ok := h.drafts.take(42)
	require.True(t, ok)
	assert.Equal(t, "إعلان مهم", draft)
	h.drafts.put(42, draft)

	// Confirm: delivery runs in the background and reports counts.
	h.handleCallback(context.Background(), callback(newAction(domainBroadcast, broadcastConfirm).Encode()))

	select {
	case <-svc.done:
	case <-time.After(time.Second):
		t.Fatal("broadcast send did not run")
	}

	assert.Equal(t, []string{"إعلان مهم"}, svc.texts)

	// The draft is consumed: a second confirm finds nothing pending.
	h.handleCallback(context.Background(), callback(newAction(domainBroadcast, broadcastConfirm).Encode()))
	assert.Contains(t, bot.sentTexts(), msgBroadcastNoPending)
}

func TestBroadcastCancelDropsDraft(t *testing.T) {
	bot := &fakeBot{}
	h := newTestHandler(t, bot)
	h.admin = &fakeAdminService{owner: 10}
	h.drafts.put(42, "مسودة")

	h.handleCallback(context.Background(), callback(newAction(domainBroadcast, broadcastCancel).Encode()))

	_, ok := h.drafts.take(42)
	assert.False(t, ok)
	assert.Contains(t, bot.sentTexts(), msgBroadcastCanceled)
}

func TestBroadcastRequiresAdmin(t *testing.T) {
	bot := &fakeBot{}
	h := newTestHandler(t, bot)
	h.admin = &fakeAdminService{owner: 999} // caller 10 is not an admin
	h.broadcast = &fakeBroadcastService{done: make(chan struct{})}

	h.handleCallback(context.Background(), callback(newAction(domainBroadcast, broadcastStart).Encode()))

	assert.Contains(t, bot.sentTexts(), msgAdminOnly)
	_, ok := h.continuations.consume(42)
	assert.False(t, ok, "no compose continuation for non-admins")
}

func TestBroadcastEmptyDraftRejected(t *testing.T) {
	bot := &fakeBot{}
	h := newTestHandler(t, bot)
	h.admin = &fakeAdminService{owner: 10}

	h.handleCallback(context.Background(), callback(newAction(domainBroadcast, broadcastStart).Encode()))

	fn, ok := h.continuations.consume(42)
	require.True(t, ok)
	require.NoError(t, fn(context.Background(), textMessage(42, 10, "   ")))

	_, ok = h.drafts.take(42)
	assert.False(t, ok)
	assert.Contains(t, bot.sentTexts(), msgBroadcastEmpty)
}
