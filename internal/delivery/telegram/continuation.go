package telegram

import (
	"context"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// continuationFunc handles the next free-text (or location) message from a
// conversation that a multi-step flow is waiting for.
type continuationFunc func(ctx context.Context, msg *tgbotapi.Message) error

// continuationRegistry holds at most one pending continuation per chat.
// Registering a new one silently replaces an unconsumed one. The registry is
// in-memory only: a restart drops all pending flows.
type continuationRegistry struct {
	mu      sync.Mutex
	pending map[int64]continuationFunc
}

func newContinuationRegistry() *continuationRegistry {
	return &continuationRegistry{pending: make(map[int64]continuationFunc)}
}

// awaitText registers fn as the handler for the chat's next message.
func (r *continuationRegistry) awaitText(chatID int64, fn continuationFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pending[chatID] = fn
}

// consume removes and returns the pending continuation for the chat.
// The second return is false when no flow is waiting, which is a normal
// unmatched message, not an error.
func (r *continuationRegistry) consume(chatID int64) (continuationFunc, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	fn, ok := r.pending[chatID]
	if ok {
		delete(r.pending, chatID)
	}

	return fn, ok
}

// cancel drops the pending continuation for the chat, if any.
func (r *continuationRegistry) cancel(chatID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.pending, chatID)
}
