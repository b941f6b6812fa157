package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"noorbot/internal/domain/entities"
	"noorbot/internal/repository"
)

// fakeUserRepo is an in-memory UserRepository for service tests.
type fakeUserRepo struct {
	userIDs  []int64
	admins   map[int64]bool
	profiles map[int64]*entities.User
	listErr  error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		admins:   make(map[int64]bool),
		profiles: make(map[int64]*entities.User),
	}
}

func (f *fakeUserRepo) EnsureUser(_ context.Context, userID int64) error {
	for _, id := range f.userIDs {
		if id == userID {
			return nil
		}
	}
	f.userIDs = append(f.userIDs, userID)
	return nil
}

func (f *fakeUserRepo) GetProfile(_ context.Context, userID int64) (*entities.User, error) {
	p, ok := f.profiles[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return p, nil
}

func (f *fakeUserRepo) SetLocation(context.Context, int64, float64, float64, string) error {
	return nil
}

func (f *fakeUserRepo) SetReciter(context.Context, int64, string) error { return nil }

func (f *fakeUserRepo) SetNotifications(context.Context, int64, bool) error { return nil }

func (f *fakeUserRepo) AppendFavorite(context.Context, int64, entities.FavoriteType, string) error {
	return nil
}

func (f *fakeUserRepo) ListFavorites(context.Context, int64) ([]*entities.Favorite, error) {
	return nil, nil
}

func (f *fakeUserRepo) SetAdmin(_ context.Context, userID int64, isAdmin bool) error {
	if _, ok := f.profiles[userID]; !ok {
		return repository.ErrNotFound
	}
	f.admins[userID] = isAdmin
	f.profiles[userID].IsAdmin = isAdmin
	return nil
}

func (f *fakeUserRepo) ListAdmins(_ context.Context) ([]int64, error) {
	var out []int64
	for id, ok := range f.admins {
		if ok {
			out = append(out, id)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) ListNotifiable(_ context.Context) ([]*entities.User, error) {
	var out []*entities.User
	for _, u := range f.profiles {
		if u.NotificationsEnabled && u.Location != nil {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) ListAllUserIDs(_ context.Context) ([]int64, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.userIDs, nil
}

func (f *fakeUserRepo) CountUsers(_ context.Context) (int, error) { return len(f.userIDs), nil }

func (f *fakeUserRepo) CountFavorites(context.Context) (int, error) { return 0, nil }

// fakeSender fails delivery for the configured chat IDs.
// fakeSender records recipients; reminder ticks deliver from worker
// goroutines, so appends are serialized.
type fakeSender struct {
	mu      sync.Mutex
	failFor map[int64]bool
	sent    []int64
}

func (f *fakeSender) SendText(chatID int64, _ string) error {
	if f.failFor[chatID] {
		return errors.New("forbidden: bot was blocked by the user")
	}
	f.mu.Lock()
	f.sent = append(f.sent, chatID)
	f.mu.Unlock()
	return nil
}

func TestBroadcastCountsPartialFailures(t *testing.T) {
	repo := newFakeUserRepo()
	repo.userIDs = []int64{1, 2, 3, 4, 5}
	sender := &fakeSender{failFor: map[int64]bool{2: true, 4: true}}

	svc := NewBroadcastService(repo, sender, zap.NewNop())

	report, err := svc.Send(context.Background(), "تجربة")
	require.NoError(t, err)

	assert.Equal(t, 5, report.Total)
	assert.Equal(t, 3, report.Sent)
	assert.Equal(t, 2, report.Failed)
	assert.Equal(t, []int64{1, 3, 5}, sender.sent, "failures must not abort the remaining batch")
}

func TestBroadcastNoRecipients(t *testing.T) {
	svc := NewBroadcastService(newFakeUserRepo(), &fakeSender{}, zap.NewNop())

	report, err := svc.Send(context.Background(), "تجربة")
	require.NoError(t, err)
	assert.Equal(t, &BroadcastReport{}, report)
}

func TestBroadcastListFailure(t *testing.T) {
	repo := newFakeUserRepo()
	repo.listErr = errors.New("connection refused")

	svc := NewBroadcastService(repo, &fakeSender{}, zap.NewNop())

	_, err := svc.Send(context.Background(), "تجربة")
	assert.Error(t, err)
}
