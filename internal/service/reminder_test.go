package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"noorbot/internal/domain/entities"
)

type fakeSchedule struct {
	timings *entities.PrayerTimes
	err     error
	fetches int
}

func (f *fakeSchedule) GetTimings(context.Context, float64, float64, string) (*entities.PrayerTimes, error) {
	f.fetches++
	if f.err != nil {
		return nil, f.err
	}
	return f.timings, nil
}

func notifiableUser(id int64) *entities.User {
	u := entities.NewUser(id)
	u.Location = &entities.Location{Latitude: 24.7136, Longitude: 46.6753}
	u.NotificationsEnabled = true
	return u
}

func utcTimings() *entities.PrayerTimes {
	return &entities.PrayerTimes{
		Fajr:     "04:12",
		Sunrise:  "05:43",
		Dhuhr:    "12:01",
		Asr:      "15:30",
		Maghrib:  "18:20",
		Isha:     "19:50",
		Timezone: "UTC",
	}
}

func TestReminderFiresAtPrayerTime(t *testing.T) {
	repo := newFakeUserRepo()
	repo.profiles[7] = notifiableUser(7)
	schedule := &fakeSchedule{timings: utcTimings()}
	sender := &fakeSender{}

	svc := NewReminderService(repo, schedule, sender, zap.NewNop())

	asr := time.Date(2026, 8, 28, 15, 30, 0, 0, time.UTC)
	require.NoError(t, svc.tick(context.Background(), asr))

	require.Len(t, sender.sent, 1)
	assert.Equal(t, int64(7), sender.sent[0])
}

func TestReminderQuietBetweenPrayers(t *testing.T) {
	repo := newFakeUserRepo()
	repo.profiles[7] = notifiableUser(7)
	sender := &fakeSender{}

	svc := NewReminderService(repo, &fakeSchedule{timings: utcTimings()}, sender, zap.NewNop())

	between := time.Date(2026, 8, 28, 15, 31, 0, 0, time.UTC)
	require.NoError(t, svc.tick(context.Background(), between))

	assert.Empty(t, sender.sent)
}

func TestReminderSunriseIsNotAnnounced(t *testing.T) {
	repo := newFakeUserRepo()
	repo.profiles[7] = notifiableUser(7)
	sender := &fakeSender{}

	svc := NewReminderService(repo, &fakeSchedule{timings: utcTimings()}, sender, zap.NewNop())

	sunrise := time.Date(2026, 8, 28, 5, 43, 0, 0, time.UTC)
	require.NoError(t, svc.tick(context.Background(), sunrise))

	assert.Empty(t, sender.sent)
}

func TestReminderSkipsDisabledUsers(t *testing.T) {
	repo := newFakeUserRepo()
	disabled := notifiableUser(7)
	disabled.NotificationsEnabled = false
	repo.profiles[7] = disabled
	noLocation := entities.NewUser(8)
	noLocation.NotificationsEnabled = true
	repo.profiles[8] = noLocation
	sender := &fakeSender{}

	svc := NewReminderService(repo, &fakeSchedule{timings: utcTimings()}, sender, zap.NewNop())

	asr := time.Date(2026, 8, 28, 15, 30, 0, 0, time.UTC)
	require.NoError(t, svc.tick(context.Background(), asr))

	assert.Empty(t, sender.sent)
}

func TestReminderCachesScheduleForTheDay(t *testing.T) {
	repo := newFakeUserRepo()
	repo.profiles[7] = notifiableUser(7)
	schedule := &fakeSchedule{timings: utcTimings()}
	sender := &fakeSender{}

	svc := NewReminderService(repo, schedule, sender, zap.NewNop())
	ctx := context.Background()

	day := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	require.NoError(t, svc.tick(ctx, day))
	require.NoError(t, svc.tick(ctx, day.Add(time.Minute)))
	assert.Equal(t, 1, schedule.fetches, "one fetch per local day")

	require.NoError(t, svc.tick(ctx, day.Add(24*time.Hour)))
	assert.Equal(t, 2, schedule.fetches, "next day re-fetches")
}

func TestReminderProviderFailureIsSkipped(t *testing.T) {
	repo := newFakeUserRepo()
	repo.profiles[7] = notifiableUser(7)
	sender := &fakeSender{}

	svc := NewReminderService(repo, &fakeSchedule{err: errors.New("upstream 503")}, sender, zap.NewNop())

	asr := time.Date(2026, 8, 28, 15, 30, 0, 0, time.UTC)
	require.NoError(t, svc.tick(context.Background(), asr), "a provider failure must not kill the tick")
	assert.Empty(t, sender.sent)
}

func TestReminderLocalTimezone(t *testing.T) {
	repo := newFakeUserRepo()
	repo.profiles[7] = notifiableUser(7)
	timings := utcTimings()
	timings.Timezone = "Asia/Riyadh" // UTC+3, no DST
	schedule := &fakeSchedule{timings: timings}
	sender := &fakeSender{}

	svc := NewReminderService(repo, schedule, sender, zap.NewNop())
	ctx := context.Background()

	// 12:30 UTC is 15:30 in Riyadh: Asr fires.
	require.NoError(t, svc.tick(ctx, time.Date(2026, 8, 28, 12, 30, 0, 0, time.UTC)))
	require.Len(t, sender.sent, 1)

	// 15:30 UTC is 18:30 local: nothing.
	require.NoError(t, svc.tick(ctx, time.Date(2026, 8, 28, 15, 30, 0, 0, time.UTC)))
	assert.Len(t, sender.sent, 1)
}
