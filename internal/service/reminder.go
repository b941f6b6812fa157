package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"noorbot/internal/domain/entities"
)

// prayerLabels pairs each daily prayer with its announcement label, in
// chronological order. Sunrise is not a prayer and gets no reminder.
var prayerLabels = []struct {
	Name string
	Time func(*entities.PrayerTimes) string
}{
	{"الفجر", func(t *entities.PrayerTimes) string { return t.Fajr }},
	{"الظهر", func(t *entities.PrayerTimes) string { return t.Dhuhr }},
	{"العصر", func(t *entities.PrayerTimes) string { return t.Asr }},
	{"المغرب", func(t *entities.PrayerTimes) string { return t.Maghrib }},
	{"العشاء", func(t *entities.PrayerTimes) string { return t.Isha }},
}

// cachedTimings is one user's schedule for a single local day.
type cachedTimings struct {
	date    string // local YYYY-MM-DD the schedule was fetched for
	timings *entities.PrayerTimes
}

// ReminderService announces each prayer time to users who enabled
// notifications and stored a location. A cron tick every minute compares the
// user's local clock against their cached daily schedule; the schedule is
// re-fetched once per local day. Delivery failures are logged and skipped,
// never retried.
type ReminderService struct {
	users   UserRepository
	timings PrayerSchedule
	sender  MessageSender
	logger  *zap.Logger

	mu    sync.Mutex
	cache map[int64]cachedTimings
}

func NewReminderService(users UserRepository, timings PrayerSchedule, sender MessageSender, logger *zap.Logger) *ReminderService {
	return &ReminderService{
		users:   users,
		timings: timings,
		sender:  sender,
		logger:  logger,
		cache:   make(map[int64]cachedTimings),
	}
}

// Run starts the scheduling loop and blocks until the context is canceled.
func (s *ReminderService) Run(ctx context.Context) {
	s.logger.Info("reminder service started")

	c := cron.New()
	_, err := c.AddFunc("* * * * *", func() {
		if err := s.tick(ctx, time.Now()); err != nil {
			s.logger.Error("reminder tick failed", zap.Error(err))
		}
	})
	if err != nil {
		s.logger.Error("failed to schedule reminder job", zap.Error(err))
		return
	}

	c.Start()
	<-ctx.Done()
	c.Stop()

	s.logger.Info("reminder service stopped")
}

// tick checks every notifiable user against the current minute.
func (s *ReminderService) tick(ctx context.Context, now time.Time) error {
	users, err := s.users.ListNotifiable(ctx)
	if err != nil {
		return fmt.Errorf("list notifiable users: %w", err)
	}

	const maxConcurrent = 10
	sem := make(chan struct{}, maxConcurrent)
	var wg sync.WaitGroup

	for _, user := range users {
		wg.Add(1)
		sem <- struct{}{}

		go func(u *entities.User) {
			defer wg.Done()
			defer func() { <-sem }()

			if err := s.remindUser(ctx, u, now); err != nil {
				s.logger.Warn("prayer reminder skipped",
					zap.Int64("user_id", u.ID),
					zap.Error(err),
				)
			}
		}(user)
	}

	wg.Wait()
	return nil
}

// remindUser sends a reminder when the user's local clock hits one of the
// day's prayer times. The tick runs once per minute and timings carry
// minute precision, so each prayer announces at most once.
func (s *ReminderService) remindUser(ctx context.Context, user *entities.User, now time.Time) error {
	timings, err := s.timingsFor(ctx, user, now)
	if err != nil {
		return err
	}

	loc, err := time.LoadLocation(timings.Timezone)
	if err != nil {
		return fmt.Errorf("resolve timezone %q: %w", timings.Timezone, err)
	}
	local := now.In(loc).Format("15:04")

	for _, prayer := range prayerLabels {
		if prayer.Time(timings) != local {
			continue
		}

		text := fmt.Sprintf("🕌 حان الآن وقت صلاة %s (%s)", prayer.Name, local)
		if err := s.sender.SendText(user.ID, text); err != nil {
			return fmt.Errorf("deliver reminder: %w", err)
		}

		s.logger.Info("prayer reminder sent",
			zap.Int64("user_id", user.ID),
			zap.String("prayer", prayer.Name),
		)
		return nil
	}

	return nil
}

// timingsFor returns the user's schedule for their current local day,
// fetching it from the provider on the first tick of each day.
func (s *ReminderService) timingsFor(ctx context.Context, user *entities.User, now time.Time) (*entities.PrayerTimes, error) {
	s.mu.Lock()
	cached, ok := s.cache[user.ID]
	s.mu.Unlock()

	if ok {
		if loc, err := time.LoadLocation(cached.timings.Timezone); err == nil {
			if now.In(loc).Format("2006-01-02") == cached.date {
				return cached.timings, nil
			}
		}
	}

	timings, err := s.timings.GetTimings(ctx, user.Location.Latitude, user.Location.Longitude, user.Timezone)
	if err != nil {
		return nil, fmt.Errorf("fetch timings: %w", err)
	}

	date := now.Format("2006-01-02")
	if loc, err := time.LoadLocation(timings.Timezone); err == nil {
		date = now.In(loc).Format("2006-01-02")
	}

	s.mu.Lock()
	s.cache[user.ID] = cachedTimings{date: date, timings: timings}
	s.mu.Unlock()

	return timings, nil
}
