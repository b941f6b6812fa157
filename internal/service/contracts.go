package service

import (
	"context"

	"noorbot/internal/domain/entities"
)

type UserRepository interface {
	EnsureUser(ctx context.Context, userID int64) error
	GetProfile(ctx context.Context, userID int64) (*entities.User, error)
	SetLocation(ctx context.Context, userID int64, lat, lon float64, timezone string) error
	SetReciter(ctx context.Context, userID int64, reciter string) error
	SetNotifications(ctx context.Context, userID int64, enabled bool) error
	AppendFavorite(ctx context.Context, userID int64, favType entities.FavoriteType, content string) error
	ListFavorites(ctx context.Context, userID int64) ([]*entities.Favorite, error)
	SetAdmin(ctx context.Context, userID int64, isAdmin bool) error
	ListAdmins(ctx context.Context) ([]int64, error)
	ListNotifiable(ctx context.Context) ([]*entities.User, error)
	ListAllUserIDs(ctx context.Context) ([]int64, error)
	CountUsers(ctx context.Context) (int, error)
	CountFavorites(ctx context.Context) (int, error)
}

type ComplaintRepository interface {
	Create(ctx context.Context, userID int64, text string) (int64, error)
	GetByID(ctx context.Context, id int64) (*entities.Complaint, error)
	ListOpen(ctx context.Context) ([]*entities.Complaint, error)
	Close(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}

// MessageSender delivers a plain text message to a chat. Implemented by the
// telegram delivery layer; broadcast, complaint replies and prayer
// reminders go through it.
type MessageSender interface {
	SendText(chatID int64, text string) error
}

// PrayerSchedule provides a day of prayer timings for a location.
type PrayerSchedule interface {
	GetTimings(ctx context.Context, lat, lon float64, timezone string) (*entities.PrayerTimes, error)
}
