// Package entities contains domain entities used across the application.
package entities

import "time"

// FavoriteType classifies a saved favorite entry.
type FavoriteType string

const (
	FavoriteQuranVerse FavoriteType = "quran_verse"
	FavoriteHadith     FavoriteType = "hadith"
	FavoriteAthkar     FavoriteType = "athkar"
	FavoriteOther      FavoriteType = "other"
)

// Location is a stored user location used for prayer time lookups.
type Location struct {
	Latitude  float64
	Longitude float64
}

// User represents a bot user profile. Created on first /start, never deleted.
type User struct {
	ID                   int64 // Telegram user ID
	Location             *Location
	Timezone             string
	NotificationsEnabled bool
	Reciter              string // alquran.cloud audio edition identifier
	IsAdmin              bool
	CreatedAt            time.Time
}

func NewUser(id int64) *User {
	return &User{
		ID:       id,
		Timezone: "auto",
	}
}

// Favorite is a single saved content entry owned by one user.
// Favorites are append-only: there is no edit or delete operation.
type Favorite struct {
	ID        int64
	UserID    int64
	Type      FavoriteType
	Content   string
	CreatedAt time.Time
}
