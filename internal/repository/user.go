package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"noorbot/internal/domain/entities"
)

// UserRepository provides access to user profiles in the database.
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository with the provided database pool.
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// EnsureUser inserts a new user profile if one does not exist yet.
func (r *UserRepository) EnsureUser(ctx context.Context, userID int64) error {
	query := `
    INSERT INTO users (id, timezone)
    VALUES ($1, 'auto')
    ON CONFLICT (id) DO NOTHING
    `
	if _, err := r.db.Exec(ctx, query, userID); err != nil {
		return fmt.Errorf("ensure user: %w", err)
	}

	return nil
}

// GetProfile returns the profile for the given user ID.
func (r *UserRepository) GetProfile(ctx context.Context, userID int64) (*entities.User, error) {
	query := `
    SELECT id, latitude, longitude, timezone, notifications_enabled, reciter, is_admin, created_at
    FROM users
    WHERE id = $1
    `

	var (
		user     entities.User
		lat, lon *float64
		reciter  *string
	)
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&user.ID,
		&lat,
		&lon,
		&user.Timezone,
		&user.NotificationsEnabled,
		&reciter,
		&user.IsAdmin,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}

	if lat != nil && lon != nil {
		user.Location = &entities.Location{Latitude: *lat, Longitude: *lon}
	}
	if reciter != nil {
		user.Reciter = *reciter
	}

	return &user, nil
}

// SetLocation stores the user's location and enables notifications,
// creating the profile if needed.
func (r *UserRepository) SetLocation(ctx context.Context, userID int64, lat, lon float64, timezone string) error {
	query := `
    INSERT INTO users (id, latitude, longitude, timezone, notifications_enabled)
    VALUES ($1, $2, $3, $4, TRUE)
    ON CONFLICT (id) DO UPDATE
    SET latitude = EXCLUDED.latitude,
        longitude = EXCLUDED.longitude,
        timezone = EXCLUDED.timezone,
        notifications_enabled = TRUE
    `
	if _, err := r.db.Exec(ctx, query, userID, lat, lon, timezone); err != nil {
		return fmt.Errorf("set location: %w", err)
	}

	return nil
}

// SetReciter stores the user's preferred audio edition.
func (r *UserRepository) SetReciter(ctx context.Context, userID int64, reciter string) error {
	query := `
    INSERT INTO users (id, reciter, timezone)
    VALUES ($1, $2, 'auto')
    ON CONFLICT (id) DO UPDATE SET reciter = EXCLUDED.reciter
    `
	if _, err := r.db.Exec(ctx, query, userID, reciter); err != nil {
		return fmt.Errorf("set reciter: %w", err)
	}

	return nil
}

// SetNotifications toggles prayer reminders for the user.
func (r *UserRepository) SetNotifications(ctx context.Context, userID int64, enabled bool) error {
	query := `UPDATE users SET notifications_enabled = $2 WHERE id = $1`
	if _, err := r.db.Exec(ctx, query, userID, enabled); err != nil {
		return fmt.Errorf("set notifications: %w", err)
	}

	return nil
}

// AppendFavorite adds one favorite entry to the user's list.
// A single INSERT keeps concurrent taps from the same user safe.
func (r *UserRepository) AppendFavorite(ctx context.Context, userID int64, favType entities.FavoriteType, content string) error {
	query := `INSERT INTO favorites (user_id, type, content) VALUES ($1, $2, $3)`
	if _, err := r.db.Exec(ctx, query, userID, string(favType), content); err != nil {
		return fmt.Errorf("append favorite: %w", err)
	}

	return nil
}

// ListFavorites returns the user's favorites in insertion order.
func (r *UserRepository) ListFavorites(ctx context.Context, userID int64) ([]*entities.Favorite, error) {
	query := `
    SELECT id, user_id, type, content, created_at
    FROM favorites
    WHERE user_id = $1
    ORDER BY id
    `

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	defer rows.Close()

	var favorites []*entities.Favorite
	for rows.Next() {
		var f entities.Favorite
		if err := rows.Scan(&f.ID, &f.UserID, &f.Type, &f.Content, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan favorite: %w", err)
		}
		favorites = append(favorites, &f)
	}

	return favorites, rows.Err()
}

// SetAdmin grants or revokes the admin flag. Returns ErrNotFound when the
// user has never started the bot.
func (r *UserRepository) SetAdmin(ctx context.Context, userID int64, isAdmin bool) error {
	query := `UPDATE users SET is_admin = $2 WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, userID, isAdmin)
	if err != nil {
		return fmt.Errorf("set admin: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// ListAdmins returns all users flagged as admins.
func (r *UserRepository) ListAdmins(ctx context.Context) ([]int64, error) {
	rows, err := r.db.Query(ctx, `SELECT id FROM users WHERE is_admin ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list admins: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan admin id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

// ListNotifiable returns users who enabled prayer reminders and have a
// stored location.
func (r *UserRepository) ListNotifiable(ctx context.Context) ([]*entities.User, error) {
	query := `
    SELECT id, latitude, longitude, timezone
    FROM users
    WHERE notifications_enabled AND latitude IS NOT NULL AND longitude IS NOT NULL
    ORDER BY id
    `

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list notifiable users: %w", err)
	}
	defer rows.Close()

	var users []*entities.User
	for rows.Next() {
		var (
			u        entities.User
			lat, lon float64
		)
		if err := rows.Scan(&u.ID, &lat, &lon, &u.Timezone); err != nil {
			return nil, fmt.Errorf("scan notifiable user: %w", err)
		}
		u.Location = &entities.Location{Latitude: lat, Longitude: lon}
		u.NotificationsEnabled = true
		users = append(users, &u)
	}

	return users, rows.Err()
}

// ListAllUserIDs returns every registered user ID, used for broadcast fan-out.
func (r *UserRepository) ListAllUserIDs(ctx context.Context) ([]int64, error) {
	rows, err := r.db.Query(ctx, `SELECT id FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list user ids: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan user id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

// CountUsers returns the number of registered users.
func (r *UserRepository) CountUsers(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}

	return n, nil
}

// CountFavorites returns the total number of favorite entries across all users.
func (r *UserRepository) CountFavorites(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM favorites`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count favorites: %w", err)
	}

	return n, nil
}
