package service

import (
	"context"
	"errors"

	"noorbot/internal/domain/entities"
	"noorbot/internal/repository"
)

type UserService struct {
	repository UserRepository
}

func NewUserService(repository UserRepository) *UserService {
	return &UserService{repository: repository}
}

// EnsureUser registers the user on first contact. Safe to call on every update.
func (s *UserService) EnsureUser(ctx context.Context, userID int64) error {
	return s.repository.EnsureUser(ctx, userID)
}

// GetProfile returns the user's profile, creating an empty one for unknown users.
func (s *UserService) GetProfile(ctx context.Context, userID int64) (*entities.User, error) {
	profile, err := s.repository.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return entities.NewUser(userID), nil
		}
		return nil, err
	}

	return profile, nil
}

func (s *UserService) SetLocation(ctx context.Context, userID int64, lat, lon float64, timezone string) error {
	return s.repository.SetLocation(ctx, userID, lat, lon, timezone)
}

func (s *UserService) SetReciter(ctx context.Context, userID int64, reciter string) error {
	return s.repository.SetReciter(ctx, userID, reciter)
}

func (s *UserService) SetNotifications(ctx context.Context, userID int64, enabled bool) error {
	return s.repository.SetNotifications(ctx, userID, enabled)
}

// AddFavorite appends one entry to the user's favorites list.
func (s *UserService) AddFavorite(ctx context.Context, userID int64, favType entities.FavoriteType, content string) error {
	return s.repository.AppendFavorite(ctx, userID, favType, content)
}

func (s *UserService) ListFavorites(ctx context.Context, userID int64) ([]*entities.Favorite, error) {
	return s.repository.ListFavorites(ctx, userID)
}
