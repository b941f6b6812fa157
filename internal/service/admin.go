package service

import (
	"context"
	"errors"
	"fmt"

	"noorbot/internal/repository"
)

// ErrPermissionDenied is returned when a privileged action is attempted by a
// principal without the required role.
var ErrPermissionDenied = errors.New("permission denied")

// BotStats is a snapshot of aggregate counters shown on the admin panel.
type BotStats struct {
	TotalUsers      int
	TotalFavorites  int
	TotalComplaints int
}

// AdminService covers the privileged operations: stats, admin roster
// management and the owner check.
type AdminService struct {
	users      UserRepository
	complaints ComplaintRepository
	ownerID    int64
}

func NewAdminService(users UserRepository, complaints ComplaintRepository, ownerID int64) *AdminService {
	return &AdminService{
		users:      users,
		complaints: complaints,
		ownerID:    ownerID,
	}
}

// IsOwner reports whether the user is the configured bot owner.
func (s *AdminService) IsOwner(userID int64) bool {
	return userID == s.ownerID
}

// IsAdmin reports whether the user may use the admin panel. The owner is
// always an admin.
func (s *AdminService) IsAdmin(ctx context.Context, userID int64) (bool, error) {
	if s.IsOwner(userID) {
		return true, nil
	}

	profile, err := s.users.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	return profile.IsAdmin, nil
}

// AddAdmin grants admin rights. Only the owner may add admins, and the
// target must have started the bot at least once.
func (s *AdminService) AddAdmin(ctx context.Context, actorID, targetID int64) error {
	if !s.IsOwner(actorID) {
		return ErrPermissionDenied
	}

	return s.users.SetAdmin(ctx, targetID, true)
}

// RemoveAdmin revokes admin rights. The owner cannot be removed.
func (s *AdminService) RemoveAdmin(ctx context.Context, actorID, targetID int64) error {
	if !s.IsOwner(actorID) {
		return ErrPermissionDenied
	}
	if targetID == s.ownerID {
		return ErrPermissionDenied
	}

	return s.users.SetAdmin(ctx, targetID, false)
}

// ListAdmins returns the admin roster including the owner.
func (s *AdminService) ListAdmins(ctx context.Context) ([]int64, error) {
	ids, err := s.users.ListAdmins(ctx)
	if err != nil {
		return nil, err
	}

	for _, id := range ids {
		if id == s.ownerID {
			return ids, nil
		}
	}

	return append([]int64{s.ownerID}, ids...), nil
}

// Stats collects the aggregate counters for the admin panel.
func (s *AdminService) Stats(ctx context.Context) (*BotStats, error) {
	users, err := s.users.CountUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	favorites, err := s.users.CountFavorites(ctx)
	if err != nil {
		return nil, fmt.Errorf("count favorites: %w", err)
	}

	complaints, err := s.complaints.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count complaints: %w", err)
	}

	return &BotStats{
		TotalUsers:      users,
		TotalFavorites:  favorites,
		TotalComplaints: complaints,
	}, nil
}
