package service

import (
	"context"

	"go.uber.org/zap"
)

// BroadcastReport summarizes one finished broadcast run.
type BroadcastReport struct {
	Total  int // recipients attempted
	Sent   int // successful deliveries
	Failed int // blocked bots, deleted accounts etc.
}

// BroadcastService fans a message out to every registered user. Delivery is
// at-most-once per user per broadcast: per-recipient failures are counted
// and skipped, never retried, and never abort the remaining batch. There is
// no cancellation mechanism; a run completes or dies with the process.
type BroadcastService struct {
	users  UserRepository
	sender MessageSender
	logger *zap.Logger
}

func NewBroadcastService(users UserRepository, sender MessageSender, logger *zap.Logger) *BroadcastService {
	return &BroadcastService{
		users:  users,
		sender: sender,
		logger: logger,
	}
}

// Send delivers text to all known users and reports the outcome.
func (s *BroadcastService) Send(ctx context.Context, text string) (*BroadcastReport, error) {
	ids, err := s.users.ListAllUserIDs(ctx)
	if err != nil {
		return nil, err
	}

	report := &BroadcastReport{Total: len(ids)}
	for _, id := range ids {
		if err := s.sender.SendText(id, text); err != nil {
			report.Failed++
			s.logger.Debug("broadcast delivery failed",
				zap.Int64("user_id", id),
				zap.Error(err),
			)
			continue
		}
		report.Sent++
	}

	s.logger.Info("broadcast finished",
		zap.Int("total", report.Total),
		zap.Int("sent", report.Sent),
		zap.Int("failed", report.Failed),
	)

	return report, nil
}
