package service

import (
	"context"
	"fmt"

	"noorbot/internal/domain/entities"
)

// ComplaintService handles complaint submission and admin replies.
type ComplaintService struct {
	complaints ComplaintRepository
	sender     MessageSender
}

func NewComplaintService(complaints ComplaintRepository, sender MessageSender) *ComplaintService {
	return &ComplaintService{
		complaints: complaints,
		sender:     sender,
	}
}

// Submit stores a new open complaint for the user.
func (s *ComplaintService) Submit(ctx context.Context, userID int64, text string) (int64, error) {
	return s.complaints.Create(ctx, userID, text)
}

// ListOpen returns complaints awaiting a reply.
func (s *ComplaintService) ListOpen(ctx context.Context) ([]*entities.Complaint, error) {
	return s.complaints.ListOpen(ctx)
}

// Reply delivers the admin's reply to the complaining user and closes the
// record. The record stays open when delivery fails, so the admin can retry.
func (s *ComplaintService) Reply(ctx context.Context, complaintID int64, replyText string) error {
	complaint, err := s.complaints.GetByID(ctx, complaintID)
	if err != nil {
		return err
	}

	message := fmt.Sprintf("📩 رد الإدارة على شكواك:\n\n%s", replyText)
	if err := s.sender.SendText(complaint.UserID, message); err != nil {
		return fmt.Errorf("deliver reply: %w", err)
	}

	return s.complaints.Close(ctx, complaintID)
}
