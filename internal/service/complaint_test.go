package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"noorbot/internal/domain/entities"
	"noorbot/internal/repository"
)

func TestComplaintReplyClosesRecord(t *testing.T) {
	repo := newFakeComplaintRepo()
	sender := &fakeSender{}
	svc := NewComplaintService(repo, sender)
	ctx := context.Background()

	id, err := svc.Submit(ctx, 5, "البوت لا يعمل")
	require.NoError(t, err)

	require.NoError(t, svc.Reply(ctx, id, "تم إصلاح المشكلة"))

	assert.Equal(t, []int64{5}, sender.sent, "reply goes to the complaint author")

	c, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, entities.ComplaintClosed, c.Status)

	open, err := svc.ListOpen(ctx)
	require.NoError(t, err)
	assert.Empty(t, open)
}

func TestComplaintReplyDeliveryFailureKeepsRecordOpen(t *testing.T) {
	repo := newFakeComplaintRepo()
	sender := &fakeSender{failFor: map[int64]bool{5: true}}
	svc := NewComplaintService(repo, sender)
	ctx := context.Background()

	id, err := svc.Submit(ctx, 5, "شكوى")
	require.NoError(t, err)

	require.Error(t, svc.Reply(ctx, id, "رد"))

	c, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, entities.ComplaintOpen, c.Status)
}

func TestComplaintReplyUnknownID(t *testing.T) {
	svc := NewComplaintService(newFakeComplaintRepo(), &fakeSender{})

	err := svc.Reply(context.Background(), 42, "رد")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUserServiceProfileFallback(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	profile, err := svc.GetProfile(context.Background(), 77)
	require.NoError(t, err)
	assert.Equal(t, int64(77), profile.ID)
	assert.False(t, profile.NotificationsEnabled)
}
