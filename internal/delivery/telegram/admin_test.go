package telegram

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"noorbot/internal/domain/entities"
)

type fakeComplaintService struct {
	open    []*entities.Complaint
	replies map[int64]string
}

func (f *fakeComplaintService) Submit(_ context.Context, userID int64, text string) (int64, error) {
	id := int64(len(f.open) + 1)
	f.open = append(f.open, &entities.Complaint{ID: id, UserID: userID, Text: text})
	return id, nil
}

func (f *fakeComplaintService) ListOpen(context.Context) ([]*entities.Complaint, error) {
	return f.open, nil
}

func (f *fakeComplaintService) Reply(_ context.Context, complaintID int64, replyText string) error {
	if f.replies == nil {
		f.replies = make(map[int64]string)
	}
	f.replies[complaintID] = replyText
	return nil
}

func TestAdminComplaintsLongTextFitsOneMessage(t *testing.T) {
	bot := &fakeBot{}
	h := newTestHandler(t, bot)
	h.admin = &fakeAdminService{owner: 10}
	h.complaints = &fakeComplaintService{open: []*entities.Complaint{
		{ID: 1, UserID: 77, Text: strings.Repeat("ش", 4500)},
	}}

	h.handleCallback(context.Background(), callback(newAction(domainAdmin, adminComplaints).Encode()))

	texts := bot.sentTexts()
	require.NotEmpty(t, texts)
	screen := texts[len(texts)-1]
	assert.LessOrEqual(t, utf8.RuneCountInString(screen), chunkSize)
	assert.Contains(t, screen, "…")
	assert.Contains(t, screen, "#1")
}

func TestAdminComplaintsCapsListedEntries(t *testing.T) {
	open := make([]*entities.Complaint, complaintsPerScreen+4)
	for i := range open {
		open[i] = &entities.Complaint{
			ID:     int64(i + 1),
			UserID: 77,
			Text:   strings.Repeat("ك", complaintPreviewLimit),
		}
	}

	bot := &fakeBot{}
	h := newTestHandler(t, bot)
	h.admin = &fakeAdminService{owner: 10}
	h.complaints = &fakeComplaintService{open: open}

	h.handleCallback(context.Background(), callback(newAction(domainAdmin, adminComplaints).Encode()))

	texts := bot.sentTexts()
	require.NotEmpty(t, texts)
	screen := texts[len(texts)-1]
	assert.LessOrEqual(t, utf8.RuneCountInString(screen), chunkSize)
	assert.Contains(t, screen, fmt.Sprintf("#%d", complaintsPerScreen))
	assert.NotContains(t, screen, fmt.Sprintf("#%d", complaintsPerScreen+1))
	assert.Contains(t, screen, "4")
}

func TestAdminComplaintsRequiresAdmin(t *testing.T) {
	bot := &fakeBot{}
	h := newTestHandler(t, bot)
	h.admin = &fakeAdminService{owner: 999}
	h.complaints = &fakeComplaintService{}

	h.handleCallback(context.Background(), callback(newAction(domainAdmin, adminComplaints).Encode()))

	assert.Contains(t, bot.sentTexts(), msgAdminOnly)
}
