package entities

import "time"

// Complaint statuses. A complaint is closed only by an admin reply.
const (
	ComplaintOpen   = "open"
	ComplaintClosed = "closed"
)

// Complaint is a user-submitted complaint or suggestion.
type Complaint struct {
	ID        int64
	UserID    int64
	Text      string
	Status    string
	CreatedAt time.Time
}
