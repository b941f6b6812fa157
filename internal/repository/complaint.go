package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"noorbot/internal/domain/entities"
)

// ComplaintRepository provides access to complaint records.
type ComplaintRepository struct {
	db *pgxpool.Pool
}

func NewComplaintRepository(db *pgxpool.Pool) *ComplaintRepository {
	return &ComplaintRepository{db: db}
}

// Create stores a new open complaint and returns its ID.
func (r *ComplaintRepository) Create(ctx context.Context, userID int64, text string) (int64, error) {
	query := `
    INSERT INTO complaints (user_id, text, status)
    VALUES ($1, $2, 'open')
    RETURNING id
    `

	var id int64
	if err := r.db.QueryRow(ctx, query, userID, text).Scan(&id); err != nil {
		return 0, fmt.Errorf("create complaint: %w", err)
	}

	return id, nil
}

// GetByID returns a single complaint.
func (r *ComplaintRepository) GetByID(ctx context.Context, id int64) (*entities.Complaint, error) {
	query := `
    SELECT id, user_id, text, status, created_at
    FROM complaints
    WHERE id = $1
    `

	var c entities.Complaint
	err := r.db.QueryRow(ctx, query, id).Scan(&c.ID, &c.UserID, &c.Text, &c.Status, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get complaint: %w", err)
	}

	return &c, nil
}

// ListOpen returns all complaints awaiting an admin reply.
func (r *ComplaintRepository) ListOpen(ctx context.Context) ([]*entities.Complaint, error) {
	query := `
    SELECT id, user_id, text, status, created_at
    FROM complaints
    WHERE status = 'open'
    ORDER BY id
    `

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list open complaints: %w", err)
	}
	defer rows.Close()

	var complaints []*entities.Complaint
	for rows.Next() {
		var c entities.Complaint
		if err := rows.Scan(&c.ID, &c.UserID, &c.Text, &c.Status, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan complaint: %w", err)
		}
		complaints = append(complaints, &c)
	}

	return complaints, rows.Err()
}

// Close marks a complaint as answered. Returns ErrNotFound for unknown or
// already closed complaints.
func (r *ComplaintRepository) Close(ctx context.Context, id int64) error {
	query := `UPDATE complaints SET status = 'closed' WHERE id = $1 AND status = 'open'`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("close complaint: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// Count returns the total number of complaints ever submitted.
func (r *ComplaintRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM complaints`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count complaints: %w", err)
	}

	return n, nil
}
