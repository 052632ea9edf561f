package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"influencer-platform-backend/internal/domain"
	"influencer-platform-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type requestRepository struct {
	db *sql.DB
}

func NewRequestRepository(db *sql.DB) repository.RequestRepository {
	return &requestRepository{db: db}
}

const uniqueViolation = "23505"

// mapUniqueViolation attributes a postgres unique-violation to the input field
// that collided so callers can present a precise message.
func mapUniqueViolation(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || pqErr.Code != uniqueViolation {
		return err
	}
	detail := pqErr.Constraint + " " + pqErr.Detail
	switch {
	case strings.Contains(detail, "email"):
		return domain.NewValidationError("email", "email already exists, use another email")
	case strings.Contains(detail, "phone"):
		return domain.NewValidationError("phone", "phone number already exists, use another phone")
	}
	return err
}

func (r *requestRepository) Create(ctx context.Context, req *domain.Request) error {
	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	req.RequestDate = time.Now()
	query := `INSERT INTO influencer_requests (request_id, name, email, phone, instagram_id, tags, request_date)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecContext(ctx, query, req.ID, req.Name, req.Email, req.Phone, req.InstagramID, pq.Array(req.Tags), req.RequestDate)
	if err != nil {
		return mapUniqueViolation(err)
	}
	return nil
}

func (r *requestRepository) GetByID(ctx context.Context, id string) (*domain.Request, error) {
	req := &domain.Request{}
	query := `SELECT request_id, name, email, phone, COALESCE(instagram_id, ''), tags, request_date, approved, deleted_at, decided_by, decided_at, email_sent
	          FROM influencer_requests WHERE request_id = $1`
	var tags pq.StringArray
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&req.ID, &req.Name, &req.Email, &req.Phone, &req.InstagramID, &tags,
		&req.RequestDate, &req.Approved, &req.DeletedAt, &req.DecidedBy, &req.DecidedAt, &req.EmailSent,
	)
	if err == sql.ErrNoRows {
		return nil, domain.NewNotFoundError("request not found")
	}
	if err != nil {
		return nil, err
	}
	req.Tags = tags
	return req, nil
}

func (r *requestRepository) List(ctx context.Context) ([]domain.Request, error) {
	query := `SELECT request_id, name, email, phone, COALESCE(instagram_id, ''), tags, request_date, approved, deleted_at, decided_by, decided_at, email_sent
	          FROM influencer_requests ORDER BY request_date DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reqs []domain.Request
	for rows.Next() {
		var req domain.Request
		var tags pq.StringArray
		if err := rows.Scan(
			&req.ID, &req.Name, &req.Email, &req.Phone, &req.InstagramID, &tags,
			&req.RequestDate, &req.Approved, &req.DeletedAt, &req.DecidedBy, &req.DecidedAt, &req.EmailSent,
		); err != nil {
			return nil, err
		}
		req.Tags = tags
		reqs = append(reqs, req)
	}
	return reqs, rows.Err()
}

func (r *requestRepository) MarkApproved(ctx context.Context, id, adminID string, decidedAt time.Time) error {
	query := `UPDATE influencer_requests
	          SET approved = TRUE, decided_by = $1, decided_at = $2, email_sent = NULL
	          WHERE request_id = $3 AND approved IS NULL AND deleted_at IS NULL`
	return r.execDecision(ctx, query, adminID, decidedAt, id)
}

func (r *requestRepository) MarkRejected(ctx context.Context, id, adminID string, decidedAt time.Time) error {
	query := `UPDATE influencer_requests
	          SET approved = FALSE, deleted_at = $2, decided_by = $1, decided_at = $2, email_sent = NULL
	          WHERE request_id = $3 AND approved IS NULL AND deleted_at IS NULL`
	return r.execDecision(ctx, query, adminID, decidedAt, id)
}

func (r *requestRepository) execDecision(ctx context.Context, query, adminID string, decidedAt time.Time, id string) error {
	res, err := r.db.ExecContext(ctx, query, adminID, decidedAt, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.NewStateConflictError("action already taken")
	}
	return nil
}

func (r *requestRepository) SetEmailSent(ctx context.Context, id string, sent bool) error {
	query := `UPDATE influencer_requests SET email_sent = $1 WHERE request_id = $2`
	_, err := r.db.ExecContext(ctx, query, sent, id)
	return err
}
