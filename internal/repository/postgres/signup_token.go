package postgres

import (
	"context"
	"database/sql"
	"time"

	"influencer-platform-backend/internal/domain"
	"influencer-platform-backend/internal/repository"
)

type signupTokenRepository struct {
	db *sql.DB
}

func NewSignupTokenRepository(db *sql.DB) repository.SignupTokenRepository {
	return &signupTokenRepository{db: db}
}

func (r *signupTokenRepository) Create(ctx context.Context, t *domain.SignupToken) error {
	query := `INSERT INTO signup_tokens (token, request_id, email, issued_at, expires_at, used)
	          VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecContext(ctx, query, t.Token, t.RequestID, t.Email, t.IssuedAt, t.ExpiresAt, t.Used)
	return err
}

func (r *signupTokenRepository) GetByToken(ctx context.Context, token string) (*domain.SignupToken, error) {
	t := &domain.SignupToken{}
	query := `SELECT token, request_id, email, issued_at, expires_at, used FROM signup_tokens WHERE token = $1`
	err := r.db.QueryRowContext(ctx, query, token).Scan(&t.Token, &t.RequestID, &t.Email, &t.IssuedAt, &t.ExpiresAt, &t.Used)
	if err == sql.ErrNoRows {
		return nil, domain.NewNotFoundError("signup token not found")
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *signupTokenRepository) MarkUsed(ctx context.Context, token string) error {
	query := `UPDATE signup_tokens SET used = TRUE WHERE token = $1`
	_, err := r.db.ExecContext(ctx, query, token)
	return err
}

func (r *signupTokenRepository) DeleteByToken(ctx context.Context, token string) error {
	query := `DELETE FROM signup_tokens WHERE token = $1`
	_, err := r.db.ExecContext(ctx, query, token)
	return err
}

// DeleteExpiredUnused purges expired tokens that were never redeemed. Used
// tokens stay behind for audit.
func (r *signupTokenRepository) DeleteExpiredUnused(ctx context.Context, before time.Time) (int64, error) {
	query := `DELETE FROM signup_tokens WHERE used = FALSE AND expires_at < $1`
	res, err := r.db.ExecContext(ctx, query, before)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
