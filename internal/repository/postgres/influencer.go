package postgres

import (
	"context"
	"database/sql"
	"time"

	"influencer-platform-backend/internal/domain"
	"influencer-platform-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type influencerRepository struct {
	db *sql.DB
}

func NewInfluencerRepository(db *sql.DB) repository.InfluencerRepository {
	return &influencerRepository{db: db}
}

func (r *influencerRepository) Create(ctx context.Context, inf *domain.Influencer) error {
	if inf.ID == "" {
		inf.ID = uuid.NewString()
	}
	inf.JoinedAt = time.Now()
	query := `INSERT INTO influencers (influencer_id, request_id, auth_user_id, name, email, phone, instagram_id, tags, joined_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.ExecContext(ctx, query, inf.ID, inf.RequestID, inf.AuthUserID, inf.Name, inf.Email, inf.Phone, inf.InstagramID, pq.Array(inf.Tags), inf.JoinedAt)
	if err != nil {
		return mapUniqueViolation(err)
	}
	return nil
}

func (r *influencerRepository) GetByAuthUserID(ctx context.Context, authUserID string) (*domain.Influencer, error) {
	inf := &domain.Influencer{}
	query := `SELECT influencer_id, request_id, auth_user_id, name, email, phone, COALESCE(instagram_id, ''), tags, joined_at
	          FROM influencers WHERE auth_user_id = $1`
	var tags pq.StringArray
	err := r.db.QueryRowContext(ctx, query, authUserID).Scan(
		&inf.ID, &inf.RequestID, &inf.AuthUserID, &inf.Name, &inf.Email, &inf.Phone, &inf.InstagramID, &tags, &inf.JoinedAt,
	)
	if err == sql.ErrNoRows {
		return nil, domain.NewNotFoundError("influencer profile not found")
	}
	if err != nil {
		return nil, err
	}
	inf.Tags = tags
	return inf, nil
}

func (r *influencerRepository) List(ctx context.Context) ([]domain.Influencer, error) {
	query := `SELECT influencer_id, request_id, auth_user_id, name, email, phone, COALESCE(instagram_id, ''), tags, joined_at
	          FROM influencers ORDER BY joined_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var infs []domain.Influencer
	for rows.Next() {
		var inf domain.Influencer
		var tags pq.StringArray
		if err := rows.Scan(&inf.ID, &inf.RequestID, &inf.AuthUserID, &inf.Name, &inf.Email, &inf.Phone, &inf.InstagramID, &tags, &inf.JoinedAt); err != nil {
			return nil, err
		}
		inf.Tags = tags
		infs = append(infs, inf)
	}
	return infs, rows.Err()
}

func (r *influencerRepository) UpdateProfile(ctx context.Context, inf *domain.Influencer) error {
	query := `UPDATE influencers SET phone = $1, instagram_id = $2, tags = $3 WHERE influencer_id = $4`
	_, err := r.db.ExecContext(ctx, query, inf.Phone, inf.InstagramID, pq.Array(inf.Tags), inf.ID)
	if err != nil {
		return mapUniqueViolation(err)
	}
	return nil
}
