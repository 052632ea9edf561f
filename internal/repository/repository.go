package repository

import (
	"context"
	"time"

	"influencer-platform-backend/internal/domain"
)

type RequestRepository interface {
	Create(ctx context.Context, req *domain.Request) error
	GetByID(ctx context.Context, id string) (*domain.Request, error)
	List(ctx context.Context) ([]domain.Request, error)

	// MarkApproved and MarkRejected are conditional updates: they only touch a
	// row whose decision is still pending and return a state-conflict error on
	// zero rows affected, so concurrent decisions collapse into the store's
	// atomicity.
	MarkApproved(ctx context.Context, id, adminID string, decidedAt time.Time) error
	MarkRejected(ctx context.Context, id, adminID string, decidedAt time.Time) error

	SetEmailSent(ctx context.Context, id string, sent bool) error
}

type SignupTokenRepository interface {
	Create(ctx context.Context, token *domain.SignupToken) error
	GetByToken(ctx context.Context, token string) (*domain.SignupToken, error)
	MarkUsed(ctx context.Context, token string) error
	DeleteByToken(ctx context.Context, token string) error
	DeleteExpiredUnused(ctx context.Context, before time.Time) (int64, error)
}

type InfluencerRepository interface {
	Create(ctx context.Context, inf *domain.Influencer) error
	GetByAuthUserID(ctx context.Context, authUserID string) (*domain.Influencer, error)
	List(ctx context.Context) ([]domain.Influencer, error)
	UpdateProfile(ctx context.Context, inf *domain.Influencer) error
}

type AdminRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Admin, error)
	GetByEmail(ctx context.Context, email string) (*domain.Admin, error)
}
