package service

import (
	"context"

	"influencer-platform-backend/internal/domain"
)

type DecisionAction string

const (
	ActionApprove DecisionAction = "approve"
	ActionReject  DecisionAction = "reject"
)

// DecisionResult reports the committed decision and whether the best-effort
// notification went out.
type DecisionResult struct {
	Status    domain.Decision `json:"status"`
	EmailSent bool            `json:"email_sent"`
}

// TokenPreview is the side-effect-free view of a signup token, used by the
// signup form to learn the applicant's email before asking for a password.
type TokenPreview struct {
	Email     string `json:"email"`
	RequestID string `json:"request_id"`
}

// ProfilePatch carries optional profile updates; nil fields are untouched.
type ProfilePatch struct {
	Phone       *string
	InstagramID *string
	Tags        *[]string
}

type RequestService interface {
	Submit(ctx context.Context, name, email, phone, instagramID string, tags []string) (*domain.Request, error)
}

type DecisionService interface {
	Decide(ctx context.Context, requestID string, action DecisionAction, adminID string) (*DecisionResult, error)
	ListRequests(ctx context.Context) ([]domain.Request, error)
}

type SignupService interface {
	RedeemToken(ctx context.Context, token string) (*TokenPreview, error)
	CompleteSignup(ctx context.Context, token, password string) (string, error)
}

type AuthService interface {
	AdminLogin(ctx context.Context, email, password string) (string, *domain.Admin, error)
	InfluencerLogin(ctx context.Context, email, password string) (string, *domain.Influencer, error)
}

type InfluencerService interface {
	GetProfile(ctx context.Context, authUserID string) (*domain.Influencer, error)
	UpdateProfile(ctx context.Context, authUserID string, patch ProfilePatch) (*domain.Influencer, error)
	ListInfluencers(ctx context.Context) ([]domain.Influencer, error)
}

// EmailService is the best-effort notifier. Callers must downgrade a returned
// error to a recorded outcome; delivery failure never blocks a decision.
type EmailService interface {
	SendApprovalNotice(ctx context.Context, email, name, token string) error
	SendRejectionNotice(ctx context.Context, email, name string) error
}
