package service

import (
	"context"
	"fmt"
	"time"

	"influencer-platform-backend/internal/domain"
	"influencer-platform-backend/internal/identity"
	"influencer-platform-backend/internal/logger"
	"influencer-platform-backend/internal/repository"
)

var (
	ErrInvalidToken = domain.NewValidationError("token", "invalid signup token")
	ErrTokenUsed    = domain.NewStateConflictError("token already used")
	ErrTokenExpired = domain.NewExpiredError("token expired")
)

type signupService struct {
	tokenRepo      repository.SignupTokenRepository
	reqRepo        repository.RequestRepository
	influencerRepo repository.InfluencerRepository
	provider       identity.Provider
	passwordMinLen int
}

func NewSignupService(
	tokenRepo repository.SignupTokenRepository,
	reqRepo repository.RequestRepository,
	influencerRepo repository.InfluencerRepository,
	provider identity.Provider,
	passwordMinLen int,
) SignupService {
	return &signupService{
		tokenRepo:      tokenRepo,
		reqRepo:        reqRepo,
		influencerRepo: influencerRepo,
		provider:       provider,
		passwordMinLen: passwordMinLen,
	}
}

// RedeemToken is a pure preview: it tells the signup form which email the
// token belongs to without burning anything.
func (s *signupService) RedeemToken(ctx context.Context, token string) (*TokenPreview, error) {
	t, err := s.tokenRepo.GetByToken(ctx, token)
	if err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	if t.Expired(time.Now()) {
		return nil, ErrTokenExpired
	}
	return &TokenPreview{Email: t.Email, RequestID: t.RequestID}, nil
}

// CompleteSignup provisions the identity and profile for an approved
// applicant. The token is marked used last: a failure at any earlier step
// leaves it redeemable for a retry, and the one hard-to-undo step (identity
// creation) happens before the token is burned.
func (s *signupService) CompleteSignup(ctx context.Context, token, password string) (string, error) {
	t, err := s.tokenRepo.GetByToken(ctx, token)
	if err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			return "", ErrInvalidToken
		}
		return "", err
	}
	if t.Used {
		return "", ErrTokenUsed
	}
	if t.Expired(time.Now()) {
		return "", ErrTokenExpired
	}
	if len(password) < s.passwordMinLen {
		return "", domain.NewValidationError("password", fmt.Sprintf("password must be at least %d characters", s.passwordMinLen))
	}

	req, err := s.reqRepo.GetByID(ctx, t.RequestID)
	if err != nil || req.Decision() != domain.DecisionApproved {
		// Tokens are only issued for approved requests; hitting this means the
		// stores disagree, which is not a user-correctable condition.
		return "", domain.NewDependencyError("signup token references a non-approved request", err)
	}

	uid, err := s.provider.CreateAccount(ctx, t.Email, password)
	if err != nil {
		return "", err
	}

	inf := &domain.Influencer{
		RequestID:   req.ID,
		AuthUserID:  uid,
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		InstagramID: req.InstagramID,
		Tags:        req.Tags,
	}
	if err := s.influencerRepo.Create(ctx, inf); err != nil {
		// The identity exists but is unlinked; log both ids for reconciliation.
		logger.Error("profile creation failed after identity creation",
			"auth_user_id", uid, "request_id", req.ID, "error", err)
		return "", domain.NewDependencyError("failed to create influencer profile", err)
	}

	if err := s.tokenRepo.MarkUsed(ctx, t.Token); err != nil {
		// Signup already succeeded; a stale-but-unusable token is the lesser
		// problem (a retry would fail on the duplicate email).
		logger.Error("failed to mark signup token used", "request_id", req.ID, "error", err)
	}

	return uid, nil
}
