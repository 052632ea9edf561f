package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"time"

	"influencer-platform-backend/internal/domain"
	"influencer-platform-backend/internal/logger"
	"influencer-platform-backend/internal/repository"
)

type decisionService struct {
	reqRepo   repository.RequestRepository
	tokenRepo repository.SignupTokenRepository
	adminRepo repository.AdminRepository
	emailSvc  EmailService
	tokenTTL  time.Duration
}

func NewDecisionService(
	reqRepo repository.RequestRepository,
	tokenRepo repository.SignupTokenRepository,
	adminRepo repository.AdminRepository,
	emailSvc EmailService,
	tokenTTL time.Duration,
) DecisionService {
	return &decisionService{
		reqRepo:   reqRepo,
		tokenRepo: tokenRepo,
		adminRepo: adminRepo,
		emailSvc:  emailSvc,
		tokenTTL:  tokenTTL,
	}
}

// Decide runs the terminal pending→approved or pending→rejected transition.
// Token issuance happens before the decision commit so the only failure window
// that could leave inconsistent state is closed by deleting the token; once
// the commit lands, a failed notification only degrades email_sent.
func (s *decisionService) Decide(ctx context.Context, requestID string, action DecisionAction, adminID string) (*DecisionResult, error) {
	if action != ActionApprove && action != ActionReject {
		return nil, domain.NewValidationError("action", "invalid action")
	}

	admin, err := s.adminRepo.GetByID(ctx, adminID)
	if err != nil || admin == nil {
		return nil, domain.NewAuthorizationError("not an administrator")
	}

	req, err := s.reqRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	// Early guard; the conditional update below re-checks atomically.
	if req.Decision() != domain.DecisionPending {
		return nil, domain.NewStateConflictError("action already taken")
	}

	if action == ActionApprove {
		return s.approve(ctx, req, adminID)
	}
	return s.reject(ctx, req, adminID)
}

func (s *decisionService) approve(ctx context.Context, req *domain.Request, adminID string) (*DecisionResult, error) {
	token, err := newSignupToken(req, s.tokenTTL)
	if err != nil {
		return nil, domain.NewDependencyError("failed to generate signup token", err)
	}
	if err := s.tokenRepo.Create(ctx, token); err != nil {
		// No side effects yet; the request stays pending.
		return nil, domain.NewDependencyError("failed to create signup token", err)
	}

	if err := s.reqRepo.MarkApproved(ctx, req.ID, adminID, time.Now()); err != nil {
		// Compensate: the token must not outlive a failed decision commit.
		if delErr := s.tokenRepo.DeleteByToken(ctx, token.Token); delErr != nil {
			logger.Error("failed to delete orphaned signup token", "request_id", req.ID, "error", delErr)
		}
		if domain.IsKind(err, domain.KindStateConflict) {
			return nil, err
		}
		return nil, domain.NewDependencyError("failed to mark request approved", err)
	}

	sent := s.notify(ctx, req.ID, func() error {
		return s.emailSvc.SendApprovalNotice(ctx, req.Email, req.Name, token.Token)
	})
	return &DecisionResult{Status: domain.DecisionApproved, EmailSent: sent}, nil
}

func (s *decisionService) reject(ctx context.Context, req *domain.Request, adminID string) (*DecisionResult, error) {
	if err := s.reqRepo.MarkRejected(ctx, req.ID, adminID, time.Now()); err != nil {
		if domain.IsKind(err, domain.KindStateConflict) {
			return nil, err
		}
		return nil, domain.NewDependencyError("failed to mark request rejected", err)
	}

	sent := s.notify(ctx, req.ID, func() error {
		return s.emailSvc.SendRejectionNotice(ctx, req.Email, req.Name)
	})
	return &DecisionResult{Status: domain.DecisionRejected, EmailSent: sent}, nil
}

// notify runs a best-effort notification and records the outcome. The decision
// is already final here, so neither a send failure nor a failed bookkeeping
// write propagates.
func (s *decisionService) notify(ctx context.Context, requestID string, send func() error) bool {
	err := send()
	if err != nil {
		logger.Error("notification failed", "request_id", requestID, "error", err)
	}
	sent := err == nil
	if err := s.reqRepo.SetEmailSent(ctx, requestID, sent); err != nil {
		logger.Error("failed to record notification outcome", "request_id", requestID, "error", err)
	}
	return sent
}

func (s *decisionService) ListRequests(ctx context.Context) ([]domain.Request, error) {
	return s.reqRepo.List(ctx)
}

func newSignupToken(req *domain.Request, ttl time.Duration) (*domain.SignupToken, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return nil, err
	}
	now := time.Now()
	return &domain.SignupToken{
		Token:     hex.EncodeToString(buf),
		RequestID: req.ID,
		Email:     req.Email,
		IssuedAt:  now,
		ExpiresAt: now.Add(ttl),
		Used:      false,
	}, nil
}
