package service_test

import (
	"context"
	"testing"
	"time"

	"influencer-platform-backend/internal/domain"
	"influencer-platform-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newSignupService(tokenRepo *MockSignupTokenRepo, reqRepo *MockRequestRepo, infRepo *MockInfluencerRepo, provider *MockIdentityProvider) service.SignupService {
	return service.NewSignupService(tokenRepo, reqRepo, infRepo, provider, 8)
}

func liveToken() *domain.SignupToken {
	now := time.Now()
	return &domain.SignupToken{
		Token:     "tok-1",
		RequestID: "req-1",
		Email:     "asha@x.com",
		IssuedAt:  now.Add(-time.Hour),
		ExpiresAt: now.Add(23 * time.Hour),
		Used:      false,
	}
}

func approvedRequest() *domain.Request {
	approved := true
	req := pendingRequest()
	req.Approved = &approved
	return req
}

func TestSignupService_CompleteSignup(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		tokenRepo := new(MockSignupTokenRepo)
		reqRepo := new(MockRequestRepo)
		infRepo := new(MockInfluencerRepo)
		provider := new(MockIdentityProvider)
		svc := newSignupService(tokenRepo, reqRepo, infRepo, provider)

		tokenRepo.On("GetByToken", ctx, "tok-1").Return(liveToken(), nil).Once()
		reqRepo.On("GetByID", ctx, "req-1").Return(approvedRequest(), nil).Once()
		provider.On("CreateAccount", ctx, "asha@x.com", "password123").Return("uid-1", nil).Once()
		infRepo.On("Create", ctx, mock.MatchedBy(func(inf *domain.Influencer) bool {
			return inf.AuthUserID == "uid-1" && inf.RequestID == "req-1" &&
				inf.Email == "asha@x.com" && inf.Name == "Asha Rao"
		})).Return(nil).Once()
		tokenRepo.On("MarkUsed", ctx, "tok-1").Return(nil).Once()

		uid, err := svc.CompleteSignup(ctx, "tok-1", "password123")
		assert.NoError(t, err)
		assert.Equal(t, "uid-1", uid)

		tokenRepo.AssertExpectations(t)
		infRepo.AssertExpectations(t)
		provider.AssertExpectations(t)
	})

	t.Run("InvalidToken", func(t *testing.T) {
		tokenRepo := new(MockSignupTokenRepo)
		provider := new(MockIdentityProvider)
		svc := newSignupService(tokenRepo, new(MockRequestRepo), new(MockInfluencerRepo), provider)

		tokenRepo.On("GetByToken", ctx, "fake").Return(nil, domain.NewNotFoundError("signup token not found")).Once()

		uid, err := svc.CompleteSignup(ctx, "fake", "password123")
		assert.Empty(t, uid)
		assert.ErrorIs(t, err, service.ErrInvalidToken)
	})

	t.Run("AlreadyUsed", func(t *testing.T) {
		tokenRepo := new(MockSignupTokenRepo)
		provider := new(MockIdentityProvider)
		svc := newSignupService(tokenRepo, new(MockRequestRepo), new(MockInfluencerRepo), provider)

		used := liveToken()
		used.Used = true
		tokenRepo.On("GetByToken", ctx, "tok-1").Return(used, nil).Once()

		uid, err := svc.CompleteSignup(ctx, "tok-1", "password123")
		assert.Empty(t, uid)
		assert.ErrorIs(t, err, service.ErrTokenUsed)
		assert.True(t, domain.IsKind(err, domain.KindStateConflict))
		provider.AssertNotCalled(t, "CreateAccount", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Expired", func(t *testing.T) {
		tokenRepo := new(MockSignupTokenRepo)
		provider := new(MockIdentityProvider)
		svc := newSignupService(tokenRepo, new(MockRequestRepo), new(MockInfluencerRepo), provider)

		stale := liveToken()
		stale.IssuedAt = time.Now().Add(-25 * time.Hour)
		stale.ExpiresAt = time.Now().Add(-time.Hour)
		tokenRepo.On("GetByToken", ctx, "tok-1").Return(stale, nil).Once()

		uid, err := svc.CompleteSignup(ctx, "tok-1", "password123")
		assert.Empty(t, uid)
		assert.ErrorIs(t, err, service.ErrTokenExpired)
		assert.True(t, domain.IsKind(err, domain.KindExpired))
	})

	t.Run("WeakPassword", func(t *testing.T) {
		tokenRepo := new(MockSignupTokenRepo)
		provider := new(MockIdentityProvider)
		svc := newSignupService(tokenRepo, new(MockRequestRepo), new(MockInfluencerRepo), provider)

		tokenRepo.On("GetByToken", ctx, "tok-1").Return(liveToken(), nil).Once()

		uid, err := svc.CompleteSignup(ctx, "tok-1", "short")
		assert.Empty(t, uid)
		assert.True(t, domain.IsKind(err, domain.KindValidation))
		provider.AssertNotCalled(t, "CreateAccount", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("TokenForUnapprovedRequest", func(t *testing.T) {
		tokenRepo := new(MockSignupTokenRepo)
		reqRepo := new(MockRequestRepo)
		provider := new(MockIdentityProvider)
		svc := newSignupService(tokenRepo, reqRepo, new(MockInfluencerRepo), provider)

		tokenRepo.On("GetByToken", ctx, "tok-1").Return(liveToken(), nil).Once()
		reqRepo.On("GetByID", ctx, "req-1").Return(pendingRequest(), nil).Once()

		uid, err := svc.CompleteSignup(ctx, "tok-1", "password123")
		assert.Empty(t, uid)
		assert.True(t, domain.IsKind(err, domain.KindDependency))
		provider.AssertNotCalled(t, "CreateAccount", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("ProviderFailureSurfacesReason", func(t *testing.T) {
		tokenRepo := new(MockSignupTokenRepo)
		reqRepo := new(MockRequestRepo)
		infRepo := new(MockInfluencerRepo)
		provider := new(MockIdentityProvider)
		svc := newSignupService(tokenRepo, reqRepo, infRepo, provider)

		tokenRepo.On("GetByToken", ctx, "tok-1").Return(liveToken(), nil).Once()
		reqRepo.On("GetByID", ctx, "req-1").Return(approvedRequest(), nil).Once()
		provider.On("CreateAccount", ctx, "asha@x.com", "password123").
			Return("", domain.NewDependencyError("email already exists", nil)).Once()

		uid, err := svc.CompleteSignup(ctx, "tok-1", "password123")
		assert.Empty(t, uid)
		assert.EqualError(t, err, "email already exists")
		infRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		tokenRepo.AssertNotCalled(t, "MarkUsed", mock.Anything, mock.Anything)
	})

	t.Run("ProfileFailureLeavesTokenRedeemable", func(t *testing.T) {
		tokenRepo := new(MockSignupTokenRepo)
		reqRepo := new(MockRequestRepo)
		infRepo := new(MockInfluencerRepo)
		provider := new(MockIdentityProvider)
		svc := newSignupService(tokenRepo, reqRepo, infRepo, provider)

		tokenRepo.On("GetByToken", ctx, "tok-1").Return(liveToken(), nil).Once()
		reqRepo.On("GetByID", ctx, "req-1").Return(approvedRequest(), nil).Once()
		provider.On("CreateAccount", ctx, "asha@x.com", "password123").Return("uid-1", nil).Once()
		infRepo.On("Create", ctx, mock.Anything).Return(assert.AnError).Once()

		uid, err := svc.CompleteSignup(ctx, "tok-1", "password123")
		assert.Empty(t, uid)
		assert.True(t, domain.IsKind(err, domain.KindDependency))
		// The token is not burned, so a retry path remains open.
		tokenRepo.AssertNotCalled(t, "MarkUsed", mock.Anything, mock.Anything)
	})
}

func TestSignupService_RedeemToken(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		tokenRepo := new(MockSignupTokenRepo)
		svc := newSignupService(tokenRepo, new(MockRequestRepo), new(MockInfluencerRepo), new(MockIdentityProvider))

		tokenRepo.On("GetByToken", ctx, "tok-1").Return(liveToken(), nil).Once()

		preview, err := svc.RedeemToken(ctx, "tok-1")
		assert.NoError(t, err)
		assert.Equal(t, "asha@x.com", preview.Email)
		assert.Equal(t, "req-1", preview.RequestID)
		tokenRepo.AssertNotCalled(t, "MarkUsed", mock.Anything, mock.Anything)
	})

	t.Run("Invalid", func(t *testing.T) {
		tokenRepo := new(MockSignupTokenRepo)
		svc := newSignupService(tokenRepo, new(MockRequestRepo), new(MockInfluencerRepo), new(MockIdentityProvider))

		tokenRepo.On("GetByToken", ctx, "fake").Return(nil, domain.NewNotFoundError("signup token not found")).Once()

		preview, err := svc.RedeemToken(ctx, "fake")
		assert.Nil(t, preview)
		assert.ErrorIs(t, err, service.ErrInvalidToken)
	})

	t.Run("Expired", func(t *testing.T) {
		tokenRepo := new(MockSignupTokenRepo)
		svc := newSignupService(tokenRepo, new(MockRequestRepo), new(MockInfluencerRepo), new(MockIdentityProvider))

		stale := liveToken()
		stale.ExpiresAt = time.Now().Add(-time.Minute)
		tokenRepo.On("GetByToken", ctx, "tok-1").Return(stale, nil).Once()

		preview, err := svc.RedeemToken(ctx, "tok-1")
		assert.Nil(t, preview)
		assert.ErrorIs(t, err, service.ErrTokenExpired)
	})
}
