package http_test

import (
	"context"

	"influencer-platform-backend/internal/domain"
	"influencer-platform-backend/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockRequestService struct {
	mock.Mock
}

func (m *MockRequestService) Submit(ctx context.Context, name, email, phone, instagramID string, tags []string) (*domain.Request, error) {
	args := m.Called(ctx, name, email, phone, instagramID, tags)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Request), args.Error(1)
}

type MockDecisionService struct {
	mock.Mock
}

func (m *MockDecisionService) Decide(ctx context.Context, requestID string, action service.DecisionAction, adminID string) (*service.DecisionResult, error) {
	args := m.Called(ctx, requestID, action, adminID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DecisionResult), args.Error(1)
}

func (m *MockDecisionService) ListRequests(ctx context.Context) ([]domain.Request, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Request), args.Error(1)
}

type MockSignupService struct {
	mock.Mock
}

func (m *MockSignupService) RedeemToken(ctx context.Context, token string) (*service.TokenPreview, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.TokenPreview), args.Error(1)
}

func (m *MockSignupService) CompleteSignup(ctx context.Context, token, password string) (string, error) {
	args := m.Called(ctx, token, password)
	return args.String(0), args.Error(1)
}

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) AdminLogin(ctx context.Context, email, password string) (string, *domain.Admin, error) {
	args := m.Called(ctx, email, password)
	var admin *domain.Admin
	if args.Get(1) != nil {
		admin = args.Get(1).(*domain.Admin)
	}
	return args.String(0), admin, args.Error(2)
}

func (m *MockAuthService) InfluencerLogin(ctx context.Context, email, password string) (string, *domain.Influencer, error) {
	args := m.Called(ctx, email, password)
	var inf *domain.Influencer
	if args.Get(1) != nil {
		inf = args.Get(1).(*domain.Influencer)
	}
	return args.String(0), inf, args.Error(2)
}

type MockInfluencerService struct {
	mock.Mock
}

func (m *MockInfluencerService) GetProfile(ctx context.Context, authUserID string) (*domain.Influencer, error) {
	args := m.Called(ctx, authUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Influencer), args.Error(1)
}

func (m *MockInfluencerService) UpdateProfile(ctx context.Context, authUserID string, patch service.ProfilePatch) (*domain.Influencer, error) {
	args := m.Called(ctx, authUserID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Influencer), args.Error(1)
}

func (m *MockInfluencerService) ListInfluencers(ctx context.Context) ([]domain.Influencer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Influencer), args.Error(1)
}

type MockAdminRepo struct {
	mock.Mock
}

func (m *MockAdminRepo) GetByID(ctx context.Context, id string) (*domain.Admin, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Admin), args.Error(1)
}

func (m *MockAdminRepo) GetByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Admin), args.Error(1)
}

type MockIdentityProvider struct {
	mock.Mock
}

func (m *MockIdentityProvider) CreateAccount(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

func (m *MockIdentityProvider) Authenticate(ctx context.Context, email, password string) (string, string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockIdentityProvider) VerifyIDToken(ctx context.Context, idToken string) (string, error) {
	args := m.Called(ctx, idToken)
	return args.String(0), args.Error(1)
}
