package service_test

import (
	"context"
	"time"

	"influencer-platform-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockRequestRepo
type MockRequestRepo struct {
	mock.Mock
}

func (m *MockRequestRepo) Create(ctx context.Context, req *domain.Request) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
func (m *MockRequestRepo) GetByID(ctx context.Context, id string) (*domain.Request, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Request), args.Error(1)
}
func (m *MockRequestRepo) List(ctx context.Context) ([]domain.Request, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Request), args.Error(1)
}
func (m *MockRequestRepo) MarkApproved(ctx context.Context, id, adminID string, decidedAt time.Time) error {
	args := m.Called(ctx, id, adminID, decidedAt)
	return args.Error(0)
}
func (m *MockRequestRepo) MarkRejected(ctx context.Context, id, adminID string, decidedAt time.Time) error {
	args := m.Called(ctx, id, adminID, decidedAt)
	return args.Error(0)
}
func (m *MockRequestRepo) SetEmailSent(ctx context.Context, id string, sent bool) error {
	args := m.Called(ctx, id, sent)
	return args.Error(0)
}

// MockSignupTokenRepo
type MockSignupTokenRepo struct {
	mock.Mock
}

func (m *MockSignupTokenRepo) Create(ctx context.Context, token *domain.SignupToken) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}
func (m *MockSignupTokenRepo) GetByToken(ctx context.Context, token string) (*domain.SignupToken, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SignupToken), args.Error(1)
}
func (m *MockSignupTokenRepo) MarkUsed(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}
func (m *MockSignupTokenRepo) DeleteByToken(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}
func (m *MockSignupTokenRepo) DeleteExpiredUnused(ctx context.Context, before time.Time) (int64, error) {
	args := m.Called(ctx, before)
	return args.Get(0).(int64), args.Error(1)
}

// MockInfluencerRepo
type MockInfluencerRepo struct {
	mock.Mock
}

func (m *MockInfluencerRepo) Create(ctx context.Context, inf *domain.Influencer) error {
	args := m.Called(ctx, inf)
	return args.Error(0)
}
func (m *MockInfluencerRepo) GetByAuthUserID(ctx context.Context, authUserID string) (*domain.Influencer, error) {
	args := m.Called(ctx, authUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Influencer), args.Error(1)
}
func (m *MockInfluencerRepo) List(ctx context.Context) ([]domain.Influencer, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Influencer), args.Error(1)
}
func (m *MockInfluencerRepo) UpdateProfile(ctx context.Context, inf *domain.Influencer) error {
	args := m.Called(ctx, inf)
	return args.Error(0)
}

// MockAdminRepo
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

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendApprovalNotice(ctx context.Context, email, name, token string) error {
	args := m.Called(ctx, email, name, token)
	return args.Error(0)
}
func (m *MockEmailService) SendRejectionNotice(ctx context.Context, email, name string) error {
	args := m.Called(ctx, email, name)
	return args.Error(0)
}

// MockIdentityProvider
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
