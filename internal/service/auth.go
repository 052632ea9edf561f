package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"influencer-platform-backend/internal/domain"
	"influencer-platform-backend/internal/identity"
	"influencer-platform-backend/internal/repository"
	"influencer-platform-backend/internal/security"
)

type authService struct {
	adminRepo      repository.AdminRepository
	influencerRepo repository.InfluencerRepository
	provider       identity.Provider
	tokenManager   security.TokenManager
}

func NewAuthService(
	adminRepo repository.AdminRepository,
	influencerRepo repository.InfluencerRepository,
	provider identity.Provider,
	tokenManager security.TokenManager,
) AuthService {
	return &authService{
		adminRepo:      adminRepo,
		influencerRepo: influencerRepo,
		provider:       provider,
		tokenManager:   tokenManager,
	}
}

// AdminLogin checks credentials against the admins table and issues a session
// JWT. Administrators are not identity-provider accounts.
func (s *authService) AdminLogin(ctx context.Context, email, password string) (string, *domain.Admin, error) {
	admin, err := s.adminRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", nil, domain.NewAuthorizationError("invalid admin credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return "", nil, domain.NewAuthorizationError("invalid admin credentials")
	}

	token, err := s.tokenManager.GenerateAdminToken(admin.ID, admin.Email)
	if err != nil {
		return "", nil, domain.NewDependencyError("failed to issue admin token", err)
	}
	return token, admin, nil
}

// InfluencerLogin delegates the password check to the identity provider and
// returns its token together with the linked profile.
func (s *authService) InfluencerLogin(ctx context.Context, email, password string) (string, *domain.Influencer, error) {
	idToken, uid, err := s.provider.Authenticate(ctx, email, password)
	if err != nil {
		return "", nil, err
	}

	inf, err := s.influencerRepo.GetByAuthUserID(ctx, uid)
	if err != nil {
		return "", nil, err
	}
	return idToken, inf, nil
}
