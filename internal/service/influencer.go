package service

import (
	"context"
	"strings"

	"influencer-platform-backend/internal/domain"
	"influencer-platform-backend/internal/repository"
)

type influencerService struct {
	influencerRepo repository.InfluencerRepository
}

func NewInfluencerService(influencerRepo repository.InfluencerRepository) InfluencerService {
	return &influencerService{influencerRepo: influencerRepo}
}

func (s *influencerService) GetProfile(ctx context.Context, authUserID string) (*domain.Influencer, error) {
	return s.influencerRepo.GetByAuthUserID(ctx, authUserID)
}

func (s *influencerService) UpdateProfile(ctx context.Context, authUserID string, patch ProfilePatch) (*domain.Influencer, error) {
	inf, err := s.influencerRepo.GetByAuthUserID(ctx, authUserID)
	if err != nil {
		return nil, err
	}

	if patch.Phone != nil {
		phone := strings.TrimSpace(*patch.Phone)
		if phone == "" {
			return nil, domain.NewValidationError("phone", "phone is required")
		}
		inf.Phone = phone
	}
	if patch.InstagramID != nil {
		inf.InstagramID = strings.TrimSpace(*patch.InstagramID)
	}
	if patch.Tags != nil {
		if err := validateTags(*patch.Tags); err != nil {
			return nil, err
		}
		inf.Tags = *patch.Tags
	}

	if err := s.influencerRepo.UpdateProfile(ctx, inf); err != nil {
		return nil, err
	}
	return inf, nil
}

func (s *influencerService) ListInfluencers(ctx context.Context) ([]domain.Influencer, error) {
	return s.influencerRepo.List(ctx)
}
