package service

import (
	"context"
	"regexp"
	"strings"

	"influencer-platform-backend/internal/domain"
	"influencer-platform-backend/internal/repository"
)

var tagPattern = regexp.MustCompile(`^[A-Za-z ]+$`)

type requestService struct {
	reqRepo repository.RequestRepository
}

func NewRequestService(reqRepo repository.RequestRepository) RequestService {
	return &requestService{reqRepo: reqRepo}
}

func (s *requestService) Submit(ctx context.Context, name, email, phone, instagramID string, tags []string) (*domain.Request, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	phone = strings.TrimSpace(phone)

	if name == "" {
		return nil, domain.NewValidationError("name", "name is required")
	}
	if email == "" {
		return nil, domain.NewValidationError("email", "email is required")
	}
	if phone == "" {
		return nil, domain.NewValidationError("phone", "phone is required")
	}
	if err := validateTags(tags); err != nil {
		return nil, err
	}

	req := &domain.Request{
		Name:        name,
		Email:       email,
		Phone:       phone,
		InstagramID: strings.TrimSpace(instagramID),
		Tags:        tags,
	}
	if err := s.reqRepo.Create(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

func validateTags(tags []string) error {
	if len(tags) > domain.MaxTags {
		return domain.NewValidationError("tags", "maximum 5 tags allowed")
	}
	for _, tag := range tags {
		if !tagPattern.MatchString(tag) {
			return domain.NewValidationError("tags", "tags may only contain letters")
		}
	}
	return nil
}
