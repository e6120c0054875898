package service

import (
	"context"
	"errors"
	"fmt"
	"gigflow/internal/common"
	"gigflow/internal/entity"
	"gigflow/internal/repo"
	"gigflow/internal/repo/repo_errors"
	"strings"
)

const (
	minTitleLen       = 5
	maxTitleLen       = 100
	minDescriptionLen = 20
	maxDescriptionLen = 2000
	minBudget         = 1
	maxBudget         = 1_000_000
)

type GigService struct {
	gigRepo repo.Gig
}

func NewGigService(repos *repo.Repositories) *GigService {
	return &GigService{gigRepo: repos.Gig}
}

func validateCreateGigInput(input *entity.CreateGigInput) error {
	title := strings.TrimSpace(input.Title)
	if len(title) < minTitleLen || len(title) > maxTitleLen {
		return fmt.Errorf("%w: title must be %d-%d characters", ErrValidation, minTitleLen, maxTitleLen)
	}

	description := strings.TrimSpace(input.Description)
	if len(description) < minDescriptionLen || len(description) > maxDescriptionLen {
		return fmt.Errorf("%w: description must be %d-%d characters", ErrValidation, minDescriptionLen, maxDescriptionLen)
	}

	if input.Budget < minBudget || input.Budget > maxBudget {
		return fmt.Errorf("%w: budget must be between %d and %d", ErrValidation, minBudget, maxBudget)
	}

	input.Title = title
	input.Description = description

	return nil
}

func (s *GigService) CreateGig(ctx context.Context, input *entity.CreateGigInput) (*entity.GigOutputModel, error) {
	if err := validateCreateGigInput(input); err != nil {
		return nil, err
	}

	id, err := s.gigRepo.CreateGig(ctx, input)
	if err != nil {
		return nil, err
	}

	gig, err := s.gigRepo.GetGigById(ctx, id.String())
	if err != nil {
		return nil, err
	}

	return mapGig(gig), nil
}

func (s *GigService) GetGigById(ctx context.Context, id string) (*entity.GigOutputModel, error) {
	gig, err := s.gigRepo.GetGigById(ctx, id)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrGigNotFound
		}

		return nil, err
	}

	return mapGig(gig), nil
}

func (s *GigService) GetGigs(ctx context.Context, filter *entity.GigFilter, pg *entity.PaginationInput) ([]entity.GigOutputModel, error) {
	if filter.Status != "" && !common.IsGigStatus(filter.Status) {
		return nil, fmt.Errorf("%w: status must be %s or %s", ErrValidation, common.GigOpen, common.GigAssigned)
	}

	gigs, err := s.gigRepo.GetGigs(ctx, filter, pg)
	if err != nil {
		return nil, err
	}

	return mapGigs(gigs), nil
}
