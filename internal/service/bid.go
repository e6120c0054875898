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
	minMessageLen = 10
	maxMessageLen = 1000
	minPrice      = 1
	maxPrice      = 1_000_000
)

type BidService struct {
	bidRepo repo.Bid
	gigRepo repo.Gig
}

func NewBidService(repos *repo.Repositories) *BidService {
	return &BidService{
		bidRepo: repos.Bid,
		gigRepo: repos.Gig,
	}
}

func validateCreateBidInput(input *entity.CreateBidInput) error {
	message := strings.TrimSpace(input.Message)
	if len(message) < minMessageLen || len(message) > maxMessageLen {
		return fmt.Errorf("%w: message must be %d-%d characters", ErrValidation, minMessageLen, maxMessageLen)
	}

	if input.Price < minPrice || input.Price > maxPrice {
		return fmt.Errorf("%w: price must be between %d and %d", ErrValidation, minPrice, maxPrice)
	}

	input.Message = message

	return nil
}

func (s *BidService) CreateBid(ctx context.Context, input *entity.CreateBidInput) (*entity.BidOutputModel, error) {
	if err := validateCreateBidInput(input); err != nil {
		return nil, err
	}

	gig, err := s.gigRepo.GetGigById(ctx, input.GigId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrGigNotFound
		}

		return nil, err
	}

	if gig.Status != common.GigOpen {
		return nil, ErrGigNotOpen
	}

	if gig.OwnerId.String() == input.FreelancerId {
		return nil, ErrOwnBidForbidden
	}

	// Duplicate detection is left to the store's unique index so a
	// concurrent pair of submissions still yields exactly one bid.
	id, err := s.bidRepo.CreateBid(ctx, input)
	if err != nil {
		if errors.Is(err, repo_errors.ErrAlreadyExists) {
			return nil, ErrBidAlreadyExists
		}

		return nil, err
	}

	bid, err := s.bidRepo.GetBidById(ctx, id.String())
	if err != nil {
		return nil, err
	}

	return mapBid(bid), nil
}

func (s *BidService) GetGigBids(ctx context.Context, gigId string, requesterId string, pg *entity.PaginationInput) ([]entity.BidOutputModel, error) {
	gig, err := s.gigRepo.GetGigById(ctx, gigId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrGigNotFound
		}

		return nil, err
	}

	if gig.OwnerId.String() != requesterId {
		return nil, ErrNotGigOwner
	}

	bids, err := s.bidRepo.GetGigBids(ctx, gigId, pg)
	if err != nil {
		return nil, err
	}

	return mapBids(bids), nil
}
