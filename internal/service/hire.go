package service

import (
	"context"
	"errors"
	"fmt"
	"gigflow/internal/common"
	"gigflow/internal/entity"
	"gigflow/internal/logger"
	"gigflow/internal/repo"
	"gigflow/internal/repo/repo_errors"
	"time"
)

type HireService struct {
	bidRepo  repo.Bid
	gigRepo  repo.Gig
	userRepo repo.User
	notifier HireNotifier
}

func NewHireService(repos *repo.Repositories, notifier HireNotifier) *HireService {
	return &HireService{
		bidRepo:  repos.Bid,
		gigRepo:  repos.Gig,
		userRepo: repos.User,
		notifier: notifier,
	}
}

// Hire commits the hiring decision for one bid: the gig becomes assigned,
// the bid becomes hired, every other pending bid on the gig becomes
// rejected, all in one transaction. Among concurrent calls for the same
// gig exactly one succeeds; the rest get ErrGigAlreadyAssigned.
func (s *HireService) Hire(ctx context.Context, bidId string, requesterId string) (*entity.HireResult, error) {
	bid, err := s.bidRepo.GetBidById(ctx, bidId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrBidNotFound
		}

		return nil, err
	}

	gig, err := s.gigRepo.GetGigById(ctx, bid.GigId.String())
	if err != nil {
		return nil, err
	}

	if gig.OwnerId.String() != requesterId {
		return nil, ErrNotGigOwner
	}

	if gig.Status != common.GigOpen {
		return nil, ErrGigAlreadyAssigned
	}

	err = s.bidRepo.HireBid(ctx, gig.Id, bid.Id)
	if err != nil {
		// The gig was open at the read above but another hire committed
		// first. The loser is told the same thing as a late caller.
		if errors.Is(err, repo_errors.ErrNoRowsMatched) {
			return nil, ErrGigAlreadyAssigned
		}

		return nil, err
	}

	bid, err = s.bidRepo.GetBidById(ctx, bidId)
	if err != nil {
		return nil, err
	}

	freelancer, err := s.userRepo.GetUserById(ctx, bid.FreelancerId.String())
	if err != nil {
		return nil, err
	}

	s.notifyHired(freelancer.Id.String(), gig)

	return &entity.HireResult{
		Bid:     mapBid(bid),
		Message: fmt.Sprintf("%s has been hired successfully!", freelancer.Name),
	}, nil
}

// notifyHired runs strictly after commit. The hire is already durable, so
// a delivery failure is logged and swallowed, never propagated.
func (s *HireService) notifyHired(freelancerId string, gig *entity.Gig) {
	event := &entity.HiredEvent{
		Message:   fmt.Sprintf("You have been hired for %q!", gig.Title),
		GigId:     gig.Id.String(),
		GigTitle:  gig.Title,
		Timestamp: time.Now(),
	}

	if err := s.notifier.NotifyHired(freelancerId, event); err != nil {
		logger.Error("hire notification failed",
			"freelancer_id", freelancerId,
			"gig_id", gig.Id.String(),
			"error", err.Error(),
		)
	}
}
