package service

import (
	"context"
	"gigflow/internal/entity"
	"gigflow/internal/repo"
)

type Diagnostics interface {
	Ping() error
}

type Auth interface {
	Register(ctx context.Context, name, email, password string) (*entity.AuthResult, error)
	Login(ctx context.Context, email, password string) (*entity.AuthResult, error)
	GetUserById(ctx context.Context, id string) (*entity.UserOutputModel, error)
}

type Gig interface {
	CreateGig(ctx context.Context, input *entity.CreateGigInput) (*entity.GigOutputModel, error)
	GetGigById(ctx context.Context, id string) (*entity.GigOutputModel, error)
	GetGigs(ctx context.Context, filter *entity.GigFilter, pg *entity.PaginationInput) ([]entity.GigOutputModel, error)
}

type Bid interface {
	CreateBid(ctx context.Context, input *entity.CreateBidInput) (*entity.BidOutputModel, error)
	GetGigBids(ctx context.Context, gigId string, requesterId string, pg *entity.PaginationInput) ([]entity.BidOutputModel, error)
}

type Hire interface {
	Hire(ctx context.Context, bidId string, requesterId string) (*entity.HireResult, error)
}

// HireNotifier pushes a post-commit event to the hired freelancer's live
// connections. Best effort: an error never unwinds the hire itself.
type HireNotifier interface {
	NotifyHired(userId string, event *entity.HiredEvent) error
}

type Services struct {
	Diagnostics Diagnostics
	Auth        Auth
	Gig         Gig
	Bid         Bid
	Hire        Hire
}

func NewServices(repos *repo.Repositories, notifier HireNotifier, jwtSecret string) *Services {
	return &Services{
		Diagnostics: NewDiagnosticsService(repos),
		Auth:        NewAuthService(repos, jwtSecret),
		Gig:         NewGigService(repos),
		Bid:         NewBidService(repos),
		Hire:        NewHireService(repos, notifier),
	}
}
