package repo

import (
	"context"
	"gigflow/internal/entity"
	"gigflow/internal/repo/pgdb"
	"gigflow/pkg/postgres"

	"github.com/google/uuid"
)

type Diagnostics interface {
	Ping() error
}

type User interface {
	CreateUser(ctx context.Context, input *entity.CreateUserInput) (uuid.UUID, error)
	GetUserById(ctx context.Context, id string) (*entity.User, error)
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
}

type Gig interface {
	CreateGig(ctx context.Context, input *entity.CreateGigInput) (uuid.UUID, error)
	GetGigById(ctx context.Context, id string) (*entity.Gig, error)
	GetGigs(ctx context.Context, filter *entity.GigFilter, pg *entity.PaginationInput) ([]entity.Gig, error)
}

type Bid interface {
	CreateBid(ctx context.Context, input *entity.CreateBidInput) (uuid.UUID, error)
	GetBidById(ctx context.Context, id string) (*entity.Bid, error)
	GetGigBids(ctx context.Context, gigId string, pg *entity.PaginationInput) ([]entity.Bid, error)

	// HireBid runs the whole hire transition as one transaction: gig
	// open -> assigned guarded by a conditional update, the winning bid
	// pending -> hired, every other still-pending bid on the gig ->
	// rejected. Returns repo_errors.ErrNoRowsMatched when the guard
	// fails, leaving no partial state behind.
	HireBid(ctx context.Context, gigId uuid.UUID, bidId uuid.UUID) error
}

type Repositories struct {
	Diagnostics
	User
	Gig
	Bid
}

func NewRepositories(p *postgres.Postgres) *Repositories {
	return &Repositories{
		Diagnostics: pgdb.NewDiagnosticsRepo(p),
		User:        pgdb.NewUserRepo(p),
		Gig:         pgdb.NewGigRepo(p),
		Bid:         pgdb.NewBidRepo(p),
	}
}
