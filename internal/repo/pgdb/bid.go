package pgdb

import (
	"context"
	"database/sql"
	"errors"
	"gigflow/internal/common"
	"gigflow/internal/entity"
	"gigflow/internal/repo/repo_errors"
	"gigflow/pkg/postgres"
	"time"

	"github.com/google/uuid"
)

type BidRepo struct {
	*postgres.Postgres
}

func NewBidRepo(pgdb *postgres.Postgres) *BidRepo {
	return &BidRepo{pgdb}
}

func (r *BidRepo) CreateBid(ctx context.Context, input *entity.CreateBidInput) (uuid.UUID, error) {
	gigUuid, err := uuid.Parse(input.GigId)
	if err != nil {
		return uuid.Nil, err
	}

	freelancerUuid, err := uuid.Parse(input.FreelancerId)
	if err != nil {
		return uuid.Nil, err
	}

	createBidReq, args, _ := r.SqlBuilder.
		Insert("bids").
		Columns("gig_id", "freelancer_id", "message", "price", "status").
		Values(gigUuid, freelancerUuid, input.Message, input.Price, common.BidPending).
		Suffix("RETURNING id").
		ToSql()

	// The (gig_id, freelancer_id) unique index is the only duplicate
	// check: a read-then-insert would miss concurrent submissions.
	var bidId uuid.UUID
	err = r.Database.QueryRowContext(ctx, createBidReq, args...).Scan(&bidId)
	if err != nil {
		if isUniqueViolation(err) {
			return uuid.Nil, repo_errors.ErrAlreadyExists
		}

		return uuid.Nil, err
	}

	return bidId, nil
}

func (r *BidRepo) GetBidById(ctx context.Context, id string) (*entity.Bid, error) {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return nil, repo_errors.ErrNotFound
	}

	getBidReq, args, _ := r.SqlBuilder.
		Select("id, gig_id, freelancer_id, message, price, status, created_at, updated_at").
		From("bids").
		Where("id = ?", uuidForm).
		ToSql()

	var bid entity.Bid
	var createdAt, updatedAt time.Time
	row := r.Database.QueryRowContext(ctx, getBidReq, args...)
	err = row.Scan(&bid.Id, &bid.GigId, &bid.FreelancerId, &bid.Message,
		&bid.Price, &bid.Status, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}
	bid.CreatedAt = createdAt.Format(time.RFC3339)
	bid.UpdatedAt = updatedAt.Format(time.RFC3339)

	return &bid, nil
}

func (r *BidRepo) GetGigBids(ctx context.Context, gigId string, pg *entity.PaginationInput) ([]entity.Bid, error) {
	uuidForm, err := uuid.Parse(gigId)
	if err != nil {
		return nil, repo_errors.ErrNotFound
	}

	getGigBidsSql, args, _ := r.SqlBuilder.
		Select("id, gig_id, freelancer_id, message, price, status, created_at, updated_at").
		From("bids").
		Where("gig_id = ?", uuidForm).
		OrderBy("created_at DESC").
		Offset(uint64(pg.Offset)).
		Limit(uint64(pg.Limit)).
		ToSql()

	rows, err := r.Database.QueryContext(ctx, getGigBidsSql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bids := make([]entity.Bid, 0)
	for rows.Next() {
		var bid entity.Bid
		var createdAt, updatedAt time.Time
		if err := rows.Scan(&bid.Id, &bid.GigId, &bid.FreelancerId, &bid.Message,
			&bid.Price, &bid.Status, &createdAt, &updatedAt); err != nil {
			return bids, err
		}
		bid.CreatedAt = createdAt.Format(time.RFC3339)
		bid.UpdatedAt = updatedAt.Format(time.RFC3339)
		bids = append(bids, bid)
	}
	if err = rows.Err(); err != nil {
		return bids, err
	}

	return bids, nil
}

// HireBid commits the whole hire transition or none of it. The gig update
// is guarded on status still being open, so of two racing hire calls the
// second one matches zero rows and the transaction aborts with
// repo_errors.ErrNoRowsMatched.
func (r *BidRepo) HireBid(ctx context.Context, gigId uuid.UUID, bidId uuid.UUID) error {
	tx, err := r.Database.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	assignGigSql, args, _ := r.SqlBuilder.
		Update("gigs").
		Set("status", common.GigAssigned).
		Set("updated_at", time.Now()).
		Where("id = ?", gigId).
		Where("status = ?", common.GigOpen).
		RunWith(tx).
		ToSql()

	res, err := tx.ExecContext(ctx, assignGigSql, args...)
	if err != nil {
		if e := tx.Rollback(); e != nil {
			return e
		}

		return err
	}

	matched, err := res.RowsAffected()
	if err != nil {
		if e := tx.Rollback(); e != nil {
			return e
		}

		return err
	}
	if matched == 0 {
		if e := tx.Rollback(); e != nil {
			return e
		}

		return repo_errors.ErrNoRowsMatched
	}

	hireBidSql, args, _ := r.SqlBuilder.
		Update("bids").
		Set("status", common.BidHired).
		Set("updated_at", time.Now()).
		Where("id = ?", bidId).
		RunWith(tx).
		ToSql()

	if _, err := tx.ExecContext(ctx, hireBidSql, args...); err != nil {
		if e := tx.Rollback(); e != nil {
			return e
		}

		return err
	}

	rejectOthersSql, args, _ := r.SqlBuilder.
		Update("bids").
		Set("status", common.BidRejected).
		Set("updated_at", time.Now()).
		Where("gig_id = ?", gigId).
		Where("id <> ?", bidId).
		Where("status = ?", common.BidPending).
		RunWith(tx).
		ToSql()

	if _, err := tx.ExecContext(ctx, rejectOthersSql, args...); err != nil {
		if e := tx.Rollback(); e != nil {
			return e
		}

		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	return nil
}
