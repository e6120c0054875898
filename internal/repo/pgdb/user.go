package pgdb

import (
	"context"
	"database/sql"
	"errors"
	"gigflow/internal/entity"
	"gigflow/internal/repo/repo_errors"
	"gigflow/pkg/postgres"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const uniqueViolation = pq.ErrorCode("23505")

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

type UserRepo struct {
	*postgres.Postgres
}

func NewUserRepo(pgdb *postgres.Postgres) *UserRepo {
	return &UserRepo{pgdb}
}

func (r *UserRepo) CreateUser(ctx context.Context, input *entity.CreateUserInput) (uuid.UUID, error) {
	createUserReq, args, _ := r.SqlBuilder.
		Insert("users").
		Columns("name", "email", "password_hash").
		Values(input.Name, input.Email, input.PasswordHash).
		Suffix("RETURNING id").
		ToSql()

	var userId uuid.UUID
	err := r.Database.QueryRowContext(ctx, createUserReq, args...).Scan(&userId)
	if err != nil {
		if isUniqueViolation(err) {
			return uuid.Nil, repo_errors.ErrAlreadyExists
		}

		return uuid.Nil, err
	}

	return userId, nil
}

func (r *UserRepo) GetUserById(ctx context.Context, id string) (*entity.User, error) {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return nil, repo_errors.ErrNotFound
	}

	getUserReq, args, _ := r.SqlBuilder.
		Select("id, name, email, password_hash, created_at").
		From("users").
		Where("id = ?", uuidForm).
		ToSql()

	return r.scanUser(r.Database.QueryRowContext(ctx, getUserReq, args...))
}

func (r *UserRepo) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	getUserReq, args, _ := r.SqlBuilder.
		Select("id, name, email, password_hash, created_at").
		From("users").
		Where("email = ?", email).
		ToSql()

	return r.scanUser(r.Database.QueryRowContext(ctx, getUserReq, args...))
}

func (r *UserRepo) scanUser(row *sql.Row) (*entity.User, error) {
	var user entity.User
	var createdAt time.Time
	err := row.Scan(&user.Id, &user.Name, &user.Email, &user.PasswordHash, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}
	user.CreatedAt = createdAt.Format(time.RFC3339)

	return &user, nil
}
