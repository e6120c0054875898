package service

import (
	"context"
	"errors"
	"fmt"
	"gigflow/internal/entity"
	"gigflow/internal/repo"
	"gigflow/internal/repo/repo_errors"
	"net/mail"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	minNameLen     = 2
	maxNameLen     = 50
	minPasswordLen = 6

	tokenTTL = 7 * 24 * time.Hour
)

type AuthService struct {
	userRepo  repo.User
	jwtSecret []byte
}

func NewAuthService(repos *repo.Repositories, jwtSecret string) *AuthService {
	return &AuthService{
		userRepo:  repos.User,
		jwtSecret: []byte(jwtSecret),
	}
}

func (s *AuthService) Register(ctx context.Context, name, email, password string) (*entity.AuthResult, error) {
	name = strings.TrimSpace(name)
	if len(name) < minNameLen || len(name) > maxNameLen {
		return nil, fmt.Errorf("%w: name must be %d-%d characters", ErrValidation, minNameLen, maxNameLen)
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("%w: invalid email address", ErrValidation)
	}

	if len(password) < minPasswordLen {
		return nil, fmt.Errorf("%w: password must be at least %d characters", ErrValidation, minPasswordLen)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	id, err := s.userRepo.CreateUser(ctx, &entity.CreateUserInput{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	})
	if err != nil {
		if errors.Is(err, repo_errors.ErrAlreadyExists) {
			return nil, ErrEmailAlreadyTaken
		}

		return nil, err
	}

	user, err := s.userRepo.GetUserById(ctx, id.String())
	if err != nil {
		return nil, err
	}

	token, err := s.signToken(user.Id.String())
	if err != nil {
		return nil, err
	}

	return &entity.AuthResult{User: mapUser(user), Token: token}, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*entity.AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}

		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.signToken(user.Id.String())
	if err != nil {
		return nil, err
	}

	return &entity.AuthResult{User: mapUser(user), Token: token}, nil
}

func (s *AuthService) GetUserById(ctx context.Context, id string) (*entity.UserOutputModel, error) {
	user, err := s.userRepo.GetUserById(ctx, id)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrUserNotFound
		}

		return nil, err
	}

	return mapUser(user), nil
}

func (s *AuthService) signToken(userId string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userId,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
}
