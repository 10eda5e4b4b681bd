package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"orderdesk-be/internal/auth"
	"orderdesk-be/internal/logger"

	"go.uber.org/zap"
)

var (
	ErrEmailExists        = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrMissingFields      = errors.New("all fields are required")
)

type Service interface {
	Signup(ctx context.Context, p SignupParams) (string, User, error)
	Login(ctx context.Context, email, password string) (string, User, error)
	GetProfile(ctx context.Context, id uint) (User, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Signup(ctx context.Context, p SignupParams) (string, User, error) {
	log := logger.FromCtx(ctx)

	if p.FullName == "" || p.BusinessName == "" || p.Email == "" ||
		p.PhoneNumber == "" || p.State == "" || p.Country == "" || p.Password == "" {
		return "", User{}, ErrMissingFields
	}

	hashed, err := HashPassword(p.Password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return "", User{}, err
	}
	p.Password = hashed

	u, err := s.repo.Create(ctx, p)
	if err != nil {
		if strings.Contains(err.Error(), "users_email_key") {
			return "", User{}, ErrEmailExists
		}
		log.Error("failed to create user", zap.String("email", p.Email), zap.Error(err))
		return "", User{}, err
	}

	token, err := auth.GenerateJWT(u.ID, u.Email)
	if err != nil {
		log.Error("failed to generate jwt", zap.String("user_id", fmt.Sprint(u.ID)), zap.Error(err))
		return "", User{}, err
	}

	log.Info("signup completed",
		zap.String("user_id", fmt.Sprint(u.ID)),
		zap.String("email", u.Email),
	)

	return token, u, nil
}

func (s *service) Login(ctx context.Context, email, password string) (string, User, error) {
	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", User{}, ErrInvalidCredentials
	}

	if !CheckPasswordHash(password, u.Password) {
		return "", User{}, ErrInvalidCredentials
	}

	token, err := auth.GenerateJWT(u.ID, u.Email)
	return token, u, err
}

func (s *service) GetProfile(ctx context.Context, id uint) (User, error) {
	u, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, ErrUserNotFound
	}
	return u, err
}
