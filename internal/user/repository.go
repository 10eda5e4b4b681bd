package user

import (
	"context"
	"database/sql"

	"orderdesk-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, p SignupParams) (User, error)
	FindByEmail(ctx context.Context, email string) (User, error)
	FindByID(ctx context.Context, id uint) (User, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, p SignupParams) (User, error) {
	var u User
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO users (full_name, business_name, business_type, email, phone_number, state, country, password)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, full_name, business_name, business_type, email, phone_number, state, country, password, created_at, updated_at
	`,
		p.FullName, p.BusinessName, p.BusinessType, p.Email, p.PhoneNumber, p.State, p.Country, p.Password,
	).Scan(
		&u.ID, &u.FullName, &u.BusinessName, &u.BusinessType, &u.Email,
		&u.PhoneNumber, &u.State, &u.Country, &u.Password, &u.CreatedAt, &u.UpdatedAt,
	)

	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to insert user",
			zap.String("email", p.Email),
			zap.Error(err),
		)
	}

	return u, err
}

func (r *repository) FindByEmail(ctx context.Context, email string) (User, error) {
	var u User
	err := r.db.QueryRowContext(ctx, `
		SELECT id, full_name, business_name, business_type, email, phone_number, state, country, password, created_at, updated_at
		FROM users
		WHERE email = $1
	`, email).Scan(
		&u.ID, &u.FullName, &u.BusinessName, &u.BusinessType, &u.Email,
		&u.PhoneNumber, &u.State, &u.Country, &u.Password, &u.CreatedAt, &u.UpdatedAt,
	)

	return u, err
}

func (r *repository) FindByID(ctx context.Context, id uint) (User, error) {
	var u User
	err := r.db.QueryRowContext(ctx, `
		SELECT id, full_name, business_name, business_type, email, phone_number, state, country, password, created_at, updated_at
		FROM users
		WHERE id = $1
	`, id).Scan(
		&u.ID, &u.FullName, &u.BusinessName, &u.BusinessType, &u.Email,
		&u.PhoneNumber, &u.State, &u.Country, &u.Password, &u.CreatedAt, &u.UpdatedAt,
	)

	return u, err
}
