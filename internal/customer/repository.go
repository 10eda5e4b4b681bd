package customer

import (
	"context"
	"database/sql"

	"orderdesk-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Queryer is satisfied by both *sql.DB and *sql.Tx so the find-or-create
// upsert can run inside the order-creation transaction.
type Queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Repository interface {
	FindOrCreate(ctx context.Context, p FindOrCreateParams) (Customer, error)
	FindByID(ctx context.Context, id uuid.UUID) (Customer, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// FindOrCreate resolves the customer for (user, phone), creating it on first
// use. The upsert relies on the customers_user_id_phone_key constraint, so
// concurrent first orders for the same phone converge on a single row. The
// no-op DO UPDATE clause makes the statement return the stored row either
// way; an existing customer keeps its recorded name and address.
func FindOrCreate(ctx context.Context, q Queryer, p FindOrCreateParams) (Customer, error) {
	var c Customer
	err := q.QueryRowContext(ctx, `
		INSERT INTO customers (id, name, phone, address, user_id)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, phone) DO UPDATE SET phone = EXCLUDED.phone
		RETURNING id, name, phone, address, user_id, created_at
	`,
		uuid.New(), p.Name, p.Phone, p.Address, p.UserID,
	).Scan(&c.ID, &c.Name, &c.Phone, &c.Address, &c.UserID, &c.CreatedAt)

	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to upsert customer",
			zap.String("phone", p.Phone),
			zap.Error(err),
		)
		return Customer{}, err
	}

	return c, nil
}

func (r *repository) FindOrCreate(ctx context.Context, p FindOrCreateParams) (Customer, error) {
	return FindOrCreate(ctx, r.db, p)
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (Customer, error) {
	var c Customer
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, phone, address, user_id, created_at
		FROM customers
		WHERE id = $1
	`, id).Scan(&c.ID, &c.Name, &c.Phone, &c.Address, &c.UserID, &c.CreatedAt)

	return c, err
}
