package report

import (
	"context"
	"database/sql"

	"orderdesk-be/internal/logger"
	"orderdesk-be/internal/order"

	"go.uber.org/zap"
)

type Repository interface {
	TransactionTotals(ctx context.Context, userID uint) (Totals, error)
	OrderCounts(ctx context.Context, userID uint) (Counts, error)
	BusinessName(ctx context.Context, userID uint) (string, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// TransactionTotals groups quantity × price sums by status in one query;
// statuses with no orders stay zero.
func (r *repository) TransactionTotals(ctx context.Context, userID uint) (Totals, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT o.status, COALESCE(SUM(i.quantity * i.price), 0)
		FROM orders o
		LEFT JOIN order_items i ON i.order_id = o.id
		WHERE o.user_id = $1
		GROUP BY o.status
	`, userID)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to query transaction totals", zap.Error(err))
		return Totals{}, err
	}
	defer rows.Close()

	var t Totals
	for rows.Next() {
		var status string
		var sum float64
		if err := rows.Scan(&status, &sum); err != nil {
			return Totals{}, err
		}
		switch order.Status(status) {
		case order.StatusPaid:
			t.PaidTotal = sum
		case order.StatusPending:
			t.PendingTotal = sum
		case order.StatusFailed:
			t.FailedTotal = sum
		}
	}
	return t, rows.Err()
}

func (r *repository) OrderCounts(ctx context.Context, userID uint) (Counts, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT status, COUNT(*)
		FROM orders
		WHERE user_id = $1
		GROUP BY status
	`, userID)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to query order counts", zap.Error(err))
		return Counts{}, err
	}
	defer rows.Close()

	var c Counts
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return Counts{}, err
		}
		switch order.Status(status) {
		case order.StatusPaid:
			c.PaidCount = n
		case order.StatusPending:
			c.PendingCount = n
		case order.StatusFailed:
			c.FailedCount = n
		}
	}
	return c, rows.Err()
}

func (r *repository) BusinessName(ctx context.Context, userID uint) (string, error) {
	var name string
	err := r.db.QueryRowContext(ctx,
		`SELECT business_name FROM users WHERE id = $1`,
		userID,
	).Scan(&name)
	return name, err
}
