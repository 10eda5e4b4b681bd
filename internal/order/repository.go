package order

import (
	"context"
	"database/sql"
	"errors"

	"orderdesk-be/internal/customer"
	"orderdesk-be/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	CreateOrderTx(ctx context.Context, userID uint, p CreateParams) (*Order, error)
	FetchOrders(ctx context.Context, userID uint) ([]*Order, error)
	FindByOrderID(ctx context.Context, userID uint, orderID string) (*Order, error)
	UpdateStatus(ctx context.Context, userID uint, orderID string, status Status) (*Order, error)
	DeleteAndRenumber(ctx context.Context, userID uint, orderID string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

// CreateOrderTx applies the three sub-effects of order creation — customer
// upsert, counter increment, order insert — as one transaction. Either all
// of them become visible or none do.
func (r *repository) CreateOrderTx(ctx context.Context, userID uint, p CreateParams) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateOrderTx"),
		zap.Uint("user_id", userID),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("failed to begin transaction", zap.Error(err))
		return nil, err
	}

	committed := false
	defer func() {
		if !committed {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error("failed to rollback transaction", zap.Error(rbErr))
			}
		}
	}()

	cust, err := customer.FindOrCreate(ctx, tx, customer.FindOrCreateParams{
		Name:    p.CustomerName,
		Phone:   p.CustomerPhone,
		Address: p.CustomerAddress,
		UserID:  userID,
	})
	if err != nil {
		return nil, err
	}

	orderID, err := nextOrderID(ctx, tx)
	if err != nil {
		return nil, err
	}

	o := &Order{
		OrderID:         orderID,
		UserID:          userID,
		CustomerID:      cust.ID,
		CustomerName:    cust.Name,
		CustomerPhone:   cust.Phone,
		CustomerAddress: cust.Address,
		Status:          StatusPending,
	}

	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (order_id, user_id, customer_id, customer_name, customer_phone, customer_address, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`,
		o.OrderID, o.UserID, o.CustomerID, o.CustomerName, o.CustomerPhone, o.CustomerAddress, o.Status,
	).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrConflict
		}
		log.Error("failed to insert order", zap.String("order_id", orderID), zap.Error(err))
		return nil, err
	}

	for _, it := range p.Items {
		var item Item
		err = tx.QueryRowContext(ctx, `
			INSERT INTO order_items (order_id, description, quantity, price)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`, o.ID, it.Description, it.Quantity, it.Price).Scan(&item.ID)
		if err != nil {
			log.Error("failed to insert order item", zap.Error(err))
			return nil, err
		}
		item.OrderID = o.ID
		item.Description = it.Description
		item.Quantity = it.Quantity
		item.Price = it.Price
		o.Items = append(o.Items, item)
	}

	if err := tx.Commit(); err != nil {
		log.Error("failed to commit transaction", zap.Error(err))
		return nil, err
	}
	committed = true

	log.Info("order created", zap.String("order_id", o.OrderID))
	return o, nil
}

func (r *repository) FetchOrders(ctx context.Context, userID uint) ([]*Order, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, order_id, user_id, customer_id, customer_name, customer_phone, customer_address, status, created_at, updated_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at ASC, id ASC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*Order
	byStoreID := make(map[uint]*Order)
	var storeIDs []int64

	for rows.Next() {
		var o Order
		if err := rows.Scan(
			&o.ID, &o.OrderID, &o.UserID, &o.CustomerID,
			&o.CustomerName, &o.CustomerPhone, &o.CustomerAddress,
			&o.Status, &o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, err
		}
		orders = append(orders, &o)
		byStoreID[o.ID] = &o
		storeIDs = append(storeIDs, int64(o.ID))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return orders, nil
	}

	itemRows, err := r.db.QueryContext(ctx, `
		SELECT id, order_id, description, quantity, price
		FROM order_items
		WHERE order_id = ANY($1)
		ORDER BY id ASC
	`, pq.Array(storeIDs))
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var it Item
		if err := itemRows.Scan(&it.ID, &it.OrderID, &it.Description, &it.Quantity, &it.Price); err != nil {
			return nil, err
		}
		if o, ok := byStoreID[it.OrderID]; ok {
			o.Items = append(o.Items, it)
		}
	}

	return orders, itemRows.Err()
}

func (r *repository) FindByOrderID(ctx context.Context, userID uint, orderID string) (*Order, error) {
	var o Order
	err := r.db.QueryRowContext(ctx, `
		SELECT id, order_id, user_id, customer_id, customer_name, customer_phone, customer_address, status, created_at, updated_at
		FROM orders
		WHERE order_id = $1 AND user_id = $2
	`, orderID, userID).Scan(
		&o.ID, &o.OrderID, &o.UserID, &o.CustomerID,
		&o.CustomerName, &o.CustomerPhone, &o.CustomerAddress,
		&o.Status, &o.CreatedAt, &o.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := r.loadItems(ctx, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *repository) loadItems(ctx context.Context, o *Order) error {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, order_id, description, quantity, price
		FROM order_items
		WHERE order_id = $1
		ORDER BY id ASC
	`, o.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ID, &it.OrderID, &it.Description, &it.Quantity, &it.Price); err != nil {
			return err
		}
		o.Items = append(o.Items, it)
	}
	return rows.Err()
}

func (r *repository) UpdateStatus(ctx context.Context, userID uint, orderID string, status Status) (*Order, error) {
	var o Order
	err := r.db.QueryRowContext(ctx, `
		UPDATE orders
		SET status = $1, updated_at = NOW()
		WHERE order_id = $2 AND user_id = $3
		RETURNING id, order_id, user_id, customer_id, customer_name, customer_phone, customer_address, status, created_at, updated_at
	`, status, orderID, userID).Scan(
		&o.ID, &o.OrderID, &o.UserID, &o.CustomerID,
		&o.CustomerName, &o.CustomerPhone, &o.CustomerAddress,
		&o.Status, &o.CreatedAt, &o.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := r.loadItems(ctx, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

// DeleteAndRenumber removes the order and reassigns dense identifiers
// ORD-1..ORD-n to the owner's remaining orders, oldest first, then resets the
// shared counter to n. The orders_order_id_key constraint is deferrable, so
// reassignment inside the transaction never trips over itself; the FOR UPDATE
// scan serializes this pass against concurrent creates and deletes for the
// same user.
func (r *repository) DeleteAndRenumber(ctx context.Context, userID uint, orderID string) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "DeleteAndRenumber"),
		zap.Uint("user_id", userID),
		zap.String("order_id", orderID),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("failed to begin transaction", zap.Error(err))
		return err
	}

	committed := false
	defer func() {
		if !committed {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error("failed to rollback transaction", zap.Error(rbErr))
			}
		}
	}()

	res, err := tx.ExecContext(ctx,
		`DELETE FROM orders WHERE order_id = $1 AND user_id = $2`,
		orderID, userID,
	)
	if err != nil {
		log.Error("failed to delete order", zap.Error(err))
		return err
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrOrderNotFound
	}

	rows, err := tx.QueryContext(ctx, `
		SELECT id FROM orders
		WHERE user_id = $1
		ORDER BY created_at ASC, id ASC
		FOR UPDATE
	`, userID)
	if err != nil {
		log.Error("failed to lock remaining orders", zap.Error(err))
		return err
	}

	var remaining []uint
	for rows.Next() {
		var id uint
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return err
		}
		remaining = append(remaining, id)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return err
	}
	rows.Close()

	for i, id := range remaining {
		_, err := tx.ExecContext(ctx,
			`UPDATE orders SET order_id = $1, updated_at = NOW() WHERE id = $2`,
			FormatOrderID(int64(i+1)), id,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return ErrConflict
			}
			log.Error("failed to renumber order", zap.Uint("store_id", id), zap.Error(err))
			return err
		}
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO order_counter (id, counter)
		VALUES (1, $1)
		ON CONFLICT (id) DO UPDATE SET counter = EXCLUDED.counter
	`, len(remaining))
	if err != nil {
		log.Error("failed to reset order counter", zap.Error(err))
		return err
	}

	if err := tx.Commit(); err != nil {
		if isUniqueViolation(err) {
			// Deferred constraint violations surface at commit.
			return ErrConflict
		}
		log.Error("failed to commit transaction", zap.Error(err))
		return err
	}
	committed = true

	log.Info("order deleted and sequence renumbered", zap.Int("remaining", len(remaining)))
	return nil
}
