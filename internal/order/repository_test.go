package order

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orderColumns() []string {
	return []string{
		"id", "order_id", "user_id", "customer_id", "customer_name",
		"customer_phone", "customer_address", "status", "created_at", "updated_at",
	}
}

func customerColumns() []string {
	return []string{"id", "name", "phone", "address", "user_id", "created_at"}
}

func TestRepository_CreateOrderTx(t *testing.T) {
	ctx := context.Background()
	custID := uuid.New()

	params := CreateParams{
		CustomerName:    "Ada",
		CustomerPhone:   "08123",
		CustomerAddress: "12 Main St",
		Items: []ItemParams{
			{Description: "Widget", Quantity: 2, Price: 5},
		},
	}

	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO customers .* ON CONFLICT \(user_id, phone\) DO UPDATE .* RETURNING`).
			WithArgs(sqlmock.AnyArg(), "Ada", "08123", "12 Main St", 1).
			WillReturnRows(sqlmock.NewRows(customerColumns()).
				AddRow(custID, "Ada", "08123", "12 Main St", 1, time.Now()))
		mock.ExpectQuery(`INSERT INTO order_counter .* RETURNING counter`).
			WillReturnRows(sqlmock.NewRows([]string{"counter"}).AddRow(1))
		mock.ExpectQuery(`SELECT EXISTS`).
			WithArgs("ORD-1").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectQuery(`INSERT INTO orders .* RETURNING id, created_at, updated_at`).
			WithArgs("ORD-1", 1, custID, "Ada", "08123", "12 Main St", StatusPending).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
				AddRow(10, time.Now(), time.Now()))
		mock.ExpectQuery(`INSERT INTO order_items .* RETURNING id`).
			WithArgs(10, "Widget", 2, 5.0).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(100))
		mock.ExpectCommit()

		o, err := repo.CreateOrderTx(ctx, 1, params)
		require.NoError(t, err)
		assert.Equal(t, "ORD-1", o.OrderID)
		assert.Equal(t, StatusPending, o.Status)
		assert.Len(t, o.Items, 1)
		assert.Equal(t, float64(10), o.TotalAmount())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Order insert fails rolls back", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO customers`).
			WillReturnRows(sqlmock.NewRows(customerColumns()).
				AddRow(custID, "Ada", "08123", "12 Main St", 1, time.Now()))
		mock.ExpectQuery(`INSERT INTO order_counter`).
			WillReturnRows(sqlmock.NewRows([]string{"counter"}).AddRow(2))
		mock.ExpectQuery(`SELECT EXISTS`).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectQuery(`INSERT INTO orders`).
			WillReturnError(errors.New("db error"))
		mock.ExpectRollback()

		_, err = repo.CreateOrderTx(ctx, 1, params)
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Unique violation maps to conflict", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO customers`).
			WillReturnRows(sqlmock.NewRows(customerColumns()).
				AddRow(custID, "Ada", "08123", "12 Main St", 1, time.Now()))
		mock.ExpectQuery(`INSERT INTO order_counter`).
			WillReturnRows(sqlmock.NewRows([]string{"counter"}).AddRow(3))
		mock.ExpectQuery(`SELECT EXISTS`).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectQuery(`INSERT INTO orders`).
			WillReturnError(&pq.Error{Code: "23505", Constraint: "orders_order_id_key"})
		mock.ExpectRollback()

		_, err = repo.CreateOrderTx(ctx, 1, params)
		assert.ErrorIs(t, err, ErrConflict)
	})
}

func TestRepository_FetchOrders(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRepository(db)
	ctx := context.Background()
	custID := uuid.New()

	t.Run("Success with items", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM orders WHERE user_id = \$1 ORDER BY created_at ASC`).
			WithArgs(1).
			WillReturnRows(sqlmock.NewRows(orderColumns()).
				AddRow(10, "ORD-1", 1, custID, "Ada", "08123", "12 Main St", "pending", time.Now(), time.Now()).
				AddRow(11, "ORD-2", 1, custID, "Ada", "08123", "12 Main St", "paid", time.Now(), time.Now()))
		mock.ExpectQuery(`SELECT .* FROM order_items WHERE order_id = ANY\(\$1\)`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "order_id", "description", "quantity", "price"}).
				AddRow(100, 10, "Widget", 2, 5.0).
				AddRow(101, 11, "Gadget", 1, 20.0))

		orders, err := repo.FetchOrders(ctx, 1)
		require.NoError(t, err)
		require.Len(t, orders, 2)
		assert.Equal(t, "ORD-1", orders[0].OrderID)
		assert.Len(t, orders[0].Items, 1)
		assert.Equal(t, float64(10), orders[0].TotalAmount())
		assert.Equal(t, float64(20), orders[1].TotalAmount())
	})

	t.Run("Empty", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM orders WHERE user_id = \$1`).
			WithArgs(2).
			WillReturnRows(sqlmock.NewRows(orderColumns()))

		orders, err := repo.FetchOrders(ctx, 2)
		assert.NoError(t, err)
		assert.Empty(t, orders)
	})
}

func TestRepository_UpdateStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRepository(db)
	ctx := context.Background()
	custID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(`UPDATE orders SET status = \$1, updated_at = NOW\(\) WHERE order_id = \$2 AND user_id = \$3 RETURNING`).
			WithArgs(StatusPaid, "ORD-1", 1).
			WillReturnRows(sqlmock.NewRows(orderColumns()).
				AddRow(10, "ORD-1", 1, custID, "Ada", "08123", "12 Main St", "paid", time.Now(), time.Now()))
		mock.ExpectQuery(`SELECT .* FROM order_items WHERE order_id = \$1`).
			WithArgs(10).
			WillReturnRows(sqlmock.NewRows([]string{"id", "order_id", "description", "quantity", "price"}))

		o, err := repo.UpdateStatus(ctx, 1, "ORD-1", StatusPaid)
		require.NoError(t, err)
		assert.Equal(t, StatusPaid, o.Status)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery(`UPDATE orders SET status`).
			WithArgs(StatusFailed, "ORD-99", 1).
			WillReturnRows(sqlmock.NewRows(orderColumns()))

		_, err := repo.UpdateStatus(ctx, 1, "ORD-99", StatusFailed)
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})
}

func TestRepository_DeleteAndRenumber(t *testing.T) {
	ctx := context.Background()

	t.Run("Renumbers remaining and resets counter", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM orders WHERE order_id = \$1 AND user_id = \$2`).
			WithArgs("ORD-2", 1).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(`SELECT id FROM orders WHERE user_id = \$1 ORDER BY created_at ASC, id ASC FOR UPDATE`).
			WithArgs(1).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10).AddRow(12))
		mock.ExpectExec(`UPDATE orders SET order_id = \$1, updated_at = NOW\(\) WHERE id = \$2`).
			WithArgs("ORD-1", 10).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`UPDATE orders SET order_id = \$1, updated_at = NOW\(\) WHERE id = \$2`).
			WithArgs("ORD-2", 12).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`INSERT INTO order_counter .* ON CONFLICT \(id\) DO UPDATE SET counter = EXCLUDED.counter`).
			WithArgs(2).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err = repo.DeleteAndRenumber(ctx, 1, "ORD-2")
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NotFound", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM orders`).
			WithArgs("ORD-99", 1).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err = repo.DeleteAndRenumber(ctx, 1, "ORD-99")
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})

	t.Run("Cross-tenant collision maps to conflict", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM orders`).
			WithArgs("ORD-2", 1).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(`SELECT id FROM orders`).
			WithArgs(1).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))
		mock.ExpectExec(`UPDATE orders SET order_id`).
			WithArgs("ORD-1", 10).
			WillReturnError(&pq.Error{Code: "23505", Constraint: "orders_order_id_key"})
		mock.ExpectRollback()

		err = repo.DeleteAndRenumber(ctx, 1, "ORD-2")
		assert.ErrorIs(t, err, ErrConflict)
	})
}
