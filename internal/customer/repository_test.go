package customer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func customerColumns() []string {
	return []string{"id", "name", "phone", "address", "user_id", "created_at"}
}

func TestRepository_FindOrCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("Creates or returns existing row", func(t *testing.T) {
		existing := uuid.New()
		rows := sqlmock.NewRows(customerColumns()).
			AddRow(existing, "Ada", "08123", "12 Main St", 1, time.Now())

		mock.ExpectQuery(`INSERT INTO customers .* ON CONFLICT \(user_id, phone\) DO UPDATE .* RETURNING`).
			WithArgs(sqlmock.AnyArg(), "Ada", "08123", "12 Main St", 1).
			WillReturnRows(rows)

		c, err := repo.FindOrCreate(ctx, FindOrCreateParams{
			Name: "Ada", Phone: "08123", Address: "12 Main St", UserID: 1,
		})
		assert.NoError(t, err)
		assert.Equal(t, existing, c.ID)
		assert.Equal(t, uint(1), c.UserID)
	})

	t.Run("DBError", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO customers`).
			WillReturnError(errors.New("db error"))

		_, err := repo.FindOrCreate(ctx, FindOrCreateParams{Phone: "08123", UserID: 1})
		assert.Error(t, err)
	})
}

func TestRepository_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	id := uuid.New()

	rows := sqlmock.NewRows(customerColumns()).
		AddRow(id, "Ben", "0700", "3 Side Rd", 2, time.Now())

	mock.ExpectQuery(`SELECT .* FROM customers WHERE id = \$1`).
		WithArgs(id).
		WillReturnRows(rows)

	c, err := repo.FindByID(context.Background(), id)
	assert.NoError(t, err)
	assert.Equal(t, "Ben", c.Name)
}
