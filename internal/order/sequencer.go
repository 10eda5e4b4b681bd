package order

import (
	"context"
	"database/sql"
	"fmt"

	"orderdesk-be/internal/logger"
	"orderdesk-be/internal/metrics"

	"go.uber.org/zap"
)

const orderIDPrefix = "ORD-"

// FormatOrderID renders the human-facing identifier for sequence value n.
func FormatOrderID(n int64) string {
	return fmt.Sprintf("%s%d", orderIDPrefix, n)
}

// Queryer is satisfied by *sql.DB and *sql.Tx; allocation always runs on the
// order-creation transaction so the increment rolls back with it.
type Queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// nextOrderID allocates the next free identifier. The single-statement upsert
// increments and reads the counter atomically; the row lock it acquires
// serializes concurrent allocations. The existence check guards against a
// counter that has drifted behind the store (e.g. after a failed renumbering
// pass): on a collision we keep incrementing until a free value turns up,
// which takes at most as many steps as there are live orders.
func nextOrderID(ctx context.Context, q Queryer) (string, error) {
	for attempt := 0; ; attempt++ {
		var n int64
		err := q.QueryRowContext(ctx, `
			INSERT INTO order_counter (id, counter)
			VALUES (1, 1)
			ON CONFLICT (id) DO UPDATE SET counter = order_counter.counter + 1
			RETURNING counter
		`).Scan(&n)
		if err != nil {
			return "", fmt.Errorf("failed to advance order counter: %w", err)
		}

		orderID := FormatOrderID(n)

		var exists bool
		err = q.QueryRowContext(ctx,
			`SELECT EXISTS(SELECT 1 FROM orders WHERE order_id = $1)`,
			orderID,
		).Scan(&exists)
		if err != nil {
			return "", fmt.Errorf("failed to check order id %s: %w", orderID, err)
		}

		if !exists {
			if attempt > 0 {
				logger.FromCtx(ctx).Warn("order counter had drifted behind the store",
					zap.Int("retries", attempt),
					zap.String("order_id", orderID),
				)
			}
			return orderID, nil
		}

		metrics.SequencerRetries.Inc()
	}
}
