package rest

import (
	"net/http"

	"orderdesk-be/internal/logger"
	"orderdesk-be/internal/metrics"
	"orderdesk-be/internal/middleware"
	"orderdesk-be/internal/utils"
)

// NewRouter assembles the full HTTP surface. Handlers are wrapped with the
// metrics instrumentation inside the mux so the route pattern is available
// as a label; request-ID, logging, and rate limiting wrap the whole mux.
func NewRouter(h *Handler) http.Handler {
	mux := http.NewServeMux()

	handle := func(pattern string, handler http.Handler) {
		mux.Handle(pattern, metrics.Instrument(handler))
	}
	protected := func(hf http.HandlerFunc) http.Handler {
		return middleware.RequireAuth(hf)
	}

	handle("POST /api/auth/signup", http.HandlerFunc(h.Signup))
	handle("POST /api/auth/login", http.HandlerFunc(h.Login))
	handle("GET /api/auth/profile", protected(h.Profile))

	handle("POST /api/orders/create-orders", protected(h.CreateOrder))
	handle("GET /api/orders/get-orders", protected(h.GetOrders))
	handle("PUT /api/orders/status", protected(h.UpdateOrderStatus))
	handle("DELETE /api/orders/delete-order", protected(h.DeleteOrder))
	handle("GET /api/orders/invoice/{orderId}", protected(h.OrderInvoice))
	handle("GET /api/orders/report", protected(h.OrdersReport))
	handle("GET /api/orders/transaction-totals", protected(h.TransactionTotals))
	handle("GET /api/orders/order-counts", protected(h.OrderCounts))

	handle("GET /healthz", http.HandlerFunc(h.Health))
	mux.Handle("GET /metrics", metrics.Handler())

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSONMessage(w, "Route not found", http.StatusNotFound)
	})

	return logger.RequestIDMiddleware(
		logger.LoggingMiddleware(
			middleware.RateLimitMiddleware(mux),
		),
	)
}
