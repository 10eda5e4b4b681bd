package rest

import (
	"errors"
	"net/http"

	"orderdesk-be/internal/logger"
	"orderdesk-be/internal/order"
	"orderdesk-be/internal/user"
	"orderdesk-be/internal/utils"

	"go.uber.org/zap"
)

// respondError converts domain errors into the JSON {message} responses the
// API promises; anything unrecognized becomes an opaque 500.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	var code int
	var message string

	switch {
	case errors.Is(err, order.ErrMissingFields), errors.Is(err, user.ErrMissingFields):
		code, message = http.StatusBadRequest, "All fields are required."
	case errors.Is(err, order.ErrMissingOrderID):
		code, message = http.StatusBadRequest, "Order ID is required."
	case errors.Is(err, order.ErrInvalidStatus):
		code, message = http.StatusBadRequest, "Invalid status"
	case errors.Is(err, order.ErrUnauthorized):
		code, message = http.StatusUnauthorized, "Unauthorized. User not authenticated."
	case errors.Is(err, user.ErrInvalidCredentials):
		code, message = http.StatusUnauthorized, "Invalid email or password"
	case errors.Is(err, order.ErrOrderNotFound):
		code, message = http.StatusNotFound, "Order not found"
	case errors.Is(err, user.ErrUserNotFound):
		code, message = http.StatusNotFound, "User not found"
	case errors.Is(err, user.ErrEmailExists):
		code, message = http.StatusConflict, "Email already registered"
	case errors.Is(err, order.ErrConflict):
		code, message = http.StatusConflict, "Order identifier conflict"
	default:
		logger.FromCtx(r.Context()).Error("request failed",
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		utils.WriteJSONError(w, "Server error", err, http.StatusInternalServerError)
		return
	}

	utils.WriteJSONMessage(w, message, code)
}
