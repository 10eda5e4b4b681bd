package middleware

import (
	"net/http"

	"orderdesk-be/internal/auth"
	"orderdesk-be/internal/logger"
	"orderdesk-be/internal/utils"

	"go.uber.org/zap"
)

// RequireAuth verifies the bearer credential and loads the caller identity
// into the request context. Missing credential yields 401, an unverifiable
// one yields 403.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := auth.ExtractAccessToken(r)
		if token == "" {
			utils.WriteJSONMessage(w, "Access denied. No token provided.", http.StatusUnauthorized)
			return
		}

		claims, err := auth.ParseJWT(token)
		if err != nil {
			logger.FromCtx(r.Context()).Warn("token verification failed", zap.Error(err))
			utils.WriteJSONMessage(w, "Invalid token", http.StatusForbidden)
			return
		}

		ctx := utils.SetUserContext(r.Context(), claims.UserID, claims.Email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
