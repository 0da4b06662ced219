// internal/api/middleware/auth.go
package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"trackhub/internal/repository"
	"trackhub/internal/util"
)

type contextKey string

const userIDKey contextKey = "user_id"

// Auth resolves the tenant from a bearer JWT and places the user id into the
// request context. Tokens are issued by the account system upstream; this
// service only verifies them and checks the user exists.
func Auth(secret string, userRepo repository.UserRepository, db repository.DBExecutor, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || token == "" {
				unauthorized(w)
				return
			}

			claims, err := util.ParseToken(secret, token)
			if err != nil {
				logger.Warn("rejected bearer token", "error", err)
				unauthorized(w)
				return
			}

			if _, err := userRepo.GetUserByID(r.Context(), db, claims.UserID); err != nil {
				if util.IsError(err, util.ErrNotFound) {
					unauthorized(w)
					return
				}
				logger.Error("failed to resolve user for token", "user_id", claims.UserID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), claims.UserID)))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"unauthorized"}`))
}

// WithUserID returns a context carrying the tenant user id. Used by the auth
// middleware and by handler tests that bypass it.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext returns the authenticated tenant user id, if present.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}
