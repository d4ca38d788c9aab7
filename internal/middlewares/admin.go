package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"clinic-booking/internal/logger"
	"clinic-booking/internal/models"
)

// RoleReader looks up a user's current role in the store.
type RoleReader interface {
	GetRoleByID(ctx context.Context, id uuid.UUID) (string, error)
}

// AdminMiddleware returns a middleware that only lets admins through. It must
// run after AuthMiddleware. The role is read from the store on every request,
// so a promotion or demotion takes effect immediately regardless of how old
// the presented token is.
func AdminMiddleware(roles RoleReader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			userID, ok := GetUserIDFromContext(ctx)
			if !ok {
				logger.Log.Errorw("admin gate reached without authenticated user")
				writeUnauthorized(w)
				return
			}

			role, err := roles.GetRoleByID(ctx, userID)
			if err != nil {
				logger.Log.Errorw("role lookup failed", "user_id", userID, "err", err)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(map[string]string{"error": "Internal server error"})
				return
			}

			if role != models.RoleAdmin {
				logger.Log.Warnw("admin access denied", "user_id", userID, "role", role)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(map[string]string{"error": "Admin access required"})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
