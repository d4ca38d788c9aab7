package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"clinic-booking/internal/logger"
	"clinic-booking/internal/middlewares"
	"clinic-booking/internal/models"
)

// UserGetter defines the interface that the user store must implement.
type UserGetter interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.UserDB, error)
}

// ProfileUser is the public view of a user record
// swagger:model ProfileUser
type ProfileUser struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}

// MeResponse represents the current user's profile
// swagger:model MeResponse
type MeResponse struct {
	User ProfileUser `json:"user"`
}

// MeErrorResponse represents an error response for the profile endpoint
// swagger:model MeErrorResponse
type MeErrorResponse struct {
	// Error message
	// default: User not found
	Error string `json:"error"`
}

// NewMeHandler returns an HTTP handler for the current user's profile.
// @Summary Current user profile
// @Description Returns the authenticated user's id, name, email and role.
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.MeResponse "Current user"
// @Failure 401 {object} handlers.MeErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.MeErrorResponse "User not found"
// @Router /api/me [get]
// @Security BearerAuth
func NewMeHandler(users UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		w.Header().Set("Content-Type", "application/json")

		userID, ok := middlewares.GetUserIDFromContext(ctx)
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(MeErrorResponse{Error: "Unauthorized"})
			return
		}

		user, err := users.GetByID(ctx, userID)
		if err != nil {
			logger.Log.Errorw("failed to load profile", "user_id", userID, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(MeErrorResponse{Error: "Internal server error"})
			return
		}
		if user == nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(MeErrorResponse{Error: "User not found"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MeResponse{
			User: ProfileUser{
				ID:    user.ID,
				Name:  user.Name,
				Email: user.Email,
				Role:  user.Role,
			},
		})
	}
}
