package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/utez-accounts/internal/logger"
	"github.com/sbilibin2017/utez-accounts/internal/middlewares"
	"github.com/sbilibin2017/utez-accounts/internal/models"
	"github.com/sbilibin2017/utez-accounts/internal/services"
)

// Profiler defines the interface that the profile service must implement.
type Profiler interface {
	Profile(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// NewProfileHandler returns an HTTP handler for the authenticated user's profile.
// @Summary Current user profile
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.UserDB
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /me [get]
func NewProfileHandler(svc Profiler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.UserIDFromContext(r.Context())
		if !ok {
			writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Unauthorized"})
			return
		}

		user, err := svc.Profile(r.Context(), userID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserDoesNotExist):
				writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "User not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}
