package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/utez-accounts/internal/forms"
	"github.com/sbilibin2017/utez-accounts/internal/logger"
	"github.com/sbilibin2017/utez-accounts/internal/models"
	"github.com/sbilibin2017/utez-accounts/internal/services"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, in forms.LoginInput) (string, error)
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticate user and return JWT token
// @Tags auth
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param loginRequest body models.LoginRequest true "Login Request"
// @Success 200 {object} models.LoginResponse "JWT token returned"
// @Failure 400 {object} models.ValidationErrorResponse "Missing fields"
// @Failure 401 {object} models.ErrorResponse "Invalid email or password"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in forms.LoginInput

		if err := decodeRequest(r, &in, loginFromForm(&in)); err != nil {
			writeJSON(w, http.StatusBadRequest, models.ErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		token, err := svc.Login(r.Context(), in)
		if err != nil {
			if verrs, ok := forms.AsValidationErrors(err); ok {
				writeJSON(w, http.StatusBadRequest, models.ValidationErrorResponse{
					Errors: verrs,
				})
				return
			}

			switch {
			case errors.Is(err, services.ErrInvalidCredentials),
				errors.Is(err, services.ErrUserDoesNotExist):
				writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{
					Error: "Invalid email or password",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		writeJSON(w, http.StatusOK, models.LoginResponse{
			Token: token,
		})
	}
}
