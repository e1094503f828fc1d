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

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, in forms.RegistrationInput) error
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Validates the UTEZ sign-up form and creates the account. Every rejected field is reported at once.
// @Tags auth
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param registerRequest body models.RegisterRequest true "User registration form"
// @Success 201 {object} models.RegisterResponse "User successfully registered"
// @Failure 400 {object} models.ValidationErrorResponse "Rejected fields"
// @Failure 409 {object} models.ErrorResponse "Email or control number already registered"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in forms.RegistrationInput

		if err := decodeRequest(r, &in, registrationFromForm(&in)); err != nil {
			writeJSON(w, http.StatusBadRequest, models.ErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		err := svc.Register(r.Context(), in)
		if err != nil {
			if verrs, ok := forms.AsValidationErrors(err); ok {
				writeJSON(w, http.StatusBadRequest, models.ValidationErrorResponse{
					Errors: verrs,
				})
				return
			}

			switch {
			case errors.Is(err, services.ErrUserAlreadyExists):
				writeJSON(w, http.StatusConflict, models.ErrorResponse{
					Error: "Email or control number already registered",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		writeJSON(w, http.StatusCreated, models.RegisterResponse{
			Message: "User registered successfully",
		})
	}
}
