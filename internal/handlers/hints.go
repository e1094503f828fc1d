package handlers

import (
	"net/http"

	"github.com/sbilibin2017/utez-accounts/internal/forms"
)

// FormHintsResponse lists the client-side attributes of a form's fields
// swagger:model FormHintsResponse
type FormHintsResponse struct {
	Fields []forms.FieldHint `json:"fields"`
}

// NewFormHintsHandler returns an HTTP handler serving the field hints produced by hints.
// @Summary Form field hints
// @Description Placeholders, lengths and patterns for rendering the register or login form
// @Tags forms
// @Produce json
// @Success 200 {object} handlers.FormHintsResponse
// @Router /forms/register [get]
// @Router /forms/login [get]
func NewFormHintsHandler(hints func() []forms.FieldHint) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, FormHintsResponse{Fields: hints()})
	}
}
