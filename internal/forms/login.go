package forms

import "strings"

// LoginInput holds the raw values submitted by the login form.
type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ValidateLogin only requires both fields to be present. The domain and
// complexity patterns of the login form are client-side hints.
func ValidateLogin(in LoginInput) (LoginInput, error) {
	in.Email = strings.TrimSpace(in.Email)

	if errs := check(in); len(errs) > 0 {
		return in, errs
	}
	return in, nil
}
