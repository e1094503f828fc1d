package handlers

import (
	"context"

	"github.com/sbilibin2017/utez-accounts/internal/forms"
)

type registererFunc func(in forms.RegistrationInput) error

func (f registererFunc) Register(_ context.Context, in forms.RegistrationInput) error {
	return f(in)
}
