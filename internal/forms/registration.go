package forms

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"github.com/sbilibin2017/utez-accounts/internal/models"
)

// RegistrationInput holds the raw values submitted by the sign-up form.
type RegistrationInput struct {
	Email         string        `json:"email" validate:"required,utezemail"`
	Name          string        `json:"name" validate:"required,min=2,max=50"`
	Surname       string        `json:"surname" validate:"required"`
	ControlNumber string        `json:"control_number" validate:"required,len=10,controlnumber"`
	Age           NumericString `json:"age" validate:"required"`
	Tel           string        `json:"tel" validate:"required,len=10,tel"`
	Password1     string        `json:"password1" validate:"required,password"`
	Password2     string        `json:"password2" validate:"required"`
}

// NumericString is a raw form value that JSON clients may also send as a number.
type NumericString string

// UnmarshalJSON keeps a JSON string as is and any other literal as its source text.
func (n *NumericString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*n = ""
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = NumericString(s)
	default:
		*n = NumericString(data)
	}
	return nil
}

var trailingZeroFraction = regexp.MustCompile(`\.0*$`)

// parseInteger accepts an optional sign and a zero fraction such as "21.0".
func parseInteger(s string) (int, error) {
	return strconv.Atoi(trailingZeroFraction.ReplaceAllString(s, ""))
}

// normalized strips surrounding whitespace from every field except the passwords.
func (in RegistrationInput) normalized() RegistrationInput {
	in.Email = strings.TrimSpace(in.Email)
	in.Name = strings.TrimSpace(in.Name)
	in.Surname = strings.TrimSpace(in.Surname)
	in.ControlNumber = strings.TrimSpace(in.ControlNumber)
	in.Age = NumericString(strings.TrimSpace(string(in.Age)))
	in.Tel = strings.TrimSpace(in.Tel)
	return in
}

// ValidateRegistration checks every field of in and, when both passwords are
// individually valid, that they match. All failures are reported together as
// ValidationErrors; on success the normalized user record is returned.
func ValidateRegistration(in RegistrationInput) (*models.ValidatedUser, error) {
	in = in.normalized()
	errs := check(in)

	age, err := parseInteger(string(in.Age))
	if !errs.Has("age") && (err != nil || age < 0) {
		errs.add("age", MsgAge)
	}

	if !errs.Has("password1") && !errs.Has("password2") && in.Password1 != in.Password2 {
		errs.add(NonFieldErrors, MsgPasswordMismatch)
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return &models.ValidatedUser{
		Email:         in.Email,
		Name:          in.Name,
		Surname:       in.Surname,
		ControlNumber: in.ControlNumber,
		Age:           age,
		Tel:           in.Tel,
		Password:      in.Password1,
	}, nil
}
