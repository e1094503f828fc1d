package forms

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	emailPattern         = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@utez\.edu\.mx$`)
	controlNumberPattern = regexp.MustCompile(`^\d{5}[a-z]{2}\d{3}$`)
	telPattern           = regexp.MustCompile(`^\d{10}$`)

	// A password is at least 8 characters on a single line; one trailing
	// newline is tolerated the same way a `$` anchor tolerates it.
	passwordShape   = regexp.MustCompile(`^[^\n]{8,}\n?$`)
	passwordDigit   = regexp.MustCompile(`[0-9]`)
	passwordUpper   = regexp.MustCompile(`[A-Z]`)
	passwordSpecial = regexp.MustCompile(`[!#$%^&*]`)
)

var (
	engine     *validator.Validate
	engineOnce sync.Once
)

// getEngine returns the shared validator with the portal rules registered.
func getEngine() *validator.Validate {
	engineOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		rules := map[string]validator.Func{
			"utezemail":     matches(emailPattern),
			"controlnumber": matches(controlNumberPattern),
			"tel":           matches(telPattern),
			"password":      validatePassword,
		}
		for tag, fn := range rules {
			if err := v.RegisterValidation(tag, fn); err != nil {
				panic(err)
			}
		}

		engine = v
	})
	return engine
}

func matches(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}

func validatePassword(fl validator.FieldLevel) bool {
	return IsStrongPassword(fl.Field().String())
}

// IsStrongPassword reports whether password has at least 8 characters,
// a digit, an uppercase letter and one of !#$%^&*.
func IsStrongPassword(password string) bool {
	return passwordShape.MatchString(password) &&
		passwordDigit.MatchString(password) &&
		passwordUpper.MatchString(password) &&
		passwordSpecial.MatchString(password)
}

// check runs the struct rules on s and translates failures into ValidationErrors.
func check(s any) ValidationErrors {
	errs := ValidationErrors{}

	err := getEngine().Struct(s)
	if err == nil {
		return errs
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		errs.add(NonFieldErrors, MsgInvalid)
		return errs
	}

	for _, fe := range fieldErrs {
		errs.add(fe.Field(), messageFor(fe.Field(), fe.Tag()))
	}
	return errs
}
