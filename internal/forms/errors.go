package forms

import (
	"errors"
	"sort"
	"strings"
)

// NonFieldErrors is the key holding messages that belong to the form as a whole.
const NonFieldErrors = "__all__"

// ValidationErrors maps a field name to the message describing why it was rejected.
type ValidationErrors map[string]string

// Error implements the error interface.
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(ve))
	for _, field := range ve.Fields() {
		parts = append(parts, field+": "+ve[field])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Has reports whether field has an error.
func (ve ValidationErrors) Has(field string) bool {
	_, ok := ve[field]
	return ok
}

// Fields returns the names of the rejected fields in sorted order.
func (ve ValidationErrors) Fields() []string {
	fields := make([]string, 0, len(ve))
	for field := range ve {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// add keeps the first message recorded for a field.
func (ve ValidationErrors) add(field, msg string) {
	if _, ok := ve[field]; !ok {
		ve[field] = msg
	}
}

// AsValidationErrors extracts ValidationErrors from err.
func AsValidationErrors(err error) (ValidationErrors, bool) {
	var ve ValidationErrors
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
