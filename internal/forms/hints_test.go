package forms

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistrationHints(t *testing.T) {
	hints := RegistrationHints()
	assert.Len(t, hints, 8)

	byName := map[string]FieldHint{}
	for _, h := range hints {
		byName[h.Name] = h
		assert.Equal(t, "id_"+h.Name, h.ID)
		assert.Equal(t, "form-control", h.Class)
	}

	assert.Equal(t, 10, byName["control_number"].MinLength)
	assert.Equal(t, 10, byName["control_number"].MaxLength)
	assert.Equal(t, "number", byName["age"].Type)
	assert.Equal(t, "password", byName["password2"].Type)
}

// The hint patterns are written for the browser and stay loose where the server is strict.
func TestHintPatternsAreLooserOrEqual(t *testing.T) {
	controlHint := regexp.MustCompile(RegistrationHints()[3].Pattern)
	assert.True(t, controlHint.MatchString("20223TN134"))
	assert.False(t, controlNumberPattern.MatchString("20223TN134"))
}

func TestLoginHints(t *testing.T) {
	hints := LoginHints()
	assert.Len(t, hints, 2)
	assert.Equal(t, "email", hints[0].Type)
	assert.Equal(t, 8, hints[1].MinLength)
	assert.Contains(t, hints[1].Pattern, "(?=")
}
