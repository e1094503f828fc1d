package forms

// FieldHint describes how a form field is rendered and checked in the browser.
// Hints are metadata for the client only; the server rules live in the
// Validate functions and may be stricter or looser than the hint pattern.
type FieldHint struct {
	Name        string `json:"name"`
	ID          string `json:"id"`
	Type        string `json:"type"`
	Class       string `json:"class"`
	Placeholder string `json:"placeholder"`
	Required    bool   `json:"required"`
	MinLength   int    `json:"minlength,omitempty"`
	MaxLength   int    `json:"maxlength,omitempty"`
	Pattern     string `json:"pattern,omitempty"`
	Title       string `json:"title,omitempty"`
}

const inputClass = "form-control"

// RegistrationHints returns the sign-up form fields in display order.
func RegistrationHints() []FieldHint {
	return []FieldHint{
		{
			Name:        "email",
			ID:          "id_email",
			Type:        "text",
			Class:       inputClass,
			Placeholder: "Correo electrónico UTEZ",
			Required:    true,
			MinLength:   17,
			MaxLength:   30,
			Pattern:     `^[a-zA-Z0-9]+@utez\.edu\.mx$`,
			Title:       "Ingresa un formato @utez.edu.mx",
		},
		{
			Name:        "name",
			ID:          "id_name",
			Type:        "text",
			Class:       inputClass,
			Placeholder: "Nombre",
			Required:    true,
			MinLength:   4,
			MaxLength:   12,
		},
		{
			Name:        "surname",
			ID:          "id_surname",
			Type:        "text",
			Class:       inputClass,
			Placeholder: "Apellido",
			Required:    true,
			MinLength:   4,
			MaxLength:   15,
		},
		{
			Name:        "control_number",
			ID:          "id_control_number",
			Type:        "text",
			Class:       inputClass,
			Placeholder: "Número de control UTEZ",
			Required:    true,
			MinLength:   10,
			MaxLength:   10,
			Pattern:     `^\d{5}[a-zA-Z]{2}\d{3}$`,
			Title:       "Ingresa un formato de la UTEZ",
		},
		{
			Name:        "age",
			ID:          "id_age",
			Type:        "number",
			Class:       inputClass,
			Placeholder: "Edad",
			Required:    true,
			MinLength:   1,
			MaxLength:   2,
			Title:       "Edad no válida",
		},
		{
			Name:        "tel",
			ID:          "id_tel",
			Type:        "text",
			Class:       inputClass,
			Placeholder: "Teléfono",
			Required:    true,
			MinLength:   10,
			MaxLength:   10,
			Pattern:     `^\d{10}$`,
			Title:       "Ingresa un teléfono de 10 dígitos",
		},
		{
			Name:        "password1",
			ID:          "id_password1",
			Type:        "password",
			Class:       inputClass,
			Placeholder: "Contraseña",
			Required:    true,
			MinLength:   8,
			Title:       "Debe tener al menos 8 caracteres, una mayúscula, un número y un carácter especial.",
		},
		{
			Name:        "password2",
			ID:          "id_password2",
			Type:        "password",
			Class:       inputClass,
			Placeholder: "Confirma tu contraseña",
			Required:    true,
			MinLength:   8,
			Title:       "Debe coincidir con la contraseña ingresada arriba.",
		},
	}
}

// LoginHints returns the login form fields in display order.
func LoginHints() []FieldHint {
	return []FieldHint{
		{
			Name:        "email",
			ID:          "id_email",
			Type:        "email",
			Class:       inputClass,
			Placeholder: "Correo electrónico",
			Required:    true,
			Pattern:     `^[a-zA-Z0-9]+@utez\.edu\.mx$`,
			Title:       "El correo debe tener el dominio @utez.edu.mx",
		},
		{
			Name:        "password",
			ID:          "id_password",
			Type:        "password",
			Class:       inputClass,
			Placeholder: "Contraseña",
			Required:    true,
			MinLength:   8,
			Pattern:     `^(?=.*[A-Z])(?=.*[0-9])(?=.*[!@#$%^&*])[a-zA-Z0-9!@#$%^&*]{8,}$`,
			Title:       "La contraseña debe tener al menos 8 caracteres, incluir 1 número, 1 letra mayúscula y 1 carácter especial",
		},
	}
}
