package models

// RegisterRequest represents the body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// UTEZ email
	// required: true
	// example: 20223tn134@utez.edu.mx
	Email string `json:"email"`

	// Name
	// required: true
	// example: Ana
	Name string `json:"name"`

	// Surname
	// required: true
	// example: López
	Surname string `json:"surname"`

	// Control number
	// required: true
	// example: 20223tn134
	ControlNumber string `json:"control_number"`

	// Age, as a string or a JSON integer
	// required: true
	// example: 21
	Age string `json:"age"`

	// Phone
	// required: true
	// example: 7771234567
	Tel string `json:"tel"`

	// Password
	// required: true
	// example: Abcdef1!
	Password1 string `json:"password1"`

	// Password confirmation
	// required: true
	// example: Abcdef1!
	Password2 string `json:"password2"`
}

// RegisterResponse represents a successful registration response
// swagger:model RegisterResponse
type RegisterResponse struct {
	// Success message
	// example: User registered successfully
	Message string `json:"message"`
}

// ErrorResponse represents a single error message
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: Internal server error
	Error string `json:"error"`
}

// ValidationErrorResponse carries the rejected fields and their messages
// swagger:model ValidationErrorResponse
type ValidationErrorResponse struct {
	// Field name to message, "__all__" for form-level errors
	Errors map[string]string `json:"errors"`
}
