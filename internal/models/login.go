package models

// LoginRequest represents the body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// UTEZ email
	// required: true
	// example: 20223tn134@utez.edu.mx
	Email string `json:"email"`

	// Password
	// required: true
	// example: Abcdef1!
	Password string `json:"password"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// JWT token
	// example: JWT_TOKEN
	Token string `json:"token"`
}
