package models

import (
	"time"

	"github.com/google/uuid"
)

// ValidatedUser is a registration that passed every form rule.
type ValidatedUser struct {
	Email         string
	Name          string
	Surname       string
	ControlNumber string
	Age           int
	Tel           string
	Password      string // Plain password, hashed before storing
}

// UserDB represents a user record in the database
type UserDB struct {
	UserID        uuid.UUID `json:"id" db:"user_id"`                    // Primary key
	Email         string    `json:"email" db:"email"`                   // Unique UTEZ email
	Name          string    `json:"name" db:"name"`                     // First name
	Surname       string    `json:"surname" db:"surname"`               // Last name
	ControlNumber string    `json:"control_number" db:"control_number"` // Unique control number
	Age           int       `json:"age" db:"age"`                       // Age in years
	Tel           string    `json:"tel" db:"tel"`                       // 10 digit phone
	PasswordHash  string    `json:"-" db:"password_hash"`               // Hashed password
	CreatedAt     time.Time `json:"created_at" db:"created_at"`         // Creation timestamp
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`         // Last update timestamp
}
