package models

// UserRegistered is published after a new account is stored.
type UserRegistered struct {
	EventID       string `json:"event_id"`
	Timestamp     int64  `json:"timestamp"`
	UserID        string `json:"user_id"`
	Email         string `json:"email"`
	ControlNumber string `json:"control_number"`
}
