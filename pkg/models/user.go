package models

import "time"

// User is the account as returned by the account service
type User struct {
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	APIKeys   []APIKey  `json:"api_keys"`
}

// UserResponse wraps the user object in sign-up and login responses
type UserResponse struct {
	User User `json:"user"`
}
