package models

import "time"

// User represents a user in the system
type User struct {
	ID           int64     `json:"id" yaml:"id"`
	Username     string    `json:"username" yaml:"username"`
	Email        string    `json:"email" yaml:"email"`
	PasswordHash string    `json:"-" yaml:"-"` // Not serialized
	CreatedAt    time.Time `json:"createdAt" yaml:"created_at"`
}

// AuthResult is returned by registration and login.
type AuthResult struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
