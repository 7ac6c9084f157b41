// Package domain holds the data model shared across services.
package domain

import "time"

// User is a registered account. The ID is assigned once at signup and never
// changes; Email is the login key and unique across all users. PasswordHash
// must never be serialized to callers.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	PasswordHash []byte    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
