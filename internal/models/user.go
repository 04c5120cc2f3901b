package models

import "time"

// User represents an account in the system. The token is the opaque session
// credential; it is present only while the user has an active session.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"` // Never expose this to the client
	Token        *string   `json:"token,omitempty"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}
