package domain

import "time"

// User models a credential record. Users are provisioned out-of-band by the
// seed tool; the API only reads and verifies them, never writes.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
