package users

import "time"

// User is a registered account. PasswordHash is excluded from JSON so it can
// never leak through a response payload.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
