package models

import "time"

// User is a community account. PasswordHash is only ever written through the
// policy-gated signup/update path; the plaintext never reaches storage.
type User struct {
	ID           string
	UserName     string
	PasswordHash string
	Email        string
	SchoolLevel  SchoolLevel
	Grade        int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
