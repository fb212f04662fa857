// Package common defines shared constants and sentinel errors used across
// the server layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Signup / profile update errors.
	ErrUserNameTaken      = errors.New("user name already exists")
	ErrEmailTaken         = errors.New("email already exists")
	ErrWeakPassword       = errors.New("password must be at least 8 characters and include a digit, a letter, and a special character")
	ErrInvalidSchoolLevel = errors.New("invalid school level")

	// Login errors. Unknown user and wrong password are deliberately merged
	// so the response never reveals which one failed.
	ErrInvalidCredentials = errors.New("invalid user name or password")

	// Entity lookup errors.
	ErrUserNotFound     = errors.New("user not found")
	ErrPostNotFound     = errors.New("post not found")
	ErrCommentNotFound  = errors.New("comment not found")
	ErrCategoryNotFound = errors.New("category not found")

	// ErrInvalidAccess rejects any cross-school-level operation.
	ErrInvalidAccess = errors.New("users can only interact within the same school level")

	// Auth errors (invalid, expired or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Generic internal failure; never carries internal detail to the caller.
	ErrInternal = errors.New("internal error")
)
