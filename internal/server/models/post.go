package models

import "time"

// Post carries its own SchoolLevel, fixed at creation from the author's
// level; it never changes afterwards.
type Post struct {
	ID          string
	Title       string
	Content     string
	AuthorID    string
	CategoryID  string
	ViewCount   int
	Status      Status
	SchoolLevel SchoolLevel
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
