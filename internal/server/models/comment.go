package models

import "time"

type Comment struct {
	ID          string
	PostID      string
	UserID      string
	Content     string
	Status      Status
	SchoolLevel SchoolLevel
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
