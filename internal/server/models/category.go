package models

// Category is a posting board. Code is unique; inactive categories are kept
// for old posts but excluded from listings.
type Category struct {
	ID          string
	Code        string
	Name        string
	Description string
	IsActive    bool
}
