package models

// Status is the soft-delete state of a post or comment. The only transition
// is StatusActive -> StatusDeleted; there is no re-activation path.
type Status string

const (
	StatusActive  Status = "ACTIVE"
	StatusDeleted Status = "DELETED"
)

func (s Status) String() string { return string(s) }
