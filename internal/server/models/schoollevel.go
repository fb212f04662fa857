package models

import (
	"strings"

	"github.com/minseok/enigma/internal/common"
)

// SchoolLevel partitions the community: every post and comment belongs to
// exactly one level, and users never interact across levels.
type SchoolLevel string

const (
	SchoolLevelElementary SchoolLevel = "ELEMENTARY"
	SchoolLevelMiddle     SchoolLevel = "MIDDLE"
	SchoolLevelHigh       SchoolLevel = "HIGH"
)

// ParseSchoolLevel matches its input case-insensitively against the three
// known levels.
func ParseSchoolLevel(s string) (SchoolLevel, error) {
	switch SchoolLevel(strings.ToUpper(s)) {
	case SchoolLevelElementary:
		return SchoolLevelElementary, nil
	case SchoolLevelMiddle:
		return SchoolLevelMiddle, nil
	case SchoolLevelHigh:
		return SchoolLevelHigh, nil
	default:
		return "", common.ErrInvalidSchoolLevel
	}
}

func (l SchoolLevel) String() string { return string(l) }
