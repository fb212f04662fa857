// Package partition enforces the school-level isolation rule: all content
// creation and listing stays within the caller's own school level.
package partition

import (
	"github.com/minseok/enigma/internal/common"
	"github.com/minseok/enigma/internal/server/models"
)

// Enforce rejects any operation where the caller's school level differs from
// the target's. Mismatches are rejected at creation time, never filtered
// later.
func Enforce(caller, target models.SchoolLevel) error {
	if caller != target {
		return common.ErrInvalidAccess
	}
	return nil
}
