package game

import (
	"errors"
	"fmt"
)

// InvariantViolation reports that exactly one of something was expected
// (the player, the camera, a HUD node) but Count were found. It points at
// a setup or ordering bug, not at anything the player did.
type InvariantViolation struct {
	What  string
	Count int
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("invariant violation: expected exactly one %s, found %d", e.What, e.Count)
}

// IsInvariantViolation reports whether err wraps an InvariantViolation.
func IsInvariantViolation(err error) bool {
	var v *InvariantViolation
	return errors.As(err, &v)
}
