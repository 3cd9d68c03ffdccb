package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ensureUnique runs the advisory pre-write uniqueness check: conflict is
// returned when a record other than excludeID already holds the candidate
// value. lookup returns the current holder's id or gorm.ErrRecordNotFound.
// Pass uuid.Nil as excludeID on creation. This check only produces a
// friendlier error in the common case; the database unique index remains
// the authoritative mechanism.
func ensureUnique(lookup func() (uuid.UUID, error), excludeID uuid.UUID, conflict error) error {
	holderID, err := lookup()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("uniqueness check failed: %w", err)
	}
	if holderID == excludeID {
		return nil
	}
	return conflict
}
