package catalog

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateID         = errors.New("duplicate id")
	ErrStructuralIntegrity = errors.New("structural integrity violation")
)

// StructuralIntegrityError is returned when a menu names a category that is
// not in the pool. Unlike a missing item it is never skipped.
type StructuralIntegrityError struct {
	MenuID     string
	CategoryID string
}

func (e *StructuralIntegrityError) Error() string {
	return fmt.Sprintf("menu %q references missing category %q", e.MenuID, e.CategoryID)
}

func (e *StructuralIntegrityError) Unwrap() error {
	return ErrStructuralIntegrity
}

func duplicateID(kind, id string) error {
	return fmt.Errorf("%s %q: %w", kind, id, ErrDuplicateID)
}
