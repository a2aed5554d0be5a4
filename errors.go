package shieldsvg

import (
	"errors"
	"fmt"
)

// Errors returned by the catalog and the generator. They are always wrapped
// with the catalog kind and id involved, so test them with errors.Is.
var (
	// ErrMissingEntry is returned when an instance references an id that is
	// not present in the corresponding catalog.
	ErrMissingEntry = errors.New("missing catalog entry")

	// ErrMissingSecondaryColour is returned when a charge element asks for
	// the secondary colour role but the charge instance has none.
	ErrMissingSecondaryColour = errors.New("missing secondary colour")

	// ErrDivisionCount is returned when the number of divisions in a shield
	// instance differs from the segment count of its division style.
	ErrDivisionCount = errors.New("division count mismatch")

	// ErrMissingGeometry is returned when neither the shield style nor the
	// division style provide a segment for every division.
	ErrMissingGeometry = errors.New("missing division geometry")

	// ErrDuplicateEntry is returned by NewCatalog when two entries of one
	// catalog share an id.
	ErrDuplicateEntry = errors.New("duplicate catalog entry")
)

func missingEntry(kind, id string) error {
	return fmt.Errorf("%w: %s %q", ErrMissingEntry, kind, id)
}
