package selectable

import "errors"

var (
	// ErrInvalidElement is returned when no element matches the one given
	// under the list's equality predicate.
	ErrInvalidElement = errors.New("invalid element")

	// ErrInvalidIndex is returned when an index is outside the list.
	ErrInvalidIndex = errors.New("invalid index")
)
