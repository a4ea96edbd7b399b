package quota

import "errors"

var (
	// ErrUnknownLabel is returned when counts references a label not
	// present in the labels slice being interned.
	ErrUnknownLabel = errors.New("quota: count references a label absent from the interned vocabulary")
)
