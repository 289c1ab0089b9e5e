package entities

import "errors"

// Domain error taxonomy. Callers wrap these with fmt.Errorf("%w: ...") to add
// detail and match them with errors.Is.
var (
	// ErrInvalidArgument flags malformed numeric input (negative quantity,
	// negative amount, non-finite float).
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidState flags a status label outside the known vocabulary.
	ErrInvalidState = errors.New("invalid state")
	// ErrNoData flags analytics asked to work on an empty data set.
	ErrNoData = errors.New("no data")
)
