package scoring

import "errors"

// ErrInvalidResponse is returned when a raw response falls outside 1..7.
var ErrInvalidResponse = errors.New("scoring: raw response out of range 1..7")

// ErrItemCountMismatch is returned by FixedFormScore when the number of
// responses does not match the number of items supplied.
var ErrItemCountMismatch = errors.New("scoring: response count does not match item count")

// ErrEmptyTraitSet is returned when Agreement or FixedFormScore is asked to
// operate over zero traits.
var ErrEmptyTraitSet = errors.New("scoring: no traits supplied")
