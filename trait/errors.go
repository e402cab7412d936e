package trait

import "errors"

// ErrItemAlreadyUsed indicates Record was called with an item number already
// present in items_used for this trait — a Controller bug, never a
// recoverable participant-facing condition.
var ErrItemAlreadyUsed = errors.New("trait: item already administered for this trait")

// ErrWrongTrait indicates Record was called with an item belonging to a
// different trait than this Estimator tracks.
var ErrWrongTrait = errors.New("trait: item does not belong to this trait")

// ErrInvalidResponse indicates rawResponse was outside 1..7.
var ErrInvalidResponse = errors.New("trait: raw response out of range 1..7")
