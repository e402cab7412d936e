package posterior

import "errors"

// ErrDegeneratePosterior is returned by Update when the renormalizing sum
// underflows to zero. This should not occur given the kernel's epsilon
// floor, and is treated as a fatal bug signal rather than something Update
// retries.
var ErrDegeneratePosterior = errors.New("posterior: renormalization underflowed to zero")

// ErrInvalidItem is returned by Update when the item's GRM parameters are
// malformed (propagated from the grm kernel).
var ErrInvalidItem = errors.New("posterior: invalid item parameters")
