package grm

import "errors"

// ErrInvalidItem is returned by CategoryProbs/FisherInformation when an
// item's parameters cannot produce a well-formed GRM likelihood: alpha <= 0.
// The beta count needs no check: ItemParams.Beta is a fixed-length array of
// NumCategories-1 thresholds.
var ErrInvalidItem = errors.New("grm: invalid item parameters")
