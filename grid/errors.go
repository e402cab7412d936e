package grid

import "errors"

// Validation errors for Spec construction.
var (
	// ErrBadRange indicates Min >= Max.
	ErrBadRange = errors.New("grid: min must be strictly less than max")

	// ErrTooFewPoints indicates Points < 21, the floor below which posterior
	// moments are no longer numerically trustworthy.
	ErrTooFewPoints = errors.New("grid: points must be >= 21")

	// ErrStepTooCoarse indicates the implied step (Max-Min)/(Points-1) exceeds
	// 0.1, the coarsest step this package allows.
	ErrStepTooCoarse = errors.New("grid: step must be <= 0.1")
)
