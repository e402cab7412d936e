package engineconfig

import "errors"

// ErrInvalidThreshold is returned when SEThreshold is not strictly positive.
var ErrInvalidThreshold = errors.New("engineconfig: se threshold must be > 0")

// ErrInvalidMaxItems is returned when MaxItemsPerTrait is not strictly positive.
var ErrInvalidMaxItems = errors.New("engineconfig: max items per trait must be > 0")

// ErrInvalidGrid is returned when the theta grid parameters fail grid.NewSpec's
// validation.
var ErrInvalidGrid = errors.New("engineconfig: invalid theta grid parameters")
