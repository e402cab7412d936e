package dose

import "errors"

// ErrUnknownSession is returned when a session ID is not present in the
// Engine's registry (never started, already ended and reaped, or simply
// wrong).
var ErrUnknownSession = errors.New("dose: unknown session id")
