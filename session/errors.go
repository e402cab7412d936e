package session

import "errors"

// ErrProtocolViolation is returned by Respond when called after Start while
// the Controller is not in StateAwaitingResponse (complete or failed).
// Recoverable: state is unchanged. Concurrent Respond calls on one
// Controller are not detected: the state stays StateAwaitingResponse while
// a call is running.
var ErrProtocolViolation = errors.New("session: respond called out of protocol order")

// ErrInvalidResponse is returned by Respond when rawResponse is outside
// 1..7. Recoverable: state is unchanged.
var ErrInvalidResponse = errors.New("session: raw response out of range 1..7")

// ErrNotStarted is returned by Respond when Start has never been called.
var ErrNotStarted = errors.New("session: controller has not been started")

// ErrUnknownItem is returned by Replay when a history row names an item
// number absent from the bank.
var ErrUnknownItem = errors.New("session: unknown item number in replay history")
