// Package session implements the Session Controller: the top-level state
// machine that rotates across the six traits, invokes the selector, records
// responses into the owning trait's Estimator, and evaluates global
// stopping.
//
// A Controller is an explicit state machine, not a coroutine: it can be
// suspended between Start/Respond calls with no runtime continuation
// machinery, which is what makes persistence and Replay possible. All
// numerical work for one Respond call runs to completion synchronously
// before returning — there is exactly one suspension point, the gap
// between emitting CurrentItem and receiving the next Respond.
package session
