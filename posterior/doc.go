// Package posterior implements the grid-discretized Bayesian posterior over
// a single latent trait: initialization to the standard-normal prior,
// log-space likelihood update via the GRM kernel, and EAP/SD readout.
//
// An Engine performs no I/O; every mutation is synchronous in the caller's
// context. Reverse-scoring is applied exactly once, here, at the boundary
// between an externally observed 1..7 response and the GRM category the
// kernel is consulted with — no other package in this module touches the
// 8-minus-response transform.
package posterior
