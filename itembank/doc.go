// Package itembank loads and validates the static, process-wide, read-only
// table of 24 HEXACO items that the adaptive engine administers.
//
// A Bank is built once per process (or once per test) from a YAML table with
// columns number, trait, reverse, alpha, beta1..beta6 and never mutated
// afterward; callers share the same *Bank value read-only across sessions.
package itembank
