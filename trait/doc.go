// Package trait wraps a single posterior.Engine with the bookkeeping a
// trait estimator needs: the trait's four-item bank subset, which of those
// items have been administered, and a monotone done flag derived from the
// stopping rule.
//
// An Estimator is mutated only through Record; once Done becomes true it
// never reverts — the posterior only ever gets more concentrated as more
// items are recorded.
package trait
