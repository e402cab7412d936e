// Package selector implements item selection: given a trait's current
// posterior, rank its unused items by Fisher information at the trait's
// current EAP and return the maximizer, breaking ties by the smallest item
// number.
//
// The tie-break makes item choice fully deterministic and testable — at
// θ̂=0 with no items administered, the starting item for a trait is a fixed
// function of the bank's α/β values, never randomized.
package selector
