// Package grm implements the Graded Response Model probability kernel: pure
// functions mapping an item's (α, β₁..β₆) and a latent θ to a length-7
// category probability vector and to the item's Fisher information at θ.
//
// The kernel is unaware of reverse-scoring: the 8-minus-response transform
// lives at the posterior engine's boundary, so every function here operates
// on already-canonicalized GRM categories. The kernel performs no I/O and
// holds no state between calls — every function is pure in its arguments.
package grm
