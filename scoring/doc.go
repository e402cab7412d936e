// Package scoring implements the fixed-form comparison layer: classical
// per-trait scoring of a complete 24-item administration, projection of an
// adaptive theta estimate onto the same 1-7 Likert scale, and agreement
// statistics (Pearson correlation, mean absolute difference) between the two.
//
// This package has no dependency on session or grm — it consumes only raw
// responses and itembank.Item (reusing posterior.CanonicalCategory for the
// reverse-scoring transform), so it can score either an adaptive run's
// history or an independently administered fixed form.
package scoring
