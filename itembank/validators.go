package itembank

import (
	"fmt"
	"math"
)

// validateItem enforces the bank's row-level rules: alpha > 0, every beta
// finite. Monotonicity of beta (β1 <= ... <= β6) is the well-formedness
// convention the kernel assumes but must tolerate violations of without
// erroring — so it is not enforced here, only logged as a warning by the
// loader.
func validateItem(it Item) error {
	if !isCanonicalTrait(it.Trait) {
		return fmt.Errorf("%w: item %d has unknown trait %q", ErrInvalidItem, it.Number, it.Trait)
	}
	if it.Alpha <= 0 {
		return fmt.Errorf("%w: item %d has non-positive alpha %g", ErrInvalidItem, it.Number, it.Alpha)
	}
	for i, b := range it.Beta {
		if math.IsNaN(b) || math.IsInf(b, 0) {
			return fmt.Errorf("%w: item %d has non-finite beta%d", ErrInvalidItem, it.Number, i+1)
		}
	}

	return nil
}

// isMonotoneBeta reports whether an item's thresholds are non-decreasing.
// Used only for the loader's best-effort warning, never to reject a bank.
func isMonotoneBeta(it Item) bool {
	for i := 1; i < BetaCount; i++ {
		if it.Beta[i] < it.Beta[i-1] {
			return false
		}
	}

	return true
}

// validatePartition enforces that trait membership partitions the bank
// into four-item subsets per canonical trait, with no duplicate item
// numbers.
func validatePartition(items []Item) error {
	seen := make(map[int]bool, len(items))
	counts := make(map[Trait]int, len(CanonicalOrder))
	for _, it := range items {
		if seen[it.Number] {
			return fmt.Errorf("%w: %d", ErrDuplicateItem, it.Number)
		}
		seen[it.Number] = true
		counts[it.Trait]++
	}

	for _, tr := range CanonicalOrder {
		if counts[tr] != ItemsPerTrait {
			return fmt.Errorf("%w: trait %s has %d items, want %d", ErrBankIncomplete, tr, counts[tr], ItemsPerTrait)
		}
	}

	return nil
}
