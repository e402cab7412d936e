package scoring

import (
	"fmt"

	"github.com/adaptivesurvey/dose/itembank"
	"github.com/adaptivesurvey/dose/posterior"
)

// TraitScore is one trait's classical fixed-form score: the simple mean of
// its reverse-canonicalized 1-7 responses.
type TraitScore struct {
	Trait itembank.Trait
	Mean  float64
	N     int
}

// FixedFormScore computes the classical per-trait mean score for a complete
// administration of a trait's item set: each response is reverse-canonicalized
// via posterior.CanonicalCategory (the same 8-r transform the adaptive engine
// applies), then simply averaged — no IRT weighting. The fixed form is
// scored the conventional way, not through the GRM kernel, so it serves as
// an independent ground truth to compare the adaptive estimate against.
//
// items and responses must be the same length and in matching order.
func FixedFormScore(tr itembank.Trait, items []itembank.Item, responses []int) (TraitScore, error) {
	if len(items) != len(responses) {
		return TraitScore{}, ErrItemCountMismatch
	}
	if len(items) == 0 {
		return TraitScore{}, ErrEmptyTraitSet
	}

	var sum float64
	for i, it := range items {
		r := responses[i]
		if r < 1 || r > 7 {
			return TraitScore{}, fmt.Errorf("scoring: item %d: %w", it.Number, ErrInvalidResponse)
		}
		if it.Trait != tr {
			return TraitScore{}, fmt.Errorf("scoring: item %d belongs to trait %s, not %s", it.Number, it.Trait, tr)
		}
		sum += float64(posterior.CanonicalCategory(r, it.Reverse))
	}

	return TraitScore{Trait: tr, Mean: sum / float64(len(items)), N: len(items)}, nil
}

// likertMin and likertMax bound the projected scale.
const (
	likertMin = 1.0
	likertMax = 7.0
)

// LikertProjection maps an adaptive EAP estimate theta onto the fixed form's
// 1-7 scale via 4 + 0.75*theta, clipped to [1,7]. The slope and intercept
// center a standard-normal theta (mean 0) on the scale's midpoint (4) and
// compress +/-4 SD down to the scale's extremes.
func LikertProjection(theta float64) float64 {
	v := 4 + 0.75*theta
	switch {
	case v < likertMin:
		return likertMin
	case v > likertMax:
		return likertMax
	default:
		return v
	}
}
