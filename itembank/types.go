package itembank

import "github.com/adaptivesurvey/dose/grm"

// Trait is one of the six canonical HEXACO trait tags.
type Trait string

// Canonical trait tags, in the fixed rotation order used everywhere traits
// are enumerated (the round-robin tie-break order).
const (
	Extraversion      Trait = "E"
	Agreeableness     Trait = "A"
	Conscientiousness Trait = "C"
	Neuroticism       Trait = "N"
	Openness          Trait = "O"
	HonestyHumility   Trait = "H"
)

// CanonicalOrder lists the six traits in the fixed order used for
// round-robin tie-breaking and for any enumeration that must be
// deterministic across processes.
var CanonicalOrder = []Trait{
	Extraversion, Agreeableness, Conscientiousness, Neuroticism, Openness, HonestyHumility,
}

// ItemsPerTrait is the number of items each trait contributes to the bank;
// the bank's 24 items must partition evenly into six such subsets.
const ItemsPerTrait = 4

// BetaCount is the number of ordered GRM thresholds every item carries.
const BetaCount = 6

// Item is one immutable row of the bank: a trait-tagged GRM item with one
// discrimination and six ordered thresholds.
type Item struct {
	Number  int
	Trait   Trait
	Reverse bool
	Alpha   float64
	Beta    [BetaCount]float64
}

// GRMParams projects this item's discrimination and thresholds into the
// grm package's decoupled parameterization.
func (it Item) GRMParams() grm.ItemParams {
	return grm.ItemParams{Alpha: it.Alpha, Beta: it.Beta}
}

func isCanonicalTrait(t Trait) bool {
	for _, c := range CanonicalOrder {
		if c == t {
			return true
		}
	}

	return false
}
