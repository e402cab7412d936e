package selector

import (
	"github.com/adaptivesurvey/dose/grm"
	"github.com/adaptivesurvey/dose/itembank"
)

// estimator is the minimal view of a trait.Estimator the selector needs.
// Declared locally (rather than importing package trait) so selector has
// no dependency on how the estimator tracks its own state — only on the
// two facts item selection actually depends on.
type estimator interface {
	AvailableItems() []itembank.Item
	Theta() float64
}

// Select ranks a trait's unused items by Fisher information at the
// trait's current EAP and returns the maximizer, breaking ties by the
// smallest item number. Returns ErrNoItemsAvailable if every item in the
// trait has already been administered.
func Select(e estimator) (itembank.Item, error) {
	candidates := e.AvailableItems()
	if len(candidates) == 0 {
		return itembank.Item{}, ErrNoItemsAvailable
	}

	theta := e.Theta()

	// Ties broken by smallest item number, regardless of the order
	// AvailableItems happens to return — a tie only replaces the
	// incumbent when the candidate's number is smaller.
	const tieEps = 1e-9
	best := candidates[0]
	bestInfo, err := grm.FisherInformation(best.GRMParams(), theta)
	if err != nil {
		return itembank.Item{}, err
	}

	for _, cand := range candidates[1:] {
		info, err := grm.FisherInformation(cand.GRMParams(), theta)
		if err != nil {
			return itembank.Item{}, err
		}
		switch {
		case info > bestInfo+tieEps:
			best, bestInfo = cand, info
		case info > bestInfo-tieEps && cand.Number < best.Number:
			best, bestInfo = cand, info
		}
	}

	return best, nil
}
