package session

import (
	"fmt"

	"github.com/adaptivesurvey/dose/grid"
	"github.com/adaptivesurvey/dose/itembank"
	"github.com/adaptivesurvey/dose/trait"
)

// ReplayRow is one entry of a recorded (item_number, raw_response) history,
// as produced by a prior Controller run's Snapshot().History. Replaying the
// same history through the engine must reproduce the same theta/se to
// within floating-point tolerance.
type ReplayRow struct {
	ItemNumber  int
	RawResponse int
}

// Replay rebuilds a Snapshot from an ordered history by feeding each row
// directly to the owning trait's Estimator, bypassing item selection
// entirely. Replay does not reselect items — it trusts the recorded
// sequence verbatim — so it reproduces exactly the posterior state the
// original Controller run reached, independent of whatever the selector
// would choose today.
//
// Replay is pure: it builds fresh Estimators from bank/spec/seThreshold/
// maxItems and mutates nothing outside its own locals.
func Replay(bank *itembank.Bank, spec *grid.Spec, seThreshold float64, maxItems int, rows []ReplayRow) (Snapshot, error) {
	estimators := make(map[itembank.Trait]*trait.Estimator, len(itembank.CanonicalOrder))
	for _, tr := range itembank.CanonicalOrder {
		estimators[tr] = trait.NewEstimator(tr, bank.ItemsForTrait(tr), spec, seThreshold, maxItems)
	}

	history := make([]HistoryRow, 0, len(rows))
	for _, row := range rows {
		item, ok := bank.Item(row.ItemNumber)
		if !ok {
			return Snapshot{}, fmt.Errorf("session: replay row for item %d: %w", row.ItemNumber, ErrUnknownItem)
		}

		est := estimators[item.Trait]
		if err := est.Record(item, row.RawResponse); err != nil {
			return Snapshot{}, fmt.Errorf("session: replay row for item %d: %w", row.ItemNumber, err)
		}

		history = append(history, HistoryRow{
			ItemNumber:  item.Number,
			RawResponse: row.RawResponse,
			Trait:       item.Trait,
			ThetaAfter:  est.Theta(),
			SEAfter:     est.SE(),
		})
	}

	state := StateAwaitingResponse
	allDone := true
	estimates := make([]TraitEstimate, 0, len(itembank.CanonicalOrder))
	for _, tr := range itembank.CanonicalOrder {
		est := estimators[tr]
		if !est.Done() {
			allDone = false
		}
		estimates = append(estimates, TraitEstimate{
			Trait:          tr,
			Theta:          est.Theta(),
			SE:             est.SE(),
			ItemsCount:     est.ItemsCount(),
			Done:           est.Done(),
			StoppingReason: string(est.StoppingReason()),
		})
	}
	if allDone {
		state = StateComplete
	}
	if len(rows) == 0 {
		state = StateAwaitingStart
	}

	return Snapshot{
		State:     state,
		Estimates: estimates,
		History:   history,
	}, nil
}
