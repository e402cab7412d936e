package trait

import (
	"fmt"

	"github.com/adaptivesurvey/dose/grid"
	"github.com/adaptivesurvey/dose/itembank"
	"github.com/adaptivesurvey/dose/posterior"
)

// Estimator is one trait's Posterior Engine plus bank subset and
// administration bookkeeping.
type Estimator struct {
	trait       itembank.Trait
	items       []itembank.Item // this trait's four-item bank subset, ordered by number
	engine      *posterior.Engine
	itemsUsed   map[int]bool
	seThreshold float64
	maxItems    int
	done        bool
	reason      StoppingReason
}

// NewEstimator builds an Estimator for one trait, seeded with the
// standard-normal prior on the given grid, and evaluates the stopping rule
// once up-front (covers the degenerate case maxItems == 0).
func NewEstimator(tr itembank.Trait, items []itembank.Item, spec *grid.Spec, seThreshold float64, maxItems int) *Estimator {
	e := &Estimator{
		trait:       tr,
		items:       items,
		engine:      posterior.NewEngine(spec),
		itemsUsed:   make(map[int]bool, len(items)),
		seThreshold: seThreshold,
		maxItems:    maxItems,
	}
	e.refreshDone()

	return e
}

// Trait returns the trait tag this Estimator tracks.
func (e *Estimator) Trait() itembank.Trait { return e.trait }

// AvailableItems returns this trait's bank subset minus items already used,
// ordered by ascending item number.
func (e *Estimator) AvailableItems() []itembank.Item {
	out := make([]itembank.Item, 0, len(e.items)-len(e.itemsUsed))
	for _, it := range e.items {
		if !e.itemsUsed[it.Number] {
			out = append(out, it)
		}
	}

	return out
}

// ItemsUsed reports whether an item number has already been administered.
func (e *Estimator) ItemsUsed(number int) bool { return e.itemsUsed[number] }

// ItemsCount returns the number of items administered so far.
func (e *Estimator) ItemsCount() int { return len(e.itemsUsed) }

// Done reports whether this trait has met its stopping criterion.
func (e *Estimator) Done() bool { return e.done }

// StoppingReason reports why Done became true, or StoppingReasonNone.
func (e *Estimator) StoppingReason() StoppingReason { return e.reason }

// Theta returns the current EAP estimate.
func (e *Estimator) Theta() float64 { return e.engine.EAP() }

// SE returns the current posterior standard deviation.
func (e *Estimator) SE() float64 { return e.engine.SD() }

// Posterior returns the current posterior vector (shared, read-only).
func (e *Estimator) Posterior() []float64 { return e.engine.Posterior() }

// Snapshot returns a read-only copy of the current estimate.
func (e *Estimator) Snapshot() Snapshot {
	return Snapshot{
		Theta:          e.Theta(),
		SE:             e.SE(),
		ItemsCount:     e.ItemsCount(),
		Done:           e.done,
		StoppingReason: e.reason,
	}
}

// Record applies one response to this trait's posterior: validates
// rawResponse and item ownership, delegates to posterior.Engine.Update with
// the item's reverse flag, marks the item used, and recomputes Done.
//
// Returns ErrInvalidResponse, ErrWrongTrait, ErrItemAlreadyUsed, or any
// error posterior.Engine.Update propagates (ErrInvalidItem,
// ErrDegeneratePosterior, wrapped).
func (e *Estimator) Record(item itembank.Item, rawResponse int) error {
	if rawResponse < 1 || rawResponse > 7 {
		return ErrInvalidResponse
	}
	if item.Trait != e.trait {
		return ErrWrongTrait
	}
	if e.itemsUsed[item.Number] {
		return ErrItemAlreadyUsed
	}

	if err := e.engine.Update(item.GRMParams(), rawResponse, item.Reverse); err != nil {
		return fmt.Errorf("trait %s: record item %d: %w", e.trait, item.Number, err)
	}

	e.itemsUsed[item.Number] = true
	e.refreshDone()

	return nil
}

// refreshDone evaluates the stopping rule: done iff se < threshold OR
// items_count >= maxItems. Once true it is never cleared (monotone).
func (e *Estimator) refreshDone() {
	if e.done {
		return
	}
	switch {
	case e.engine.SD() < e.seThreshold:
		e.done = true
		e.reason = StoppingReasonSEThreshold
	case e.ItemsCount() >= e.maxItems:
		e.done = true
		e.reason = StoppingReasonMaxItems
	}
}
