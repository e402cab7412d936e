package session

import (
	"fmt"

	"github.com/adaptivesurvey/dose/grid"
	"github.com/adaptivesurvey/dose/itembank"
	"github.com/adaptivesurvey/dose/selector"
	"github.com/adaptivesurvey/dose/trait"
)

// Controller is the top-level adaptive-session state machine. It is
// single-threaded and cooperative per session: the caller is responsible
// for serializing calls on a given Controller. A Controller must be
// constructed with New and driven through Start then repeated Respond
// calls.
type Controller struct {
	bank        *itembank.Bank
	spec        *grid.Spec
	seThreshold float64
	maxItems    int

	state        State
	estimators   map[itembank.Trait]*trait.Estimator
	currentTrait itembank.Trait
	currentItem  *itembank.Item
	history      []HistoryRow
}

// New builds a Controller in StateAwaitingStart over the given bank and
// grid, with the given stopping-rule configuration. It does not itself
// validate seThreshold/maxItems beyond what trait.NewEstimator enforces
// implicitly; engineconfig is responsible for validating these knobs before
// they reach here. Configuration knobs are captured into the Controller at
// construction time, not read live from a process-wide singleton.
func New(bank *itembank.Bank, spec *grid.Spec, seThreshold float64, maxItems int) *Controller {
	return &Controller{
		bank:        bank,
		spec:        spec,
		seThreshold: seThreshold,
		maxItems:    maxItems,
		state:       StateAwaitingStart,
	}
}

// Start initializes six TraitStates, chooses the first trait and item via
// the trait-selection and item-selection rules, and transitions to
// StateAwaitingResponse. Returns the first item to present.
func (c *Controller) Start() (CurrentItem, error) {
	c.estimators = make(map[itembank.Trait]*trait.Estimator, len(itembank.CanonicalOrder))
	for _, tr := range itembank.CanonicalOrder {
		c.estimators[tr] = trait.NewEstimator(tr, c.bank.ItemsForTrait(tr), c.spec, c.seThreshold, c.maxItems)
	}

	tr, ok := c.nextTrait()
	if !ok {
		// Every trait already done at construction (maxItems==0 or a
		// pathological threshold) — go straight to complete.
		c.state = StateComplete

		return CurrentItem{}, nil
	}

	item, err := c.pickItem(tr)
	if err != nil {
		c.state = StateFailed

		return CurrentItem{}, err
	}

	c.state = StateAwaitingResponse

	return item, nil
}

// Respond applies one raw response to the item currently awaiting an
// answer. Before Start it returns ErrNotStarted; outside
// StateAwaitingResponse, ErrProtocolViolation; for a response outside 1..7,
// ErrInvalidResponse (state unchanged in all three cases). A recording or
// selection failure moves the Controller to StateFailed. Otherwise it
// transitions to StateComplete once every trait is done, or presents the
// next item and stays in StateAwaitingResponse.
func (c *Controller) Respond(rawResponse int) (Result, error) {
	if c.state == StateAwaitingStart {
		return Result{}, ErrNotStarted
	}
	if c.state != StateAwaitingResponse {
		return Result{}, ErrProtocolViolation
	}
	if rawResponse < 1 || rawResponse > 7 {
		return Result{}, ErrInvalidResponse
	}

	est := c.estimators[c.currentTrait]
	item := *c.currentItem

	if err := est.Record(item, rawResponse); err != nil {
		c.state = StateFailed

		return Result{}, fmt.Errorf("session: record item %d: %w", item.Number, err)
	}

	c.history = append(c.history, HistoryRow{
		ItemNumber:  item.Number,
		RawResponse: rawResponse,
		Trait:       item.Trait,
		ThetaAfter:  est.Theta(),
		SEAfter:     est.SE(),
	})
	c.currentItem = nil

	if c.allDone() {
		c.state = StateComplete

		return Result{Action: ActionComplete, Estimates: c.estimates()}, nil
	}

	tr, ok := c.nextTrait()
	if !ok {
		// Defensive: allDone() should have already caught this.
		c.state = StateComplete

		return Result{Action: ActionComplete, Estimates: c.estimates()}, nil
	}

	next, err := c.pickItem(tr)
	if err != nil {
		c.state = StateFailed

		return Result{}, err
	}

	return Result{Action: ActionPresentItem, NextItem: &next, Estimates: c.estimates()}, nil
}

// Snapshot returns a read-only, idempotent view of the current estimates
// and history.
func (c *Controller) Snapshot() Snapshot {
	var cur *CurrentItem
	if c.currentItem != nil {
		cur = &CurrentItem{Number: c.currentItem.Number, Trait: c.currentItem.Trait}
	}
	historyCopy := make([]HistoryRow, len(c.history))
	copy(historyCopy, c.history)

	return Snapshot{
		State:     c.state,
		Estimates: c.estimates(),
		History:   historyCopy,
		Current:   cur,
	}
}

// State returns the Controller's current state.
func (c *Controller) State() State { return c.state }

// pickItem invokes the selector for a trait and caches the chosen item as
// the current item.
func (c *Controller) pickItem(tr itembank.Trait) (CurrentItem, error) {
	item, err := selector.Select(c.estimators[tr])
	if err != nil {
		return CurrentItem{}, err
	}
	c.currentTrait = tr
	c.currentItem = &item

	return CurrentItem{Number: item.Number, Trait: item.Trait}, nil
}

// nextTrait implements the round-robin-by-fewest-items-first rule: among
// traits that are not done, pick the smallest items_count, breaking ties
// by canonical order (E,A,C,N,O,H).
func (c *Controller) nextTrait() (itembank.Trait, bool) {
	var (
		best      itembank.Trait
		bestCount = -1
		found     bool
	)
	for _, tr := range itembank.CanonicalOrder {
		est := c.estimators[tr]
		if est.Done() {
			continue
		}
		if !found || est.ItemsCount() < bestCount {
			best, bestCount, found = tr, est.ItemsCount(), true
		}
	}

	return best, found
}

func (c *Controller) allDone() bool {
	for _, tr := range itembank.CanonicalOrder {
		if !c.estimators[tr].Done() {
			return false
		}
	}

	return true
}

func (c *Controller) estimates() []TraitEstimate {
	out := make([]TraitEstimate, 0, len(itembank.CanonicalOrder))
	for _, tr := range itembank.CanonicalOrder {
		est := c.estimators[tr]
		out = append(out, TraitEstimate{
			Trait:          tr,
			Theta:          est.Theta(),
			SE:             est.SE(),
			ItemsCount:     est.ItemsCount(),
			Done:           est.Done(),
			StoppingReason: string(est.StoppingReason()),
		})
	}

	return out
}
