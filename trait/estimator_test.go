package trait_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adaptivesurvey/dose/grid"
	"github.com/adaptivesurvey/dose/itembank"
	"github.com/adaptivesurvey/dose/trait"
)

func eItems() []itembank.Item {
	return []itembank.Item{
		{Number: 1, Trait: itembank.Extraversion, Reverse: false, Alpha: 0.9, Beta: [6]float64{-2.2, -1.4, -0.6, 0.2, 1.0, 1.8}},
		{Number: 7, Trait: itembank.Extraversion, Reverse: true, Alpha: 0.8, Beta: [6]float64{-2.0, -1.2, -0.4, 0.4, 1.2, 2.0}},
		{Number: 19, Trait: itembank.Extraversion, Reverse: true, Alpha: 1.0, Beta: [6]float64{-1.8, -1.0, -0.2, 0.6, 1.4, 2.2}},
		{Number: 23, Trait: itembank.Extraversion, Reverse: false, Alpha: 0.85, Beta: [6]float64{-2.4, -1.6, -0.8, 0.0, 0.8, 1.6}},
	}
}

func TestNewEstimator_InitialState(t *testing.T) {
	e := trait.NewEstimator(itembank.Extraversion, eItems(), grid.Default(), 0.3, 4)
	assert.InDelta(t, 0.0, e.Theta(), 1e-9)
	assert.False(t, e.Done())
	assert.Equal(t, trait.StoppingReasonNone, e.StoppingReason())
	assert.Len(t, e.AvailableItems(), 4)
}

func TestRecord_ExtremeLowResponses_PullsThetaNegative(t *testing.T) {
	items := eItems()
	e := trait.NewEstimator(itembank.Extraversion, items, grid.Default(), 0.3, 4)

	// Extreme-low responses pull theta negative across four reverse-mixed
	// items: items 1,7,19,23 answered {1,7,7,1}; items 7 and 19 are reverse
	// so every canonical category works out to 1 (extreme low).
	responses := []struct {
		number, raw int
	}{{1, 1}, {7, 7}, {19, 7}, {23, 1}}

	prevSD := e.SE()
	for _, r := range responses {
		it, ok := findItem(items, r.number)
		require.True(t, ok)
		require.NoError(t, e.Record(it, r.raw))
		assert.LessOrEqual(t, e.SE(), prevSD+1e-9)
		prevSD = e.SE()
	}

	assert.True(t, e.Theta() >= -2.5 && e.Theta() <= -1.5, "theta %.4f out of expected extreme-low range", e.Theta())
	assert.Equal(t, 4, e.ItemsCount())
	assert.True(t, e.Done())
}

func TestRecord_RejectsOutOfRangeResponse(t *testing.T) {
	items := eItems()
	e := trait.NewEstimator(itembank.Extraversion, items, grid.Default(), 0.3, 4)
	err := e.Record(items[0], 8)
	require.ErrorIs(t, err, trait.ErrInvalidResponse)
}

func TestRecord_RejectsWrongTrait(t *testing.T) {
	items := eItems()
	e := trait.NewEstimator(itembank.Extraversion, items, grid.Default(), 0.3, 4)
	foreign := itembank.Item{Number: 99, Trait: itembank.Openness, Alpha: 1, Beta: items[0].Beta}
	err := e.Record(foreign, 4)
	require.ErrorIs(t, err, trait.ErrWrongTrait)
}

func TestRecord_RejectsAlreadyUsedItem(t *testing.T) {
	items := eItems()
	e := trait.NewEstimator(itembank.Extraversion, items, grid.Default(), 0.3, 4)
	require.NoError(t, e.Record(items[0], 4))
	err := e.Record(items[0], 4)
	require.ErrorIs(t, err, trait.ErrItemAlreadyUsed)
}

func TestDone_IsMonotoneOnceTrue(t *testing.T) {
	items := eItems()
	// A generous SE threshold so the trait finishes after one response.
	e := trait.NewEstimator(itembank.Extraversion, items, grid.Default(), 0.99, 4)
	require.NoError(t, e.Record(items[0], 7))
	require.True(t, e.Done())
	reasonBefore := e.StoppingReason()
	// A further, contradicting response (raw 7 on reverse item 7 is
	// canonical category 1) must not flip Done back or change the reason.
	require.NoError(t, e.Record(items[1], 7))
	assert.True(t, e.Done())
	assert.Equal(t, reasonBefore, e.StoppingReason())
}

func TestDone_MaxItemsReason(t *testing.T) {
	items := eItems()
	e := trait.NewEstimator(itembank.Extraversion, items, grid.Default(), 1e-9, 4)
	for _, it := range items {
		require.NoError(t, e.Record(it, 4))
	}
	assert.True(t, e.Done())
	assert.Equal(t, trait.StoppingReasonMaxItems, e.StoppingReason())
}

func findItem(items []itembank.Item, number int) (itembank.Item, bool) {
	for _, it := range items {
		if it.Number == number {
			return it, true
		}
	}

	return itembank.Item{}, false
}
