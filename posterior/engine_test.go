package posterior_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adaptivesurvey/dose/grid"
	"github.com/adaptivesurvey/dose/grm"
	"github.com/adaptivesurvey/dose/posterior"
)

func sampleItem() grm.ItemParams {
	return grm.ItemParams{
		Alpha: 1.0,
		Beta:  [6]float64{-2.0, -1.2, -0.4, 0.4, 1.2, 2.0},
	}
}

func TestCanonicalCategory(t *testing.T) {
	assert.Equal(t, 4, posterior.CanonicalCategory(4, false))
	assert.Equal(t, 4, posterior.CanonicalCategory(4, true))
	assert.Equal(t, 1, posterior.CanonicalCategory(7, true))
	assert.Equal(t, 7, posterior.CanonicalCategory(1, true))
	assert.Equal(t, 1, posterior.CanonicalCategory(1, false))
}

func TestNewEngine_InitializesToStandardNormal(t *testing.T) {
	e := posterior.NewEngine(grid.Default())
	assert.InDelta(t, 0.0, e.EAP(), 1e-9)
	assert.InDelta(t, 1.0, e.SD(), 0.05)
	assert.InDelta(t, 1.0, e.Spec().Sum(e.Posterior()), 1e-6)
}

func TestUpdate_IntegratesToOneAndReducesSD(t *testing.T) {
	e := posterior.NewEngine(grid.Default())
	item := sampleItem()
	sdBefore := e.SD()

	require.NoError(t, e.Update(item, 7, false))
	assert.InDelta(t, 1.0, e.Spec().Sum(e.Posterior()), 1e-6)
	assert.LessOrEqual(t, e.SD(), sdBefore+1e-9)
	assert.Greater(t, e.EAP(), 0.0)
}

func TestUpdate_ReverseFlipsDirection(t *testing.T) {
	spec := grid.Default()
	straight := posterior.NewEngine(spec)
	reversed := posterior.NewEngine(spec)
	item := sampleItem()

	require.NoError(t, straight.Update(item, 7, false))
	require.NoError(t, reversed.Update(item, 1, true))

	// response=7 non-reverse and response=1 reverse both canonicalize to
	// category 7, so the two posteriors must match exactly.
	assert.InDelta(t, straight.EAP(), reversed.EAP(), 1e-12)
	assert.InDelta(t, straight.SD(), reversed.SD(), 1e-12)
}

func TestUpdate_RejectsInvalidItem(t *testing.T) {
	e := posterior.NewEngine(grid.Default())
	item := sampleItem()
	item.Alpha = 0
	err := e.Update(item, 4, false)
	require.ErrorIs(t, err, posterior.ErrInvalidItem)
}

func TestUpdate_MonotonicSDAcrossRepeatedInformativeResponses(t *testing.T) {
	e := posterior.NewEngine(grid.Default())
	item := sampleItem()
	prevSD := e.SD()
	for i := 0; i < 4; i++ {
		require.NoError(t, e.Update(item, 7, false))
		assert.LessOrEqual(t, e.SD(), prevSD+1e-9)
		prevSD = e.SD()
	}
}

func TestSequentialUpdates_AreDeterministic(t *testing.T) {
	spec := grid.Default()
	item := sampleItem()

	e1 := posterior.NewEngine(spec)
	require.NoError(t, e1.Update(item, 7, false))
	require.NoError(t, e1.Update(item, 1, false))

	e2 := posterior.NewEngine(spec)
	require.NoError(t, e2.Update(item, 7, false))
	require.NoError(t, e2.Update(item, 1, false))

	assert.Equal(t, e1.EAP(), e2.EAP())
	assert.Equal(t, e1.SD(), e2.SD())
}
