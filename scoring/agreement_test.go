package scoring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adaptivesurvey/dose/scoring"
)

func TestAgreement_PerfectCorrelation(t *testing.T) {
	stats, err := scoring.Agreement([]float64{1, 2, 3, 4}, []float64{1, 2, 3, 4})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, stats.PearsonR, 1e-9)
	assert.InDelta(t, 0.0, stats.MeanAbsoluteDiff, 1e-9)
}

func TestAgreement_DegenerateVarianceReportsZeroR(t *testing.T) {
	stats, err := scoring.Agreement([]float64{4, 4, 4}, []float64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 0.0, stats.PearsonR)
}

func TestAgreement_LengthMismatch(t *testing.T) {
	_, err := scoring.Agreement([]float64{1, 2}, []float64{1})
	require.ErrorIs(t, err, scoring.ErrItemCountMismatch)
}

func TestAgreement_MeanAbsoluteDiff(t *testing.T) {
	stats, err := scoring.Agreement([]float64{5, 3}, []float64{4, 4})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, stats.MeanAbsoluteDiff, 1e-9)
}
