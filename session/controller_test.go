package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adaptivesurvey/dose/grid"
	"github.com/adaptivesurvey/dose/itembank"
	"github.com/adaptivesurvey/dose/session"
)

func newController(t *testing.T, seThreshold float64, maxItems int) *session.Controller {
	t.Helper()
	bank, err := itembank.ReferenceBank()
	require.NoError(t, err)

	return session.New(bank, grid.Default(), seThreshold, maxItems)
}

func TestController_StartReturnsExtraversionFirst(t *testing.T) {
	c := newController(t, 0.3, 4)
	item, err := c.Start()
	require.NoError(t, err)
	assert.Equal(t, itembank.Extraversion, item.Trait)
	assert.Equal(t, session.StateAwaitingResponse, c.State())
}

func TestController_RespondBeforeStart(t *testing.T) {
	c := newController(t, 0.3, 4)
	_, err := c.Respond(4)
	require.ErrorIs(t, err, session.ErrNotStarted)
}

func TestController_InvalidResponseRejected(t *testing.T) {
	c := newController(t, 0.3, 4)
	_, err := c.Start()
	require.NoError(t, err)

	_, err = c.Respond(8)
	require.ErrorIs(t, err, session.ErrInvalidResponse)
	// State unchanged, still awaiting the same response.
	assert.Equal(t, session.StateAwaitingResponse, c.State())
}

func TestController_RespondAfterCompleteIsProtocolViolation(t *testing.T) {
	c := newController(t, 0.01, 4)
	_, err := c.Start()
	require.NoError(t, err)

	var last session.Result
	for i := 0; i < 24; i++ {
		last, err = c.Respond(4)
		require.NoError(t, err)
	}
	require.Equal(t, session.ActionComplete, last.Action)

	_, err = c.Respond(4)
	require.ErrorIs(t, err, session.ErrProtocolViolation)
}

func TestController_RoundRobinFirstSixResponses(t *testing.T) {
	c := newController(t, 0.3, 4)
	_, err := c.Start()
	require.NoError(t, err)

	seen := map[itembank.Trait]int{}

	// Track the sequence of traits presented across the first six
	// responses via Snapshot().Current before each Respond.
	snap := c.Snapshot()
	require.NotNil(t, snap.Current)
	seen[snap.Current.Trait]++

	for i := 0; i < 5; i++ {
		res, err := c.Respond(4)
		require.NoError(t, err)
		require.Equal(t, session.ActionPresentItem, res.Action)
		seen[res.NextItem.Trait]++
	}

	for _, tr := range itembank.CanonicalOrder {
		assert.Equal(t, 1, seen[tr], "trait %s should have exactly one item in the first six presentations", tr)
	}
}

func TestController_CompletesViaMaxItems(t *testing.T) {
	c := newController(t, 0.01, 4)
	_, err := c.Start()
	require.NoError(t, err)

	var last session.Result
	for i := 0; i < 24; i++ {
		last, err = c.Respond(4)
		require.NoError(t, err)
	}

	assert.Equal(t, session.ActionComplete, last.Action)
	assert.Equal(t, session.StateComplete, c.State())
	for _, est := range last.Estimates {
		assert.True(t, est.Done)
		assert.Equal(t, 4, est.ItemsCount)
	}
}

func TestController_StoppingRuleUnderGenerousThreshold(t *testing.T) {
	// Consistent extreme-low responses (raw 1, or raw 7 on reverse items, so
	// every canonical category is 1) should drive SE below a generous 0.8
	// threshold for at least one trait.
	bank, err := itembank.ReferenceBank()
	require.NoError(t, err)
	c := newController(t, 0.8, 4)
	current, err := c.Start()
	require.NoError(t, err)

	for i := 0; i < 24; i++ {
		item, ok := bank.Item(current.Number)
		require.True(t, ok)
		raw := 1
		if item.Reverse {
			raw = 7
		}
		res, err := c.Respond(raw)
		require.NoError(t, err)
		if res.Action == session.ActionComplete {
			break
		}
		current = *res.NextItem
	}

	snap := c.Snapshot()
	foundSEStop := false
	for _, est := range snap.Estimates {
		if est.StoppingReason == "se_threshold" {
			foundSEStop = true
		}
	}
	assert.True(t, foundSEStop, "expected at least one trait to stop via se_threshold under a generous threshold")
}
