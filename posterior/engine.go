package posterior

import (
	"math"

	"github.com/adaptivesurvey/dose/grid"
	"github.com/adaptivesurvey/dose/grm"
)

// CanonicalCategory applies the reverse-scoring convention: a
// reverse-flagged item's observed response r in 1..7 is mapped to
// r' = 8-r before the kernel is consulted; a non-reverse item passes r
// through unchanged. This is the single place in the module where the
// 8-minus-response transform happens; every other package treats responses
// as already canonicalized.
func CanonicalCategory(rawResponse int, reverse bool) int {
	if reverse {
		return 8 - rawResponse
	}

	return rawResponse
}

// Engine holds a grid-discretized posterior over a single trait's latent θ.
// It performs no I/O; every method is a pure computation over its receiver.
type Engine struct {
	spec      *grid.Spec
	posterior []float64
	theta     float64
	sd        float64
}

// NewEngine builds an Engine on the given grid and initializes it to the
// standard-normal prior.
func NewEngine(spec *grid.Spec) *Engine {
	e := &Engine{spec: spec}
	e.Init()

	return e
}

// Init resets the posterior to the discretized N(0,1) density, renormalized
// so Σᵢ posteriorᵢ·Δθ = 1, and recomputes the cached EAP/SD.
func (e *Engine) Init() {
	pdf := e.spec.NormalPDF()
	total := e.spec.Sum(pdf)
	for i := range pdf {
		pdf[i] /= total
	}
	e.posterior = pdf
	e.recompute()
}

// Update applies one response to an item: computes the GRM log-likelihood
// at every grid node for the canonicalized response category, multiplies
// it into the log-posterior, renormalizes, and refreshes the cached
// EAP/SD. rawResponse must be in 1..7; reverse selects the reverse-scoring
// transform.
//
// Returns ErrInvalidItem if the item's GRM parameters are malformed, or
// ErrDegeneratePosterior if the renormalizing sum underflows to zero.
//
// Complexity: O(N) in the grid's point count.
func (e *Engine) Update(item grm.ItemParams, rawResponse int, reverse bool) error {
	category := CanonicalCategory(rawResponse, reverse)
	nodes := e.spec.Nodes()

	logPost := make([]float64, len(nodes))
	maxLog := math.Inf(-1)
	for i, theta := range nodes {
		probs, err := grm.CategoryProbs(item, theta)
		if err != nil {
			return ErrInvalidItem
		}
		logLike := math.Log(probs[category-1])
		logPost[i] = math.Log(e.posterior[i]) + logLike
		if logPost[i] > maxLog {
			maxLog = logPost[i]
		}
	}

	var sum float64
	next := make([]float64, len(nodes))
	for i, lp := range logPost {
		next[i] = math.Exp(lp - maxLog)
		sum += next[i]
	}
	normalizer := sum * e.spec.Step()
	if normalizer == 0 {
		return ErrDegeneratePosterior
	}
	for i := range next {
		next[i] /= normalizer
	}

	e.posterior = next
	e.recompute()

	return nil
}

func (e *Engine) recompute() {
	e.theta = e.spec.Mean(e.posterior)
	e.sd = e.spec.SD(e.posterior, e.theta)
}

// EAP returns the cached posterior mean (expected a posteriori estimate).
func (e *Engine) EAP() float64 { return e.theta }

// SD returns the cached posterior standard deviation.
func (e *Engine) SD() float64 { return e.sd }

// Posterior returns the current posterior vector. Callers must not mutate
// the returned slice; it is owned by the Engine.
func (e *Engine) Posterior() []float64 { return e.posterior }

// Spec returns the grid this Engine integrates over.
func (e *Engine) Spec() *grid.Spec { return e.spec }
