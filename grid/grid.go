package grid

import "math"

// Default bounds and point count for the standard theta grid.
const (
	DefaultMin    = -4.0
	DefaultMax    = 4.0
	DefaultPoints = 161
)

// minPoints and maxStep are the numerical-trustworthiness floor: below 21
// points, or with an implied step coarser than 0.1, posterior moments
// computed by rectangle-rule quadrature lose too much accuracy.
const (
	minPoints = 21
	maxStep   = 0.1
)

// Spec is an immutable θ-axis discretization: Points equally spaced nodes
// covering [Min, Max] inclusive, step Δθ = (Max-Min)/(Points-1).
type Spec struct {
	min    float64
	max    float64
	points int
	step   float64
	nodes  []float64
}

// NewSpec validates and builds a Spec. Returns ErrBadRange, ErrTooFewPoints,
// or ErrStepTooCoarse on invalid input.
//
// Complexity: O(points) time and space.
func NewSpec(min, max float64, points int) (*Spec, error) {
	if !(min < max) {
		return nil, ErrBadRange
	}
	if points < minPoints {
		return nil, ErrTooFewPoints
	}
	step := (max - min) / float64(points-1)
	if step > maxStep {
		return nil, ErrStepTooCoarse
	}

	nodes := make([]float64, points)
	for i := 0; i < points; i++ {
		nodes[i] = min + float64(i)*step
	}
	// Pin the final node exactly to max to avoid float drift accumulating
	// across 160 additions.
	nodes[points-1] = max

	return &Spec{min: min, max: max, points: points, step: step, nodes: nodes}, nil
}

// Default returns the process-wide standard grid: θ ∈ [-4, 4], N=161,
// Δθ=0.05. Never returns an error; the defaults satisfy NewSpec's
// invariants by construction.
func Default() *Spec {
	s, err := NewSpec(DefaultMin, DefaultMax, DefaultPoints)
	if err != nil {
		panic("grid: default spec failed validation: " + err.Error())
	}

	return s
}

// Min returns the lower θ bound.
func (s *Spec) Min() float64 { return s.min }

// Max returns the upper θ bound.
func (s *Spec) Max() float64 { return s.max }

// Points returns the node count N.
func (s *Spec) Points() int { return s.points }

// Step returns the quadrature weight Δθ.
func (s *Spec) Step() float64 { return s.step }

// Nodes returns the θ values at each grid index. The returned slice must not
// be mutated by callers; it is shared across every posterior built on this
// Spec.
func (s *Spec) Nodes() []float64 { return s.nodes }

// NormalPDF evaluates the standard-normal density at each grid node,
// unnormalized over the grid's finite support. Used by posterior.Engine to
// seed the N(0,1) prior.
func (s *Spec) NormalPDF() []float64 {
	const invSqrt2Pi = 0.3989422804014327 // 1/sqrt(2*pi)

	pdf := make([]float64, s.points)
	for i, theta := range s.nodes {
		pdf[i] = invSqrt2Pi * math.Exp(-0.5*theta*theta)
	}

	return pdf
}

// Sum performs the rectangle-rule quadrature Σᵢ vᵢ·Δθ. v must have length
// Points(); callers are responsible for the length match (internal callers
// only ever pass grid-shaped vectors).
func (s *Spec) Sum(v []float64) float64 {
	var total float64
	for _, x := range v {
		total += x
	}

	return total * s.step
}

// Mean computes Σᵢ nodesᵢ·v[i]·Δθ — the EAP of a posterior v.
func (s *Spec) Mean(v []float64) float64 {
	var total float64
	for i, x := range v {
		total += s.nodes[i] * x
	}

	return total * s.step
}

// SD computes the posterior standard deviation √(Σᵢ(nodesᵢ-mean)²·v[i]·Δθ).
func (s *Spec) SD(v []float64, mean float64) float64 {
	var total float64
	for i, x := range v {
		d := s.nodes[i] - mean
		total += d * d * x
	}
	variance := total * s.step
	if variance < 0 {
		// Guard against a sliver of negative variance from floating-point
		// cancellation near a near-degenerate posterior; true variance is
		// never negative.
		variance = 0
	}

	return math.Sqrt(variance)
}
