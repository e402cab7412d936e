package scoring

import "math"

// AgreementStats summarizes how closely a set of paired (adaptive, fixed-form)
// trait scores agree: Pearson's r computed directly from each slice's mean
// and standard deviation, plus the mean absolute difference.
type AgreementStats struct {
	PearsonR         float64
	MeanAbsoluteDiff float64
	N                int
}

// Agreement computes Pearson's r and the mean absolute difference between
// two equal-length, trait-aligned score slices (typically LikertProjection
// outputs paired against FixedFormScore means). Degenerate cases (zero
// variance in either slice) report PearsonR as 0 rather than NaN.
func Agreement(adaptive, fixedForm []float64) (AgreementStats, error) {
	if len(adaptive) != len(fixedForm) {
		return AgreementStats{}, ErrItemCountMismatch
	}
	if len(adaptive) == 0 {
		return AgreementStats{}, ErrEmptyTraitSet
	}

	n := len(adaptive)
	var sumAbs float64
	for i := range adaptive {
		sumAbs += math.Abs(adaptive[i] - fixedForm[i])
	}

	meanA := mean(adaptive)
	meanF := mean(fixedForm)
	stdA := stddev(adaptive, meanA)
	stdF := stddev(fixedForm, meanF)

	var r float64
	if stdA > 0 && stdF > 0 {
		var cov float64
		for i := range adaptive {
			cov += (adaptive[i] - meanA) * (fixedForm[i] - meanF)
		}
		cov /= float64(n)
		r = cov / (stdA * stdF)
	}

	return AgreementStats{
		PearsonR:         r,
		MeanAbsoluteDiff: sumAbs / float64(n),
		N:                n,
	}, nil
}

func mean(xs []float64) float64 {
	var sum float64
	for _, x := range xs {
		sum += x
	}

	return sum / float64(len(xs))
}

func stddev(xs []float64, m float64) float64 {
	var sumSq float64
	for _, x := range xs {
		d := x - m
		sumSq += d * d
	}

	return math.Sqrt(sumSq / float64(len(xs)))
}
