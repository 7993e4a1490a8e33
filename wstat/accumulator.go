package wstat

import (
	"math"

	infer "github.com/marco-hrlic/go-infer"
)

// Statistic orders. Each order requires tracking all lower-order power
// sums, so an order-4 accumulator maintains m1 through m4.
const (
	OrderMean = iota + 1
	OrderVariance
	OrderSkewness
	OrderKurtosis
)

// Accumulator is a single-pass weighted moment estimator. The
// constructor fixes the highest statistic order; Push folds in one
// weighted observation; the derived statistics read out at the end from
// the raw weighted power sums about the origin.
type Accumulator struct {
	order int
	n     int
	w     float64
	m     [4]float64
}

// NewAccumulator returns an accumulator tracking power sums up to the
// given order, which must be in [1, 4].
func NewAccumulator(order int) (*Accumulator, error) {
	if order < OrderMean || order > OrderKurtosis {
		return nil, infer.Configf("statistic order %d outside [1, 4]", order)
	}
	return &Accumulator{order: order}, nil
}

// Push folds one weighted observation into the running power sums.
func (a *Accumulator) Push(x, w float64) {
	a.n++
	a.w += w
	xp := 1.0
	for i := 0; i < a.order; i++ {
		xp *= x
		a.m[i] += w * xp
	}
}

// Count returns the number of pushed observations.
func (a *Accumulator) Count() int { return a.n }

// SumWeights returns the total accumulated weight.
func (a *Accumulator) SumWeights() float64 { return a.w }

func (a *Accumulator) norm() (float64, error) {
	if !(a.w > 0) || math.IsInf(a.w, 0) {
		return 0, infer.Domainf("total weight %g is not positive and finite", a.w)
	}
	return a.w, nil
}

// Mean returns the weighted mean.
func (a *Accumulator) Mean() (float64, error) {
	w, err := a.norm()
	if err != nil {
		return 0, err
	}
	return a.m[0] / w, nil
}

// Variance returns the weighted population variance.
func (a *Accumulator) Variance() (float64, error) {
	if a.order < OrderVariance {
		return 0, infer.Configf("variance requires order >= 2, accumulator tracks order %d", a.order)
	}
	w, err := a.norm()
	if err != nil {
		return 0, err
	}
	mean := a.m[0] / w
	return a.m[1]/w - mean*mean, nil
}

// Skewness returns the weighted skewness. The sample must have positive
// variance.
func (a *Accumulator) Skewness() (float64, error) {
	if a.order < OrderSkewness {
		return 0, infer.Configf("skewness requires order >= 3, accumulator tracks order %d", a.order)
	}
	w, err := a.norm()
	if err != nil {
		return 0, err
	}
	mean := a.m[0] / w
	v := a.m[1]/w - mean*mean
	if v <= 0 {
		return 0, infer.Domainf("skewness undefined: variance %g is not positive", v)
	}
	num := a.m[2]/w - 3*mean*a.m[1]/w + 2*mean*mean*mean
	return num / math.Pow(v, 1.5), nil
}

// Kurtosis returns the weighted excess kurtosis. The sample must have
// positive variance.
func (a *Accumulator) Kurtosis() (float64, error) {
	if a.order < OrderKurtosis {
		return 0, infer.Configf("kurtosis requires order >= 4, accumulator tracks order %d", a.order)
	}
	w, err := a.norm()
	if err != nil {
		return 0, err
	}
	mean := a.m[0] / w
	m2 := a.m[1] / w
	v := m2 - mean*mean
	if v <= 0 {
		return 0, infer.Domainf("kurtosis undefined: variance %g is not positive", v)
	}
	m3 := a.m[2] / w
	m4 := a.m[3] / w
	num := m4 - 4*mean*m3 + 6*mean*mean*m2 - 3*mean*mean*mean*mean
	return num/(v*v) - 3, nil
}
