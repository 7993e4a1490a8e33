// Package wstat computes weighted summary statistics over
// (value, weight) samples: single-pass moment accumulation, weighted
// quantiles and discrete mass tables. Weights need not be normalized;
// they are treated as proportional to probability mass.
package wstat

import (
	"gonum.org/v1/gonum/floats"

	infer "github.com/marco-hrlic/go-infer"
)

func checkLens(values, weights []float64) error {
	if len(values) != len(weights) {
		return infer.Configf("values and weights must have same length: %d != %d", len(values), len(weights))
	}
	return nil
}

// Moments returns the weighted statistics of the sample up to the
// requested order: mean, then population variance, skewness and excess
// kurtosis as order grows.
func Moments(values, weights []float64, order int) ([]float64, error) {
	if err := checkLens(values, weights); err != nil {
		return nil, err
	}
	a, err := NewAccumulator(order)
	if err != nil {
		return nil, err
	}
	for i := range values {
		a.Push(values[i], weights[i])
	}
	out := make([]float64, 0, order)
	m, err := a.Mean()
	if err != nil {
		return nil, err
	}
	out = append(out, m)
	if order >= OrderVariance {
		v, err := a.Variance()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if order >= OrderSkewness {
		s, err := a.Skewness()
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if order >= OrderKurtosis {
		k, err := a.Kurtosis()
		if err != nil {
			return nil, err
		}
		out = append(out, k)
	}
	return out, nil
}

// Mean returns the weighted mean of the sample.
func Mean(values, weights []float64) (float64, error) {
	stats, err := Moments(values, weights, OrderMean)
	if err != nil {
		return 0, err
	}
	return stats[0], nil
}

// Variance returns the weighted population variance of the sample.
func Variance(values, weights []float64) (float64, error) {
	stats, err := Moments(values, weights, OrderVariance)
	if err != nil {
		return 0, err
	}
	return stats[1], nil
}

// Skewness returns the weighted skewness of the sample.
func Skewness(values, weights []float64) (float64, error) {
	stats, err := Moments(values, weights, OrderSkewness)
	if err != nil {
		return 0, err
	}
	return stats[2], nil
}

// Kurtosis returns the weighted excess kurtosis of the sample.
func Kurtosis(values, weights []float64) (float64, error) {
	stats, err := Moments(values, weights, OrderKurtosis)
	if err != nil {
		return 0, err
	}
	return stats[3], nil
}

// Quantiles returns the weighted quantile estimates at the given
// probability levels, each in the open interval (0, 1).
func Quantiles(values, weights []float64, probs ...float64) ([]float64, error) {
	if err := checkLens(values, weights); err != nil {
		return nil, err
	}
	q, err := NewQuantileAccumulator(probs...)
	if err != nil {
		return nil, err
	}
	for i := range values {
		q.Push(values[i], weights[i])
	}
	out := make([]float64, len(probs))
	for i := range probs {
		v, err := q.Quantile(i)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Median returns the weighted median of the sample.
func Median(values, weights []float64) (float64, error) {
	q, err := Quantiles(values, weights, 0.5)
	if err != nil {
		return 0, err
	}
	return q[0], nil
}

// Table returns the normalized discrete mass table of the sample.
func Table(values, weights []float64) (map[float64]float64, error) {
	if err := checkLens(values, weights); err != nil {
		return nil, err
	}
	d := NewDiscreteAccumulator()
	for i := range values {
		d.Push(values[i], weights[i])
	}
	return d.Table()
}

// Mode returns the weighted mode of the sample; ties go to the smallest
// value.
func Mode(values, weights []float64) (float64, error) {
	if err := checkLens(values, weights); err != nil {
		return 0, err
	}
	d := NewDiscreteAccumulator()
	for i := range values {
		d.Push(values[i], weights[i])
	}
	return d.Mode()
}

// ESS returns the effective sample size of a weight vector,
// (sum w)^2 / sum w^2. A zero vector has ESS zero.
func ESS(weights []float64) float64 {
	sum := floats.Sum(weights)
	ss := floats.Dot(weights, weights)
	if ss == 0 {
		return 0
	}
	return sum * sum / ss
}
