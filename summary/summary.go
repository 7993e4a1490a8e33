// Package summary feeds a sample array's component slices through the
// weighted accumulators and labels each result with the variable's
// recovered subscript.
package summary

import (
	"math"

	"github.com/marco-hrlic/go-infer/array"
	"github.com/marco-hrlic/go-infer/wstat"
)

// Options selects the statistics computed per component.
type Options struct {
	// Order is the highest moment statistic: 1 mean through 4
	// kurtosis. Zero means mean only.
	Order int
	// Probs are the quantile levels for continuous components, each in
	// (0, 1).
	Probs []float64
}

// Stats summarizes one component of a sample array. Statistics that
// were not requested, or that do not apply to the component kind, are
// NaN (nil for Quantiles and Table).
type Stats struct {
	Label     string
	Mean      float64
	Variance  float64
	Skewness  float64
	Kurtosis  float64
	Quantiles map[float64]float64
	Mode      float64
	Table     map[float64]float64
	ESS       float64
	Discrete  bool
}

func blank(label string) Stats {
	nan := math.NaN()
	return Stats{
		Label:    label,
		Mean:     nan,
		Variance: nan,
		Skewness: nan,
		Kurtosis: nan,
		Mode:     nan,
	}
}

// SMC summarizes each component of a weighted particle array. Discrete
// components get a mass table and mode; continuous components get
// moments up to opts.Order and quantiles at opts.Probs.
func SMC(a *array.SMCArray, opts Options) ([]Stats, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	c := a.NComponents()
	out := make([]Stats, c)
	for d := 1; d <= c; d++ {
		label, err := a.Range().Label(a.Name, d)
		if err != nil {
			return nil, err
		}
		values, err := a.ComponentValues(d)
		if err != nil {
			return nil, err
		}
		weights, err := a.ComponentWeights(d)
		if err != nil {
			return nil, err
		}
		s, err := component(label, values, weights, a.Discrete[d-1], opts)
		if err != nil {
			return nil, err
		}
		s.ESS = a.ESS[d-1]
		out[d-1] = s
	}
	return out, nil
}

// MCMC summarizes each component of a chain array, with unit weight per
// recorded draw.
func MCMC(a *array.MCMCArray, opts Options) ([]Stats, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	c := a.NComponents()
	out := make([]Stats, c)
	for d := 1; d <= c; d++ {
		label, err := a.Range().Label(a.Name, d)
		if err != nil {
			return nil, err
		}
		values, err := a.ComponentDraws(d)
		if err != nil {
			return nil, err
		}
		weights := make([]float64, len(values))
		for i := range weights {
			weights[i] = 1
		}
		s, err := component(label, values, weights, false, opts)
		if err != nil {
			return nil, err
		}
		s.ESS = wstat.ESS(weights)
		out[d-1] = s
	}
	return out, nil
}

func component(label string, values, weights []float64, discrete bool, opts Options) (Stats, error) {
	s := blank(label)
	s.Discrete = discrete
	if discrete {
		table, err := wstat.Table(values, weights)
		if err != nil {
			return Stats{}, err
		}
		mode, err := wstat.Mode(values, weights)
		if err != nil {
			return Stats{}, err
		}
		s.Table, s.Mode = table, mode
		return s, nil
	}
	order := opts.Order
	if order == 0 {
		order = wstat.OrderMean
	}
	moments, err := wstat.Moments(values, weights, order)
	if err != nil {
		return Stats{}, err
	}
	s.Mean = moments[0]
	if order >= wstat.OrderVariance {
		s.Variance = moments[1]
	}
	if order >= wstat.OrderSkewness {
		s.Skewness = moments[2]
	}
	if order >= wstat.OrderKurtosis {
		s.Kurtosis = moments[3]
	}
	if len(opts.Probs) > 0 {
		qs, err := wstat.Quantiles(values, weights, opts.Probs...)
		if err != nil {
			return Stats{}, err
		}
		s.Quantiles = make(map[float64]float64, len(qs))
		for i, p := range opts.Probs {
			s.Quantiles[p] = qs[i]
		}
	}
	return s, nil
}
