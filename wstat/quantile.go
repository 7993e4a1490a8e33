package wstat

import (
	"sort"

	"gonum.org/v1/gonum/floats"

	infer "github.com/marco-hrlic/go-infer"
)

// QuantileAccumulator estimates weighted quantiles at a fixed set of
// probability levels. The estimate interpolates linearly between
// plotting positions t_i = (C_i - w_i) / (W - w_n) over the
// value-sorted sample, where C_i is the inclusive cumulative weight, W
// the total weight and w_n the weight of the largest value. With equal
// weights the positions are (i-1)/(n-1), so the estimate coincides with
// the ordinary type 7 sample quantile, and the positions are
// non-decreasing, so the estimate is monotone in p.
type QuantileAccumulator struct {
	probs []float64
	xs    []float64
	ws    []float64
	cum   []float64
	dirty bool
}

// NewQuantileAccumulator configures an accumulator for the given
// probability levels, each in the open interval (0, 1).
func NewQuantileAccumulator(probs ...float64) (*QuantileAccumulator, error) {
	if len(probs) == 0 {
		return nil, infer.Configf("no probability levels")
	}
	for _, p := range probs {
		if !(p > 0 && p < 1) {
			return nil, infer.Configf("probability level %g outside (0, 1)", p)
		}
	}
	return &QuantileAccumulator{probs: append([]float64(nil), probs...)}, nil
}

// Push folds one weighted observation into the sample.
func (q *QuantileAccumulator) Push(x, w float64) {
	q.xs = append(q.xs, x)
	q.ws = append(q.ws, w)
	q.dirty = true
}

// Quantile returns the estimate for the i-th configured probability
// level.
func (q *QuantileAccumulator) Quantile(i int) (float64, error) {
	if i < 0 || i >= len(q.probs) {
		return 0, infer.Configf("quantile index %d outside [0, %d)", i, len(q.probs))
	}
	if err := q.prepare(); err != nil {
		return 0, err
	}
	return q.at(q.probs[i]), nil
}

type byValue struct{ xs, ws []float64 }

func (s byValue) Len() int           { return len(s.xs) }
func (s byValue) Less(i, j int) bool { return s.xs[i] < s.xs[j] }
func (s byValue) Swap(i, j int) {
	s.xs[i], s.xs[j] = s.xs[j], s.xs[i]
	s.ws[i], s.ws[j] = s.ws[j], s.ws[i]
}

func (q *QuantileAccumulator) prepare() error {
	if len(q.xs) == 0 {
		return infer.Domainf("no observations pushed")
	}
	if w := floats.Sum(q.ws); !(w > 0) {
		return infer.Domainf("total weight %g is not positive", w)
	}
	if !q.dirty {
		return nil
	}
	sort.Sort(byValue{xs: q.xs, ws: q.ws})
	if cap(q.cum) < len(q.ws) {
		q.cum = make([]float64, len(q.ws))
	}
	q.cum = q.cum[:len(q.ws)]
	floats.CumSum(q.cum, q.ws)
	q.dirty = false
	return nil
}

func (q *QuantileAccumulator) at(p float64) float64 {
	n := len(q.xs)
	if n == 1 {
		return q.xs[0]
	}
	den := q.cum[n-1] - q.ws[n-1]
	if den <= 0 {
		// all mass sits on the largest value
		return q.xs[n-1]
	}
	pos := func(i int) float64 { return (q.cum[i] - q.ws[i]) / den }
	j := sort.Search(n, func(i int) bool { return pos(i) >= p })
	if j == 0 {
		return q.xs[0]
	}
	if j == n {
		return q.xs[n-1]
	}
	lo, hi := pos(j-1), pos(j)
	if hi == lo {
		return q.xs[j]
	}
	frac := (p - lo) / (hi - lo)
	return q.xs[j-1] + frac*(q.xs[j]-q.xs[j-1])
}
