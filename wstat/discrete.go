package wstat

import (
	"sort"

	infer "github.com/marco-hrlic/go-infer"
)

// DiscreteAccumulator groups weights by exact value equality, yielding
// the normalized mass table and the weighted mode.
type DiscreteAccumulator struct {
	mass map[float64]float64
	w    float64
}

// NewDiscreteAccumulator returns an empty discrete accumulator.
func NewDiscreteAccumulator() *DiscreteAccumulator {
	return &DiscreteAccumulator{mass: make(map[float64]float64)}
}

// Push folds one weighted observation into the table.
func (d *DiscreteAccumulator) Push(x, w float64) {
	d.mass[x] += w
	d.w += w
}

// Positions returns the distinct values in ascending order.
func (d *DiscreteAccumulator) Positions() []float64 {
	out := make([]float64, 0, len(d.mass))
	for v := range d.mass {
		out = append(out, v)
	}
	sort.Float64s(out)
	return out
}

// Table returns the mapping from distinct value to normalized mass.
func (d *DiscreteAccumulator) Table() (map[float64]float64, error) {
	if !(d.w > 0) {
		return nil, infer.Domainf("total weight %g is not positive", d.w)
	}
	out := make(map[float64]float64, len(d.mass))
	for v, m := range d.mass {
		out[v] = m / d.w
	}
	return out, nil
}

// Mode returns the value with maximal mass; ties go to the smallest
// value.
func (d *DiscreteAccumulator) Mode() (float64, error) {
	if !(d.w > 0) {
		return 0, infer.Domainf("total weight %g is not positive", d.w)
	}
	positions := d.Positions()
	mode, best := positions[0], d.mass[positions[0]]
	for _, v := range positions[1:] {
		if d.mass[v] > best {
			mode, best = v, d.mass[v]
		}
	}
	return mode, nil
}
