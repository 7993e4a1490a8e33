package array

import (
	"gonum.org/v1/gonum/mat"

	infer "github.com/marco-hrlic/go-infer"
)

// SMCArray holds one monitored variable's weighted particle population
// across its component range. Values and Weights share the flat layout
// documented on the package: component index fastest, particle index
// slowest. ESS, Discrete and Iterations carry one entry per component
// position; Conditionals holds either one node-name list per component
// or a single shared list when the monitor type conditions all
// components on the same nodes.
type SMCArray struct {
	Values       []float64
	Weights      []float64
	ESS          []float64
	Discrete     []bool
	Iterations   []float64
	Conditionals [][]string
	Name         string
	Lower        []int
	Upper        []int
	Type         infer.MonitorType
}

// Range returns the variable's subscript range.
func (a *SMCArray) Range() IndexRange { return IndexRange{Lower: a.Lower, Upper: a.Upper} }

// NComponents returns the number of component positions.
func (a *SMCArray) NComponents() int { return a.Range().Length() }

// NParticles returns the number of entries along the particle axis.
func (a *SMCArray) NParticles() int {
	c := a.NComponents()
	if c == 0 {
		return 0
	}
	return len(a.Values) / c
}

// VariableName returns the monitored variable's name.
func (a *SMCArray) VariableName() string { return a.Name }

// Bounds returns the variable's inclusive subscript bounds.
func (a *SMCArray) Bounds() (lower, upper []int) { return a.Lower, a.Upper }

// Validate checks the invariants the consumers rely on: matching
// lower/upper lengths, value and weight buffers of a whole number of
// particles, per-component metadata of the right cardinality.
func (a *SMCArray) Validate() error {
	r, err := NewIndexRange(a.Lower, a.Upper)
	if err != nil {
		return err
	}
	c := r.Length()
	if len(a.Values) == 0 || len(a.Values)%c != 0 {
		return infer.Configf("variable %q: value buffer length %d is not a multiple of %d components", a.Name, len(a.Values), c)
	}
	if len(a.Weights) != len(a.Values) {
		return infer.Configf("variable %q: weights length %d does not match values length %d", a.Name, len(a.Weights), len(a.Values))
	}
	if len(a.ESS) != c {
		return infer.Configf("variable %q: ess length %d does not match %d components", a.Name, len(a.ESS), c)
	}
	if len(a.Discrete) != c {
		return infer.Configf("variable %q: discrete length %d does not match %d components", a.Name, len(a.Discrete), c)
	}
	if len(a.Iterations) != c {
		return infer.Configf("variable %q: iterations length %d does not match %d components", a.Name, len(a.Iterations), c)
	}
	if len(a.Conditionals) != c && len(a.Conditionals) != 1 {
		return infer.Configf("variable %q: conditionals must either be of the same size as the node array or of size 1, got %d", a.Name, len(a.Conditionals))
	}
	return nil
}

// ComponentValues returns a copy of component d's values along the
// particle axis, d being 1-based.
func (a *SMCArray) ComponentValues(d int) ([]float64, error) {
	return componentSlice(a.Values, d, a.NComponents())
}

// ComponentWeights returns a copy of component d's weights along the
// particle axis.
func (a *SMCArray) ComponentWeights(d int) ([]float64, error) {
	return componentSlice(a.Weights, d, a.NComponents())
}

// SetComponentValues writes xs back into component d's positions.
func (a *SMCArray) SetComponentValues(d int, xs []float64) error {
	return setComponentSlice(a.Values, d, a.NComponents(), xs)
}

// ValuesMatrix returns the particle-by-component view of the value
// buffer. The view shares the underlying buffer.
func (a *SMCArray) ValuesMatrix() *mat.Dense {
	return mat.NewDense(a.NParticles(), a.NComponents(), a.Values)
}

// WeightsMatrix returns the particle-by-component view of the weight
// buffer. The view shares the underlying buffer.
func (a *SMCArray) WeightsMatrix() *mat.Dense {
	return mat.NewDense(a.NParticles(), a.NComponents(), a.Weights)
}

func componentSlice(buf []float64, d, c int) ([]float64, error) {
	if d < 1 || d > c {
		return nil, infer.Configf("component index %d outside [1, %d]", d, c)
	}
	out := make([]float64, 0, len(buf)/c)
	for i := d - 1; i < len(buf); i += c {
		out = append(out, buf[i])
	}
	return out, nil
}

func setComponentSlice(buf []float64, d, c int, xs []float64) error {
	if d < 1 || d > c {
		return infer.Configf("component index %d outside [1, %d]", d, c)
	}
	if len(xs) != len(buf)/c {
		return infer.Configf("slice length %d does not match %d sampling entries", len(xs), len(buf)/c)
	}
	for k, i := 0, d-1; i < len(buf); k, i = k+1, i+c {
		buf[i] = xs[k]
	}
	return nil
}
