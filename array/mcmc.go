package array

import (
	"gonum.org/v1/gonum/mat"

	infer "github.com/marco-hrlic/go-infer"
)

// Axis tags the role of an MCMCArray dimension, so the sampling and
// chain axes can be told apart from component axes at runtime.
type Axis int

const (
	AxisComponent Axis = iota
	AxisIteration
	AxisChain
)

func (a Axis) String() string {
	switch a {
	case AxisComponent:
		return "component"
	case AxisIteration:
		return "iteration"
	case AxisChain:
		return "chain"
	}
	return "unknown"
}

// MCMCArray holds one monitored variable's thinned chain output. The
// flat value buffer runs component dimensions first (component index
// fastest), then the iteration axis, then the chain axis when NChains
// is greater than one. Axes tags each logical dimension in that order.
type MCMCArray struct {
	Values  []float64
	Name    string
	Lower   []int
	Upper   []int
	Axes    []Axis
	NIter   int
	NChains int
}

// Range returns the variable's subscript range.
func (a *MCMCArray) Range() IndexRange { return IndexRange{Lower: a.Lower, Upper: a.Upper} }

// NComponents returns the number of component positions.
func (a *MCMCArray) NComponents() int { return a.Range().Length() }

// VariableName returns the monitored variable's name.
func (a *MCMCArray) VariableName() string { return a.Name }

// Bounds returns the variable's inclusive subscript bounds.
func (a *MCMCArray) Bounds() (lower, upper []int) { return a.Lower, a.Upper }

// Validate checks the buffer length and axis tags against the declared
// dimensions.
func (a *MCMCArray) Validate() error {
	r, err := NewIndexRange(a.Lower, a.Upper)
	if err != nil {
		return err
	}
	chains := a.NChains
	if chains == 0 {
		chains = 1
	}
	if a.NIter <= 0 {
		return infer.Configf("variable %q: iteration count %d is not positive", a.Name, a.NIter)
	}
	if want := r.Length() * a.NIter * chains; len(a.Values) != want {
		return infer.Configf("variable %q: value buffer length %d does not match %d components x %d iterations x %d chains", a.Name, len(a.Values), r.Length(), a.NIter, chains)
	}
	wantAxes := r.NDim() + 1
	if a.NChains > 1 {
		wantAxes++
	}
	if len(a.Axes) != wantAxes {
		return infer.Configf("variable %q: %d axis tags for %d dimensions", a.Name, len(a.Axes), wantAxes)
	}
	return nil
}

// ComponentDraws returns a copy of component d's values across the
// sampling axis (all chains concatenated), d being 1-based.
func (a *MCMCArray) ComponentDraws(d int) ([]float64, error) {
	return componentSlice(a.Values, d, a.NComponents())
}

// Dense returns the draws-by-component view of the value buffer, one
// row per recorded iteration. The view shares the underlying buffer.
func (a *MCMCArray) Dense() *mat.Dense {
	c := a.NComponents()
	return mat.NewDense(len(a.Values)/c, c, a.Values)
}

// MCMCBuilder accumulates thinned chain samples for one variable. The
// component shape is not known up front; it is fixed by the first
// appended sample and later appends must match it.
type MCMCBuilder struct {
	name   string
	rng    IndexRange
	values []float64
	n      int
	fixed  bool
}

// NewMCMCBuilder returns an empty builder for the named variable.
func NewMCMCBuilder(name string) *MCMCBuilder {
	return &MCMCBuilder{name: name}
}

// Append folds one chain state into the output buffer.
func (b *MCMCBuilder) Append(s NumArray) error {
	if !b.fixed {
		if len(s.Values) != s.Range.Length() {
			return infer.Configf("variable %q: sample length %d does not match range length %d", b.name, len(s.Values), s.Range.Length())
		}
		b.rng = s.Clone().Range
		b.fixed = true
	} else if !equalInts(s.Range.Lower, b.rng.Lower) || !equalInts(s.Range.Upper, b.rng.Upper) {
		return infer.Configf("variable %q: sample range changed mid-chain", b.name)
	}
	b.values = append(b.values, s.Values...)
	b.n++
	return nil
}

// Len returns the number of appended samples.
func (b *MCMCBuilder) Len() int { return b.n }

// Build finalizes the accumulated samples into a single-chain
// MCMCArray.
func (b *MCMCBuilder) Build() (*MCMCArray, error) {
	if b.n == 0 {
		return nil, infer.Configf("variable %q: no samples to build", b.name)
	}
	axes := make([]Axis, 0, b.rng.NDim()+1)
	for i := 0; i < b.rng.NDim(); i++ {
		axes = append(axes, AxisComponent)
	}
	axes = append(axes, AxisIteration)
	return &MCMCArray{
		Values:  b.values,
		Name:    b.name,
		Lower:   b.rng.Lower,
		Upper:   b.rng.Upper,
		Axes:    axes,
		NIter:   b.n,
		NChains: 1,
	}, nil
}
