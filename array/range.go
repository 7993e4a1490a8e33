// Package array holds the sample containers shared between the chain
// controller and the statistics accumulators: dimension-tagged particle
// and chain arrays, their index ranges, and the bundle containers that
// group them. Flat value buffers store the component index fastest and
// the sampling index (particle or iteration) slowest, so component d
// (1-based) of a variable with C component positions occupies buffer
// positions d-1, d-1+C, d-1+2C, and so on.
package array

import (
	"strconv"
	"strings"

	infer "github.com/marco-hrlic/go-infer"
)

// IndexRange is the multi-dimensional subscript range of a monitored
// variable, bounds inclusive.
type IndexRange struct {
	Lower []int
	Upper []int
}

// NewIndexRange builds an IndexRange from inclusive bounds.
func NewIndexRange(lower, upper []int) (IndexRange, error) {
	if len(lower) != len(upper) {
		return IndexRange{}, infer.Configf("length mismatch between lower and upper limits: %d != %d", len(lower), len(upper))
	}
	for i := range lower {
		if lower[i] > upper[i] {
			return IndexRange{}, infer.Configf("lower limit %d exceeds upper limit %d in dimension %d", lower[i], upper[i], i+1)
		}
	}
	return IndexRange{Lower: lower, Upper: upper}, nil
}

// NDim returns the number of component dimensions.
func (r IndexRange) NDim() int { return len(r.Lower) }

// Dims returns the extent of each component dimension.
func (r IndexRange) Dims() []int {
	dims := make([]int, len(r.Lower))
	for i := range dims {
		dims[i] = r.Upper[i] - r.Lower[i] + 1
	}
	return dims
}

// Length returns the number of component positions covered by the range.
func (r IndexRange) Length() int {
	n := 1
	for _, d := range r.Dims() {
		n *= d
	}
	return n
}

// Subscript maps the 1-based flat component index d back to the
// variable's original multi-dimensional subscript. The first dimension
// varies fastest, matching the storage order of the value buffers.
func (r IndexRange) Subscript(d int) ([]int, error) {
	if d < 1 || d > r.Length() {
		return nil, infer.Configf("component index %d outside [1, %d]", d, r.Length())
	}
	sub := make([]int, r.NDim())
	rem := d - 1
	for i, ext := range r.Dims() {
		sub[i] = r.Lower[i] + rem%ext
		rem /= ext
	}
	return sub, nil
}

// Label renders the subscript of component d for presentation, e.g.
// "x[5]" or "x[2,3]". A scalar range renders as the bare name.
func (r IndexRange) Label(name string, d int) (string, error) {
	sub, err := r.Subscript(d)
	if err != nil {
		return "", err
	}
	if r.NDim() == 1 && r.Lower[0] == 1 && r.Upper[0] == 1 {
		return name, nil
	}
	parts := make([]string, len(sub))
	for i, s := range sub {
		parts[i] = strconv.Itoa(s)
	}
	return name + "[" + strings.Join(parts, ",") + "]", nil
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// NumArray is one variable's numeric array as produced by the engine: a
// flat value buffer tagged with the variable's subscript range.
type NumArray struct {
	Values []float64
	Range  IndexRange
}

// NewNumArray wraps values in a NumArray, checking the buffer length
// against the range.
func NewNumArray(values []float64, r IndexRange) (NumArray, error) {
	if len(values) != r.Length() {
		return NumArray{}, infer.Configf("value buffer length %d does not match range length %d", len(values), r.Length())
	}
	return NumArray{Values: values, Range: r}, nil
}

// Clone returns a deep copy of the array.
func (a NumArray) Clone() NumArray {
	values := make([]float64, len(a.Values))
	copy(values, a.Values)
	return NumArray{
		Values: values,
		Range: IndexRange{
			Lower: append([]int(nil), a.Range.Lower...),
			Upper: append([]int(nil), a.Range.Upper...),
		},
	}
}
