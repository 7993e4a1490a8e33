package array

import (
	"sort"

	infer "github.com/marco-hrlic/go-infer"
)

// SampleArray is the common face of SMCArray and MCMCArray inside
// bundle containers.
type SampleArray interface {
	VariableName() string
	Bounds() (lower, upper []int)
}

// Node is the tagged variant over the shapes a sample container can
// take: a single array (Leaf), monitor-type variants of one variable
// (FSBBundle), or a mapping from variable name to node (NamedList).
// Traversal is implemented once over the variant, in Walk.
type Node interface {
	node()
}

// Leaf wraps one sample array.
type Leaf struct {
	Array SampleArray
}

// FSBBundle groups the filtering, smoothing and backward-smoothing
// variants of one monitored variable's output.
type FSBBundle map[infer.MonitorType]*SMCArray

// NamedList maps variable names to nodes.
type NamedList map[string]Node

func (Leaf) node()      {}
func (FSBBundle) node() {}
func (NamedList) node() {}

// NewFSBBundle assembles monitor-type variants of the same variable,
// rejecting members whose name or bounds disagree.
func NewFSBBundle(members ...*SMCArray) (FSBBundle, error) {
	if len(members) == 0 {
		return nil, infer.Configf("empty FSB bundle")
	}
	first := members[0]
	b := make(FSBBundle, len(members))
	for _, m := range members {
		if m.Name != first.Name {
			return nil, infer.Configf("mixed variables in FSB bundle: %q and %q", first.Name, m.Name)
		}
		if !equalInts(m.Lower, first.Lower) || !equalInts(m.Upper, first.Upper) {
			return nil, infer.Configf("mismatched bounds for variable %q across monitor types", m.Name)
		}
		if _, ok := b[m.Type]; ok {
			return nil, infer.Configf("duplicate %s member in FSB bundle for variable %q", m.Type, m.Name)
		}
		b[m.Type] = m
	}
	return b, nil
}

// Walk visits every sample array reachable from n in depth-first order.
// The path holds the names leading to the array: named-list keys and
// monitor-type tags, in traversal order.
func Walk(n Node, fn func(path []string, a SampleArray)) {
	walk(n, nil, fn)
}

func walk(n Node, path []string, fn func(path []string, a SampleArray)) {
	switch v := n.(type) {
	case Leaf:
		fn(path, v.Array)
	case FSBBundle:
		for _, t := range []infer.MonitorType{infer.Filtering, infer.Smoothing, infer.BackwardSmoothing} {
			if a, ok := v[t]; ok {
				fn(pathAppend(path, t.String()), a)
			}
		}
	case NamedList:
		names := make([]string, 0, len(v))
		for name := range v {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			walk(v[name], pathAppend(path, name), fn)
		}
	}
}

func pathAppend(path []string, name string) []string {
	out := make([]string, 0, len(path)+1)
	out = append(out, path...)
	return append(out, name)
}
