package array

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	infer "github.com/marco-hrlic/go-infer"
)

func smcForBundle(t *testing.T, name string, upper int, typ infer.MonitorType) *SMCArray {
	t.Helper()
	n := upper * 2
	values := make([]float64, n)
	weights := make([]float64, n)
	for i := range weights {
		weights[i] = 1.0 / float64(n)
	}
	a := &SMCArray{
		Values:       values,
		Weights:      weights,
		ESS:          make([]float64, upper),
		Discrete:     make([]bool, upper),
		Iterations:   make([]float64, upper),
		Conditionals: [][]string{nil},
		Name:         name,
		Lower:        []int{1},
		Upper:        []int{upper},
		Type:         typ,
	}
	require.NoError(t, a.Validate())
	return a
}

func TestNewFSBBundle(t *testing.T) {
	f := smcForBundle(t, "x", 3, infer.Filtering)
	s := smcForBundle(t, "x", 3, infer.Smoothing)

	b, err := NewFSBBundle(f, s)
	require.NoError(t, err)
	assert.Len(t, b, 2)
	assert.Equal(t, f, b[infer.Filtering])
	assert.Equal(t, s, b[infer.Smoothing])
}

func TestNewFSBBundleValidation(t *testing.T) {
	var ce *infer.ConfigurationError

	_, err := NewFSBBundle()
	require.Error(t, err)
	assert.True(t, errors.As(err, &ce))

	_, err = NewFSBBundle(
		smcForBundle(t, "x", 3, infer.Filtering),
		smcForBundle(t, "y", 3, infer.Smoothing),
	)
	require.Error(t, err)
	assert.True(t, errors.As(err, &ce))

	_, err = NewFSBBundle(
		smcForBundle(t, "x", 3, infer.Filtering),
		smcForBundle(t, "x", 4, infer.Smoothing),
	)
	require.Error(t, err)
	assert.True(t, errors.As(err, &ce))

	_, err = NewFSBBundle(
		smcForBundle(t, "x", 3, infer.Smoothing),
		smcForBundle(t, "x", 3, infer.Smoothing),
	)
	require.Error(t, err)
	assert.True(t, errors.As(err, &ce))
}

func TestWalk(t *testing.T) {
	fsb, err := NewFSBBundle(
		smcForBundle(t, "x", 3, infer.Filtering),
		smcForBundle(t, "x", 3, infer.Smoothing),
	)
	require.NoError(t, err)

	mcmc := &MCMCArray{
		Values:  []float64{1, 2},
		Name:    "y",
		Lower:   []int{1},
		Upper:   []int{1},
		Axes:    []Axis{AxisComponent, AxisIteration},
		NIter:   2,
		NChains: 1,
	}

	root := NamedList{
		"x": fsb,
		"y": Leaf{Array: mcmc},
	}

	var visited []string
	Walk(root, func(path []string, a SampleArray) {
		visited = append(visited, strings.Join(path, "/")+":"+a.VariableName())
	})

	assert.Equal(t, []string{
		"x/filtering:x",
		"x/smoothing:x",
		"y:y",
	}, visited)
}
