package wstat

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	infer "github.com/marco-hrlic/go-infer"
)

func TestTable(t *testing.T) {
	table, err := Table([]float64{1, 1, 2}, []float64{1, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, map[float64]float64{1: 0.5, 2: 0.5}, table)
}

func TestModeTieGoesToSmallest(t *testing.T) {
	mode, err := Mode([]float64{1, 1, 2}, []float64{1, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, 1.0, mode)
}

func TestMode(t *testing.T) {
	mode, err := Mode([]float64{1, 2, 2, 3}, []float64{1, 1, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, 2.0, mode)

	// weights decide, not counts
	mode, err = Mode([]float64{1, 2, 2, 3}, []float64{5, 1, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, 1.0, mode)
}

func TestDiscretePositions(t *testing.T) {
	d := NewDiscreteAccumulator()
	for _, x := range []float64{3, 1, 2, 1} {
		d.Push(x, 1)
	}
	assert.Equal(t, []float64{1, 2, 3}, d.Positions())
}

func TestDiscreteZeroWeightIsDomainError(t *testing.T) {
	d := NewDiscreteAccumulator()
	d.Push(1, 0)

	var de *infer.DomainError
	_, err := d.Table()
	require.Error(t, err)
	assert.True(t, errors.As(err, &de))

	_, err = d.Mode()
	require.Error(t, err)
	assert.True(t, errors.As(err, &de))
}
