package wstat

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	infer "github.com/marco-hrlic/go-infer"
)

func TestMomentsEqualWeights(t *testing.T) {
	values := []float64{1, 2, 3}
	weights := []float64{1, 1, 1}

	stats, err := Moments(values, weights, OrderSkewness)
	require.NoError(t, err)
	require.Len(t, stats, 3)

	assert.Equal(t, 2.0, stats[0])
	assert.InDelta(t, 2.0/3.0, stats[1], 1e-12)
	assert.InDelta(t, 0.0, stats[2], 1e-12)
}

func TestMomentsWeighted(t *testing.T) {
	// weight 3 on 1 and weight 1 on 2: mean (3+2)/4
	mean, err := Mean([]float64{1, 2}, []float64{3, 1})
	require.NoError(t, err)
	assert.Equal(t, 1.25, mean)
}

func TestKurtosisTwoPoint(t *testing.T) {
	// symmetric two-point sample: variance 1, excess kurtosis -2
	stats, err := Moments([]float64{-1, 1}, []float64{1, 1}, OrderKurtosis)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, stats[0], 1e-12)
	assert.InDelta(t, 1.0, stats[1], 1e-12)
	assert.InDelta(t, 0.0, stats[2], 1e-12)
	assert.InDelta(t, -2.0, stats[3], 1e-12)
}

func TestZeroVarianceIsDomainError(t *testing.T) {
	a, err := NewAccumulator(OrderKurtosis)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		a.Push(3, 1)
	}

	mean, err := a.Mean()
	require.NoError(t, err)
	assert.Equal(t, 3.0, mean)

	_, err = a.Skewness()
	require.Error(t, err)
	var de *infer.DomainError
	assert.True(t, errors.As(err, &de))

	_, err = a.Kurtosis()
	require.Error(t, err)
	assert.True(t, errors.As(err, &de))
}

func TestNonPositiveWeightIsDomainError(t *testing.T) {
	a, err := NewAccumulator(OrderMean)
	require.NoError(t, err)
	a.Push(1, 1)
	a.Push(2, -1)

	_, err = a.Mean()
	require.Error(t, err)
	var de *infer.DomainError
	assert.True(t, errors.As(err, &de))
}

func TestEmptyAccumulatorIsDomainError(t *testing.T) {
	a, err := NewAccumulator(OrderMean)
	require.NoError(t, err)

	_, err = a.Mean()
	require.Error(t, err)
	var de *infer.DomainError
	assert.True(t, errors.As(err, &de))
}

func TestOrderValidation(t *testing.T) {
	_, err := NewAccumulator(0)
	require.Error(t, err)
	var ce *infer.ConfigurationError
	assert.True(t, errors.As(err, &ce))

	_, err = NewAccumulator(5)
	require.Error(t, err)
	assert.True(t, errors.As(err, &ce))

	a, err := NewAccumulator(OrderMean)
	require.NoError(t, err)
	a.Push(1, 1)
	_, err = a.Variance()
	require.Error(t, err)
	assert.True(t, errors.As(err, &ce))
}

func TestMomentsLengthMismatch(t *testing.T) {
	_, err := Moments([]float64{1, 2}, []float64{1}, OrderMean)
	require.Error(t, err)
	var ce *infer.ConfigurationError
	assert.True(t, errors.As(err, &ce))
}

func TestESS(t *testing.T) {
	assert.Equal(t, 4.0, ESS([]float64{1, 1, 1, 1}))
	// one dominant weight degrades the effective size
	assert.InDelta(t, 1.0, ESS([]float64{1000, 1e-9, 1e-9}), 1e-6)
	assert.Equal(t, 0.0, ESS(nil))
}

func TestSkewnessAsymmetric(t *testing.T) {
	// hand-computed on values [0,0,1] with unit weights:
	// mean 1/3, variance 2/9, skewness (m3 - 3*mean*m2 + 2*mean^3)/var^1.5
	values := []float64{0, 0, 1}
	weights := []float64{1, 1, 1}
	skew, err := Skewness(values, weights)
	require.NoError(t, err)

	mean := 1.0 / 3.0
	m2 := 1.0 / 3.0
	m3 := 1.0 / 3.0
	variance := m2 - mean*mean
	want := (m3 - 3*mean*m2 + 2*mean*mean*mean) / math.Pow(variance, 1.5)
	assert.InDelta(t, want, skew, 1e-12)
}
