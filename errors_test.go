package infer

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorTaxonomy(t *testing.T) {
	err := Configf("variable %q cannot be monitored", "x")
	var ce *ConfigurationError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, `variable "x" cannot be monitored`, err.Error())

	err = Domainf("total weight %g is not positive", 0.0)
	var de *DomainError
	require.True(t, errors.As(err, &de))

	cause := fmt.Errorf("socket closed")
	ee := &EngineError{Iter: 7, Err: cause}
	assert.Equal(t, "engine: iteration 7: socket closed", ee.Error())
	assert.True(t, errors.Is(ee, cause))

	ee = &EngineError{Err: cause}
	assert.Equal(t, "engine: socket closed", ee.Error())
}

func TestMonitorTypeString(t *testing.T) {
	assert.Equal(t, "filtering", Filtering.String())
	assert.Equal(t, "smoothing", Smoothing.String())
	assert.Equal(t, "backward_smoothing", BackwardSmoothing.String())
	assert.Equal(t, "unknown", MonitorType(99).String())
}
