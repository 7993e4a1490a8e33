// Package pimh drives a particle independent Metropolis-Hastings chain:
// each iteration proposes from a fresh SMC forward run of an external
// engine and accepts or rejects on the engine's noisy log marginal
// likelihood estimate.
package pimh

import (
	"context"

	infer "github.com/marco-hrlic/go-infer"
	"github.com/marco-hrlic/go-infer/array"
)

// EngineOptions carries engine-specific tuning for a forward run,
// opaque to the controller.
type EngineOptions map[string]interface{}

// Engine is the external SMC engine the chain proposes from. A forward
// run is a fresh, independent simulation; the engine owns the particle
// populations and the monitor storage.
type Engine interface {
	// RunForward runs one full SMC simulation with nParticles
	// particles.
	RunForward(ctx context.Context, nParticles int, opts EngineOptions) error
	// LogNormalizingConstant returns the log marginal likelihood
	// estimate of the last forward run.
	LogNormalizingConstant() float64
	// SampleSmoothedTrajectory draws one trajectory through the
	// particle genealogy, proportional to final weights.
	SampleSmoothedTrajectory(seed uint64) (map[string]array.NumArray, error)
	// SetMonitors registers variables for monitoring of the given
	// type.
	SetMonitors(names []string, t infer.MonitorType) error
	// ClearMonitors releases monitor storage; with releaseOnly the
	// registration itself is kept.
	ClearMonitors(t infer.MonitorType, releaseOnly bool)
	// Seed returns the engine's current RNG seed.
	Seed() uint64
}

// Model exposes the monitorable variable set of a compiled model.
type Model interface {
	// Monitorable reports whether the named variable can be monitored.
	Monitorable(name string) bool
}
