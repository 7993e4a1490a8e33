// Package infer provides the shared vocabulary for particle-based
// Bayesian inference output: monitor type tags and the error taxonomy
// used across the array, wstat, summary and pimh packages.
package infer

// MonitorType tags which particle population a monitored variable's
// output was drawn from.
type MonitorType int

const (
	// Filtering monitors hold the forward filtering population.
	Filtering MonitorType = iota
	// Smoothing monitors hold the final smoothing population.
	Smoothing
	// BackwardSmoothing monitors hold the backward smoothing population.
	BackwardSmoothing
)

func (t MonitorType) String() string {
	switch t {
	case Filtering:
		return "filtering"
	case Smoothing:
		return "smoothing"
	case BackwardSmoothing:
		return "backward_smoothing"
	}
	return "unknown"
}
