package infer

import "fmt"

// ConfigurationError reports an invalid configuration: unknown or empty
// variable names, malformed probability levels, mismatched index bounds
// or conditionals cardinality.
type ConfigurationError struct {
	Msg string
}

func (e *ConfigurationError) Error() string { return e.Msg }

// Configf returns a ConfigurationError with a formatted message.
func Configf(format string, args ...interface{}) error {
	return &ConfigurationError{Msg: fmt.Sprintf(format, args...)}
}

// DomainError reports a statistic that is undefined for the accumulated
// sample: non-positive total weight, or non-positive variance when
// skewness or kurtosis was requested.
type DomainError struct {
	Msg string
}

func (e *DomainError) Error() string { return e.Msg }

// Domainf returns a DomainError with a formatted message.
func Domainf(format string, args ...interface{}) error {
	return &DomainError{Msg: fmt.Sprintf(format, args...)}
}

// EngineError wraps a failure reported by the external SMC engine. Iter
// is the 1-based chain iteration the failure occurred in, or zero if it
// happened outside the iteration loop.
type EngineError struct {
	Iter int
	Err  error
}

func (e *EngineError) Error() string {
	if e.Iter > 0 {
		return fmt.Sprintf("engine: iteration %d: %v", e.Iter, e.Err)
	}
	return fmt.Sprintf("engine: %v", e.Err)
}

func (e *EngineError) Unwrap() error { return e.Err }
