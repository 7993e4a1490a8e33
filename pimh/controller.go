package pimh

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	infer "github.com/marco-hrlic/go-infer"
	"github.com/marco-hrlic/go-infer/array"
)

// Config tunes a controller. It replaces process-wide verbosity state
// with explicit values threaded at construction.
type Config struct {
	// Verbosity gates progress logging; zero silences it.
	Verbosity int
	// Logger receives progress output; nil discards.
	Logger *slog.Logger
	// Src drives the Metropolis-Hastings uniform draw; nil falls back
	// to the shared gonum source.
	Src rand.Source
}

// Controller owns one PIMH chain over an engine and a fixed set of
// monitored variables. The chain state (current accepted sample and log
// marginal likelihood estimate) persists across runs, so burn-in and
// sampling calls continue the same chain. Runs are strictly sequential;
// the controller must not be used from multiple goroutines.
type Controller struct {
	model     Model
	engine    Engine
	names     []string
	verbosity int
	log       *slog.Logger
	uniform   distuv.Uniform

	// chain state, committed once per completed iteration
	sample      map[string]array.NumArray
	logMargLike float64
}

// New validates the monitored variable set against the model and
// returns a controller with an empty chain state.
func New(model Model, engine Engine, names []string, cfg Config) (*Controller, error) {
	if len(names) == 0 {
		return nil, infer.Configf("no variables to monitor")
	}
	for _, v := range names {
		if !model.Monitorable(v) {
			return nil, infer.Configf("variable %q cannot be monitored", v)
		}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Controller{
		model:       model,
		engine:      engine,
		names:       append([]string(nil), names...),
		verbosity:   cfg.Verbosity,
		log:         logger,
		uniform:     distuv.Uniform{Min: 0, Max: 1, Src: cfg.Src},
		sample:      make(map[string]array.NumArray),
		logMargLike: math.Inf(-1),
	}, nil
}

// LogMargLike returns the chain's current accepted log marginal
// likelihood estimate.
func (c *Controller) LogMargLike() float64 { return c.logMargLike }

// Options configures one chain run.
type Options struct {
	// NIter is the number of chain iterations to run.
	NIter int
	// NParticles is the particle count of each SMC forward run.
	NParticles int
	// Thin records every Thin-th iteration; zero means every
	// iteration.
	Thin int
	// Engine is passed through to every forward run.
	Engine EngineOptions
}

// Result holds one run's output. LogMargLike and AcceptRate have one
// entry per recorded iteration; Samples maps variable names to chain
// output and is nil for burn-in runs.
type Result struct {
	LogMargLike []float64
	AcceptRate  []float64
	Samples     map[string]*array.MCMCArray
}

// Update runs the chain for burn-in: traces are returned, variable
// samples are not collected.
func (c *Controller) Update(ctx context.Context, opts Options) (*Result, error) {
	return c.run(ctx, opts, false)
}

// Samples runs the chain and collects one MCMCArray per monitored
// variable alongside the traces.
func (c *Controller) Samples(ctx context.Context, opts Options) (*Result, error) {
	return c.run(ctx, opts, true)
}

// run executes the accept/reject loop. On any failure the call's output
// is discarded whole and the chain state stays at the last completed
// iteration; monitor storage is released on every exit path.
func (c *Controller) run(ctx context.Context, opts Options, wantSamples bool) (*Result, error) {
	if opts.NIter <= 0 {
		return nil, infer.Configf("iteration count %d is not positive", opts.NIter)
	}
	if opts.NParticles <= 0 {
		return nil, infer.Configf("particle count %d is not positive", opts.NParticles)
	}
	thin := opts.Thin
	if thin == 0 {
		thin = 1
	}
	if thin < 0 {
		return nil, infer.Configf("thinning interval %d is negative", opts.Thin)
	}

	if err := c.engine.SetMonitors(c.names, infer.Smoothing); err != nil {
		return nil, &infer.EngineError{Err: err}
	}
	defer c.engine.ClearMonitors(infer.Smoothing, true)

	if c.verbosity > 0 {
		c.log.Info("generating samples", "iterations", opts.NIter, "particles", opts.NParticles, "thin", thin)
	}

	nRec := opts.NIter / thin
	res := &Result{
		LogMargLike: make([]float64, 0, nRec),
		AcceptRate:  make([]float64, 0, nRec),
	}
	var builders map[string]*array.MCMCBuilder
	if wantSamples {
		builders = make(map[string]*array.MCMCBuilder, len(c.names))
		for _, v := range c.names {
			builders[v] = array.NewMCMCBuilder(v)
		}
	}

	sample, logML := c.sample, c.logMargLike
	for i := 1; i <= opts.NIter; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := c.engine.RunForward(ctx, opts.NParticles, opts.Engine); err != nil {
			return nil, &infer.EngineError{Iter: i, Err: err}
		}
		prop := c.engine.LogNormalizingConstant()
		ratio := 1.0
		if prop < logML {
			// exponent is <= 0 here, no overflow
			ratio = math.Exp(prop - logML)
		}
		if c.uniform.Rand() < ratio {
			traj, err := c.engine.SampleSmoothedTrajectory(c.engine.Seed())
			if err != nil {
				return nil, &infer.EngineError{Iter: i, Err: err}
			}
			next := make(map[string]array.NumArray, len(c.names))
			for _, v := range c.names {
				arr, ok := traj[v]
				if !ok {
					return nil, &infer.EngineError{Iter: i, Err: fmt.Errorf("trajectory is missing variable %q", v)}
				}
				next[v] = arr.Clone()
			}
			sample, logML = next, prop
		}
		// commit: the state never reflects a partially applied iteration
		c.sample, c.logMargLike = sample, logML

		if i%thin == 0 {
			res.LogMargLike = append(res.LogMargLike, logML)
			res.AcceptRate = append(res.AcceptRate, math.Min(1, ratio))
			if wantSamples {
				for _, v := range c.names {
					if err := builders[v].Append(sample[v]); err != nil {
						return nil, err
					}
				}
			}
		}
	}

	if wantSamples {
		res.Samples = make(map[string]*array.MCMCArray, len(c.names))
		for _, v := range c.names {
			if builders[v].Len() == 0 {
				continue
			}
			arr, err := builders[v].Build()
			if err != nil {
				return nil, err
			}
			res.Samples[v] = arr
		}
	}
	if c.verbosity > 0 {
		c.log.Info("chain finished", "recorded", len(res.LogMargLike), "log_marg_like", c.logMargLike)
	}
	return res, nil
}
