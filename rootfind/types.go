// SPDX-License-Identifier: MIT

package rootfind

import (
	"errors"
	"io"
	"log/slog"
	"math"
)

// Sentinel errors. Option constructors panic with these messages when given
// nonsensical values; front ends use them to report invalid user input.
var (
	// ErrBadTolerance indicates a tolerance that is not a positive finite number.
	ErrBadTolerance = errors.New("rootfind: tolerance must be positive and finite")

	// ErrBadMaxIterations indicates a non-positive iteration cap.
	ErrBadMaxIterations = errors.New("rootfind: max iterations must be positive")

	// ErrBadMergeTolerance indicates a negative or non-finite merge tolerance.
	ErrBadMergeTolerance = errors.New("rootfind: merge tolerance must be non-negative and finite")

	// ErrBadWorkers indicates a worker count below one.
	ErrBadWorkers = errors.New("rootfind: workers must be at least 1")
)

// Defaults.
const (
	// DefaultTolerance is the largest accepted residual |p(x)|.
	DefaultTolerance = 1e-4

	// DefaultMaxIterations caps Newton steps per seed (after the first step).
	DefaultMaxIterations = 0xFFFF

	// DefaultMergeTolerance of 0 means roots are deduplicated by exact equality.
	DefaultMergeTolerance = 0.0

	// DefaultWorkers of 1 refines seeds sequentially.
	DefaultWorkers = 1
)

// Status records what happened to a single seed during refinement.
type Status int

const (
	// Converged: the residual dropped below the tolerance and the root is new.
	Converged Status = iota

	// Duplicate: converged onto a root already accepted from an earlier seed.
	Duplicate

	// NotConverged: the iteration cap was reached with residual ≥ tolerance.
	NotConverged

	// ZeroSlope: the derivative vanished at an iterate that was not a root.
	ZeroSlope

	// Diverged: an iterate became NaN or ±Inf.
	Diverged
)

// String returns a lower-case name of the status.
func (s Status) String() string {
	switch s {
	case Converged:
		return "converged"
	case Duplicate:
		return "duplicate"
	case NotConverged:
		return "not converged"
	case ZeroSlope:
		return "zero slope"
	case Diverged:
		return "diverged"
	default:
		return "unknown"
	}
}

// Seed is the outcome of refining one starting guess.
type Seed struct {
	Guess      float64 // starting point
	X          float64 // last iterate
	Residual   float64 // p(X)
	Iterations int     // Newton steps taken
	Status     Status
}

// Result is the outcome of a solve.
//
// Roots is the root set in discovery order (ascending seed order, not
// necessarily numeric order). Extrema holds the sorted critical points used
// to synthesize seeds, nil when no synthesis took place. Seeds has one entry
// per top-level seed and is nil for closed-form solutions.
type Result struct {
	Roots   []float64
	Extrema []float64
	Seeds   []Seed
}

// Options configures a solve. It is read-only for the duration of a call.
//
// Fields:
//   - Tolerance      — accepted residual bound, > 0. Default 1e-4.
//   - MaxIterations  — Newton step cap per seed, > 0. Default 65535.
//   - MergeTolerance — 0 deduplicates by exact equality; > 0 merges roots
//     closer than this distance. Default 0.
//   - Workers        — seeds refined concurrently, ≥ 1. Default 1.
//   - Logger         — receives Debug diagnostics. Default discards everything.
type Options struct {
	Tolerance      float64
	MaxIterations  int
	MergeTolerance float64
	Workers        int
	Logger         *slog.Logger
}

// Option represents a functional option for configuring a solve.
type Option func(*Options)

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Tolerance:      DefaultTolerance,
		MaxIterations:  DefaultMaxIterations,
		MergeTolerance: DefaultMergeTolerance,
		Workers:        DefaultWorkers,
		Logger:         discardLogger,
	}
}

// WithTolerance sets the accepted residual bound. Panics unless tol is
// positive and finite.
func WithTolerance(tol float64) Option {
	if !(tol > 0) || math.IsInf(tol, 1) {
		panic(ErrBadTolerance.Error())
	}

	return func(o *Options) { o.Tolerance = tol }
}

// WithMaxIterations sets the Newton step cap per seed. Panics if n ≤ 0.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(ErrBadMaxIterations.Error())
	}

	return func(o *Options) { o.MaxIterations = n }
}

// WithMergeTolerance switches deduplication from exact equality to
// |a−b| ≤ eps. Zero restores exact equality. Panics if eps is negative or
// not finite.
func WithMergeTolerance(eps float64) Option {
	if !(eps >= 0) || math.IsInf(eps, 1) {
		panic(ErrBadMergeTolerance.Error())
	}

	return func(o *Options) { o.MergeTolerance = eps }
}

// WithWorkers refines up to n seeds concurrently. Output does not depend on n.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(ErrBadWorkers.Error())
	}

	return func(o *Options) { o.Workers = n }
}

// WithLogger routes Debug diagnostics (per-level coefficients, extrema, seed
// outcomes) to l. A nil logger discards them.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = discardLogger
		}
		o.Logger = l
	}
}

// gatherOptions applies user options over the defaults; last writer wins.
func gatherOptions(user ...Option) Options {
	o := DefaultOptions()
	for _, set := range user {
		set(&o)
	}

	return o
}

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))
