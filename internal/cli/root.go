// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/polyroots/companion"
	"github.com/katalvlaran/polyroots/poly"
	"github.com/katalvlaran/polyroots/rootfind"
)

// Flag names shared by the argument normalizer and the command tree.
const (
	flagCoefficients   = "coefficients"
	flagGuesses        = "guesses"
	flagError          = "error"
	flagMaxIterations  = "max-iterations"
	flagVerbose        = "verbose"
	flagVersion        = "version"
	flagWorkers        = "workers"
	flagCheck          = "check"
	flagCheckTolerance = "check-tolerance"
)

// DefaultCheckTolerance is the distance within which a found root matches a
// companion-matrix reference root.
const DefaultCheckTolerance = 1e-6

// ErrNoCoefficients is returned by subcommands that cannot run without a polynomial.
var ErrNoCoefficients = errors.New("cli: no coefficients given (use -c)")

// config collects flag values for one invocation.
type config struct {
	coefficients   []float64
	guesses        []float64
	tolerance      float64
	maxIterations  int
	workers        int
	verbose        bool
	version        bool
	check          bool
	checkTolerance float64
}

// Execute runs the command line with os.Args and the standard streams.
func Execute() error {
	return Run(context.Background(), os.Args[1:], os.Stdout, os.Stderr)
}

// Run executes the command tree with explicit arguments and streams.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	root := newRootCommand()
	root.SetArgs(NormalizeArgs(args))
	root.SetOut(stdout)
	root.SetErr(stderr)

	return root.ExecuteContext(ctx)
}

func newRootCommand() *cobra.Command {
	cfg := &config{}

	cmd := &cobra.Command{
		Use:           "roots -c <coefficients> [flags]",
		Short:         shortHelp,
		Long:          longHelp,
		Example:       examples,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cfg.version {
				printVersion(cmd.OutOrStdout())
				return nil
			}
			if len(cfg.coefficients) == 0 {
				return cmd.Help()
			}

			return runSolve(cmd, cfg)
		},
	}

	pf := cmd.PersistentFlags()
	pf.Float64SliceVarP(&cfg.coefficients, flagCoefficients, "c", nil,
		"coefficients of the polynomial starting from x^0 and going up")
	pf.Float64VarP(&cfg.tolerance, flagError, "e", rootfind.DefaultTolerance,
		"largest acceptable error |p(x)|")
	pf.IntVarP(&cfg.maxIterations, flagMaxIterations, "m", rootfind.DefaultMaxIterations,
		"maximum Newton steps per starting guess")
	pf.IntVarP(&cfg.workers, flagWorkers, "w", rootfind.DefaultWorkers,
		"number of starting guesses refined concurrently")
	pf.BoolVarP(&cfg.verbose, flagVerbose, "v", false,
		"show more information about what is being done")

	f := cmd.Flags()
	f.Float64SliceVarP(&cfg.guesses, flagGuesses, "g", nil,
		"initial guesses for Newton's method; if none, guesses are derived from the extrema")
	f.BoolVarP(&cfg.version, flagVersion, "V", false, "display the current version")
	f.BoolVar(&cfg.check, flagCheck, false,
		"cross-check the result against the companion-matrix eigenvalues")
	f.Float64Var(&cfg.checkTolerance, flagCheckTolerance, DefaultCheckTolerance,
		"distance within which a found root matches a reference root")

	cmd.AddCommand(newPlotCommand(cfg))

	return cmd
}

func runSolve(cmd *cobra.Command, cfg *config) error {
	p, opts, err := cfg.prepare(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	printBanner(out, p, cfg)

	roots := rootfind.SolveFrom(p, cfg.guesses, opts...).Roots
	printRoots(out, roots)

	if !cfg.check {
		return nil
	}
	if !(cfg.checkTolerance >= 0) {
		return fmt.Errorf("invalid --%s %v: %w", flagCheckTolerance, cfg.checkTolerance, companion.ErrBadTolerance)
	}
	ref, err := companion.Roots(p, companion.DefaultImagTolerance)
	if err != nil {
		return fmt.Errorf("check: %w", err)
	}
	printReport(out, companion.Compare(roots, ref, cfg.checkTolerance))

	return nil
}

// prepare validates flag values and turns them into a polynomial and solve options.
func (cfg *config) prepare(stderr io.Writer) (poly.Polynomial, []rootfind.Option, error) {
	p := poly.New(cfg.coefficients...)
	if err := p.Validate(); err != nil {
		return poly.Polynomial{}, nil, fmt.Errorf("invalid --%s: %w", flagCoefficients, err)
	}
	for _, g := range cfg.guesses {
		if math.IsNaN(g) || math.IsInf(g, 0) {
			return poly.Polynomial{}, nil, fmt.Errorf("invalid --%s %v: %w", flagGuesses, g, poly.ErrNonFinite)
		}
	}
	if !(cfg.tolerance > 0) || math.IsInf(cfg.tolerance, 1) {
		return poly.Polynomial{}, nil, fmt.Errorf("invalid --%s %v: %w", flagError, cfg.tolerance, rootfind.ErrBadTolerance)
	}
	if cfg.maxIterations <= 0 {
		return poly.Polynomial{}, nil, fmt.Errorf("invalid --%s %d: %w", flagMaxIterations, cfg.maxIterations, rootfind.ErrBadMaxIterations)
	}
	if cfg.workers < 1 {
		return poly.Polynomial{}, nil, fmt.Errorf("invalid --%s %d: %w", flagWorkers, cfg.workers, rootfind.ErrBadWorkers)
	}

	level := slog.LevelWarn
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	opts := []rootfind.Option{
		rootfind.WithTolerance(cfg.tolerance),
		rootfind.WithMaxIterations(cfg.maxIterations),
		rootfind.WithWorkers(cfg.workers),
		rootfind.WithLogger(logger),
	}

	return p, opts, nil
}
