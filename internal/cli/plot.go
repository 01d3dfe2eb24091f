// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/polyroots/chart"
	"github.com/katalvlaran/polyroots/rootfind"
)

func newPlotCommand(cfg *config) *cobra.Command {
	var output, format string

	cmd := &cobra.Command{
		Use:   "plot -c <coefficients> -o <file>",
		Short: "Draw the polynomial with its roots and extrema (png, svg or html)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(cfg.coefficients) == 0 {
				return ErrNoCoefficients
			}
			p, opts, err := cfg.prepare(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			f, err := resolveFormat(output, format)
			if err != nil {
				return err
			}

			res := rootfind.Solve(p, opts...)
			scene := chart.NewScene(p, res.Roots, res.Extrema)

			file, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("plot: %w", err)
			}
			if err = chart.Render(file, scene, f); err != nil {
				_ = file.Close()
				return fmt.Errorf("plot: %w", err)
			}
			if err = file.Close(); err != nil {
				return fmt.Errorf("plot: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Your polynomial: %s\n\n", p)
			printRoots(cmd.OutOrStdout(), res.Roots)
			fmt.Fprintf(cmd.OutOrStdout(), "chart written to %s\n", output)

			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file; the extension selects the format")
	cmd.Flags().StringVarP(&format, "format", "f", "", "override the output format (png, svg, html)")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func resolveFormat(output, override string) (chart.Format, error) {
	if override != "" {
		return chart.ParseFormat(override)
	}

	return chart.FormatFromPath(output)
}
