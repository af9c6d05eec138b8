package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	tkerrors "github.com/matzehuels/tooltipkit/pkg/errors"
	"github.com/matzehuels/tooltipkit/pkg/pipeline"
)

// Output formats for the build command.
const (
	outputTable = "table"
	outputJSON  = "json"
)

// buildFlags holds flags shared by build and browse.
type buildFlags struct {
	locale    string
	series    int
	allSeries bool
	point     int
	noCache   bool
	refresh   bool
}

func (f *buildFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.locale, "locale", "l", "", "locale for numbers, dates and labels (default from config)")
	cmd.Flags().IntVarP(&f.series, "series", "s", 0, "value column to describe")
	cmd.Flags().BoolVarP(&f.allSeries, "all-series", "a", false, "describe every value column")
	cmd.Flags().IntVarP(&f.point, "point", "p", -1, "only this data point (-1 for all)")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&f.refresh, "refresh", false, "recompute even when cached")
}

func (c *CLI) options(path string, f buildFlags) pipeline.Options {
	opts := pipeline.Options{
		Source:      path,
		Locale:      f.locale,
		SeriesIndex: f.series,
		AllSeries:   f.allSeries,
		Refresh:     f.refresh,
		Logger:      c.Logger,
	}
	if opts.Locale == "" {
		opts.Locale = c.config.Locale
	}
	if f.point >= 0 {
		opts.Point = pipeline.PointAt(f.point)
	}
	return opts
}

// buildCommand creates the build command.
func (c *CLI) buildCommand() *cobra.Command {
	var (
		flags  buildFlags
		output string
		out    string
	)

	cmd := &cobra.Command{
		Use:   "build [view.json]",
		Short: "Build the tooltip table of a data view",
		Long: `Build reads a JSON data view and prints the tooltip entries of every
data point, formatted for the chosen locale.`,
		Example: `  tooltipkit build sales.json
  tooltipkit build sales.json --locale de-DE --all-series
  tooltipkit build sales.json --point 3 --output json -o tooltip.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if output != outputTable && output != outputJSON {
				return tkerrors.New(tkerrors.ErrCodeInvalidInput, "invalid output: %s (must be 'table' or 'json')", output)
			}

			runner, err := c.newRunner(cmd.Context(), flags.noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			sw := startStopwatch(loggerFromContext(cmd.Context()))
			res, err := runner.Execute(cmd.Context(), c.options(args[0], flags))
			if err != nil {
				return err
			}
			sw.done("built tooltips", "points", len(res.Points), "cached", res.CacheHit)

			w := cmd.OutOrStdout()
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("create %s: %w", out, err)
				}
				defer f.Close()
				w = f
			}

			if err := writeResult(w, res, output, resultLabels(runner.Bundle, res)); err != nil {
				return err
			}
			if out != "" {
				printSuccess(cmd.OutOrStdout(), "Wrote %s", out)
				printStats(cmd.OutOrStdout(), res)
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&output, "output", outputTable, "output format: table or json")
	cmd.Flags().StringVarP(&out, "out", "o", "", "write to file instead of stdout")

	return cmd
}

func writeResult(w io.Writer, res *pipeline.Result, output string, lb labels) error {
	if output == outputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	if _, err := fmt.Fprintln(w, renderTooltipTable(res.Points, lb)); err != nil {
		return err
	}
	printStats(w, res)
	return nil
}
