package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/xll-gen/tilerect/internal/config"
	"github.com/xll-gen/tilerect/internal/input"
	"github.com/xll-gen/tilerect/internal/solver"
	"gopkg.in/yaml.v3"
)

var (
	solveWorkers       int
	solveIndex         string
	solveAllowDiagonal bool
	solveFormat        string
	solveRender        bool
)

// solveCmd represents the solve command.
var solveCmd = &cobra.Command{
	Use:   "solve [file]",
	Short: "Report the largest and the largest enclosed rectangle",
	Long: `Reads x,y vertices (one per line, "-" or no argument for stdin), traces the polygon,
fills its interior row by row and prints both rectangle areas.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		applySearchFlags(cmd, appConfig)
		exitOnError(config.Validate(appConfig))
		exitOnError(runSolve(cmd.Context(), inputArg(args), os.Stdout, appConfig, solveRender))
	},
}

func init() {
	addSearchFlags(solveCmd)
	solveCmd.Flags().StringVar(&solveFormat, "format", "", "Output format (text, yaml)")
	solveCmd.Flags().BoolVar(&solveRender, "render", false, "Draw the filled region (text format only)")
	rootCmd.AddCommand(solveCmd)
}

// addSearchFlags registers the flags that override the search section of the config.
func addSearchFlags(c *cobra.Command) {
	c.Flags().IntVar(&solveWorkers, "workers", 0, "Goroutines for the enclosed search")
	c.Flags().StringVar(&solveIndex, "index", "", "Containment check (scan, prefix)")
	c.Flags().BoolVar(&solveAllowDiagonal, "allow-diagonal", false, "Trace non axis-aligned edges as filled rectangles")
}

// applySearchFlags copies explicitly set flags over the loaded configuration.
func applySearchFlags(c *cobra.Command, cfg *config.Config) {
	if c.Flags().Changed("workers") {
		cfg.Search.Workers = solveWorkers
	}
	if c.Flags().Changed("index") {
		cfg.Search.Index = solveIndex
	}
	if c.Flags().Changed("allow-diagonal") {
		cfg.Search.AllowDiagonalEdges = solveAllowDiagonal
	}
	if f := c.Flags().Lookup("format"); f != nil && f.Changed {
		cfg.Output.Format = solveFormat
	}
}

func inputArg(args []string) string {
	if len(args) == 0 {
		return "-"
	}
	return args[0]
}

func solverOptions(cfg *config.Config) solver.Options {
	return solver.Options{
		AllowDiagonal: cfg.Search.AllowDiagonalEdges,
		Index:         cfg.Search.Index,
		Workers:       cfg.Search.Workers,
	}
}

// runSolve reads the vertices at path, runs the solver and writes the report to w.
func runSolve(ctx context.Context, path string, w io.Writer, cfg *config.Config, render bool) error {
	vertices, err := input.ReadFile(path)
	if err != nil {
		return err
	}
	slog.Debug("read vertices", "path", path, "vertices", len(vertices))

	rep, err := solver.Run(ctx, vertices, solverOptions(cfg))
	if err != nil {
		return err
	}

	if cfg.Output.Format == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		return enc.Close()
	}

	fmt.Fprintf(w, "Largest rectangle:  %s\n", describe(rep.Largest))
	fmt.Fprintf(w, "Enclosed rectangle: %s\n", describe(rep.Enclosed))
	if len(rep.Crossings) > 0 {
		fmt.Fprintf(w, "Warning: rows %v cross the boundary more than twice; the enclosed result may be too large\n", rep.Crossings)
	}
	if render {
		fmt.Fprintf(w, "\n%s", rep.Region.Render())
	}
	return nil
}

func describe(f solver.Found) string {
	if f.Area == 0 {
		return "0 (no candidate fits)"
	}
	return fmt.Sprintf("%s  %s..%s", humanize.Comma(int64(f.Area)), f.From, f.To)
}
