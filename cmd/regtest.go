package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/xll-gen/tilerect/internal/config"
	"github.com/xll-gen/tilerect/internal/regtest"
)

var regtestCmd = &cobra.Command{
	Use:   "regtest [suite.yaml]",
	Short: "Run a yaml suite of polygons with expected areas",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := "suite.yaml"
		if len(args) > 0 {
			path = args[0]
		}
		applySearchFlags(cmd, appConfig)
		exitOnError(config.Validate(appConfig))
		exitOnError(runRegtest(cmd.Context(), path, os.Stdout, appConfig))
	},
}

func init() {
	regtestCmd.Flags().IntVar(&solveWorkers, "workers", 0, "Goroutines for the enclosed search")
	regtestCmd.Flags().StringVar(&solveIndex, "index", "", "Containment check (scan, prefix)")
	rootCmd.AddCommand(regtestCmd)
}

func runRegtest(ctx context.Context, path string, w io.Writer, cfg *config.Config) error {
	suite, err := regtest.Load(path)
	if err != nil {
		return err
	}

	p := printer(w)
	var outcomes []regtest.Outcome
	_ = p.RunSpinner(fmt.Sprintf("Running %d cases...", len(suite.Cases)), func() error {
		outcomes = suite.Run(ctx, solverOptions(cfg))
		return nil
	})

	p.Header("Results")
	for _, o := range outcomes {
		if o.Passed {
			p.Success(o.Name, o.Detail)
		} else {
			p.Error(o.Name, o.Detail)
		}
	}

	if n := regtest.Failed(outcomes); n > 0 {
		return fmt.Errorf("%d of %d cases failed", n, len(outcomes))
	}
	fmt.Fprintf(w, "\nAll %d cases passed.\n", len(outcomes))
	return nil
}
