package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/xll-gen/tilerect/internal/input"
	"github.com/xll-gen/tilerect/pkg/algo"
	"github.com/xll-gen/tilerect/pkg/polygon"
)

var meshCmd = &cobra.Command{
	Use:   "mesh [file]",
	Short: "Cover the filled polygon with non-overlapping rectangles",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		applySearchFlags(cmd, appConfig)
		exitOnError(runMesh(inputArg(args), os.Stdout, appConfig.Search.AllowDiagonalEdges))
	},
}

func init() {
	meshCmd.Flags().BoolVar(&solveAllowDiagonal, "allow-diagonal", false, "Trace non axis-aligned edges as filled rectangles")
	rootCmd.AddCommand(meshCmd)
}

// runMesh prints a greedy rectangle cover of the filled region.
// The cover's rectangles need not have vertices as corners.
func runMesh(path string, w io.Writer, allowDiagonal bool) error {
	vertices, err := input.ReadFile(path)
	if err != nil {
		return err
	}
	boundary, err := polygon.Trace(vertices, polygon.TraceOptions{AllowDiagonal: allowDiagonal})
	if err != nil {
		return err
	}
	filled := polygon.Fill(boundary)

	rects := algo.GreedyMesh(filled)
	for _, r := range rects {
		fmt.Fprintf(w, "%v  area %s\n", r, humanize.Comma(int64(r.Area())))
	}
	fmt.Fprintf(w, "%d rectangles cover %s cells\n", len(rects), humanize.Comma(int64(filled.Len())))
	if best, ok := algo.Largest(rects); ok {
		fmt.Fprintf(w, "Largest piece: %v  area %s\n", best, humanize.Comma(int64(best.Area())))
	}
	return nil
}
