package cmd

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xll-gen/tilerect/internal/input"
	"github.com/xll-gen/tilerect/pkg/grid"
	"github.com/xll-gen/tilerect/pkg/polygon"
)

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Diagnose a vertex file before solving it",
	Long: `Checks the vertex count and edge alignment, and reports rows where the
row-scan fill cannot be trusted.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		exitOnError(runCheck(inputArg(args), os.Stdout))
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(path string, w io.Writer) error {
	p := printer(w)
	p.Header("Checking " + path)

	vertices, err := input.ReadFile(path)
	if err != nil {
		p.Error("Input", err.Error())
		return fmt.Errorf("input is not readable")
	}
	p.Success("Input", fmt.Sprintf("%d vertices", len(vertices)))

	if len(vertices) < 2 {
		p.Error("Vertices", "at least 2 are needed")
		return fmt.Errorf("too few vertices")
	}

	failures := 0
	diagonal := polygon.DiagonalEdges(vertices)
	for _, i := range diagonal {
		next := vertices[(i+1)%len(vertices)]
		p.Error("Edge", fmt.Sprintf("%v to %v is not axis-aligned", vertices[i], next))
		failures++
	}
	if len(diagonal) == 0 {
		p.Success("Edges", "all axis-aligned")
	}

	boundary, err := polygon.Trace(vertices, polygon.TraceOptions{AllowDiagonal: true})
	if err != nil {
		p.Error("Trace", err.Error())
		return fmt.Errorf("trace failed")
	}
	bounds, _ := boundary.Bounds()
	p.Success("Boundary", fmt.Sprintf("%d cells within %v", boundary.Len(), bounds))

	crossings := polygon.CrossingRows(boundary)
	if len(crossings) == 0 {
		p.Success("Fill", "every row crosses the boundary at most twice")
	}
	for _, y := range sortedRows(crossings) {
		p.Warning("Fill", fmt.Sprintf("row %d has %d boundary runs: %s", y, len(crossings[y]), describeRuns(crossings[y])))
	}

	if failures > 0 {
		return fmt.Errorf("%d problem(s) found", failures)
	}
	return nil
}

func sortedRows(runs map[int][]polygon.Run) []int {
	rows := make([]int, 0, len(runs))
	for y := range runs {
		rows = append(rows, y)
	}
	sort.Ints(rows)
	return rows
}

func describeRuns(runs []polygon.Run) string {
	parts := make([]string, 0, len(runs))
	for _, r := range runs {
		parts = append(parts, grid.Pt(r.XFirst, r.Y).String()+".."+grid.Pt(r.XLast, r.Y).String())
	}
	return strings.Join(parts, " ")
}
