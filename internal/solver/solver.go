// Package solver wires tracing, filling and both rectangle searches into a
// single run over one vertex loop.
package solver

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/xll-gen/tilerect/pkg/grid"
	"github.com/xll-gen/tilerect/pkg/polygon"
	"github.com/xll-gen/tilerect/pkg/rect"
)

// Options selects how a run is carried out.
type Options struct {
	AllowDiagonal bool
	// Index is "scan" or "prefix". Empty means "scan".
	Index   string
	Workers int
}

// Report is the outcome of a run. Its yaml form is the machine-readable output.
type Report struct {
	RunID     string `yaml:"run_id"`
	Vertices  int    `yaml:"vertices"`
	Boundary  int    `yaml:"boundary_cells"`
	Filled    int    `yaml:"filled_cells"`
	Largest   Found  `yaml:"largest"`
	Enclosed  Found  `yaml:"enclosed"`
	Crossings []int  `yaml:"crossing_rows,omitempty"`
	Elapsed   string `yaml:"elapsed"`

	// Region is the filled region the enclosed search ran against.
	Region grid.Set `yaml:"-"`
}

// Found is one search result.
type Found struct {
	Area    int    `yaml:"area"`
	From    string `yaml:"from,omitempty"`
	To      string `yaml:"to,omitempty"`
	Checked int    `yaml:"containment_checks,omitempty"`
}

func found(r rect.Result) Found {
	f := Found{Area: r.Area, Checked: r.Checked}
	if r.Area > 0 {
		f.From = r.Corners[0].String()
		f.To = r.Corners[1].String()
	}
	return f
}

// Run traces and fills the polygon, then runs the unconstrained and enclosed searches.
func Run(ctx context.Context, vertices []grid.Point, opts Options) (*Report, error) {
	start := time.Now()
	runID := uuid.NewString()
	logger := slog.With("run", runID)

	boundary, err := polygon.Trace(vertices, polygon.TraceOptions{AllowDiagonal: opts.AllowDiagonal})
	if err != nil {
		return nil, err
	}
	filled := polygon.Fill(boundary)
	logger.Debug("traced polygon", "vertices", len(vertices), "boundary", boundary.Len(), "filled", filled.Len())

	crossings := CrossingRows(boundary)
	if len(crossings) > 0 {
		logger.Warn("rows cross the boundary more than twice, fill may include outside cells", "rows", crossings)
	}

	index, err := NewIndex(opts.Index, filled)
	if err != nil {
		return nil, err
	}

	largest := rect.Largest(vertices)
	enclosed, err := rect.LargestEnclosed(ctx, vertices, index, rect.Options{Workers: opts.Workers})
	if err != nil {
		return nil, err
	}

	elapsed := time.Since(start)
	logger.Info("search finished",
		"largest", largest.Area,
		"enclosed", enclosed.Area,
		"checked", enclosed.Checked,
		"elapsed", elapsed,
	)

	return &Report{
		RunID:     runID,
		Vertices:  len(vertices),
		Boundary:  boundary.Len(),
		Filled:    filled.Len(),
		Largest:   found(largest),
		Enclosed:  found(enclosed),
		Crossings: crossings,
		Elapsed:   elapsed.String(),
		Region:    filled,
	}, nil
}

// NewIndex builds the named containment index over region.
func NewIndex(name string, region grid.Set) (rect.Index, error) {
	switch name {
	case "", "scan":
		return rect.ScanIndex{Region: region}, nil
	case "prefix":
		return rect.NewPrefixIndex(region), nil
	default:
		return nil, fmt.Errorf("unknown containment index %q", name)
	}
}

// CrossingRows returns the sorted rows on which the row-scan fill is unreliable.
func CrossingRows(boundary grid.Set) []int {
	runs := polygon.CrossingRows(boundary)
	if len(runs) == 0 {
		return nil
	}
	rows := make([]int, 0, len(runs))
	for y := range runs {
		rows = append(rows, y)
	}
	sort.Ints(rows)
	return rows
}
