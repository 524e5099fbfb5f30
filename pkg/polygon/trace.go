// Package polygon turns a rectilinear vertex loop into cell sets: the traced
// boundary and the row-scan filled region.
package polygon

import (
	"github.com/pkg/errors"

	"github.com/xll-gen/tilerect/pkg/grid"
)

var (
	ErrTooFewVertices     = errors.New("polygon needs at least 2 vertices")
	ErrNegativeCoordinate = errors.New("vertex coordinates must be non-negative")
	ErrDiagonalEdge       = errors.New("edge is not axis-aligned")
)

// TraceOptions controls vertex validation during tracing.
type TraceOptions struct {
	// AllowDiagonal accepts edges whose endpoints share neither coordinate.
	// Such an edge marks every cell of the rectangle it spans instead of a line.
	AllowDiagonal bool
}

// Validate checks the vertex loop without tracing it.
func Validate(vertices []grid.Point, opts TraceOptions) error {
	if len(vertices) < 2 {
		return errors.Wrapf(ErrTooFewVertices, "got %d", len(vertices))
	}
	for i, v := range vertices {
		if v.X < 0 || v.Y < 0 {
			return errors.Wrapf(ErrNegativeCoordinate, "vertex %d %v", i, v)
		}
	}
	if opts.AllowDiagonal {
		return nil
	}
	for i, v := range vertices {
		next := vertices[(i+1)%len(vertices)]
		if !aligned(v, next) {
			return errors.Wrapf(ErrDiagonalEdge, "vertex %d %v to %v", i, v, next)
		}
	}
	return nil
}

// DiagonalEdges returns the index of every vertex whose edge to the next
// vertex (wrapping to the first) is not axis-aligned.
func DiagonalEdges(vertices []grid.Point) []int {
	var out []int
	for i, v := range vertices {
		if !aligned(v, vertices[(i+1)%len(vertices)]) {
			out = append(out, i)
		}
	}
	return out
}

func aligned(a, b grid.Point) bool {
	return a.X == b.X || a.Y == b.Y
}

// Trace marks every cell covered by the edges of the closed loop, both
// endpoints included.
func Trace(vertices []grid.Point, opts TraceOptions) (grid.Set, error) {
	if err := Validate(vertices, opts); err != nil {
		return nil, err
	}

	boundary := make(grid.Set)
	for i, from := range vertices {
		to := vertices[(i+1)%len(vertices)]
		span := grid.RectFrom(from, to)
		for x := span.XFirst; x <= span.XLast; x++ {
			for y := span.YFirst; y <= span.YLast; y++ {
				boundary.Add(grid.Point{X: x, Y: y})
			}
		}
	}
	return boundary, nil
}
