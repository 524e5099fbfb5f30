package polygon

import (
	"sort"

	"github.com/xll-gen/tilerect/pkg/grid"
)

// MaxX returns the right-hand extent of the boundary, the last column the
// row scan looks at. It is 0 for an empty set.
func MaxX(boundary grid.Set) int {
	maxX := 0
	for p := range boundary {
		if p.X > maxX {
			maxX = p.X
		}
	}
	return maxX
}

// Fill returns the boundary plus every cell lying between a boundary cell and
// the next boundary cell to its right on the same row.
//
// This is a single-crossing scan, not an even-odd test: it assumes a row meets
// the boundary at most twice. Rows that cross more often are filled across the
// gaps between crossings (see CrossingRows).
func Fill(boundary grid.Set) grid.Set {
	limit := MaxX(boundary)
	filled := boundary.Clone()

	for edge := range boundary {
		for x := edge.X + 1; x <= limit; x++ {
			if !boundary.Contains(grid.Point{X: x, Y: edge.Y}) {
				continue
			}
			for fx := edge.X + 1; fx <= x; fx++ {
				filled.Add(grid.Point{X: fx, Y: edge.Y})
			}
			break
		}
	}
	return filled
}

// Run is a maximal horizontal stretch of boundary cells on a single row.
type Run struct {
	Y      int
	XFirst int
	XLast  int
}

// CrossingRows returns, keyed by row, the runs of every row whose boundary
// cells form more than two separate runs. Fill may mark cells outside the
// polygon on those rows.
func CrossingRows(boundary grid.Set) map[int][]Run {
	rows := make(map[int][]int)
	for p := range boundary {
		rows[p.Y] = append(rows[p.Y], p.X)
	}

	out := make(map[int][]Run)
	for y, xs := range rows {
		sort.Ints(xs)
		var runs []Run
		for _, x := range xs {
			if n := len(runs); n > 0 && runs[n-1].XLast+1 == x {
				runs[n-1].XLast = x
				continue
			}
			runs = append(runs, Run{Y: y, XFirst: x, XLast: x})
		}
		if len(runs) > 2 {
			out[y] = runs
		}
	}
	return out
}
