package algo

import (
	"github.com/xll-gen/tilerect/pkg/grid"
)

// GreedyMesh covers a set of cells with non-overlapping rectangles.
// The algorithm uses a greedy approach:
// 1. Visits cells by row (Y), then column (X).
// 2. From each uncovered cell, grows along X as far as possible, then grows
//    the whole strip along Y while every cell below is free.
// 3. Marks the rectangle covered and continues.
func GreedyMesh(cells grid.Set) []grid.Rect {
	if cells.Len() == 0 {
		return nil
	}

	var rects []grid.Rect
	covered := make(grid.Set, cells.Len())
	free := func(p grid.Point) bool {
		return cells.Contains(p) && !covered.Contains(p)
	}

	for _, c := range cells.Points() {
		if covered.Contains(c) {
			continue
		}

		r := grid.Rect{XFirst: c.X, XLast: c.X, YFirst: c.Y, YLast: c.Y}

		for free(grid.Point{X: r.XLast + 1, Y: r.YFirst}) {
			r.XLast++
		}

		for {
			next := r.YLast + 1
			canExpand := true
			for x := r.XFirst; x <= r.XLast; x++ {
				if !free(grid.Point{X: x, Y: next}) {
					canExpand = false
					break
				}
			}
			if !canExpand {
				break
			}
			r.YLast = next
		}

		for y := r.YFirst; y <= r.YLast; y++ {
			for x := r.XFirst; x <= r.XLast; x++ {
				covered.Add(grid.Point{X: x, Y: y})
			}
		}
		rects = append(rects, r)
	}
	return rects
}

// Largest returns the rectangle with the greatest area, the first one on ties.
func Largest(rects []grid.Rect) (grid.Rect, bool) {
	if len(rects) == 0 {
		return grid.Rect{}, false
	}
	best := rects[0]
	for _, r := range rects[1:] {
		if r.Area() > best.Area() {
			best = r
		}
	}
	return best, true
}
