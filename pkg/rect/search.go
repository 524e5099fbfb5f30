// Package rect searches for the largest rectangle whose opposite corners are
// both polygon vertices.
package rect

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/xll-gen/tilerect/pkg/grid"
)

// Result describes the best rectangle found.
type Result struct {
	// Area is 0 when no candidate qualified.
	Area int
	// Corners are the two vertices spanning the rectangle, in search order.
	Corners [2]grid.Point
	// Rect is the normalised rectangle spanned by Corners.
	Rect grid.Rect
	// Candidates is the number of vertex pairs enumerated.
	Candidates int
	// Checked is the number of containment checks actually run.
	Checked int
}

// Options tunes the constrained search.
type Options struct {
	// Workers above 1 spreads the outer vertex loop over that many goroutines.
	Workers int
}

// Largest returns the largest area spanned by any ordered pair of vertices,
// a vertex paired with itself included. Containment is ignored.
func Largest(vertices []grid.Point) Result {
	var res Result
	for _, a := range vertices {
		for _, b := range vertices {
			res.Candidates++
			if area := grid.RectFrom(a, b).Area(); area > res.Area {
				res.setBest(a, b, area)
			}
		}
	}
	return res
}

// LargestEnclosed returns the largest area spanned by a pair of vertices whose
// rectangle lies entirely inside the index. Ties keep the first pair in
// vertex order, regardless of Workers.
func LargestEnclosed(ctx context.Context, vertices []grid.Point, index Index, opts Options) (Result, error) {
	var floor atomic.Int64
	if opts.Workers <= 1 || len(vertices) < 2 {
		var res Result
		for i := range vertices {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
			res.merge(searchFrom(i, vertices, index, &floor))
		}
		return res, nil
	}

	rows := make([]Result, len(vertices))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(opts.Workers)
	for i := range vertices {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rows[i] = searchFrom(i, vertices, index, &floor)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return Result{}, err
	}

	var res Result
	for _, row := range rows {
		res.merge(row)
	}
	return res, nil
}

// searchFrom scans every pair starting at vertices[i]. floor holds the best
// area seen by any caller so far; candidates strictly below it are skipped,
// equal ones are still checked so that ties resolve in vertex order.
func searchFrom(i int, vertices []grid.Point, index Index, floor *atomic.Int64) Result {
	var res Result
	a := vertices[i]
	for _, b := range vertices {
		res.Candidates++
		r := grid.RectFrom(a, b)
		area := r.Area()
		if area <= res.Area {
			continue
		}
		if int64(area) < floor.Load() {
			continue
		}
		res.Checked++
		if !index.ContainsRect(r) {
			continue
		}
		res.setBest(a, b, area)
		raise(floor, int64(area))
	}
	return res
}

func raise(floor *atomic.Int64, v int64) {
	for {
		cur := floor.Load()
		if v <= cur || floor.CompareAndSwap(cur, v) {
			return
		}
	}
}

func (r *Result) setBest(a, b grid.Point, area int) {
	r.Area = area
	r.Corners = [2]grid.Point{a, b}
	r.Rect = grid.RectFrom(a, b)
}

// merge folds a later partial result into r, keeping r's best on ties.
func (r *Result) merge(o Result) {
	r.Candidates += o.Candidates
	r.Checked += o.Checked
	if o.Area > r.Area {
		r.Area = o.Area
		r.Corners = o.Corners
		r.Rect = o.Rect
	}
}
