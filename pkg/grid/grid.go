package grid

import (
	"fmt"
	"sort"
	"strings"
)

// Point is a single integer cell coordinate.
type Point struct {
	X int
	Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Rect is an inclusive rectangle of cells: both the first and last
// row/column belong to it.
type Rect struct {
	XFirst int
	XLast  int
	YFirst int
	YLast  int
}

// RectFrom builds the rectangle spanned by two opposite corners given in any order.
func RectFrom(a, b Point) Rect {
	return Rect{
		XFirst: min(a.X, b.X),
		XLast:  max(a.X, b.X),
		YFirst: min(a.Y, b.Y),
		YLast:  max(a.Y, b.Y),
	}
}

// Width is the number of columns covered.
func (r Rect) Width() int {
	return r.XLast - r.XFirst + 1
}

// Height is the number of rows covered.
func (r Rect) Height() int {
	return r.YLast - r.YFirst + 1
}

// Area counts the cells inside r, borders included.
func (r Rect) Area() int {
	return r.Width() * r.Height()
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	return r.XFirst <= p.X && p.X <= r.XLast && r.YFirst <= p.Y && p.Y <= r.YLast
}

func (r Rect) String() string {
	return fmt.Sprintf("[%d..%d]x[%d..%d]", r.XFirst, r.XLast, r.YFirst, r.YLast)
}

// Set is a hashed set of cells.
type Set map[Point]struct{}

// NewSet returns a set holding the given points.
func NewSet(points ...Point) Set {
	s := make(Set, len(points))
	for _, p := range points {
		s[p] = struct{}{}
	}
	return s
}

func (s Set) Add(p Point) {
	s[p] = struct{}{}
}

func (s Set) Contains(p Point) bool {
	_, ok := s[p]
	return ok
}

func (s Set) Len() int {
	return len(s)
}

// Clone returns an independent copy of s.
func (s Set) Clone() Set {
	c := make(Set, len(s))
	for p := range s {
		c[p] = struct{}{}
	}
	return c
}

// Points returns the members sorted by row, then column.
func (s Set) Points() []Point {
	points := make([]Point, 0, len(s))
	for p := range s {
		points = append(points, p)
	}
	sort.Slice(points, func(i, j int) bool {
		if points[i].Y != points[j].Y {
			return points[i].Y < points[j].Y
		}
		return points[i].X < points[j].X
	})
	return points
}

// Bounds returns the smallest rectangle covering every member.
// ok is false for an empty set.
func (s Set) Bounds() (r Rect, ok bool) {
	for p := range s {
		if !ok {
			r = Rect{XFirst: p.X, XLast: p.X, YFirst: p.Y, YLast: p.Y}
			ok = true
			continue
		}
		r.XFirst = min(r.XFirst, p.X)
		r.XLast = max(r.XLast, p.X)
		r.YFirst = min(r.YFirst, p.Y)
		r.YLast = max(r.YLast, p.Y)
	}
	return r, ok
}

// Render draws the set inside its bounds, one line per row, '#' for members.
func (s Set) Render() string {
	bounds, ok := s.Bounds()
	if !ok {
		return ""
	}
	var sb strings.Builder
	sb.Grow((bounds.Width() + 1) * bounds.Height())
	for y := bounds.YFirst; y <= bounds.YLast; y++ {
		for x := bounds.XFirst; x <= bounds.XLast; x++ {
			if s.Contains(Point{X: x, Y: y}) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
