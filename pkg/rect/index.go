package rect

import "github.com/xll-gen/tilerect/pkg/grid"

// Region answers cell membership. grid.Set satisfies it.
type Region interface {
	Contains(p grid.Point) bool
}

// Index answers whether a whole rectangle lies inside a region.
type Index interface {
	ContainsRect(r grid.Rect) bool
}

// Contained reports whether every cell of the rectangle spanned by a and b,
// borders included, is in region. It stops at the first missing cell.
func Contained(a, b grid.Point, region Region) bool {
	return ScanIndex{Region: region}.ContainsRect(grid.RectFrom(a, b))
}

// ScanIndex checks containment cell by cell.
type ScanIndex struct {
	Region Region
}

func (s ScanIndex) ContainsRect(r grid.Rect) bool {
	for x := r.XFirst; x <= r.XLast; x++ {
		for y := r.YFirst; y <= r.YLast; y++ {
			if !s.Region.Contains(grid.Point{X: x, Y: y}) {
				return false
			}
		}
	}
	return true
}

// PrefixIndex is a summed-area table over the bounding box of a set, giving
// constant-time rectangle containment.
type PrefixIndex struct {
	bounds grid.Rect
	empty  bool
	stride int
	sums   []int
}

// NewPrefixIndex builds the table for set. The set is not retained.
func NewPrefixIndex(set grid.Set) *PrefixIndex {
	bounds, ok := set.Bounds()
	if !ok {
		return &PrefixIndex{empty: true}
	}

	w, h := bounds.Width(), bounds.Height()
	idx := &PrefixIndex{
		bounds: bounds,
		stride: w + 1,
		sums:   make([]int, (w+1)*(h+1)),
	}
	// sums[j*stride+i] counts members in the first j rows and i columns.
	for j := 1; j <= h; j++ {
		rowTotal := 0
		for i := 1; i <= w; i++ {
			if set.Contains(grid.Point{X: bounds.XFirst + i - 1, Y: bounds.YFirst + j - 1}) {
				rowTotal++
			}
			idx.sums[j*idx.stride+i] = idx.sums[(j-1)*idx.stride+i] + rowTotal
		}
	}
	return idx
}

func (p *PrefixIndex) ContainsRect(r grid.Rect) bool {
	if p.empty {
		return false
	}
	if r.XFirst < p.bounds.XFirst || r.XLast > p.bounds.XLast ||
		r.YFirst < p.bounds.YFirst || r.YLast > p.bounds.YLast {
		return false
	}
	return p.count(r) == r.Area()
}

// count returns the number of set members inside r, which must lie within bounds.
func (p *PrefixIndex) count(r grid.Rect) int {
	x0 := r.XFirst - p.bounds.XFirst
	x1 := r.XLast - p.bounds.XFirst + 1
	y0 := r.YFirst - p.bounds.YFirst
	y1 := r.YLast - p.bounds.YFirst + 1
	return p.sums[y1*p.stride+x1] - p.sums[y0*p.stride+x1] - p.sums[y1*p.stride+x0] + p.sums[y0*p.stride+x0]
}
