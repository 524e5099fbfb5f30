package algo

import (
	"reflect"
	"sort"
	"testing"

	"github.com/xll-gen/tilerect/pkg/grid"
)

func TestGreedyMesh(t *testing.T) {
	tests := []struct {
		name     string
		cells    grid.Set
		expected []grid.Rect
	}{
		{
			name:     "Empty",
			cells:    grid.NewSet(),
			expected: nil,
		},
		{
			name:  "Single Cell",
			cells: grid.NewSet(grid.Pt(1, 1)),
			expected: []grid.Rect{
				{XFirst: 1, XLast: 1, YFirst: 1, YLast: 1},
			},
		},
		{
			name:  "Horizontal Line",
			cells: grid.NewSet(grid.Pt(1, 1), grid.Pt(2, 1), grid.Pt(3, 1)),
			expected: []grid.Rect{
				{XFirst: 1, XLast: 3, YFirst: 1, YLast: 1},
			},
		},
		{
			name:  "Vertical Line",
			cells: grid.NewSet(grid.Pt(1, 1), grid.Pt(1, 2), grid.Pt(1, 3)),
			expected: []grid.Rect{
				{XFirst: 1, XLast: 1, YFirst: 1, YLast: 3},
			},
		},
		{
			name: "Block 2x3",
			cells: grid.NewSet(
				grid.Pt(1, 1), grid.Pt(2, 1),
				grid.Pt(1, 2), grid.Pt(2, 2),
				grid.Pt(1, 3), grid.Pt(2, 3),
			),
			expected: []grid.Rect{
				{XFirst: 1, XLast: 2, YFirst: 1, YLast: 3},
			},
		},
		{
			name:  "Disjoint Cells",
			cells: grid.NewSet(grid.Pt(1, 1), grid.Pt(5, 5)),
			expected: []grid.Rect{
				{XFirst: 1, XLast: 1, YFirst: 1, YLast: 1},
				{XFirst: 5, XLast: 5, YFirst: 5, YLast: 5},
			},
		},
		{
			name: "L-Shape (Greedy prefers width first)",
			// # #
			// # .
			cells: grid.NewSet(grid.Pt(1, 1), grid.Pt(2, 1), grid.Pt(1, 2)),
			expected: []grid.Rect{
				{XFirst: 1, XLast: 2, YFirst: 1, YLast: 1},
				{XFirst: 1, XLast: 1, YFirst: 2, YLast: 2},
			},
		},
		{
			name: "Filled Example",
			// .....#####
			// .....#####
			// ##########
			// ##########
			// ##########
			// .......###
			// .......###
			cells: func() grid.Set {
				s := grid.NewSet()
				spans := map[int][2]int{1: {7, 11}, 2: {7, 11}, 3: {2, 11}, 4: {2, 11}, 5: {2, 11}, 6: {9, 11}, 7: {9, 11}}
				for y, span := range spans {
					for x := span[0]; x <= span[1]; x++ {
						s.Add(grid.Pt(x, y))
					}
				}
				return s
			}(),
			expected: []grid.Rect{
				{XFirst: 7, XLast: 11, YFirst: 1, YLast: 5},
				{XFirst: 2, XLast: 6, YFirst: 3, YLast: 5},
				{XFirst: 9, XLast: 11, YFirst: 6, YLast: 7},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GreedyMesh(tt.cells)

			sortRects(got)
			sortRects(tt.expected)

			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("GreedyMesh() = %v, want %v", got, tt.expected)
			}

			covered := 0
			for _, r := range got {
				covered += r.Area()
			}
			if covered != tt.cells.Len() {
				t.Errorf("GreedyMesh() covers %d cells, want %d", covered, tt.cells.Len())
			}
		})
	}
}

func TestLargest(t *testing.T) {
	if _, ok := Largest(nil); ok {
		t.Fatal("Largest(nil) reported a rectangle")
	}

	rects := []grid.Rect{
		{XFirst: 0, XLast: 1, YFirst: 0, YLast: 1},
		{XFirst: 5, XLast: 7, YFirst: 0, YLast: 0},
		{XFirst: 2, XLast: 3, YFirst: 2, YLast: 3},
	}
	got, ok := Largest(rects)
	if !ok || got != rects[0] {
		t.Errorf("Largest() = %v, %v, want %v", got, ok, rects[0])
	}
}

func sortRects(rects []grid.Rect) {
	sort.Slice(rects, func(i, j int) bool {
		if rects[i].YFirst != rects[j].YFirst {
			return rects[i].YFirst < rects[j].YFirst
		}
		return rects[i].XFirst < rects[j].XFirst
	})
}
