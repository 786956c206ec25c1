package artifacts

import (
	"math"
	"testing"
)

func TestMatrixRange(t *testing.T) {
	m := &Matrix{Width: 2, Height: 2, Cells: []float64{3, -1, 7, 2}}
	min, max := m.Range()
	if min != -1 || max != 7 {
		t.Errorf("Range() = %v,%v, want -1,7", min, max)
	}
}

func TestVectorAngle(t *testing.T) {
	tests := []struct {
		name string
		v    Vector
		want float64
	}{
		{name: "east", v: Vector{X: 1, Y: 0}, want: 0},
		{name: "north", v: Vector{X: 0, Y: 1}, want: math.Pi / 2},
		{name: "west", v: Vector{X: -1, Y: 0}, want: math.Pi},
		{name: "south wraps positive", v: Vector{X: 0, Y: -1}, want: 3 * math.Pi / 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Angle(); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Angle() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBlockGrid(t *testing.T) {
	g := BlockGrid{X: []int{0, 10, 20}, Y: []int{0, 8}}
	if g.Cols() != 2 || g.Rows() != 1 {
		t.Fatalf("grid = %dx%d blocks, want 2x1", g.Cols(), g.Rows())
	}
	block := g.Block(1, 0)
	want := Rect{X: 10, Y: 0, Width: 10, Height: 8}
	if block != want {
		t.Errorf("Block(1,0) = %+v, want %+v", block, want)
	}
	cx, cy := block.Center()
	if cx != 15 || cy != 4 {
		t.Errorf("Center() = %v,%v, want 15,4", cx, cy)
	}
	if block.Radius() != 4 {
		t.Errorf("Radius() = %v, want 4", block.Radius())
	}
}

func TestBitMatrixExpand(t *testing.T) {
	blocks := &BlockMap{
		Pixels:  Point{X: 4, Y: 2},
		Primary: BlockGrid{X: []int{0, 2, 4}, Y: []int{0, 2}},
	}
	mask := NewBitMatrix(2, 1)
	mask.Set(1, 0, true)

	expanded := mask.Expand(blocks)
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			want := x >= 2
			if got := expanded.At(x, y); got != want {
				t.Errorf("expanded.At(%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestSkeletonShadow(t *testing.T) {
	s := &SkeletonGraph{
		Size:     Point{X: 4, Y: 4},
		Minutiae: []Point{{X: 0, Y: 0}, {X: 3, Y: 3}},
		Ridges: []Ridge{
			{Start: 0, End: 1, Points: []Point{{X: 1, Y: 1}, {X: 2, Y: 2}}},
			{Start: 1, End: 0, Points: []Point{{X: 2, Y: 2}, {X: 1, Y: 1}}},
		},
	}
	shadow := s.Shadow()
	for _, p := range []Point{{0, 0}, {1, 1}, {2, 2}, {3, 3}} {
		if !shadow.At(p.X, p.Y) {
			t.Errorf("shadow missing %v", p)
		}
	}
	if shadow.At(3, 0) {
		t.Error("shadow contains pixel not on the skeleton")
	}

	counts := s.RidgeCounts()
	if counts[Point{0, 0}] != 1 || counts[Point{3, 3}] != 1 {
		t.Errorf("RidgeCounts() = %v, want 1 per minutia", counts)
	}
}

func TestTemplatePositions(t *testing.T) {
	tpl := &Template{Minutiae: []Minutia{
		{Position: Point{X: 1, Y: 2}, Type: Ending},
		{Position: Point{X: 3, Y: 4}, Type: Bifurcation},
	}}
	positions := tpl.Positions()
	if !positions[Point{1, 2}] || !positions[Point{3, 4}] {
		t.Errorf("Positions() = %v, missing entries", positions)
	}
	if positions[Point{9, 9}] {
		t.Error("Positions() contains unexpected entry")
	}
}

func TestMinutiaPairSideOf(t *testing.T) {
	pair := MinutiaPair{Probe: 3, Candidate: 8}
	if pair.SideOf(ProbeSide) != 3 {
		t.Errorf("SideOf(ProbeSide) = %d, want 3", pair.SideOf(ProbeSide))
	}
	if pair.SideOf(CandidateSide) != 8 {
		t.Errorf("SideOf(CandidateSide) = %d, want 8", pair.SideOf(CandidateSide))
	}
}

func TestHistogramCube(t *testing.T) {
	h := &HistogramCube{Width: 2, Height: 1, Bins: 3, Counts: []int{1, 2, 3, 4, 5, 6}}
	if got := h.At(1, 0, 2); got != 6 {
		t.Errorf("At(1,0,2) = %d, want 6", got)
	}
	if got := h.Sum(0, 0); got != 6 {
		t.Errorf("Sum(0,0) = %d, want 6", got)
	}
	if got := h.Sum(1, 0); got != 15 {
		t.Errorf("Sum(1,0) = %d, want 15", got)
	}
}
