package markers

import (
	"testing"

	"github.com/ridgelab/fpview/pkg/artifacts"
	"github.com/ridgelab/fpview/pkg/colors"
)

func checkerboard(width, height int) *artifacts.BitMatrix {
	m := artifacts.NewBitMatrix(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			m.Set(x, y, (x+y)%2 == 0)
		}
	}
	return m
}

func invert(m *artifacts.BitMatrix) *artifacts.BitMatrix {
	out := artifacts.NewBitMatrix(m.Width, m.Height)
	for i, v := range m.Cells {
		out.Cells[i] = !v
	}
	return out
}

// Painting a mask is a strict bijection between boolean value and one of
// exactly two colors: painting the negated mask with swapped colors yields
// the identical pixmap.
func TestPaintBitsBijection(t *testing.T) {
	m := checkerboard(7, 5)
	a := PaintBits(m, colors.Black, colors.White)
	b := PaintBits(invert(m), colors.White, colors.Black)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if a.Get(x, y) != b.Get(x, y) {
				t.Fatalf("bijection broken at (%d,%d): %#x vs %#x", x, y, a.Get(x, y), b.Get(x, y))
			}
		}
	}
}

func TestPaintBitsAllFalse(t *testing.T) {
	m := artifacts.NewBitMatrix(10, 10)
	p := PaintBits(m, colors.Black, colors.White)

	white, black := 0, 0
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			switch p.Get(x, y) {
			case colors.White:
				white++
			case colors.Black:
				black++
			}
		}
	}
	if white != 100 || black != 0 {
		t.Errorf("all-false field painted %d white, %d black pixels; want 100, 0", white, black)
	}
}

func TestDiffBitsSelfIsUnchanged(t *testing.T) {
	m := checkerboard(6, 6)
	p := DiffBits(m, m)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			got := p.Get(x, y)
			if got != colors.DiffStayOn && got != colors.DiffStayOff {
				t.Fatalf("diff(x,x) produced change color %#x at (%d,%d)", got, x, y)
			}
			if m.At(x, y) != (got == colors.DiffStayOn) {
				t.Fatalf("diff(x,x) color does not track value at (%d,%d)", x, y)
			}
		}
	}
}

func TestDiffBitsTransitions(t *testing.T) {
	previous := artifacts.NewBitMatrix(2, 2)
	next := artifacts.NewBitMatrix(2, 2)
	previous.Set(0, 0, true) // turned off
	next.Set(1, 0, true)     // turned on
	previous.Set(0, 1, true) // stays on
	next.Set(0, 1, true)

	p := DiffBits(previous, next)
	tests := []struct {
		name string
		x, y int
		want uint32
	}{
		{name: "turned off", x: 0, y: 0, want: colors.DiffRemoved},
		{name: "turned on", x: 1, y: 0, want: colors.DiffAdded},
		{name: "stays on", x: 0, y: 1, want: colors.DiffStayOn},
		{name: "stays off", x: 1, y: 1, want: colors.DiffStayOff},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Get(tt.x, tt.y); got != tt.want {
				t.Errorf("diff(%d,%d) = %#x, want %#x", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestOverlayBlockMaskExpands(t *testing.T) {
	blocks := &artifacts.BlockMap{
		Pixels:  artifacts.Point{X: 4, Y: 4},
		Primary: artifacts.BlockGrid{X: []int{0, 2, 4}, Y: []int{0, 2, 4}},
	}
	mask := artifacts.NewBitMatrix(2, 2)
	mask.Set(0, 0, true)

	p := OverlayBlockMask(mask, blocks)
	if got := p.Get(1, 1); got != colors.MaskForeground {
		t.Errorf("pixel inside true block = %#x, want foreground", got)
	}
	if got := p.Get(3, 3); got != colors.MaskBackground {
		t.Errorf("pixel inside false block = %#x, want background", got)
	}
}
