package artifacts

// Matrix is a dense scalar field, one float64 per cell. Cells are stored in
// row-major order; renderers consume values only through the observed range,
// never assuming fixed bounds.
type Matrix struct {
	Width  int       `json:"width"`
	Height int       `json:"height"`
	Cells  []float64 `json:"cells"`
}

// At returns the value at (x,y).
func (m *Matrix) At(x, y int) float64 {
	return m.Cells[m.Width*y+x]
}

// Range returns the observed minimum and maximum of the field.
func (m *Matrix) Range() (min, max float64) {
	if len(m.Cells) == 0 {
		return 0, 0
	}
	min, max = m.Cells[0], m.Cells[0]
	for _, v := range m.Cells[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

// PointMatrix is a dense vector field, one 2-D vector per cell. Vectors
// represent local ridge flow; the angle is an orientation (defined modulo π)
// carried in doubled-angle form by the pipeline.
type PointMatrix struct {
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Cells  []Vector `json:"cells"`
}

// At returns the vector at (x,y).
func (m *PointMatrix) At(x, y int) Vector {
	return m.Cells[m.Width*y+x]
}

// MaxLength returns the largest vector magnitude in the field.
func (m *PointMatrix) MaxLength() float64 {
	var max float64
	for _, v := range m.Cells {
		if l := v.Length(); l > max {
			max = l
		}
	}
	return max
}

// BitMatrix is a dense boolean field at pixel or block resolution.
type BitMatrix struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Cells  []bool `json:"cells"`
}

// NewBitMatrix allocates an all-false field.
func NewBitMatrix(width, height int) *BitMatrix {
	return &BitMatrix{Width: width, Height: height, Cells: make([]bool, width*height)}
}

// At returns the bit at (x,y).
func (m *BitMatrix) At(x, y int) bool {
	return m.Cells[m.Width*y+x]
}

// Set writes the bit at (x,y).
func (m *BitMatrix) Set(x, y int, value bool) {
	m.Cells[m.Width*y+x] = value
}

// Expand converts a block-resolution mask to pixel resolution by filling
// every pixel of each block with the block's value. The mask dimensions must
// match the block map's primary tiling.
func (m *BitMatrix) Expand(blocks *BlockMap) *BitMatrix {
	expanded := NewBitMatrix(blocks.Pixels.X, blocks.Pixels.Y)
	for by := 0; by < blocks.Primary.Rows(); by++ {
		for bx := 0; bx < blocks.Primary.Cols(); bx++ {
			if !m.At(bx, by) {
				continue
			}
			block := blocks.Primary.Block(bx, by)
			for y := block.Y; y < block.Y+block.Height; y++ {
				for x := block.X; x < block.X+block.Width; x++ {
					expanded.Set(x, y, true)
				}
			}
		}
	}
	return expanded
}

// HistogramCube stores one fixed-bin histogram per block, row-major by block.
type HistogramCube struct {
	Width  int   `json:"width"`
	Height int   `json:"height"`
	Bins   int   `json:"bins"`
	Counts []int `json:"counts"`
}

// At returns the count in the given bin of block (x,y).
func (h *HistogramCube) At(x, y, bin int) int {
	return h.Counts[(h.Width*y+x)*h.Bins+bin]
}

// Sum returns the total count across all bins of block (x,y).
func (h *HistogramCube) Sum(x, y int) int {
	base := (h.Width*y + x) * h.Bins
	var sum int
	for _, c := range h.Counts[base : base+h.Bins] {
		sum += c
	}
	return sum
}
