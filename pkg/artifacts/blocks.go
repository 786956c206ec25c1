package artifacts

// BlockGrid is one rectangular tiling of the raster. X and Y hold the cell
// boundary coordinates, so a grid with n columns stores n+1 values in X.
type BlockGrid struct {
	X []int `json:"x"`
	Y []int `json:"y"`
}

// Cols returns the number of block columns.
func (g *BlockGrid) Cols() int { return len(g.X) - 1 }

// Rows returns the number of block rows.
func (g *BlockGrid) Rows() int { return len(g.Y) - 1 }

// Block returns the pixel rectangle of block (ix,iy).
func (g *BlockGrid) Block(ix, iy int) Rect {
	return Rect{
		X:      g.X[ix],
		Y:      g.Y[iy],
		Width:  g.X[ix+1] - g.X[ix],
		Height: g.Y[iy+1] - g.Y[iy],
	}
}

// BlockMap carries the two alternative tilings of one image: the primary
// tiling used by most block-level artifacts and the secondary tiling shifted
// by half a block. Both exist simultaneously for the same pixel area.
type BlockMap struct {
	Pixels    Point     `json:"pixels"`
	Primary   BlockGrid `json:"primary"`
	Secondary BlockGrid `json:"secondary"`
}
