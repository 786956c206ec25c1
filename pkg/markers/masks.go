package markers

import (
	"github.com/ridgelab/fpview/pkg/artifacts"
	"github.com/ridgelab/fpview/pkg/colors"
	"github.com/ridgelab/fpview/pkg/pixmap"
)

// PaintBits renders a boolean field as a two-color pixmap: background is
// filled first, then the true cells are overwritten with the foreground.
func PaintBits(m *artifacts.BitMatrix, foreground, background uint32) *pixmap.Pixmap {
	p := pixmap.New(m.Width, m.Height)
	p.Fill(background)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.At(x, y) {
				p.Set(x, y, foreground)
			}
		}
	}
	return p
}

// PaintBinary renders a binarized image black on white.
func PaintBinary(m *artifacts.BitMatrix) *pixmap.Pixmap {
	return PaintBits(m, colors.Black, colors.White)
}

// OverlayBinary renders a binary layer as a translucent highlight over
// transparent background.
func OverlayBinary(m *artifacts.BitMatrix) *pixmap.Pixmap {
	return PaintBits(m, colors.OverlayHighlight, colors.Transparent)
}

// OverlayMask renders a pixel-resolution mask with the translucent
// two-color mask palette.
func OverlayMask(m *artifacts.BitMatrix) *pixmap.Pixmap {
	return PaintBits(m, colors.MaskForeground, colors.MaskBackground)
}

// OverlayBlockMask expands a block-resolution mask to pixel resolution
// against the block map before painting it.
func OverlayBlockMask(m *artifacts.BitMatrix, blocks *artifacts.BlockMap) *pixmap.Pixmap {
	return OverlayMask(m.Expand(blocks))
}

// DiffBits contrasts two same-shaped boolean fields with the four-color diff
// palette, distinguishing all four on/off transitions at once.
func DiffBits(previous, next *artifacts.BitMatrix) *pixmap.Pixmap {
	p := pixmap.New(next.Width, next.Height)
	for y := 0; y < next.Height; y++ {
		for x := 0; x < next.Width; x++ {
			before := previous.At(x, y)
			after := next.At(x, y)
			switch {
			case after && before:
				p.Set(x, y, colors.DiffStayOn)
			case after:
				p.Set(x, y, colors.DiffAdded)
			case before:
				p.Set(x, y, colors.DiffRemoved)
			default:
				p.Set(x, y, colors.DiffStayOff)
			}
		}
	}
	return p
}
