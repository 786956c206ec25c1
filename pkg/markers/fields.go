package markers

import (
	"github.com/ridgelab/fpview/pkg/artifacts"
	"github.com/ridgelab/fpview/pkg/colors"
	"github.com/ridgelab/fpview/pkg/pixmap"
)

// PaintMatrix renders a scalar field as a grayscale pixmap normalized by the
// field's observed range.
func PaintMatrix(m *artifacts.Matrix) *pixmap.Pixmap {
	min, max := m.Range()
	p := pixmap.New(m.Width, m.Height)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			p.Set(x, y, pixmap.Gray(int(255*colors.Normalize(m.At(x, y), min, max))))
		}
	}
	return p
}

// PaintOrientation renders a pixelwise orientation field as an opaque
// HSB-encoded pixmap.
func PaintOrientation(field *artifacts.PointMatrix) *pixmap.Pixmap {
	return paintOrientation(field, colors.PaintAlpha)
}

// OverlayOrientation renders the same encoding semi-transparently for
// compositing over a background.
func OverlayOrientation(field *artifacts.PointMatrix) *pixmap.Pixmap {
	return paintOrientation(field, colors.OverlayAlpha)
}

func paintOrientation(field *artifacts.PointMatrix, alpha uint32) *pixmap.Pixmap {
	p := pixmap.New(field.Width, field.Height)
	// Transparent white keeps the layer correct as both JPEG and PNG.
	p.Fill(colors.TransparentWhite)
	max := field.MaxLength()
	for y := 0; y < field.Height; y++ {
		for x := 0; x < field.Width; x++ {
			v := field.At(x, y)
			if v.X == 0 && v.Y == 0 {
				continue
			}
			// The pipeline stores orientations as doubled-angle vectors.
			theta := v.Angle() / 2
			strength := colors.Strength(v.Length(), max)
			p.Set(x, y, colors.Orientation(theta, strength, alpha))
		}
	}
	return p
}
