package markers

import (
	"math"

	"github.com/ridgelab/fpview/pkg/artifacts"
	"github.com/ridgelab/fpview/pkg/colors"
	"github.com/ridgelab/fpview/pkg/overlay"
)

const (
	weightStrokeWidth = 0.3
	weightFillOpacity = 0.2

	gridPrimaryWidth   = 0.4
	gridSecondaryWidth = 0.15

	histogramDisplayBins = 16
	histogramFillOpacity = 0.5
)

// BlockWeight marks one block with a circle whose area scales linearly with
// the normalized weight: radius is sqrt(weight) times the block radius.
func BlockWeight(weight float64, block artifacts.Rect) overlay.Circle {
	cx, cy := block.Center()
	return overlay.Circle{
		CX: cx, CY: cy,
		R:           math.Sqrt(weight) * block.Radius(),
		Stroke:      colors.WeightStroke,
		StrokeWidth: weightStrokeWidth,
		Fill:        colors.WeightFill,
		FillOpacity: weightFillOpacity,
	}
}

// BlockWeights marks every primary block with a weight circle, normalizing
// the scalar field by its observed range.
func BlockWeights(m *artifacts.Matrix, blocks *artifacts.BlockMap) []overlay.Marker {
	min, max := m.Range()
	var result []overlay.Marker
	for by := 0; by < blocks.Primary.Rows(); by++ {
		for bx := 0; bx < blocks.Primary.Cols(); bx++ {
			weight := colors.Normalize(m.At(bx, by), min, max)
			result = append(result, BlockWeight(weight, blocks.Primary.Block(bx, by)))
		}
	}
	return result
}

// BlockGridLines draws the two tilings as superimposed line grids: the
// alternate (secondary) tiling first with a thin stroke, then the current
// (primary) tiling emphasized on top.
func BlockGridLines(blocks *artifacts.BlockMap) []overlay.Marker {
	result := gridLines(&blocks.Secondary, blocks.Pixels, gridSecondaryWidth)
	return append(result, gridLines(&blocks.Primary, blocks.Pixels, gridPrimaryWidth)...)
}

func gridLines(grid *artifacts.BlockGrid, pixels artifacts.Point, width float64) []overlay.Marker {
	var result []overlay.Marker
	for _, x := range grid.X {
		result = append(result, overlay.Line{
			X1: float64(x), Y1: 0, X2: float64(x), Y2: float64(pixels.Y),
			Stroke: colors.GridStroke, StrokeWidth: width,
		})
	}
	for _, y := range grid.Y {
		result = append(result, overlay.Line{
			X1: 0, Y1: float64(y), X2: float64(pixels.X), Y2: float64(y),
			Stroke: colors.GridStroke, StrokeWidth: width,
		})
	}
	return result
}

// BlockOrientations marks each primary block with a line through the block
// center along the local ridge orientation. Blocks where the mask is false
// are skipped; a nil mask marks every block.
func BlockOrientations(field *artifacts.PointMatrix, blocks *artifacts.BlockMap, mask *artifacts.BitMatrix) []overlay.Marker {
	var result []overlay.Marker
	for by := 0; by < blocks.Primary.Rows(); by++ {
		for bx := 0; bx < blocks.Primary.Cols(); bx++ {
			if mask != nil && !mask.At(bx, by) {
				continue
			}
			block := blocks.Primary.Block(bx, by)
			cx, cy := block.Center()
			theta := field.At(bx, by).Angle() / 2
			arm := block.Radius()
			dx, dy := arm*math.Cos(theta), arm*math.Sin(theta)
			result = append(result, overlay.Line{
				X1: cx + dx, Y1: cy + dy,
				X2: cx - dx, Y2: cy - dy,
				Stroke: colors.BlockOrientationStroke,
			})
		}
	}
	return result
}

// BlockHistograms draws each block's histogram as a filled polygon
// silhouette. The fixed-bin histogram is resampled to a smaller display
// resolution and bar heights are log-compressed against the block total so
// one dominant bin cannot hide the rest.
func BlockHistograms(h *artifacts.HistogramCube, blocks *artifacts.BlockMap) []overlay.Marker {
	var result []overlay.Marker
	for by := 0; by < blocks.Primary.Rows(); by++ {
		for bx := 0; bx < blocks.Primary.Cols(); bx++ {
			total := h.Sum(bx, by)
			if total == 0 {
				continue
			}
			block := blocks.Primary.Block(bx, by)
			result = append(result, histogramSilhouette(h, bx, by, total, block))
		}
	}
	return result
}

func histogramSilhouette(h *artifacts.HistogramCube, bx, by, total int, block artifacts.Rect) overlay.Polygon {
	bins := resampleBins(h, bx, by)
	step := float64(block.Width) / float64(len(bins))
	baseline := float64(block.Y + block.Height)

	points := []overlay.Pt{{X: float64(block.X), Y: baseline}}
	for i, count := range bins {
		height := math.Log1p(float64(count)) / math.Log1p(float64(total)) * float64(block.Height)
		points = append(points, overlay.Pt{
			X: float64(block.X) + (float64(i)+0.5)*step,
			Y: baseline - height,
		})
	}
	points = append(points, overlay.Pt{X: float64(block.X + block.Width), Y: baseline})

	return overlay.Polygon{
		Points:      points,
		Fill:        colors.HistogramFill,
		FillOpacity: histogramFillOpacity,
	}
}

// resampleBins folds the input histogram into histogramDisplayBins groups.
// Histograms narrower than the display resolution pass through unchanged.
func resampleBins(h *artifacts.HistogramCube, bx, by int) []int {
	if h.Bins <= histogramDisplayBins {
		bins := make([]int, h.Bins)
		for i := range bins {
			bins[i] = h.At(bx, by, i)
		}
		return bins
	}
	bins := make([]int, histogramDisplayBins)
	for i := 0; i < h.Bins; i++ {
		bins[i*histogramDisplayBins/h.Bins] += h.At(bx, by, i)
	}
	return bins
}
