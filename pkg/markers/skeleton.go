package markers

import (
	"github.com/ridgelab/fpview/pkg/artifacts"
	"github.com/ridgelab/fpview/pkg/colors"
	"github.com/ridgelab/fpview/pkg/overlay"
	"github.com/ridgelab/fpview/pkg/pixmap"
)

const (
	skeletonMinutiaRadius = 4
	skeletonMinutiaWidth  = 0.7
)

// SkeletonShadow paints the pixels belonging to the skeleton over a
// transparent background.
func SkeletonShadow(s *artifacts.SkeletonGraph) *pixmap.Pixmap {
	return PaintBits(s.Shadow(), colors.SkeletonShadow, colors.Transparent)
}

func skeletonMinutia(at artifacts.Point, color string) overlay.Circle {
	return overlay.Circle{
		CX: float64(at.X) + 0.5, CY: float64(at.Y) + 0.5,
		R:           skeletonMinutiaRadius,
		Stroke:      color,
		StrokeWidth: skeletonMinutiaWidth,
	}
}

func skeletonMinutiaColor(at artifacts.Point, counts map[artifacts.Point]int) string {
	if counts[at] == 1 {
		return colors.SkeletonTerminal
	}
	return colors.SkeletonJunction
}

// Skeleton composes a skeleton graph: the shadow mask embedded as a lossless
// background with one circular marker per minutia node on top, colored by
// the number of incident ridges.
func Skeleton(s *artifacts.SkeletonGraph) []overlay.Marker {
	result := []overlay.Marker{overlay.PNG(SkeletonShadow(s))}
	counts := s.RidgeCounts()
	for _, m := range s.Minutiae {
		result = append(result, skeletonMinutia(m, skeletonMinutiaColor(m, counts)))
	}
	return result
}

// SkeletonDiff contrasts two skeleton versions: the pixel-level shadow diff
// as background, minutiae present only in previous marked removed, present
// only in next marked added, and minutiae in both rendered as usual.
// Correspondence is by position.
func SkeletonDiff(previous, next *artifacts.SkeletonGraph) []overlay.Marker {
	result := []overlay.Marker{overlay.PNG(DiffBits(previous.Shadow(), next.Shadow()))}

	counts := next.RidgeCounts()
	before := positionSet(previous.Minutiae)
	after := positionSet(next.Minutiae)

	for _, m := range previous.Minutiae {
		if !after[m] {
			result = append(result, skeletonMinutia(m, colors.MinutiaRemoved))
		}
	}
	for _, m := range next.Minutiae {
		if !before[m] {
			result = append(result, skeletonMinutia(m, colors.MinutiaAdded))
		} else {
			result = append(result, skeletonMinutia(m, skeletonMinutiaColor(m, counts)))
		}
	}
	return result
}

func positionSet(points []artifacts.Point) map[artifacts.Point]bool {
	set := make(map[artifacts.Point]bool, len(points))
	for _, p := range points {
		set[p] = true
	}
	return set
}
