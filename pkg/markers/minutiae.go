package markers

import (
	"math"

	"github.com/ridgelab/fpview/pkg/artifacts"
	"github.com/ridgelab/fpview/pkg/colors"
	"github.com/ridgelab/fpview/pkg/overlay"
)

const (
	minutiaRadius    = 3.5
	minutiaTickEnd   = 10
	positionRadius   = 2.5
	degreesPerRadian = 180 / math.Pi
)

func minutiaCenter(m artifacts.Minutia) (float64, float64) {
	return float64(m.Position.X) + 0.5, float64(m.Position.Y) + 0.5
}

func minutiaMarker(m artifacts.Minutia, color string) overlay.Marker {
	cx, cy := minutiaCenter(m)
	return overlay.Rotated{
		X: cx, Y: cy,
		Degrees: m.Direction * degreesPerRadian,
		Markers: []overlay.Marker{
			overlay.Circle{R: minutiaRadius, Stroke: color},
			overlay.Line{X1: minutiaRadius, Y1: 0, X2: minutiaTickEnd, Y2: 0, Stroke: color},
		},
	}
}

// MarkMinutia draws the T-shaped minutia marker: a circle at the position
// with a radial tick rotated to the direction angle, colored by type.
func MarkMinutia(m artifacts.Minutia) overlay.Marker {
	if m.Type == artifacts.Ending {
		return minutiaMarker(m, colors.Ending)
	}
	return minutiaMarker(m, colors.Bifurcation)
}

// MarkTemplate marks every minutia of a template.
func MarkTemplate(t *artifacts.Template) []overlay.Marker {
	result := make([]overlay.Marker, 0, len(t.Minutiae))
	for _, m := range t.Minutiae {
		result = append(result, MarkMinutia(m))
	}
	return result
}

// TemplateDiff contrasts two template versions: minutiae of previous whose
// position is absent from next are marked removed, then all of next is
// rendered normally on top. Position equality determines correspondence.
func TemplateDiff(previous, next *artifacts.Template) []overlay.Marker {
	remaining := next.Positions()
	var result []overlay.Marker
	for _, m := range previous.Minutiae {
		if !remaining[m.Position] {
			result = append(result, minutiaMarker(m, colors.MinutiaRemoved))
		}
	}
	return append(result, MarkTemplate(next)...)
}

// PositionDot marks just the minutia position, used above dense edge layers
// where the full T marker would be noise.
func PositionDot(m artifacts.Minutia) overlay.Circle {
	cx, cy := minutiaCenter(m)
	return overlay.Circle{CX: cx, CY: cy, R: positionRadius, Fill: colors.PositionDot}
}

// MinutiaPositions marks every minutia position of a template with a dot.
func MinutiaPositions(t *artifacts.Template) []overlay.Marker {
	result := make([]overlay.Marker, 0, len(t.Minutiae))
	for _, m := range t.Minutiae {
		result = append(result, PositionDot(m))
	}
	return result
}
