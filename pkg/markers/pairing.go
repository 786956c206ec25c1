package markers

import (
	"github.com/ridgelab/fpview/pkg/artifacts"
	"github.com/ridgelab/fpview/pkg/colors"
	"github.com/ridgelab/fpview/pkg/overlay"
)

const (
	treeEdgeWidth = 2
	rootRadius    = 3.5
	rootLineWidth = 0.4
)

func pairingEdge(edge artifacts.PairingEdge, side artifacts.Side, t *artifacts.Template, stroke string, width float64) overlay.Line {
	fx, fy := minutiaCenter(t.Minutiae[edge.From.SideOf(side)])
	tx, ty := minutiaCenter(t.Minutiae[edge.To.SideOf(side)])
	return overlay.Line{X1: fx, Y1: fy, X2: tx, Y2: ty, Stroke: stroke, StrokeWidth: width}
}

// Pairing draws one side of a matching result. Draw order encodes visual
// priority: low-emphasis support edges first, the tree edges forming the
// matching backbone on top, then position dots, then the root marker.
func Pairing(p *artifacts.PairingGraph, side artifacts.Side, t *artifacts.Template) []overlay.Marker {
	var result []overlay.Marker
	for _, edge := range p.Support {
		result = append(result, pairingEdge(edge, side, t, colors.SupportEdge, 0))
	}
	for _, edge := range p.Tree {
		result = append(result, pairingEdge(edge, side, t, colors.TreeEdge, treeEdgeWidth))
	}
	result = append(result, MinutiaPositions(t)...)

	root := t.Minutiae[p.Root.SideOf(side)]
	cx, cy := minutiaCenter(root)
	return append(result, overlay.Circle{CX: cx, CY: cy, R: rootRadius, Fill: colors.RootFill})
}

// Roots draws candidate root pairs as correspondence lines between the probe
// and candidate templates laid out side by side.
func Roots(pairs []artifacts.MinutiaPair, probe, candidate *artifacts.Template) *overlay.Buffer {
	split := overlay.NewSplit(probe.Size.X, probe.Size.Y, candidate.Size.X, candidate.Size.Y)
	for _, pair := range pairs {
		px, py := minutiaCenter(probe.Minutiae[pair.Probe])
		cx, cy := minutiaCenter(candidate.Minutiae[pair.Candidate])
		split.Add(overlay.Line{
			X1: split.LeftX(px), Y1: split.LeftY(py),
			X2: split.RightX(cx), Y2: split.RightY(cy),
			Stroke:      colors.RootLine,
			StrokeWidth: rootLineWidth,
		})
	}
	return split.Buffer()
}
