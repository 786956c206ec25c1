package markers

import (
	"cmp"
	"slices"

	"github.com/ridgelab/fpview/pkg/artifacts"
	"github.com/ridgelab/fpview/pkg/colors"
	"github.com/ridgelab/fpview/pkg/overlay"
)

const (
	edgeSymmetricalWidth = 1.2
	edgeOneSidedWidth    = 0.8
	edgeIndexedWidth     = 0.6
)

// edgeShapeMarkers draws one edge as two half segments meeting at the
// midpoint, each colored by its own endpoint's local angle so the edge's
// directionality stays visible.
func edgeShapeMarkers(shape artifacts.EdgeShape, reference, neighbor artifacts.Minutia, width float64) []overlay.Marker {
	rx, ry := minutiaCenter(reference)
	nx, ny := minutiaCenter(neighbor)
	mx, my := rx+(nx-rx)/2, ry+(ny-ry)/2
	return []overlay.Marker{
		overlay.Line{
			X1: rx, Y1: ry, X2: mx, Y2: my,
			Stroke:      colors.EdgeShape(shape.Length, shape.ReferenceAngle),
			StrokeWidth: width,
		},
		overlay.Line{
			X1: nx, Y1: ny, X2: mx, Y2: my,
			Stroke:      colors.EdgeShape(shape.Length, shape.NeighborAngle),
			StrokeWidth: width,
		},
	}
}

// NeighborEdges draws a template's nearest-neighbor edge table. Edges are
// drawn in non-increasing length order so short, dense edges are not
// obscured by long ones; edges listed by both endpoints get a wider stroke.
// Minutia position dots go on top.
func NeighborEdges(edges [][]artifacts.NeighborEdge, t *artifacts.Template) []overlay.Marker {
	type edgeLine struct {
		reference int
		edge      artifacts.NeighborEdge
	}
	var sorted []edgeLine
	for reference, row := range edges {
		for _, edge := range row {
			sorted = append(sorted, edgeLine{reference: reference, edge: edge})
		}
	}
	slices.SortFunc(sorted, func(a, b edgeLine) int {
		return cmp.Compare(b.edge.Length, a.edge.Length)
	})

	var result []overlay.Marker
	for _, line := range sorted {
		width := edgeOneSidedWidth
		if slices.ContainsFunc(edges[line.edge.Neighbor], func(e artifacts.NeighborEdge) bool {
			return e.Neighbor == line.reference
		}) {
			width = edgeSymmetricalWidth
		}
		result = append(result, edgeShapeMarkers(line.edge.EdgeShape,
			t.Minutiae[line.reference], t.Minutiae[line.edge.Neighbor], width)...)
	}
	return append(result, MinutiaPositions(t)...)
}

// HashEdges draws the matcher's indexed edge hash with the same visual
// treatment, restricted to edges whose reference index is below the neighbor
// index so each undirected edge appears once.
func HashEdges(entries []artifacts.HashEntry, t *artifacts.Template) []overlay.Marker {
	var edges []artifacts.IndexedEdge
	for _, entry := range entries {
		edges = append(edges, entry.Edges...)
	}
	slices.SortFunc(edges, func(a, b artifacts.IndexedEdge) int {
		return cmp.Compare(b.Length, a.Length)
	})

	var result []overlay.Marker
	for _, edge := range edges {
		if edge.Reference < edge.Neighbor {
			result = append(result, edgeShapeMarkers(edge.EdgeShape,
				t.Minutiae[edge.Reference], t.Minutiae[edge.Neighbor], edgeIndexedWidth)...)
		}
	}
	return append(result, MinutiaPositions(t)...)
}
