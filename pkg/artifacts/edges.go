package artifacts

// EdgeShape describes the geometric relationship between two minutiae: the
// edge length and the edge's angle relative to each endpoint's direction.
type EdgeShape struct {
	Length         float64 `json:"length"`
	ReferenceAngle float64 `json:"referenceAngle"`
	NeighborAngle  float64 `json:"neighborAngle"`
}

// NeighborEdge is one row of a minutia's nearest-neighbor table. The
// reference minutia is implied by the row position in the outer table.
type NeighborEdge struct {
	EdgeShape
	Neighbor int `json:"neighbor"`
}

// IndexedEdge is an edge in the matcher's hashed lookup structure, carrying
// both endpoint indices explicitly.
type IndexedEdge struct {
	EdgeShape
	Reference int `json:"reference"`
	Neighbor  int `json:"neighbor"`
}

// HashEntry is one bucket of the edge hash: all indexed edges sharing a
// quantized shape.
type HashEntry struct {
	Hash  int           `json:"hash"`
	Edges []IndexedEdge `json:"edges"`
}
