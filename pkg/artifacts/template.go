package artifacts

// MinutiaType distinguishes the two ridge feature kinds.
type MinutiaType string

const (
	Ending      MinutiaType = "ending"
	Bifurcation MinutiaType = "bifurcation"
)

// Minutia is a distinguished ridge feature: a position, a direction angle in
// radians, and the feature kind.
type Minutia struct {
	Position  Point       `json:"position"`
	Direction float64     `json:"direction"`
	Type      MinutiaType `json:"type"`
}

// Template is the ordered minutia sequence exchanged between matching-stage
// renderers. Identity of a minutia across template versions is determined by
// position, not by index or object identity.
type Template struct {
	Size     Point     `json:"size"`
	Minutiae []Minutia `json:"minutiae"`
}

// Positions returns the set of minutia positions, used by diff renderers to
// establish correspondence between template versions.
func (t *Template) Positions() map[Point]bool {
	positions := make(map[Point]bool, len(t.Minutiae))
	for _, m := range t.Minutiae {
		positions[m.Position] = true
	}
	return positions
}
