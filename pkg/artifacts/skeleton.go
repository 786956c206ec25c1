package artifacts

// Ridge is one directed ridge of a skeleton graph. Start and End index into
// the graph's minutia list; Points traces the ridge pixel by pixel. Each
// undirected ridge appears twice, once per direction, so counting Start
// occurrences yields minutia degree.
type Ridge struct {
	Start  int     `json:"start"`
	End    int     `json:"end"`
	Points []Point `json:"points"`
}

// SkeletonGraph is the thinned, one-pixel-wide ridge structure with explicit
// minutia nodes.
type SkeletonGraph struct {
	Size     Point   `json:"size"`
	Minutiae []Point `json:"minutiae"`
	Ridges   []Ridge `json:"ridges"`
}

// Shadow derives the boolean field marking every pixel that belongs to the
// skeleton: all ridge trace points plus the minutia positions themselves.
func (s *SkeletonGraph) Shadow() *BitMatrix {
	shadow := NewBitMatrix(s.Size.X, s.Size.Y)
	for _, m := range s.Minutiae {
		shadow.Set(m.X, m.Y, true)
	}
	for _, ridge := range s.Ridges {
		for _, p := range ridge.Points {
			shadow.Set(p.X, p.Y, true)
		}
	}
	return shadow
}

// RidgeCounts returns the number of ridges leaving each minutia position.
func (s *SkeletonGraph) RidgeCounts() map[Point]int {
	counts := make(map[Point]int, len(s.Minutiae))
	for _, ridge := range s.Ridges {
		counts[s.Minutiae[ridge.Start]]++
	}
	return counts
}
