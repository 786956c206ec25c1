package overlay

// SplitGutter is the horizontal gap between the two halves of a split view.
const SplitGutter = 20

// Split lays two independent canvases side by side. Markers are placed in
// the shared coordinate space; the mapping functions translate each half's
// local coordinates, so a single line can connect points in both halves.
type Split struct {
	leftWidth   int
	leftHeight  int
	rightWidth  int
	rightHeight int
	markers     []Marker
}

// NewSplit creates a split view from the two halves' natural sizes.
func NewSplit(leftWidth, leftHeight, rightWidth, rightHeight int) *Split {
	return &Split{
		leftWidth:   leftWidth,
		leftHeight:  leftHeight,
		rightWidth:  rightWidth,
		rightHeight: rightHeight,
	}
}

// LeftX maps a left-local x coordinate into the shared space.
func (s *Split) LeftX(x float64) float64 { return x }

// LeftY maps a left-local y coordinate into the shared space.
func (s *Split) LeftY(y float64) float64 { return y }

// RightX maps a right-local x coordinate into the shared space.
func (s *Split) RightX(x float64) float64 {
	return x + float64(s.leftWidth+SplitGutter)
}

// RightY maps a right-local y coordinate into the shared space.
func (s *Split) RightY(y float64) float64 { return y }

// Add appends markers, already mapped into the shared space.
func (s *Split) Add(markers ...Marker) *Split {
	s.markers = append(s.markers, markers...)
	return s
}

// Buffer returns the composite document covering both halves and the gutter.
func (s *Split) Buffer() *Buffer {
	width := s.leftWidth + SplitGutter + s.rightWidth
	height := max(s.leftHeight, s.rightHeight)
	return New(width, height).Add(s.markers...)
}
