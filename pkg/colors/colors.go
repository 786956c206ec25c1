package colors

import (
	"fmt"
	"math"
)

// Raster palettes. Alpha is meaningful: translucent layers are composited by
// the viewer, not by this package.
const (
	Black            uint32 = 0xff000000
	White            uint32 = 0xffffffff
	Transparent      uint32 = 0x00000000
	TransparentWhite uint32 = 0x00ffffff // renders correctly as both JPEG and PNG

	// Translucent mask pair (yellow over cyan).
	MaskForeground uint32 = 0x20ffff00
	MaskBackground uint32 = 0x2000ffff

	// Highlight overlay for binary layers composited over a background.
	OverlayHighlight uint32 = 0x9000ffff

	// Skeleton shadow drawn under minutia markers.
	SkeletonShadow uint32 = 0xffff0000

	// Four-color diff palette: every on/off transition gets its own color.
	DiffStayOn  uint32 = 0xff000000
	DiffStayOff uint32 = 0xffffffff
	DiffAdded   uint32 = 0xff00ff00
	DiffRemoved uint32 = 0xffff0000
)

// Alpha levels for orientation rasters.
const (
	PaintAlpha   uint32 = 0xff // standalone opaque layer
	OverlayAlpha uint32 = 0x60 // semi-transparent layer over a background
)

// Vector marker colors.
const (
	WeightStroke = "#080"
	WeightFill   = "#0f0"
	GridStroke   = "#00c"

	BlockOrientationStroke = "red"

	HistogramFill = "#080"

	SkeletonTerminal = "blue" // exactly one incident ridge
	SkeletonJunction = "cyan"
	MinutiaAdded     = "green"
	MinutiaRemoved   = "red"

	Ending      = "blue"
	Bifurcation = "green"

	PositionDot = "red"

	SupportEdge = "yellow"
	TreeEdge    = "green"
	RootFill    = "blue"
	RootLine    = "green"
)

// edgeReferenceLength log-compresses edge lengths: an edge of this length
// reaches the maximum brightness reduction.
const edgeReferenceLength = 300

// Normalize maps value into [0,1] using the field's observed range.
// A degenerate range (max <= min) yields the fixed midpoint 0.5 instead of
// propagating NaN.
func Normalize(value, min, max float64) float64 {
	if max <= min {
		return 0.5
	}
	n := (value - min) / (max - min)
	if n < 0 {
		return 0
	}
	if n > 1 {
		return 1
	}
	return n
}

// Strength maps a vector magnitude to [0,1] with log compression, so
// weak/noisy vectors stay visible instead of vanishing next to strong ones.
func Strength(magnitude, max float64) float64 {
	if max <= 0 {
		return 0
	}
	return math.Min(1, math.Log1p(magnitude)/math.Log1p(max))
}

// Orientation encodes a ridge orientation (an angle modulo π) as a hue over
// the full hue circle, so an angle and its opposite direction get the same
// color. Strength in [0,1] drives saturation: weak vectors desaturate toward
// white. Alpha selects paint vs overlay mode.
func Orientation(theta, strength float64, alpha uint32) uint32 {
	hue := math.Mod(theta, math.Pi)
	if hue < 0 {
		hue += math.Pi
	}
	c := HSB(hue/math.Pi, 0.2+0.8*strength, 1)
	return c&0x00ffffff | alpha<<24
}

// EdgeShape encodes one half of an edge segment as a CSS hex color: the
// endpoint's local angle picks the hue and the log-compressed edge length
// darkens the color, making long edges distinguishable from short ones.
func EdgeShape(length, angle float64) string {
	stretch := math.Min(1, math.Log1p(length)/math.Log1p(edgeReferenceLength))
	a := math.Mod(angle, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	c := HSB(a/(2*math.Pi), 1, 1-0.5*stretch)
	return fmt.Sprintf("#%06x", c&0xffffff)
}

// HSB converts hue, saturation and brightness in [0,1] to an opaque ARGB
// value. Hue wraps around the color circle.
func HSB(hue, saturation, brightness float64) uint32 {
	var r, g, b float64
	if saturation == 0 {
		r, g, b = brightness, brightness, brightness
	} else {
		h := (hue - math.Floor(hue)) * 6
		f := h - math.Floor(h)
		p := brightness * (1 - saturation)
		q := brightness * (1 - saturation*f)
		t := brightness * (1 - saturation*(1-f))
		switch int(h) {
		case 0:
			r, g, b = brightness, t, p
		case 1:
			r, g, b = q, brightness, p
		case 2:
			r, g, b = p, brightness, t
		case 3:
			r, g, b = p, q, brightness
		case 4:
			r, g, b = t, p, brightness
		default:
			r, g, b = brightness, p, q
		}
	}
	return 0xff000000 | channel(r)<<16 | channel(g)<<8 | channel(b)
}

func channel(v float64) uint32 {
	return uint32(v*255 + 0.5)
}
