package overlay

import (
	"bytes"
	"fmt"
)

// Buffer accumulates markers over a canvas with the raster's natural pixel
// dimensions. No operation fails: an absent background simply leaves the
// document vector-only.
type Buffer struct {
	width   int
	height  int
	padding float64
	markers []Marker
}

// New creates a buffer for a canvas of the given natural size.
func New(width, height int) *Buffer {
	return &Buffer{width: width, height: height}
}

// Padding sets the uniform padding around the natural bounds. Marker
// coordinates are unaffected; only the visible canvas grows.
func (b *Buffer) Padding(padding float64) *Buffer {
	b.padding = padding
	return b
}

// Add appends markers above everything added before.
func (b *Buffer) Add(markers ...Marker) *Buffer {
	b.markers = append(b.markers, markers...)
	return b
}

// Size returns the natural canvas dimensions.
func (b *Buffer) Size() (width, height int) {
	return b.width, b.height
}

// SVG renders the composite document: an svg element whose viewBox is the
// natural bounds expanded by the padding, containing all markers in
// insertion order.
func (b *Buffer) SVG() []byte {
	var buf bytes.Buffer
	w := float64(b.width) + 2*b.padding
	h := float64(b.height) + 2*b.padding
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%s %s %s %s" width="%s" height="%s">`+"\n",
		ftoa(-b.padding), ftoa(-b.padding), ftoa(w), ftoa(h), ftoa(w), ftoa(h))
	for _, m := range b.markers {
		m.SVG(&buf)
	}
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}
