package overlay

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strconv"

	"github.com/ridgelab/fpview/pkg/pixmap"
)

// Marker is one vector element of an overlay. Markers write themselves as
// SVG fragments; attribute values are produced by the color encoders.
type Marker interface {
	SVG(buf *bytes.Buffer)
}

// Pt is a 2-D point in overlay coordinates.
type Pt struct {
	X, Y float64
}

// Line is a straight stroke between two points.
type Line struct {
	X1, Y1, X2, Y2 float64
	Stroke         string
	StrokeWidth    float64 // 0 keeps the SVG default of 1
	Opacity        float64 // 0 keeps the element fully opaque
}

func (l Line) SVG(buf *bytes.Buffer) {
	fmt.Fprintf(buf, `  <line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s"`,
		ftoa(l.X1), ftoa(l.Y1), ftoa(l.X2), ftoa(l.Y2), l.Stroke)
	if l.StrokeWidth > 0 {
		fmt.Fprintf(buf, ` stroke-width="%s"`, ftoa(l.StrokeWidth))
	}
	if l.Opacity > 0 {
		fmt.Fprintf(buf, ` opacity="%s"`, ftoa(l.Opacity))
	}
	buf.WriteString("/>\n")
}

// Circle is a circular marker. An empty Fill renders as fill="none".
type Circle struct {
	CX, CY, R   float64
	Stroke      string
	StrokeWidth float64
	Fill        string
	FillOpacity float64
}

func (c Circle) SVG(buf *bytes.Buffer) {
	fill := c.Fill
	if fill == "" {
		fill = "none"
	}
	fmt.Fprintf(buf, `  <circle cx="%s" cy="%s" r="%s" fill="%s"`,
		ftoa(c.CX), ftoa(c.CY), ftoa(c.R), fill)
	if c.FillOpacity > 0 {
		fmt.Fprintf(buf, ` fill-opacity="%s"`, ftoa(c.FillOpacity))
	}
	if c.Stroke != "" {
		fmt.Fprintf(buf, ` stroke="%s"`, c.Stroke)
	}
	if c.StrokeWidth > 0 {
		fmt.Fprintf(buf, ` stroke-width="%s"`, ftoa(c.StrokeWidth))
	}
	buf.WriteString("/>\n")
}

// Polygon is a closed filled shape.
type Polygon struct {
	Points      []Pt
	Fill        string
	FillOpacity float64
	Stroke      string
}

func (p Polygon) SVG(buf *bytes.Buffer) {
	buf.WriteString(`  <polygon points="`)
	for i, pt := range p.Points {
		if i > 0 {
			buf.WriteByte(' ')
		}
		fmt.Fprintf(buf, "%s,%s", ftoa(pt.X), ftoa(pt.Y))
	}
	fmt.Fprintf(buf, `" fill="%s"`, p.Fill)
	if p.FillOpacity > 0 {
		fmt.Fprintf(buf, ` fill-opacity="%s"`, ftoa(p.FillOpacity))
	}
	if p.Stroke != "" {
		fmt.Fprintf(buf, ` stroke="%s"`, p.Stroke)
	}
	buf.WriteString("/>\n")
}

// Rotated groups markers under a translate+rotate transform. Child marker
// coordinates are local to the rotated frame; minutia markers use this to
// point their tick along the minutia direction.
type Rotated struct {
	X, Y    float64
	Degrees float64
	Markers []Marker
}

func (r Rotated) SVG(buf *bytes.Buffer) {
	fmt.Fprintf(buf, `  <g transform="translate(%s %s) rotate(%s)">`+"\n",
		ftoa(r.X), ftoa(r.Y), ftoa(r.Degrees))
	for _, m := range r.Markers {
		m.SVG(buf)
	}
	buf.WriteString("  </g>\n")
}

// Raster embeds an encoded image as a base64 data-URI image element sized to
// its natural pixel dimensions.
type Raster struct {
	X, Y   float64
	Width  int
	Height int
	MIME   string
	Data   []byte
}

func (r Raster) SVG(buf *bytes.Buffer) {
	fmt.Fprintf(buf, `  <image x="%s" y="%s" width="%d" height="%d" href="data:%s;base64,%s"/>`+"\n",
		ftoa(r.X), ftoa(r.Y), r.Width, r.Height, r.MIME, base64.StdEncoding.EncodeToString(r.Data))
}

// PNG embeds a pixmap losslessly. Used for masks, diffs and skeletons where
// exact pixel values matter.
func PNG(p *pixmap.Pixmap) Raster {
	return Raster{Width: p.Width, Height: p.Height, MIME: pixmap.MimePNG, Data: p.PNG()}
}

// JPEG embeds a pixmap lossily. Used for photographic backgrounds that
// tolerate recompression.
func JPEG(p *pixmap.Pixmap) Raster {
	return Raster{Width: p.Width, Height: p.Height, MIME: pixmap.MimeJPEG, Data: p.JPEG()}
}

// Embed wraps externally supplied image bytes without re-encoding them. The
// signature must be one of the recognized formats.
func Embed(width, height int, data []byte) (Raster, error) {
	mime, err := pixmap.Sniff(data)
	if err != nil {
		return Raster{}, err
	}
	return Raster{Width: width, Height: height, MIME: mime, Data: data}, nil
}

// ftoa formats a coordinate or attribute value compactly. Negative zero,
// which negating a zero padding produces, renders as plain "0".
func ftoa(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'g', 6, 64)
}
