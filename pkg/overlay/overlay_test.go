package overlay

import (
	"strings"
	"testing"

	"github.com/ridgelab/fpview/pkg/pixmap"
)

func TestBufferViewBoxPadding(t *testing.T) {
	svg := string(New(100, 50).Padding(1).SVG())
	if !strings.Contains(svg, `viewBox="-1 -1 102 52"`) {
		t.Errorf("SVG missing padded viewBox: %s", svg)
	}
}

func TestBufferNoPadding(t *testing.T) {
	svg := string(New(30, 40).SVG())
	if !strings.Contains(svg, `viewBox="0 0 30 40"`) {
		t.Errorf("SVG missing natural viewBox: %s", svg)
	}
	if strings.Contains(svg, "-0") {
		t.Errorf("SVG contains negative zero: %s", svg)
	}
}

func TestFtoaZero(t *testing.T) {
	var zero float64
	if got := ftoa(-zero); got != "0" {
		t.Errorf("ftoa(-0) = %q, want %q", got, "0")
	}
	if got := ftoa(0.5); got != "0.5" {
		t.Errorf("ftoa(0.5) = %q, want %q", got, "0.5")
	}
}

func TestBufferMarkerOrder(t *testing.T) {
	svg := string(New(10, 10).
		Add(Circle{CX: 1, CY: 1, R: 1, Fill: "red"}).
		Add(Line{X1: 0, Y1: 0, X2: 5, Y2: 5, Stroke: "blue"}).
		SVG())
	circle := strings.Index(svg, "<circle")
	line := strings.Index(svg, "<line")
	if circle < 0 || line < 0 {
		t.Fatalf("markers missing from SVG: %s", svg)
	}
	if circle > line {
		t.Error("markers not emitted in insertion order")
	}
}

func TestBufferWithoutBackgroundIsLegal(t *testing.T) {
	svg := string(New(10, 10).Add(Line{X1: 0, Y1: 0, X2: 1, Y2: 1, Stroke: "red"}).SVG())
	if strings.Contains(svg, "<image") {
		t.Error("vector-only document should have no image element")
	}
	if !strings.HasPrefix(svg, "<svg") || !strings.HasSuffix(strings.TrimSpace(svg), "</svg>") {
		t.Errorf("malformed document: %s", svg)
	}
}

func TestRasterEmbedsDataURI(t *testing.T) {
	p := pixmap.New(2, 2)
	p.Fill(0xffffffff)
	var svg strings.Builder
	buf := New(2, 2).Add(PNG(p))
	svg.Write(buf.SVG())
	if !strings.Contains(svg.String(), `href="data:image/png;base64,`) {
		t.Errorf("embedded raster missing PNG data URI: %s", svg.String())
	}
}

func TestEmbedSniffsMIME(t *testing.T) {
	p := pixmap.New(2, 2)
	p.Fill(0xff808080)
	raster, err := Embed(2, 2, p.JPEG())
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	if raster.MIME != pixmap.MimeJPEG {
		t.Errorf("Embed MIME = %q, want %q", raster.MIME, pixmap.MimeJPEG)
	}
}

func TestEmbedRejectsUnknownSignature(t *testing.T) {
	if _, err := Embed(1, 1, []byte("GIF89a")); err == nil {
		t.Error("Embed accepted unknown signature")
	}
}

func TestSplitMapping(t *testing.T) {
	s := NewSplit(100, 100, 100, 100)
	if x, y := s.LeftX(0), s.LeftY(0); x != 0 || y != 0 {
		t.Errorf("left-local origin maps to %v,%v, want 0,0", x, y)
	}
	if x, y := s.RightX(0), s.RightY(0); x != float64(100+SplitGutter) || y != 0 {
		t.Errorf("right-local origin maps to %v,%v, want %d,0", x, y, 100+SplitGutter)
	}
}

func TestSplitBufferSize(t *testing.T) {
	s := NewSplit(100, 80, 60, 120)
	w, h := s.Buffer().Size()
	if w != 100+SplitGutter+60 {
		t.Errorf("split width = %d, want %d", w, 100+SplitGutter+60)
	}
	if h != 120 {
		t.Errorf("split height = %d, want 120", h)
	}
}

func TestRotatedTransform(t *testing.T) {
	var b strings.Builder
	buf := New(20, 20).Add(Rotated{
		X: 5, Y: 6, Degrees: 90,
		Markers: []Marker{Circle{R: 3.5, Stroke: "blue"}},
	})
	b.Write(buf.SVG())
	if !strings.Contains(b.String(), `transform="translate(5 6) rotate(90)"`) {
		t.Errorf("rotated group missing transform: %s", b.String())
	}
}
