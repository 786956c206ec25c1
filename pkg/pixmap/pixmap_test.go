package pixmap

import (
	"bytes"
	"errors"
	"image/png"
	"testing"
)

func TestGetSet(t *testing.T) {
	p := New(3, 2)
	p.Fill(0xff000000)
	p.Set(2, 1, 0x80ff00ff)

	if got := p.Get(2, 1); got != 0x80ff00ff {
		t.Errorf("Get(2,1) = %#x, want %#x", got, 0x80ff00ff)
	}
	if got := p.Get(0, 0); got != 0xff000000 {
		t.Errorf("Get(0,0) = %#x, want %#x", got, 0xff000000)
	}
}

func TestFill(t *testing.T) {
	p := New(4, 4)
	p.Fill(0x2000ffff)
	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			if got := p.Get(x, y); got != 0x2000ffff {
				t.Fatalf("Get(%d,%d) = %#x, want %#x", x, y, got, 0x2000ffff)
			}
		}
	}
}

func TestGray(t *testing.T) {
	tests := []struct {
		name       string
		brightness int
		want       uint32
	}{
		{name: "black", brightness: 0, want: 0xff000000},
		{name: "white", brightness: 255, want: 0xffffffff},
		{name: "mid", brightness: 0x80, want: 0xff808080},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Gray(tt.brightness); got != tt.want {
				t.Errorf("Gray(%d) = %#x, want %#x", tt.brightness, got, tt.want)
			}
		})
	}
}

func TestPNGRoundTrip(t *testing.T) {
	p := New(6, 3)
	colors := []uint32{0xff000000, 0xffffffff, 0x00ffffff, 0x9000ffff, 0x20ffff00, 0x01010101}
	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			p.Set(x, y, colors[(y*p.Width+x)%len(colors)])
		}
	}

	img, err := png.Decode(bytes.NewReader(p.PNG()))
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	back := FromImage(img)

	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			want := p.Get(x, y)
			if got := back.Get(x, y); got != want {
				t.Errorf("round-trip (%d,%d) = %#x, want %#x", x, y, got, want)
			}
		}
	}
}

func TestJPEGEncodes(t *testing.T) {
	p := New(8, 8)
	p.Fill(Gray(128))
	data := p.JPEG()
	if mime, err := Sniff(data); err != nil || mime != MimeJPEG {
		t.Errorf("Sniff(JPEG()) = %q, %v; want %q, nil", mime, err, MimeJPEG)
	}
}

func TestSniff(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want string
	}{
		{name: "png", data: []byte("\x89PNG\r\n\x1a\nrest"), want: MimePNG},
		{name: "jpeg", data: []byte{0xff, 0xd8, 0xff, 0xe0}, want: MimeJPEG},
		{name: "tiff little endian", data: []byte("II\x2a\x00"), want: MimeTIFF},
		{name: "tiff big endian", data: []byte("MM\x00\x2a"), want: MimeTIFF},
		{name: "svg with prologue", data: []byte("<?xml version=\"1.0\"?><svg/>"), want: MimeSVG},
		{name: "svg bare root", data: []byte("  <svg xmlns=\"...\">"), want: MimeSVG},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Sniff(tt.data)
			if err != nil {
				t.Fatalf("Sniff: %v", err)
			}
			if got != tt.want {
				t.Errorf("Sniff = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSniffUnsupported(t *testing.T) {
	if _, err := Sniff([]byte("BM6\x00\x00")); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Sniff(bmp) error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestDecodeSVGRejected(t *testing.T) {
	if _, err := Decode([]byte("<svg/>")); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Decode(svg) error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestDecodePNG(t *testing.T) {
	p := New(2, 2)
	p.Fill(0xff102030)
	back, err := Decode(p.PNG())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if back.Width != 2 || back.Height != 2 {
		t.Fatalf("Decode size = %dx%d, want 2x2", back.Width, back.Height)
	}
	if got := back.Get(1, 1); got != 0xff102030 {
		t.Errorf("Decode pixel = %#x, want %#x", got, 0xff102030)
	}
}
