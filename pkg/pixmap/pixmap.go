package pixmap

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"
)

// jpegQuality is used for all JPEG encoding. Backgrounds tolerate
// recompression; exact pixel fidelity goes through PNG instead.
const jpegQuality = 90

// Pixmap is a width×height buffer of 32-bit ARGB pixels.
//
// Coordinates are 0-indexed with x in [0,Width) and y in [0,Height).
// Get and Set are unchecked in the hot path: out-of-range access is a
// programming error, not a recoverable condition.
type Pixmap struct {
	Width  int
	Height int
	pixels []uint32
}

// New allocates a pixmap of the given dimensions. Pixels start out
// undefined; callers must Fill or Set every pixel before encoding.
func New(width, height int) *Pixmap {
	return &Pixmap{
		Width:  width,
		Height: height,
		pixels: make([]uint32, width*height),
	}
}

// Get returns the ARGB value at (x,y).
func (p *Pixmap) Get(x, y int) uint32 {
	return p.pixels[p.Width*y+x]
}

// Set writes the ARGB value at (x,y).
func (p *Pixmap) Set(x, y int, color uint32) {
	p.pixels[p.Width*y+x] = color
}

// Fill sets every pixel to color. Mask renderers fill the background color
// first and then overwrite only the foreground pixels.
func (p *Pixmap) Fill(color uint32) {
	for i := range p.pixels {
		p.pixels[i] = color
	}
}

// Gray returns an opaque gray ARGB value for a brightness level in [0,255].
func Gray(brightness int) uint32 {
	b := uint32(brightness)
	return 0xff000000 | b<<16 | b<<8 | b
}

// Image copies the buffer into a non-premultiplied RGBA image. NRGBA keeps
// the exact channel values, so PNG round-trips are lossless.
func (p *Pixmap) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.Width, p.Height))
	for i, c := range p.pixels {
		img.Pix[4*i+0] = uint8(c >> 16)
		img.Pix[4*i+1] = uint8(c >> 8)
		img.Pix[4*i+2] = uint8(c)
		img.Pix[4*i+3] = uint8(c >> 24)
	}
	return img
}

// PNG encodes the buffer losslessly.
func (p *Pixmap) PNG() []byte {
	var buf bytes.Buffer
	// Encoding into an in-memory buffer cannot fail.
	_ = png.Encode(&buf, p.Image())
	return buf.Bytes()
}

// JPEG encodes the buffer lossily. JPEG has no alpha channel, so the buffer
// is flattened onto white first; translucent layers must use PNG.
func (p *Pixmap) JPEG() []byte {
	flat := image.NewNRGBA(image.Rect(0, 0, p.Width, p.Height))
	for i, c := range p.pixels {
		a := c >> 24
		flat.Pix[4*i+0] = flatten(c>>16&0xff, a)
		flat.Pix[4*i+1] = flatten(c>>8&0xff, a)
		flat.Pix[4*i+2] = flatten(c&0xff, a)
		flat.Pix[4*i+3] = 0xff
	}
	var buf bytes.Buffer
	_ = jpeg.Encode(&buf, flat, &jpeg.Options{Quality: jpegQuality})
	return buf.Bytes()
}

// flatten composites a single channel over a white background.
func flatten(channel, alpha uint32) uint8 {
	return uint8((channel*alpha + 0xff*(0xff-alpha)) / 0xff)
}

// FromImage copies a decoded image into a pixmap. NRGBA images, the form
// png.Decode produces for the buffers written by PNG, keep their exact
// channel values, including the RGB of fully transparent pixels. Other image
// types go through the premultiplied color interface, which cannot preserve
// color under zero alpha.
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	p := New(bounds.Dx(), bounds.Dy())
	if nrgba, ok := img.(*image.NRGBA); ok {
		for y := 0; y < p.Height; y++ {
			row := nrgba.Pix[nrgba.PixOffset(bounds.Min.X, bounds.Min.Y+y):]
			for x := 0; x < p.Width; x++ {
				r := uint32(row[4*x+0])
				g := uint32(row[4*x+1])
				b := uint32(row[4*x+2])
				a := uint32(row[4*x+3])
				p.Set(x, y, a<<24|r<<16|g<<8|b)
			}
		}
		return p
	}
	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			r, g, b, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			if a == 0 {
				p.Set(x, y, 0)
				continue
			}
			// RGBA() returns premultiplied 16-bit channels.
			ar := (r * 0xffff / a) >> 8
			ag := (g * 0xffff / a) >> 8
			ab := (b * 0xffff / a) >> 8
			p.Set(x, y, a>>8<<24|ar<<16|ag<<8|ab)
		}
	}
	return p
}
