package pixmap

import (
	"bytes"
	"errors"
	"fmt"
	"image/jpeg"
	"image/png"

	"golang.org/x/image/tiff"
)

// ErrUnsupportedFormat is returned when image bytes carry none of the
// recognized signatures (PNG, JPEG, TIFF, SVG). There is no silent fallback.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// MIME types reported by Sniff.
const (
	MimePNG  = "image/png"
	MimeJPEG = "image/jpeg"
	MimeTIFF = "image/tiff"
	MimeSVG  = "image/svg+xml"
)

var (
	pngMagic    = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}
	jpegMagic   = []byte{0xff, 0xd8, 0xff}
	tiffLittle  = []byte{'I', 'I', 0x2a, 0x00}
	tiffBig     = []byte{'M', 'M', 0x00, 0x2a}
	xmlPrologue = []byte("<?xml")
	svgTag      = []byte("<svg")
)

// Sniff identifies the MIME type of image bytes from their signature.
func Sniff(data []byte) (string, error) {
	switch {
	case bytes.HasPrefix(data, pngMagic):
		return MimePNG, nil
	case bytes.HasPrefix(data, jpegMagic):
		return MimeJPEG, nil
	case bytes.HasPrefix(data, tiffLittle), bytes.HasPrefix(data, tiffBig):
		return MimeTIFF, nil
	case isSVG(data):
		return MimeSVG, nil
	default:
		return "", fmt.Errorf("%w: unrecognized signature", ErrUnsupportedFormat)
	}
}

// isSVG accepts documents starting with an XML prologue or an <svg> root,
// ignoring a UTF-8 BOM and leading whitespace.
func isSVG(data []byte) bool {
	data = bytes.TrimPrefix(data, []byte{0xef, 0xbb, 0xbf})
	data = bytes.TrimLeft(data, " \t\r\n")
	return bytes.HasPrefix(data, xmlPrologue) || bytes.HasPrefix(data, svgTag)
}

// Decode sniffs the signature and decodes PNG, JPEG or TIFF bytes into a
// pixmap. SVG documents are vector data and cannot be decoded into pixels;
// they are embedded as-is at the overlay level instead.
func Decode(data []byte) (*Pixmap, error) {
	mime, err := Sniff(data)
	if err != nil {
		return nil, err
	}
	switch mime {
	case MimePNG:
		img, err := png.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decode png: %w", err)
		}
		return FromImage(img), nil
	case MimeJPEG:
		img, err := jpeg.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decode jpeg: %w", err)
		}
		return FromImage(img), nil
	case MimeTIFF:
		img, err := tiff.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decode tiff: %w", err)
		}
		return FromImage(img), nil
	default:
		return nil, fmt.Errorf("%w: %s is not a raster format", ErrUnsupportedFormat, mime)
	}
}
