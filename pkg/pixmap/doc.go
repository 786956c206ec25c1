// Package pixmap provides the mutable ARGB raster buffer that backs all
// pixel-level renderers.
//
// A [Pixmap] is created per render call, filled or painted once, encoded to
// PNG or JPEG bytes, and discarded. It is never shared between renders.
// Pixels are 32-bit ARGB integers; alpha 0x00 is fully transparent, which
// allows raster layers to be composited by the viewer on top of other layers.
//
// The package also owns the codec boundary for externally supplied images:
// [Sniff] recognizes PNG, JPEG, TIFF and SVG byte signatures, and [Decode]
// turns the raster formats into a Pixmap. Unrecognized signatures fail with
// [ErrUnsupportedFormat].
package pixmap
