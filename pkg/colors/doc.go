// Package colors owns every color-scheme decision made by the renderers.
//
// Visual encodings are fixed and specific to one pipeline stage's semantics:
// hue encodes ridge orientation, brightness encodes edge length, marker area
// encodes block weight. Keeping all of them in one package enforces visual
// consistency structurally instead of by convention.
//
// Raster colors are 32-bit ARGB integers matching [pixmap.Pixmap]; vector
// marker colors are CSS color strings as written into SVG attributes.
package colors
