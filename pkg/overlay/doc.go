// Package overlay composes raster backgrounds and vector markers into one
// SVG document per rendered stage.
//
// A [Buffer] holds the raster's natural pixel dimensions and an ordered list
// of [Marker] elements; later markers draw over earlier ones, insertion order
// is the only z-order. Uniform padding grows the visible canvas beyond the
// natural bounds without shifting marker coordinates, so markers near the
// edges are not clipped.
//
// [Split] places two independent canvases side by side with a fixed gutter
// and maps each half's local coordinates into the shared space, which lets
// cross-object renderers draw correspondence lines between two templates.
package overlay
