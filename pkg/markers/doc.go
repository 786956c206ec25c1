// Package markers turns typed pipeline artifacts into raster layers and
// vector markers using fixed, reproducible visual encodings.
//
// Naming follows the layer role:
//   - Paint* produces an opaque pixmap, useful only as a base layer.
//   - Overlay* produces a semi-transparent pixmap composited above a
//     background by the viewer.
//   - Everything else produces vector markers (or a ready composite).
//   - *Diff contrasts two versions of the same artifact.
//
// Every function is pure: it reads its artifacts, allocates its own pixmaps
// and markers, and holds no state between calls, so callers may render
// independent artifacts concurrently without synchronization.
package markers
