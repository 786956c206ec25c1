// Package registry catalogs the renderable artifacts of the fingerprint
// recognition pipeline. Every artifact gets a [Key]; every key gets a
// [Visualizer] that pulls the artifact (and whatever companion artifacts the
// rendering needs) from an [Archive] and composes an SVG document.
//
// The registry is a catalog, not a scheduler: [Visualizer.Dependencies]
// documents which keys a rendering consumes so callers can check archive
// completeness or draw the dependency graph, but visualizers fetch their own
// inputs at render time.
package registry
