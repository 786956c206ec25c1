// Package artifacts defines the typed snapshots produced by the fingerprint
// recognition pipeline and consumed by the renderers.
//
// Instances are immutable inputs: the renderers never mutate them and never
// hold on to them past a single render call. Structural invariants (matching
// dimensions between a mask and its block map, valid minutia indices in edge
// tables) are guaranteed by the pipeline that produced the artifacts and are
// not re-validated here.
//
// All types carry JSON tags so archived artifacts can be deserialized by the
// surrounding reporting layer.
package artifacts
