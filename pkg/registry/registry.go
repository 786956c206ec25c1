package registry

import (
	"fmt"
	"slices"

	"github.com/ridgelab/fpview/pkg/artifacts"
	"github.com/ridgelab/fpview/pkg/overlay"
)

// Key identifies one artifact captured from the recognition pipeline.
type Key string

// Extractor stage artifacts, in pipeline order.
const (
	KeyInputImage           Key = "input-image"
	KeyBlocks               Key = "blocks"
	KeyHistogram            Key = "histogram"
	KeySmoothedHistogram    Key = "smoothed-histogram"
	KeyContrast             Key = "contrast"
	KeyAbsoluteContrastMask Key = "absolute-contrast-mask"
	KeyRelativeContrastMask Key = "relative-contrast-mask"
	KeyCombinedMask         Key = "combined-mask"
	KeyFilteredMask         Key = "filtered-mask"
	KeyEqualizedImage       Key = "equalized-image"
	KeyPixelwiseOrientation Key = "pixelwise-orientation"
	KeyBlockOrientation     Key = "block-orientation"
	KeySmoothedOrientation  Key = "smoothed-orientation"
	KeyParallelSmoothing    Key = "parallel-smoothing"
	KeyOrthogonalSmoothing  Key = "orthogonal-smoothing"
	KeyBinarizedImage       Key = "binarized-image"
	KeyFilteredBinary       Key = "filtered-binary"
	KeyFilteredBinaryDiff   Key = "filtered-binary-diff"
	KeyPixelMask            Key = "pixel-mask"
	KeyInnerMask            Key = "inner-mask"
	KeyBinarizedSkeleton    Key = "binarized-skeleton"
	KeyThinnedSkeleton      Key = "thinned-skeleton"
	KeyTracedSkeleton       Key = "traced-skeleton"
	KeyRemovedDots          Key = "removed-dots"
	KeyRemovedPores         Key = "removed-pores"
	KeyRemovedGaps          Key = "removed-gaps"
	KeyRemovedTails         Key = "removed-tails"
	KeyRemovedFragments     Key = "removed-fragments"
	KeySkeletonMinutiae     Key = "skeleton-minutiae"
	KeyInnerMinutiae        Key = "inner-minutiae"
	KeyRemovedMinutiaClouds Key = "removed-minutia-clouds"
	KeyTopMinutiae          Key = "top-minutiae"
	KeyEdgeTable            Key = "edge-table"
)

// Matcher stage artifacts.
const (
	KeyProbeTemplate     Key = "probe-template"
	KeyCandidateTemplate Key = "candidate-template"
	KeyEdgeHash          Key = "edge-hash"
	KeyRoots             Key = "roots"
	KeyPairing           Key = "pairing"
	KeyPairingProbe      Key = "pairing-probe"
	KeyPairingCandidate  Key = "pairing-candidate"
)

// Archive is the consumer-side view of a captured pipeline run. Deserialize
// decodes the JSON artifact stored under a key into a typed value. Read
// returns raw bytes for opaque artifacts such as the input image; a missing
// key yields (nil, nil) rather than an error, since raster backgrounds are
// optional everywhere they appear.
type Archive interface {
	Deserialize(key Key, v any) error
	Read(key Key) ([]byte, error)
}

// Visualizer renders one artifact into a layered SVG document.
type Visualizer interface {
	// Key names the artifact this visualizer presents.
	Key() Key
	// Dependencies lists every key the rendering consumes, the visualized
	// key included.
	Dependencies() []Key
	// Render composes the document from artifacts fetched from the archive.
	Render(archive Archive) (*overlay.Buffer, error)
}

type visualizer struct {
	key    Key
	deps   []Key
	render func(Archive) (*overlay.Buffer, error)
}

func (v visualizer) Key() Key            { return v.key }
func (v visualizer) Dependencies() []Key { return slices.Clone(v.deps) }

func (v visualizer) Render(a Archive) (*overlay.Buffer, error) {
	return v.render(a)
}

// catalog holds every registered visualizer in pipeline order.
var catalog = []Visualizer{
	visualizer{KeyInputImage, []Key{KeyInputImage}, renderInputImage},
	visualizer{KeyBlocks, []Key{KeyBlocks, KeyInputImage}, renderBlocks},
	visualizer{KeyHistogram, []Key{KeyHistogram, KeyBlocks, KeyInputImage}, renderHistogram(KeyHistogram)},
	visualizer{KeySmoothedHistogram, []Key{KeySmoothedHistogram, KeyBlocks, KeyInputImage}, renderHistogram(KeySmoothedHistogram)},
	visualizer{KeyContrast, []Key{KeyContrast, KeyBlocks, KeyInputImage}, renderContrast},
	visualizer{KeyAbsoluteContrastMask, []Key{KeyAbsoluteContrastMask, KeyBlocks, KeyInputImage}, renderBlockMask(KeyAbsoluteContrastMask)},
	visualizer{KeyRelativeContrastMask, []Key{KeyRelativeContrastMask, KeyBlocks, KeyInputImage}, renderBlockMask(KeyRelativeContrastMask)},
	visualizer{KeyCombinedMask, []Key{KeyCombinedMask, KeyBlocks, KeyInputImage}, renderBlockMask(KeyCombinedMask)},
	visualizer{KeyFilteredMask, []Key{KeyFilteredMask, KeyBlocks, KeyInputImage}, renderBlockMask(KeyFilteredMask)},
	visualizer{KeyEqualizedImage, []Key{KeyEqualizedImage}, renderGrayscale(KeyEqualizedImage)},
	visualizer{KeyPixelwiseOrientation, []Key{KeyPixelwiseOrientation}, renderPixelwiseOrientation},
	visualizer{KeyBlockOrientation, []Key{KeyBlockOrientation, KeyBlocks, KeyCombinedMask, KeyInputImage}, renderBlockOrientation(KeyBlockOrientation)},
	visualizer{KeySmoothedOrientation, []Key{KeySmoothedOrientation, KeyBlocks, KeyCombinedMask, KeyInputImage}, renderBlockOrientation(KeySmoothedOrientation)},
	visualizer{KeyParallelSmoothing, []Key{KeyParallelSmoothing}, renderGrayscale(KeyParallelSmoothing)},
	visualizer{KeyOrthogonalSmoothing, []Key{KeyOrthogonalSmoothing}, renderGrayscale(KeyOrthogonalSmoothing)},
	visualizer{KeyBinarizedImage, []Key{KeyBinarizedImage}, renderBinary(KeyBinarizedImage)},
	visualizer{KeyFilteredBinary, []Key{KeyFilteredBinary}, renderBinary(KeyFilteredBinary)},
	visualizer{KeyFilteredBinaryDiff, []Key{KeyFilteredBinaryDiff, KeyBinarizedImage, KeyFilteredBinary}, renderBinaryDiff},
	visualizer{KeyPixelMask, []Key{KeyPixelMask, KeyInputImage}, renderPixelMask(KeyPixelMask)},
	visualizer{KeyInnerMask, []Key{KeyInnerMask, KeyInputImage}, renderPixelMask(KeyInnerMask)},
	visualizer{KeyBinarizedSkeleton, []Key{KeyBinarizedSkeleton}, renderBinary(KeyBinarizedSkeleton)},
	visualizer{KeyThinnedSkeleton, []Key{KeyThinnedSkeleton}, renderBinary(KeyThinnedSkeleton)},
	visualizer{KeyTracedSkeleton, []Key{KeyTracedSkeleton}, renderSkeleton},
	visualizer{KeyRemovedDots, []Key{KeyRemovedDots, KeyTracedSkeleton}, renderSkeletonDiff(KeyTracedSkeleton, KeyRemovedDots)},
	visualizer{KeyRemovedPores, []Key{KeyRemovedPores, KeyRemovedDots}, renderSkeletonDiff(KeyRemovedDots, KeyRemovedPores)},
	visualizer{KeyRemovedGaps, []Key{KeyRemovedGaps, KeyRemovedPores}, renderSkeletonDiff(KeyRemovedPores, KeyRemovedGaps)},
	visualizer{KeyRemovedTails, []Key{KeyRemovedTails, KeyRemovedGaps}, renderSkeletonDiff(KeyRemovedGaps, KeyRemovedTails)},
	visualizer{KeyRemovedFragments, []Key{KeyRemovedFragments, KeyRemovedTails}, renderSkeletonDiff(KeyRemovedTails, KeyRemovedFragments)},
	visualizer{KeySkeletonMinutiae, []Key{KeySkeletonMinutiae, KeyInputImage}, renderTemplate(KeySkeletonMinutiae)},
	visualizer{KeyInnerMinutiae, []Key{KeyInnerMinutiae, KeySkeletonMinutiae, KeyInputImage}, renderTemplateDiff(KeySkeletonMinutiae, KeyInnerMinutiae)},
	visualizer{KeyRemovedMinutiaClouds, []Key{KeyRemovedMinutiaClouds, KeyInnerMinutiae, KeyInputImage}, renderTemplateDiff(KeyInnerMinutiae, KeyRemovedMinutiaClouds)},
	visualizer{KeyTopMinutiae, []Key{KeyTopMinutiae, KeyRemovedMinutiaClouds, KeyInputImage}, renderTemplateDiff(KeyRemovedMinutiaClouds, KeyTopMinutiae)},
	visualizer{KeyEdgeTable, []Key{KeyEdgeTable, KeyTopMinutiae, KeyInputImage}, renderEdgeTable},
	visualizer{KeyProbeTemplate, []Key{KeyProbeTemplate}, renderTemplate(KeyProbeTemplate)},
	visualizer{KeyCandidateTemplate, []Key{KeyCandidateTemplate}, renderTemplate(KeyCandidateTemplate)},
	visualizer{KeyEdgeHash, []Key{KeyEdgeHash, KeyProbeTemplate}, renderEdgeHash},
	visualizer{KeyRoots, []Key{KeyRoots, KeyProbeTemplate, KeyCandidateTemplate}, renderRoots},
	visualizer{KeyPairingProbe, []Key{KeyPairing, KeyProbeTemplate}, renderPairing(KeyProbeTemplate, artifacts.ProbeSide)},
	visualizer{KeyPairingCandidate, []Key{KeyPairing, KeyCandidateTemplate}, renderPairing(KeyCandidateTemplate, artifacts.CandidateSide)},
}

// All returns every registered visualizer in pipeline order.
func All() []Visualizer {
	return slices.Clone(catalog)
}

// Lookup returns the visualizer for a key.
func Lookup(key Key) (Visualizer, bool) {
	for _, v := range catalog {
		if v.Key() == key {
			return v, true
		}
	}
	return nil, false
}

// Keys returns every registered key in pipeline order.
func Keys() []Key {
	keys := make([]Key, len(catalog))
	for i, v := range catalog {
		keys[i] = v.Key()
	}
	return keys
}

// deserialize decodes the artifact stored under key into a fresh T.
func deserialize[T any](a Archive, key Key) (*T, error) {
	var v T
	if err := a.Deserialize(key, &v); err != nil {
		return nil, fmt.Errorf("deserialize %s: %w", key, err)
	}
	return &v, nil
}
