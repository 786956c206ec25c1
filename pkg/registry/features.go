package registry

import (
	"github.com/ridgelab/fpview/pkg/artifacts"
	"github.com/ridgelab/fpview/pkg/markers"
	"github.com/ridgelab/fpview/pkg/overlay"
)

func renderSkeleton(a Archive) (*overlay.Buffer, error) {
	skeleton, err := deserialize[artifacts.SkeletonGraph](a, KeyTracedSkeleton)
	if err != nil {
		return nil, err
	}
	buf := overlay.New(skeleton.Size.X, skeleton.Size.Y)
	return buf.Add(markers.Skeleton(skeleton)...), nil
}

func renderSkeletonDiff(previousKey, nextKey Key) func(Archive) (*overlay.Buffer, error) {
	return func(a Archive) (*overlay.Buffer, error) {
		previous, err := deserialize[artifacts.SkeletonGraph](a, previousKey)
		if err != nil {
			return nil, err
		}
		next, err := deserialize[artifacts.SkeletonGraph](a, nextKey)
		if err != nil {
			return nil, err
		}
		buf := overlay.New(next.Size.X, next.Size.Y)
		return buf.Add(markers.SkeletonDiff(previous, next)...), nil
	}
}

func renderTemplate(key Key) func(Archive) (*overlay.Buffer, error) {
	return func(a Archive) (*overlay.Buffer, error) {
		template, err := deserialize[artifacts.Template](a, key)
		if err != nil {
			return nil, err
		}
		buf := overlay.New(template.Size.X, template.Size.Y)
		if err := background(buf, a); err != nil {
			return nil, err
		}
		return buf.Add(markers.MarkTemplate(template)...), nil
	}
}

func renderTemplateDiff(previousKey, nextKey Key) func(Archive) (*overlay.Buffer, error) {
	return func(a Archive) (*overlay.Buffer, error) {
		previous, err := deserialize[artifacts.Template](a, previousKey)
		if err != nil {
			return nil, err
		}
		next, err := deserialize[artifacts.Template](a, nextKey)
		if err != nil {
			return nil, err
		}
		buf := overlay.New(next.Size.X, next.Size.Y)
		if err := background(buf, a); err != nil {
			return nil, err
		}
		return buf.Add(markers.TemplateDiff(previous, next)...), nil
	}
}

func renderEdgeTable(a Archive) (*overlay.Buffer, error) {
	edges, err := deserialize[[][]artifacts.NeighborEdge](a, KeyEdgeTable)
	if err != nil {
		return nil, err
	}
	template, err := deserialize[artifacts.Template](a, KeyTopMinutiae)
	if err != nil {
		return nil, err
	}
	buf := overlay.New(template.Size.X, template.Size.Y)
	if err := background(buf, a); err != nil {
		return nil, err
	}
	return buf.Add(markers.NeighborEdges(*edges, template)...), nil
}

func renderEdgeHash(a Archive) (*overlay.Buffer, error) {
	entries, err := deserialize[[]artifacts.HashEntry](a, KeyEdgeHash)
	if err != nil {
		return nil, err
	}
	template, err := deserialize[artifacts.Template](a, KeyProbeTemplate)
	if err != nil {
		return nil, err
	}
	buf := overlay.New(template.Size.X, template.Size.Y)
	return buf.Add(markers.HashEdges(*entries, template)...), nil
}

func renderRoots(a Archive) (*overlay.Buffer, error) {
	pairs, err := deserialize[[]artifacts.MinutiaPair](a, KeyRoots)
	if err != nil {
		return nil, err
	}
	probe, err := deserialize[artifacts.Template](a, KeyProbeTemplate)
	if err != nil {
		return nil, err
	}
	candidate, err := deserialize[artifacts.Template](a, KeyCandidateTemplate)
	if err != nil {
		return nil, err
	}
	return markers.Roots(*pairs, probe, candidate), nil
}

func renderPairing(templateKey Key, side artifacts.Side) func(Archive) (*overlay.Buffer, error) {
	return func(a Archive) (*overlay.Buffer, error) {
		pairing, err := deserialize[artifacts.PairingGraph](a, KeyPairing)
		if err != nil {
			return nil, err
		}
		template, err := deserialize[artifacts.Template](a, templateKey)
		if err != nil {
			return nil, err
		}
		buf := overlay.New(template.Size.X, template.Size.Y)
		return buf.Add(markers.Pairing(pairing, side, template)...), nil
	}
}
