package registry

import (
	"fmt"

	"github.com/ridgelab/fpview/pkg/artifacts"
	"github.com/ridgelab/fpview/pkg/markers"
	"github.com/ridgelab/fpview/pkg/overlay"
	"github.com/ridgelab/fpview/pkg/pixmap"
)

// background embeds the original fingerprint photograph under an overlay.
// An archive without the input image leaves the document vector-only.
func background(buf *overlay.Buffer, a Archive) error {
	data, err := a.Read(KeyInputImage)
	if err != nil {
		return fmt.Errorf("read %s: %w", KeyInputImage, err)
	}
	if data == nil {
		return nil
	}
	p, err := pixmap.Decode(data)
	if err != nil {
		return fmt.Errorf("input image: %w", err)
	}
	buf.Add(overlay.JPEG(p))
	return nil
}

func renderInputImage(a Archive) (*overlay.Buffer, error) {
	data, err := a.Read(KeyInputImage)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", KeyInputImage, err)
	}
	if data == nil {
		return nil, fmt.Errorf("archive has no %s", KeyInputImage)
	}
	p, err := pixmap.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("input image: %w", err)
	}
	raster, err := overlay.Embed(p.Width, p.Height, data)
	if err != nil {
		return nil, err
	}
	return overlay.New(p.Width, p.Height).Add(raster), nil
}

func renderBlocks(a Archive) (*overlay.Buffer, error) {
	blocks, err := deserialize[artifacts.BlockMap](a, KeyBlocks)
	if err != nil {
		return nil, err
	}
	// Padding keeps the boundary strokes from being clipped at the edge.
	buf := overlay.New(blocks.Pixels.X, blocks.Pixels.Y).Padding(1)
	if err := background(buf, a); err != nil {
		return nil, err
	}
	return buf.Add(markers.BlockGridLines(blocks)...), nil
}

func renderHistogram(key Key) func(Archive) (*overlay.Buffer, error) {
	return func(a Archive) (*overlay.Buffer, error) {
		histogram, err := deserialize[artifacts.HistogramCube](a, key)
		if err != nil {
			return nil, err
		}
		blocks, err := deserialize[artifacts.BlockMap](a, KeyBlocks)
		if err != nil {
			return nil, err
		}
		buf := overlay.New(blocks.Pixels.X, blocks.Pixels.Y).Padding(1)
		if err := background(buf, a); err != nil {
			return nil, err
		}
		buf.Add(markers.BlockGridLines(blocks)...)
		return buf.Add(markers.BlockHistograms(histogram, blocks)...), nil
	}
}

func renderContrast(a Archive) (*overlay.Buffer, error) {
	contrast, err := deserialize[artifacts.Matrix](a, KeyContrast)
	if err != nil {
		return nil, err
	}
	blocks, err := deserialize[artifacts.BlockMap](a, KeyBlocks)
	if err != nil {
		return nil, err
	}
	buf := overlay.New(blocks.Pixels.X, blocks.Pixels.Y)
	if err := background(buf, a); err != nil {
		return nil, err
	}
	return buf.Add(markers.BlockWeights(contrast, blocks)...), nil
}

func renderBlockMask(key Key) func(Archive) (*overlay.Buffer, error) {
	return func(a Archive) (*overlay.Buffer, error) {
		mask, err := deserialize[artifacts.BitMatrix](a, key)
		if err != nil {
			return nil, err
		}
		blocks, err := deserialize[artifacts.BlockMap](a, KeyBlocks)
		if err != nil {
			return nil, err
		}
		buf := overlay.New(blocks.Pixels.X, blocks.Pixels.Y)
		if err := background(buf, a); err != nil {
			return nil, err
		}
		return buf.Add(overlay.PNG(markers.OverlayBlockMask(mask, blocks))), nil
	}
}

func renderGrayscale(key Key) func(Archive) (*overlay.Buffer, error) {
	return func(a Archive) (*overlay.Buffer, error) {
		field, err := deserialize[artifacts.Matrix](a, key)
		if err != nil {
			return nil, err
		}
		p := markers.PaintMatrix(field)
		return overlay.New(p.Width, p.Height).Add(overlay.PNG(p)), nil
	}
}

func renderPixelwiseOrientation(a Archive) (*overlay.Buffer, error) {
	field, err := deserialize[artifacts.PointMatrix](a, KeyPixelwiseOrientation)
	if err != nil {
		return nil, err
	}
	p := markers.PaintOrientation(field)
	return overlay.New(p.Width, p.Height).Add(overlay.PNG(p)), nil
}

func renderBlockOrientation(key Key) func(Archive) (*overlay.Buffer, error) {
	return func(a Archive) (*overlay.Buffer, error) {
		field, err := deserialize[artifacts.PointMatrix](a, key)
		if err != nil {
			return nil, err
		}
		blocks, err := deserialize[artifacts.BlockMap](a, KeyBlocks)
		if err != nil {
			return nil, err
		}
		mask, err := deserialize[artifacts.BitMatrix](a, KeyCombinedMask)
		if err != nil {
			return nil, err
		}
		buf := overlay.New(blocks.Pixels.X, blocks.Pixels.Y)
		if err := background(buf, a); err != nil {
			return nil, err
		}
		return buf.Add(markers.BlockOrientations(field, blocks, mask)...), nil
	}
}

func renderBinary(key Key) func(Archive) (*overlay.Buffer, error) {
	return func(a Archive) (*overlay.Buffer, error) {
		bits, err := deserialize[artifacts.BitMatrix](a, key)
		if err != nil {
			return nil, err
		}
		p := markers.PaintBinary(bits)
		return overlay.New(p.Width, p.Height).Add(overlay.PNG(p)), nil
	}
}

func renderBinaryDiff(a Archive) (*overlay.Buffer, error) {
	previous, err := deserialize[artifacts.BitMatrix](a, KeyBinarizedImage)
	if err != nil {
		return nil, err
	}
	next, err := deserialize[artifacts.BitMatrix](a, KeyFilteredBinary)
	if err != nil {
		return nil, err
	}
	p := markers.DiffBits(previous, next)
	return overlay.New(p.Width, p.Height).Add(overlay.PNG(p)), nil
}

func renderPixelMask(key Key) func(Archive) (*overlay.Buffer, error) {
	return func(a Archive) (*overlay.Buffer, error) {
		mask, err := deserialize[artifacts.BitMatrix](a, key)
		if err != nil {
			return nil, err
		}
		buf := overlay.New(mask.Width, mask.Height)
		if err := background(buf, a); err != nil {
			return nil, err
		}
		return buf.Add(overlay.PNG(markers.OverlayMask(mask))), nil
	}
}
