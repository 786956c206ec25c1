package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ridgelab/fpview/pkg/registry"
)

// blobExtensions are the raster file extensions probed by Read, in priority
// order. The pipeline capture tool writes the input image with whatever
// extension matches its format.
var blobExtensions = []string{".png", ".jpg", ".jpeg", ".tif", ".tiff"}

// dirArchive exposes a directory of captured artifacts as a registry.Archive.
// Typed artifacts live in <key>.json files; opaque blobs such as the input
// image live next to them under the key name with a raster extension.
type dirArchive struct {
	dir string
}

func openArchive(dir string) (*dirArchive, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("open archive: %s is not a directory", dir)
	}
	return &dirArchive{dir: dir}, nil
}

// Deserialize decodes <dir>/<key>.json into v.
func (a *dirArchive) Deserialize(key registry.Key, v any) error {
	data, err := os.ReadFile(filepath.Join(a.dir, string(key)+".json"))
	if err != nil {
		return fmt.Errorf("artifact %s: %w", key, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("artifact %s: %w", key, err)
	}
	return nil
}

// Read returns the raw bytes stored under the key, probing the known raster
// extensions. A missing blob is not an error; it yields (nil, nil) so
// renderers fall back to vector-only output.
func (a *dirArchive) Read(key registry.Key) ([]byte, error) {
	for _, ext := range blobExtensions {
		data, err := os.ReadFile(filepath.Join(a.dir, string(key)+ext))
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("blob %s: %w", key, err)
		}
		return data, nil
	}
	return nil, nil
}

// Has reports whether the archive stores anything under the key, either a
// typed artifact or a blob. Used to decide which visualizers apply to a
// partial capture.
func (a *dirArchive) Has(key registry.Key) bool {
	if _, err := os.Stat(filepath.Join(a.dir, string(key)+".json")); err == nil {
		return true
	}
	for _, ext := range blobExtensions {
		if _, err := os.Stat(filepath.Join(a.dir, string(key)+ext)); err == nil {
			return true
		}
	}
	return false
}
