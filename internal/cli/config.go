package cli

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"
)

// configFile is the optional per-project configuration file read from the
// working directory.
const configFile = "fpview.toml"

// Config holds render defaults loaded from fpview.toml. Command-line flags
// override any value set here.
type Config struct {
	// Output is the directory render results are written to.
	Output string `toml:"output"`
	// Formats lists the output formats to produce (svg, png, pdf).
	Formats []string `toml:"formats"`
	// Scale is the PNG rasterization scale factor.
	Scale float64 `toml:"scale"`
	// Keys restricts rendering to the listed artifact keys.
	Keys []string `toml:"keys"`
}

// defaultConfig is used when no fpview.toml exists.
func defaultConfig() Config {
	return Config{
		Output:  ".",
		Formats: []string{"svg"},
		Scale:   2.0,
	}
}

// loadConfig reads path and merges it over the defaults. A missing file is
// not an error; unknown TOML keys are.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	meta, err := toml.DecodeFile(path, &cfg)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	return cfg, nil
}
