package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ridgelab/fpview/pkg/convert"
	"github.com/ridgelab/fpview/pkg/registry"
)

// renderOpts holds the effective render settings after merging fpview.toml
// with command-line flags.
type renderOpts struct {
	output  string   // output directory
	formats []string // output formats: "svg", "png", "pdf"
	keys    []string // artifact keys to render; empty means every key present
	scale   float64  // PNG rasterization scale
}

// newRenderCmd creates the render command. It reads an archive directory of
// captured pipeline artifacts and writes one document per key and format.
//
// Defaults come from fpview.toml when present:
//   - output: current directory
//   - formats: svg
//   - scale: 2.0
//   - keys: every key the archive has an artifact for
func newRenderCmd() *cobra.Command {
	var formatsStr, keysStr, configPath string
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [archive-dir]",
		Short: "Render pipeline artifacts from an archive directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			opts = mergeOpts(cfg, cmd, formatsStr, keysStr, opts)
			if err := validateFormats(opts.formats); err != nil {
				return err
			}
			return runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output directory (default from fpview.toml, else current directory)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf (comma-separated)")
	cmd.Flags().StringVarP(&keysStr, "key", "k", "", "artifact key(s) to render (comma-separated, default all present)")
	cmd.Flags().Float64Var(&opts.scale, "scale", 0, "PNG rasterization scale factor")
	cmd.Flags().StringVar(&configPath, "config", configFile, "configuration file path")

	return cmd
}

// mergeOpts layers command-line flags over configuration file values.
// Only flags the user actually set override the file.
func mergeOpts(cfg Config, cmd *cobra.Command, formatsStr, keysStr string, opts renderOpts) renderOpts {
	merged := renderOpts{
		output:  cfg.Output,
		formats: cfg.Formats,
		keys:    cfg.Keys,
		scale:   cfg.Scale,
	}
	if cmd.Flags().Changed("output") {
		merged.output = opts.output
	}
	if cmd.Flags().Changed("format") {
		merged.formats = splitList(formatsStr)
	}
	if cmd.Flags().Changed("key") {
		merged.keys = splitList(keysStr)
	}
	if cmd.Flags().Changed("scale") {
		merged.scale = opts.scale
	}
	return merged
}

// splitList parses a comma-separated flag value, trimming whitespace.
func splitList(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{"svg": true, "png": true, "pdf": true}

// validateFormats checks that all requested formats are valid.
func validateFormats(formats []string) error {
	for _, f := range formats {
		if !validFormats[f] {
			return fmt.Errorf("invalid format: %s (must be 'svg', 'png', or 'pdf')", f)
		}
	}
	return nil
}

// selectVisualizers resolves the requested keys against the registry, or
// returns every visualizer whose artifact the archive carries when no keys
// were requested.
func selectVisualizers(archive *dirArchive, keys []string) ([]registry.Visualizer, error) {
	if len(keys) == 0 {
		var present []registry.Visualizer
		for _, v := range registry.All() {
			if archive.Has(v.Key()) {
				present = append(present, v)
			}
		}
		return present, nil
	}

	var selected []registry.Visualizer
	for _, key := range keys {
		v, ok := registry.Lookup(registry.Key(key))
		if !ok {
			return nil, fmt.Errorf("unknown key: %s (run 'fpview keys' for the full list)", key)
		}
		selected = append(selected, v)
	}
	return selected, nil
}

// runRender renders every selected visualizer to every requested format.
func runRender(ctx context.Context, dir string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	archive, err := openArchive(dir)
	if err != nil {
		return err
	}
	visualizers, err := selectVisualizers(archive, opts.keys)
	if err != nil {
		return err
	}
	if len(visualizers) == 0 {
		printWarning("archive %s has no renderable artifacts", dir)
		return nil
	}
	logger.Debugf("Selected %d visualizers, formats %v", len(visualizers), opts.formats)

	if err := os.MkdirAll(opts.output, 0o755); err != nil {
		return fmt.Errorf("output directory: %w", err)
	}

	track := newProgress(logger)
	spinner := newSpinner(ctx, fmt.Sprintf("Rendering %d documents", len(visualizers)*len(opts.formats)))
	spinner.Start()

	var written []string
	for _, v := range visualizers {
		if ctx.Err() != nil {
			spinner.Stop()
			return ctx.Err()
		}
		paths, err := renderOne(archive, v, opts)
		if err != nil {
			spinner.StopWithError(fmt.Sprintf("rendering %s failed", v.Key()))
			return err
		}
		written = append(written, paths...)
	}

	spinner.StopWithSuccess(fmt.Sprintf("Rendered %d files to %s", len(written), opts.output))
	for _, path := range written {
		printFile(path)
	}
	track.done(fmt.Sprintf("Rendered %d documents", len(visualizers)))
	return nil
}

// renderOne renders a single visualizer and writes it in every requested
// format, returning the written paths.
func renderOne(archive *dirArchive, v registry.Visualizer, opts *renderOpts) ([]string, error) {
	buf, err := v.Render(archive)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", v.Key(), err)
	}
	svg := buf.SVG()

	var written []string
	for _, format := range opts.formats {
		data := svg
		switch format {
		case "png":
			if data, err = convert.ToPNG(svg, opts.scale); err != nil {
				return nil, fmt.Errorf("%s: %w", v.Key(), err)
			}
		case "pdf":
			if data, err = convert.ToPDF(svg); err != nil {
				return nil, fmt.Errorf("%s: %w", v.Key(), err)
			}
		}

		path := filepath.Join(opts.output, fmt.Sprintf("%s.%s", v.Key(), format))
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return nil, fmt.Errorf("%s: %w", v.Key(), err)
		}
		written = append(written, path)
	}
	return written, nil
}
