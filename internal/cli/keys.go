package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ridgelab/fpview/pkg/registry"
)

// newKeysCmd creates the keys command: a catalog listing of every renderable
// artifact key with its dependencies, plus an optional rendering of the
// dependency graph itself.
func newKeysCmd() *cobra.Command {
	var graphPath string

	cmd := &cobra.Command{
		Use:   "keys",
		Short: "List renderable artifact keys and their dependencies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if graphPath != "" {
				return writeGraph(cmd, graphPath)
			}
			listKeys()
			return nil
		},
	}

	cmd.Flags().StringVar(&graphPath, "graph", "", "write the key-dependency graph to this file (.dot or .svg)")

	return cmd
}

// listKeys prints every registered key with the other keys its rendering
// consumes.
func listKeys() {
	fmt.Println(StyleTitle.Render("Renderable artifact keys"))
	for _, v := range registry.All() {
		var inputs []string
		for _, dep := range v.Dependencies() {
			if dep != v.Key() {
				inputs = append(inputs, string(dep))
			}
		}
		detail := StyleDim.Render("(self-contained)")
		if len(inputs) > 0 {
			detail = StyleDim.Render("+ " + strings.Join(inputs, ", "))
		}
		printKeyValue(string(v.Key()), detail)
	}
}

// writeGraph renders the key-dependency graph as DOT or, via Graphviz, SVG.
func writeGraph(cmd *cobra.Command, path string) error {
	logger := loggerFromContext(cmd.Context())
	dot := registry.ToDOT()

	data := []byte(dot)
	if strings.HasSuffix(path, ".svg") {
		logger.Info("Rendering dependency graph with Graphviz")
		svg, err := registry.RenderSVG(cmd.Context(), dot)
		if err != nil {
			return err
		}
		data = svg
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	printSuccess("Wrote dependency graph")
	printFile(path)
	return nil
}
