package commands

import (
	"flag"
	"fmt"

	"github.com/agiangrant/lvgo/internal/codegen"
)

// Generate implements the 'lvgo generate' command.
func Generate(args []string) error {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	manifest := fs.String("manifest", "widgets.toml", "Path to the widget manifest")
	fs.Parse(args)

	out, err := codegen.Generate(*manifest)
	if err != nil {
		return fmt.Errorf("failed to generate widgets: %w", err)
	}
	fmt.Printf("✓ Generated %s\n", out)
	return nil
}
