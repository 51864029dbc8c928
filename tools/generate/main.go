// Command generate renders widgets_gen.go from widgets.toml. It is the
// go:generate entry point of package lvgo.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/agiangrant/lvgo/internal/codegen"
)

func main() {
	manifest := flag.String("manifest", "widgets.toml", "Path to the widget manifest")
	flag.Parse()

	if err := run(*manifest); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(manifest string) error {
	out, err := codegen.Generate(manifest)
	if err != nil {
		return err
	}
	fmt.Printf("✓ Generated %s\n", out)
	return nil
}
