// Package codegen renders the typed widget wrappers of package lvgo from a
// TOML manifest.
package codegen

import (
	"fmt"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/imports"
)

// Manifest is the contents of widgets.toml.
type Manifest struct {
	Package string   `toml:"package"`
	Output  string   `toml:"output"`
	Widgets []Widget `toml:"widget"`
}

// Widget describes one wrapper type.
type Widget struct {
	// Name is the Go type name.
	Name string `toml:"name"`
	// Class is the engine class; the constructor calls lv_<class>_create.
	Class string `toml:"class"`
	Doc   string `toml:"doc"`
	// AddFlags are lvgo flag constants set on every new instance.
	AddFlags []string `toml:"add_flags"`
}

// LoadManifest reads and validates a manifest file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	m, err := ParseManifest(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// ParseManifest decodes and validates a manifest.
func ParseManifest(data []byte) (*Manifest, error) {
	m := &Manifest{Package: "lvgo", Output: "widgets_gen.go"}
	if err := toml.Unmarshal(data, m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Manifest) validate() error {
	if !token.IsIdentifier(m.Package) {
		return fmt.Errorf("invalid package name %q", m.Package)
	}
	seen := make(map[string]bool)
	for i, w := range m.Widgets {
		if !token.IsIdentifier(w.Name) || !token.IsExported(w.Name) {
			return fmt.Errorf("widget %d: name %q is not an exported identifier", i, w.Name)
		}
		if seen[w.Name] {
			return fmt.Errorf("widget %d: duplicate name %q", i, w.Name)
		}
		seen[w.Name] = true
		if !isCIdentifier(w.Class) {
			return fmt.Errorf("widget %s: invalid class %q", w.Name, w.Class)
		}
		for _, f := range w.AddFlags {
			if !strings.HasPrefix(f, "Flag") || !token.IsIdentifier(f) {
				return fmt.Errorf("widget %s: invalid flag %q", w.Name, f)
			}
		}
	}
	return nil
}

// isCIdentifier reports whether s can name an engine class. Go keywords
// such as switch are valid C names.
func isCIdentifier(s string) bool {
	return token.IsIdentifier(s) || token.IsKeyword(s)
}

// Render produces the formatted Go source for m. Each widget is rendered and
// checked to parse on its own, so a broken entry is reported by name.
func Render(m *Manifest) ([]byte, error) {
	parts := make([]string, len(m.Widgets))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, w := range m.Widgets {
		g.Go(func() error {
			part := renderWidget(w)
			src := "package " + m.Package + "\n" + part
			if _, err := parser.ParseFile(token.NewFileSet(), w.Name+".go", src, parser.ParseComments); err != nil {
				return fmt.Errorf("widget %s: generated code does not parse: %w", w.Name, err)
			}
			parts[i] = part
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var b strings.Builder
	b.WriteString("// Code generated by lvgo generate from widgets.toml. DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n", m.Package)
	for _, p := range parts {
		b.WriteString(p)
	}

	src, err := imports.Process(m.Output, []byte(b.String()), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to format generated code: %w", err)
	}
	return src, nil
}

func renderWidget(w Widget) string {
	var b strings.Builder
	doc := w.Doc
	if doc == "" {
		doc = fmt.Sprintf("%s wraps the engine's %s widget.", w.Name, w.Class)
	}

	b.WriteString("\n// ============================================================================\n")
	fmt.Fprintf(&b, "// %s\n", w.Name)
	b.WriteString("// ============================================================================\n\n")

	for _, line := range wrap(doc, 76) {
		fmt.Fprintf(&b, "// %s\n", line)
	}
	fmt.Fprintf(&b, "type %s[C any] struct {\n\t*Obj[C]\n}\n\n", w.Name)

	fmt.Fprintf(&b, "// New%s creates a %s under parent.\n", w.Name, w.Name)
	fmt.Fprintf(&b, "func New%s[C any](parent *Obj[C]) *%s[C] {\n", w.Name, w.Name)
	fmt.Fprintf(&b, "\tw := &%s[C]{Obj: newWidget(parent, %q)}\n", w.Name, w.Class)
	if len(w.AddFlags) > 0 {
		fmt.Fprintf(&b, "\tw.AddFlag(%s)\n", strings.Join(w.AddFlags, " | "))
	}
	b.WriteString("\treturn w\n}\n\n")

	b.WriteString("// Apply calls fn with w and returns w.\n")
	fmt.Fprintf(&b, "func (w *%s[C]) Apply(fn func(*%s[C])) *%s[C] {\n", w.Name, w.Name, w.Name)
	b.WriteString("\tfn(w)\n\treturn w\n}\n")
	return b.String()
}

// wrap splits text into lines of at most width bytes at spaces.
func wrap(text string, width int) []string {
	var lines []string
	var cur strings.Builder
	for _, word := range strings.Fields(text) {
		if cur.Len() > 0 && cur.Len()+1+len(word) > width {
			lines = append(lines, cur.String())
			cur.Reset()
		}
		if cur.Len() > 0 {
			cur.WriteByte(' ')
		}
		cur.WriteString(word)
	}
	if cur.Len() > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}

// Generate renders the manifest at path into its output file, which is
// resolved relative to the manifest. It returns the written path.
func Generate(path string) (string, error) {
	m, err := LoadManifest(path)
	if err != nil {
		return "", err
	}
	src, err := Render(m)
	if err != nil {
		return "", err
	}
	out := m.Output
	if !filepath.IsAbs(out) {
		out = filepath.Join(filepath.Dir(path), out)
	}
	if err := os.WriteFile(out, src, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", out, err)
	}
	return out, nil
}
