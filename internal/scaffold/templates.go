package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"

	"github.com/bcforge/cargo-bounded-context/internal/layout"
)

//go:embed scaffolds/*.tmpl
var scaffoldFS embed.FS

var templates = template.Must(template.ParseFS(scaffoldFS, "scaffolds/*.tmpl"))

const (
	manifestTemplate = "Cargo.toml.tmpl"
	moduleTemplate   = "module.rs.tmpl"
)

// ScaffoldData holds the variables available to the manifest template.
type ScaffoldData struct {
	Name    string // Package name, also the root directory
	Version string // Semver, always layout.PackageVersion
	Edition string // Rust edition, always layout.Edition
}

// NewScaffoldData creates a ScaffoldData for the named bounded context.
func NewScaffoldData(name string) *ScaffoldData {
	return &ScaffoldData{
		Name:    name,
		Version: layout.PackageVersion,
		Edition: layout.Edition,
	}
}

type moduleData struct {
	Modules     []string
	Placeholder string
}

// renderManifest renders Cargo.toml.
func renderManifest(data *ScaffoldData) ([]byte, error) {
	return render(manifestTemplate, data)
}

// renderModule renders a mod.rs or lib.rs declaring mods, or the
// placeholder line when mods is empty.
func renderModule(mods []string) ([]byte, error) {
	return render(moduleTemplate, moduleData{
		Modules:     mods,
		Placeholder: layout.PlaceholderLine,
	})
}

func render(name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}
