package layout

import "path"

// File names written into every bounded context.
const (
	ModuleFileName   = "mod.rs"
	ManifestFileName = "Cargo.toml"
	SourceDir        = "src"
	RootModuleFile   = SourceDir + "/lib.rs"

	// PlaceholderLine is the whole content of a mod.rs whose directory has
	// no submodules to re-export.
	PlaceholderLine = "// module"
)

// Manifest defaults stamped into every generated Cargo.toml.
const (
	PackageVersion = "0.1.0"
	Edition        = "2024"
)

// directories is ordered so that every parent precedes its children.
var directories = []string{
	"src/domain",
	"src/domain/aggregates",
	"src/domain/entities",
	"src/domain/errors",
	"src/domain/events",
	"src/domain/value_objects",
	"src/application",
	"src/application/commands",
	"src/application/errors",
	"src/application/policies",
	"src/application/ports",
	"src/application/ports/inbound",
	"src/application/ports/outbound",
	"src/application/results",
	"src/application/use_cases",
	"src/infrastructure",
	"src/infrastructure/persistence",
}

// submodules maps a directory's leaf name to the modules its mod.rs
// re-exports. Leaf names missing from the table get PlaceholderLine.
var submodules = map[string][]string{
	"domain":         {"aggregates", "entities", "errors", "events", "value_objects"},
	"application":    {"commands", "errors", "policies", "ports", "results", "use_cases"},
	"ports":          {"inbound", "outbound"},
	"infrastructure": {"persistence"},
}

// rootModules are declared by src/lib.rs, in this order.
var rootModules = []string{"domain", "application", "infrastructure"}

// Directories returns the slash-separated directory template, relative to
// the bounded context root. The caller owns the returned slice.
func Directories() []string {
	return append([]string(nil), directories...)
}

// Submodules returns the modules re-exported by a directory with the given
// leaf name, and false when the leaf name falls back to the placeholder.
// Matching is exact and case-sensitive.
func Submodules(leaf string) ([]string, bool) {
	mods, ok := submodules[leaf]
	if !ok {
		return nil, false
	}
	return append([]string(nil), mods...), true
}

// RootModules returns the top-level layers declared by src/lib.rs.
func RootModules() []string {
	return append([]string(nil), rootModules...)
}

// Leaf returns the final segment of a template directory.
func Leaf(dir string) string {
	return path.Base(dir)
}

// ModuleFile returns the slash-separated path of the mod.rs inside dir.
func ModuleFile(dir string) string {
	return path.Join(dir, ModuleFileName)
}
