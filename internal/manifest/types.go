package manifest

// CargoManifest is the subset of a Cargo.toml the scaffolder writes.
type CargoManifest struct {
	Package      Package        `toml:"package" json:"package"`
	Dependencies map[string]any `toml:"dependencies" json:"dependencies"`
}

// Package is the [package] table.
type Package struct {
	Name    string `toml:"name" json:"name"`
	Version string `toml:"version" json:"version"`
	Edition string `toml:"edition" json:"edition"`
}
