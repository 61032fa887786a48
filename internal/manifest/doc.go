// Package manifest parses and validates the Cargo.toml written for a bounded
// context. Validation converts the TOML document to JSON and checks it
// against an embedded JSON Schema, then checks that the package version is
// strict semver.
package manifest
