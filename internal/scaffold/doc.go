// Package scaffold generates a bounded context crate on disk. It powers the
// "add" command: a pre-existence check, the fixed layered directory tree
// with a mod.rs per directory, a Cargo.toml rendered from an embedded
// template, and src/lib.rs wiring the domain, application and infrastructure
// layers together.
package scaffold
