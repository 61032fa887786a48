// Package layout holds the fixed shape of a bounded context crate: the
// directory tree, which submodules each layer's mod.rs re-exports, and the
// names of the files the scaffolder writes. Everything here is static data
// and never touches the filesystem.
package layout
