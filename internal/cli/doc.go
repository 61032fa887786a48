// Package cli defines the Cobra command tree for cargo-bounded-context. The
// root command only loads configuration, sets up logging and rejects
// anything that is not "add <name>"; the add command delegates to the
// scaffold package and formats the outcome.
package cli
