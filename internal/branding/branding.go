// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into the
// binary with //go:embed, so a fork can rename the tool without touching Go
// code.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName         string `yaml:"cli_name"`
	CargoSubcommand string `yaml:"cargo_subcommand"`
	DisplayName     string `yaml:"display_name"`
	Description     string `yaml:"description"`
	HomeDir         string `yaml:"home_dir"`
	EnvPrefix       string `yaml:"env_prefix"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing or empty.
		defaults = brand{
			CLIName:         "cargo-bounded-context",
			CargoSubcommand: "bounded-context",
			DisplayName:     "Bounded Context",
			Description:     "Scaffold layered bounded context crates",
			HomeDir:         ".bounded-context",
			EnvPrefix:       "BCTX",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the binary name (e.g., "cargo-bounded-context").
func CLIName() string { load(); return defaults.CLIName }

// CargoSubcommand returns the name cargo passes as the first argument when
// the binary runs as "cargo bounded-context".
func CargoSubcommand() string { load(); return defaults.CargoSubcommand }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".bounded-context").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "BCTX").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// Invocation returns how users type the command through cargo,
// e.g. "cargo bounded-context".
func Invocation() string { load(); return "cargo " + defaults.CargoSubcommand }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("log_level") → "BCTX_LOG_LEVEL".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
