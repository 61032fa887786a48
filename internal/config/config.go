package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/bcforge/cargo-bounded-context/internal/branding"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Keys recognized in config.yaml and as BCTX_* environment variables.
const (
	KeyStrictNames = "strict_names"
	KeyLogLevel    = "log_level"
	KeyLogFormat   = "log_format"
)

// Settings is the resolved user configuration.
type Settings struct {
	StrictNames bool
	LogLevel    string
	LogFormat   string
}

// Dir returns the path to the config directory (~/.bounded-context/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.bounded-context/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// Load reads settings from the config file at path (FilePath when empty)
// and the environment. A missing config file is not an error.
func Load(path string) (*Settings, error) {
	if path == "" {
		path = FilePath()
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType(fileType)
	v.SetEnvPrefix(branding.EnvPrefix())
	v.AutomaticEnv()

	v.SetDefault(KeyStrictNames, true)
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyLogFormat, "console")

	if err := v.ReadInConfig(); err != nil && !isNotExist(err) {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	s := &Settings{
		StrictNames: v.GetBool(KeyStrictNames),
		LogLevel:    strings.ToLower(v.GetString(KeyLogLevel)),
		LogFormat:   strings.ToLower(v.GetString(KeyLogFormat)),
	}
	if s.LogFormat != "console" && s.LogFormat != "json" {
		return nil, fmt.Errorf("invalid %s %q (config key or %s): must be 'console' or 'json'",
			KeyLogFormat, s.LogFormat, branding.EnvVar(KeyLogFormat))
	}
	return s, nil
}

// isNotExist reports whether viper failed only because the file is absent.
// With SetConfigFile viper surfaces the raw os error rather than
// ConfigFileNotFoundError.
func isNotExist(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)
}
