// Package config provides configuration management for the nlg CLI.
package config

import "log/slog"

// Config holds all CLI configuration options.
type Config struct {
	// Language is the target language name or BCP 47 tag.
	Language string `koanf:"language"`
	// Lexicon is the path of a YAML or SQLite lexicon. Empty means none.
	Lexicon string `koanf:"lexicon"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `koanf:"log_level"`
	// Output is the output format: text or json.
	Output string `koanf:"output"`
}

// Default configuration values.
const (
	DefaultLanguage = "english"
	DefaultLogLevel = "info"
	DefaultOutput   = OutputText
)

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// EnvPrefix is the prefix of environment variables read by LoadConfig.
const EnvPrefix = "NLG_"

// ConfigFileNames are the file names searched in the working directory.
var ConfigFileNames = []string{"nlg.yaml", "nlg.yml"}

// SlogLevel converts LogLevel to a slog level. Unknown values map to info.
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// IsJSON reports whether JSON output was requested.
func (c *Config) IsJSON() bool {
	return c.Output == OutputJSON
}
