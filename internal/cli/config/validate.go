package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/hsteffens/SimpleNLG-EnPt-sub001/pkg/language"
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if _, err := language.Resolve(c.Language); err != nil {
		return fmt.Errorf("invalid language: %w", err)
	}

	switch c.Output {
	case OutputText, OutputJSON:
	default:
		return fmt.Errorf("unknown output format %q, must be one of: text, json", c.Output)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return fmt.Errorf("unknown log level %q, must be one of: debug, info, warn, error", c.LogLevel)
	}

	if strings.TrimSpace(c.Lexicon) != c.Lexicon {
		return fmt.Errorf("lexicon path %q has surrounding whitespace", c.Lexicon)
	}
	return nil
}
