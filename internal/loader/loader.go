// Package loader reads lexicon sources from disk: YAML documents and
// SQLite databases.
package loader

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/hsteffens/SimpleNLG-EnPt-sub001/pkg/core"
	"github.com/hsteffens/SimpleNLG-EnPt-sub001/pkg/language"
	"github.com/hsteffens/SimpleNLG-EnPt-sub001/pkg/lexicon"
)

// Source is the content of one lexicon file.
type Source struct {
	// ID identifies a stored lexicon. Only SQLite sources carry one.
	ID string
	// Language names the language the entries belong to. Empty means any.
	Language   string
	Entries    []core.WordEntry
	Irregulars []language.Irregular
}

// Builder returns a lexicon builder for lang seeded with the source.
func (s *Source) Builder(lang *language.Language) *lexicon.Builder {
	return lexicon.NewBuilder(lang).
		Add(s.Entries...).
		RegisterIrregular(s.Irregulars...)
}

// LoadError represents an error reading a lexicon source.
type LoadError struct {
	File    string
	Message string
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: %s", e.File, e.Message)
}

// Load reads a lexicon source, choosing the format from the file extension.
func Load(ctx context.Context, path string, logger *slog.Logger) (*Source, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	var (
		src *Source
		err error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		src, err = LoadYAML(path)
	case ".db", ".sqlite", ".sqlite3":
		src, err = LoadSQLite(ctx, path)
	default:
		return nil, &LoadError{File: path, Message: fmt.Sprintf("unsupported lexicon format %q (want .yaml, .yml, .db, .sqlite)", ext)}
	}
	if err != nil {
		return nil, err
	}

	logger.Debug("lexicon source loaded",
		"file", path,
		"language", src.Language,
		"entries", len(src.Entries),
		"irregulars", len(src.Irregulars))
	return src, nil
}

// Build loads path and builds a lexicon for lang. The source's declared
// language, when set, must resolve to lang.
func Build(ctx context.Context, path string, lang *language.Language, logger *slog.Logger) (*lexicon.Lexicon, error) {
	src, err := Load(ctx, path, logger)
	if err != nil {
		return nil, err
	}
	if src.Language != "" {
		declared, err := language.Resolve(src.Language)
		if err != nil {
			return nil, &LoadError{File: path, Message: err.Error()}
		}
		if declared != lang {
			return nil, &LoadError{
				File:    path,
				Message: fmt.Sprintf("lexicon is for %s, not %s", declared.Name(), lang.Name()),
			}
		}
	}

	lex, err := src.Builder(lang).WithLogger(logger).Build(ctx)
	if err != nil {
		return nil, &LoadError{File: path, Message: err.Error()}
	}
	return lex, nil
}

// parseCategory converts a stored category name, rejecting unknown ones.
func parseCategory(file, s string) (core.Category, error) {
	cat, ok := core.ParseCategory(s)
	if !ok {
		return "", &LoadError{File: file, Message: fmt.Sprintf("unknown category %q, must be one of: %v", s, core.Categories)}
	}
	return cat, nil
}
