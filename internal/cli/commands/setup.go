// Package commands implements the subcommands of the nlg CLI.
package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hsteffens/SimpleNLG-EnPt-sub001/internal/cli/config"
	"github.com/hsteffens/SimpleNLG-EnPt-sub001/internal/cli/output"
	"github.com/hsteffens/SimpleNLG-EnPt-sub001/internal/loader"
	"github.com/hsteffens/SimpleNLG-EnPt-sub001/pkg/core"
	"github.com/hsteffens/SimpleNLG-EnPt-sub001/pkg/language"
	"github.com/hsteffens/SimpleNLG-EnPt-sub001/pkg/lexicon"
	"github.com/spf13/cobra"
)

// ErrNoLexicon is returned by commands that need a lexicon when none is configured.
var ErrNoLexicon = errors.New("no lexicon configured\nHint: pass --lexicon or set lexicon in nlg.yaml")

// CommandContext bundles what every command needs.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
	Language *language.Language
}

// NewCommandContext resolves the configured language and builds the renderer.
func NewCommandContext(cmd *cobra.Command) (*CommandContext, error) {
	ctx := commandCtx(cmd)
	cfg := config.GetConfig(ctx)
	logger := config.GetLogger(ctx)

	lang, err := language.Resolve(cfg.Language)
	if err != nil {
		return nil, err
	}

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.Output)),
		Language: lang,
	}, nil
}

// Lexicon loads the configured lexicon. It returns ErrNoLexicon when none is set.
func (c *CommandContext) Lexicon(ctx context.Context) (*lexicon.Lexicon, error) {
	if c.Cfg.Lexicon == "" {
		return nil, ErrNoLexicon
	}
	lex, err := loader.Build(ctx, c.Cfg.Lexicon, c.Language, c.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to load lexicon: %w", err)
	}
	return lex, nil
}

// commandCtx returns the command context, never nil.
func commandCtx(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// parseCategoryFlag converts a --category value.
func parseCategoryFlag(s string) (core.Category, error) {
	cat, ok := core.ParseCategory(s)
	if !ok {
		return "", fmt.Errorf("unknown category %q, must be one of: %v", s, core.Categories)
	}
	return cat, nil
}
