// Package lexicon provides the immutable word store used by the variant
// generator.
//
// A lexicon is built in two phases. Entries are added and irregular forms
// registered on a Builder; Build then computes every entry's variants once
// and returns a Lexicon snapshot that is never mutated again. Readers may
// use the snapshot from any number of goroutines.
package lexicon

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/hsteffens/SimpleNLG-EnPt-sub001/pkg/core"
	"github.com/hsteffens/SimpleNLG-EnPt-sub001/pkg/language"
	"golang.org/x/sync/errgroup"
)

// Builder collects entries and irregular forms for one language.
// A Builder is not safe for concurrent use.
type Builder struct {
	lang       *language.Language
	entries    []core.WordEntry
	seen       map[string]int
	irregulars []language.Irregular
	builtins   bool
	logger     *slog.Logger
}

// NewBuilder creates a builder for lang. The language's built-in
// irregulars are applied unless WithoutBuiltins is called.
func NewBuilder(lang *language.Language) *Builder {
	return &Builder{
		lang:     lang,
		seen:     make(map[string]int),
		builtins: true,
		logger:   slog.New(slog.DiscardHandler),
	}
}

// WithLogger sets the logger used while building.
func (b *Builder) WithLogger(logger *slog.Logger) *Builder {
	if logger != nil {
		b.logger = logger
	}
	return b
}

// WithoutBuiltins skips the language's built-in irregular forms.
func (b *Builder) WithoutBuiltins() *Builder {
	b.builtins = false
	return b
}

// Add adds entries. An entry with the same base and category as an earlier
// one replaces it in place.
func (b *Builder) Add(entries ...core.WordEntry) *Builder {
	for _, e := range entries {
		key := e.Key()
		if i, ok := b.seen[key]; ok {
			b.entries[i] = e
			continue
		}
		b.seen[key] = len(b.entries)
		b.entries = append(b.entries, e)
	}
	return b
}

// RegisterIrregular associates irregular surface forms with an entry.
// The entry must have been added by the time Build is called.
func (b *Builder) RegisterIrregular(irr ...language.Irregular) *Builder {
	b.irregulars = append(b.irregulars, irr...)
	return b
}

// Len returns the number of distinct entries added so far.
func (b *Builder) Len() int {
	return len(b.entries)
}

// Build computes the variants of every entry and returns the snapshot.
// Variant generation runs in parallel; ctx cancels it.
func (b *Builder) Build(ctx context.Context) (*Lexicon, error) {
	irregulars, err := b.collectIrregulars()
	if err != nil {
		return nil, err
	}

	entries := make([]core.WordEntry, len(b.entries))
	copy(entries, b.entries)
	variants := make([]core.VariantSet, len(entries))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, entry := range entries {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			variants[i] = generate(b.lang, entry, irregulars[entry.Key()])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("build lexicon: %w", err)
	}

	lex := &Lexicon{
		lang:     b.lang,
		entries:  entries,
		byKey:    make(map[string]int, len(entries)),
		variants: variants,
		index:    make(map[string][]int),
	}
	for i, entry := range entries {
		lex.byKey[entry.Key()] = i
		for _, form := range variants[i].Sorted() {
			lex.index[form] = append(lex.index[form], i)
		}
	}

	b.logger.Debug("lexicon built",
		"language", b.lang.Name(),
		"entries", len(entries),
		"forms", len(lex.index),
		"irregulars", len(irregulars))
	return lex, nil
}

// collectIrregulars groups built-in and registered irregulars by entry key.
// Built-ins for absent entries are skipped; registered ones are an error.
func (b *Builder) collectIrregulars() (map[string][]language.Irregular, error) {
	out := make(map[string][]language.Irregular)

	if b.builtins {
		for _, irr := range b.lang.Irregulars() {
			key := core.NewWordEntry(irr.Base, irr.Category).Key()
			if _, ok := b.seen[key]; !ok {
				b.logger.Debug("skipping built-in irregular without entry", "base", irr.Base, "category", irr.Category)
				continue
			}
			out[key] = append(out[key], irr)
		}
	}

	for _, irr := range b.irregulars {
		key := core.NewWordEntry(irr.Base, irr.Category).Key()
		if _, ok := b.seen[key]; !ok {
			return nil, &UnknownEntryError{Base: irr.Base, Category: irr.Category}
		}
		out[key] = append(out[key], irr)
	}
	return out, nil
}

// generate returns the variants of entry: the regular forms of the language
// followed by the irregular ones. An exclusive irregular drops the regular
// forms, keeping only the base.
func generate(lang *language.Language, entry core.WordEntry, irregulars []language.Irregular) core.VariantSet {
	exclusive := false
	for _, irr := range irregulars {
		if irr.Exclusive {
			exclusive = true
			break
		}
	}

	var set core.VariantSet
	if exclusive {
		set = core.NewVariantSet(entry.Base)
	} else {
		set = lang.Variants(entry)
	}
	for _, irr := range irregulars {
		set.Add(irr.Forms...)
	}
	return set
}
