// Package language provides the per-language strategy used by the
// realisation core and a process-wide registry of installed languages.
//
// A Language bundles the suffixation rule chain, the regular suffix sets per
// lexical category, the closed interrogative table, the built-in irregular
// forms and the punctuation choices for modifier positions. Concrete
// languages are registered from pkg/languages/*/ packages.
package language

import (
	"slices"

	"github.com/hsteffens/SimpleNLG-EnPt-sub001/pkg/core"
	"github.com/hsteffens/SimpleNLG-EnPt-sub001/pkg/morph"
	"github.com/hsteffens/SimpleNLG-EnPt-sub001/pkg/orthography"
	"golang.org/x/text/language"
)

// Irregular lists the surface forms of one closed-class word that the
// suffixation engine cannot produce.
type Irregular struct {
	Base     string
	Category core.Category
	Forms    []string
	// Exclusive irregulars replace the regular forms of the entry instead of
	// being added to them. It is opt-in; no built-in irregular sets it.
	Exclusive bool
}

// Matches reports whether the irregular applies to entry.
func (irr Irregular) Matches(entry core.WordEntry) bool {
	return irr.Base == entry.Base && irr.Category == entry.Category
}

// Language is one installed target language.
// It is immutable after Build and safe for concurrent use.
type Language struct {
	name string
	tag  language.Tag

	suffixer         *morph.Suffixer
	categorySuffixes map[core.Category][]string
	verbSuffixes     func(base string) []string
	interrogatives   []*core.InterrogativeType
	irregulars       []Irregular
	formatter        orthography.Formatter
}

var _ core.Strategy = (*Language)(nil)

// Name returns the language identifier.
func (l *Language) Name() string { return l.name }

// Tag returns the BCP 47 tag of the language.
func (l *Language) Tag() language.Tag { return l.tag }

// Attach joins suffix to base using the language's spelling rules.
func (l *Language) Attach(base, suffix string) string {
	return l.suffixer.Attach(base, suffix)
}

// Suffixes returns the regular suffix set for an entry: the plural for
// nouns, comparative and superlative for adjectives, and the verb forms
// selected for the base. Every other category has none.
func (l *Language) Suffixes(entry core.WordEntry) []string {
	switch entry.Category {
	case core.CategoryNoun, core.CategoryAdjective:
		return l.categorySuffixes[entry.Category]
	case core.CategoryVerb:
		if l.verbSuffixes != nil {
			if s := l.verbSuffixes(entry.Base); s != nil {
				return s
			}
		}
		return l.categorySuffixes[core.CategoryVerb]
	default:
		return nil
	}
}

// Variants returns the base form plus every regularly suffixed form.
// Irregular forms are not included; lexicon.Lexicon.Variants adds them.
func (l *Language) Variants(entry core.WordEntry) core.VariantSet {
	set := core.NewVariantSet(entry.Base)
	for _, suffix := range l.Suffixes(entry) {
		set.Add(l.Attach(entry.Base, suffix))
	}
	return set
}

// Irregulars returns the built-in irregular forms of the language.
func (l *Language) Irregulars() []Irregular {
	return slices.Clone(l.irregulars)
}

// Irregular returns the built-in irregular for entry, if any.
func (l *Language) Irregular(entry core.WordEntry) (Irregular, bool) {
	for _, irr := range l.irregulars {
		if irr.Matches(entry) {
			return irr, true
		}
	}
	return Irregular{}, false
}

// Formatter returns a copy of the language's modifier formatter.
func (l *Language) Formatter() orthography.Formatter {
	return l.formatter
}

// FormatPremodifiers renders the children placed before a head.
func (l *Language) FormatPremodifiers(children []core.Element) string {
	return l.formatter.FormatPremodifiers(children)
}

// FormatPostmodifiers renders the children placed after a head.
func (l *Language) FormatPostmodifiers(children []core.Element) string {
	return l.formatter.FormatPostmodifiers(children)
}

// Sentence capitalises text and closes it with the mark for it.
func (l *Language) Sentence(text string, it *core.InterrogativeType) string {
	return orthography.Sentence(text, l.tag, it)
}

// ---------- Builder ----------

// Builder provides a fluent API for constructing languages.
type Builder struct {
	lang *Language
}

// NewLanguage creates a new language builder with the given name.
// Without further configuration the language concatenates suffixes, has no
// suffix sets, no interrogatives and formats both positions as appositive runs.
func NewLanguage(name string) *Builder {
	return &Builder{
		lang: &Language{
			name:             name,
			tag:              language.Und,
			categorySuffixes: make(map[core.Category][]string),
		},
	}
}

// Tag sets the BCP 47 tag of the language.
func (b *Builder) Tag(tag language.Tag) *Builder {
	b.lang.tag = tag
	return b
}

// Suffixer sets the spelling rule chain used by Attach.
func (b *Builder) Suffixer(s *morph.Suffixer) *Builder {
	b.lang.suffixer = s
	return b
}

// CategorySuffixes sets the regular suffixes for one category.
// Only noun, adjective and verb suffixes are consulted.
func (b *Builder) CategorySuffixes(cat core.Category, suffixes ...string) *Builder {
	b.lang.categorySuffixes[cat] = slices.Clone(suffixes)
	return b
}

// VerbSuffixes sets a selector that picks the verb suffixes from the base,
// for languages whose conjugation class is visible in the infinitive.
// A nil result falls back to the verb CategorySuffixes.
func (b *Builder) VerbSuffixes(fn func(base string) []string) *Builder {
	b.lang.verbSuffixes = fn
	return b
}

// Interrogatives appends members to the interrogative table.
// Declaration order decides which member wins for a shared question word.
func (b *Builder) Interrogatives(types ...core.InterrogativeType) *Builder {
	for i := range types {
		it := types[i]
		b.lang.interrogatives = append(b.lang.interrogatives, &it)
	}
	return b
}

// Irregulars appends built-in irregular forms.
func (b *Builder) Irregulars(irr ...Irregular) *Builder {
	for _, i := range irr {
		i.Forms = slices.Clone(i.Forms)
		b.lang.irregulars = append(b.lang.irregulars, i)
	}
	return b
}

// Formatter sets the punctuation choices for both modifier positions.
func (b *Builder) Formatter(f orthography.Formatter) *Builder {
	b.lang.formatter = f
	return b
}

// Build returns the constructed language.
func (b *Builder) Build() *Language {
	if b.lang.suffixer == nil {
		b.lang.suffixer = morph.NewSuffixer(b.lang.name, morph.Concat)
	}
	return b.lang
}
