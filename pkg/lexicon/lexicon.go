package lexicon

import (
	"maps"
	"strings"

	"github.com/hsteffens/SimpleNLG-EnPt-sub001/pkg/core"
	"github.com/hsteffens/SimpleNLG-EnPt-sub001/pkg/language"
)

// Lexicon is an immutable snapshot of entries and their surface forms.
type Lexicon struct {
	lang     *language.Language
	entries  []core.WordEntry
	byKey    map[string]int
	variants []core.VariantSet
	// index maps every surface form to the entries that produce it, in
	// insertion order.
	index map[string][]int
}

// Language returns the language the lexicon was built for.
func (l *Lexicon) Language() *language.Language {
	return l.lang
}

// Len returns the number of entries.
func (l *Lexicon) Len() int {
	return len(l.entries)
}

// Entries returns all entries in insertion order.
func (l *Lexicon) Entries() []core.WordEntry {
	out := make([]core.WordEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Entry returns the entry with the given base form and category.
func (l *Lexicon) Entry(base string, cat core.Category) (core.WordEntry, bool) {
	i, ok := l.byKey[core.NewWordEntry(base, cat).Key()]
	if !ok {
		return core.WordEntry{}, false
	}
	return l.entries[i], true
}

// Variants returns the surface forms of entry: its base form, its regular
// forms and any irregular forms. The result is a copy the caller may modify.
// Entries not in the lexicon get the language's regular forms plus its
// built-in irregulars.
func (l *Lexicon) Variants(entry core.WordEntry) core.VariantSet {
	if i, ok := l.byKey[entry.Key()]; ok {
		return maps.Clone(l.variants[i])
	}
	var irregulars []language.Irregular
	if irr, ok := l.lang.Irregular(entry); ok {
		irregulars = append(irregulars, irr)
	}
	return generate(l.lang, entry, irregulars)
}

// Lookup returns the entries that produce form. An exact match is tried
// first, then the lower-cased form.
func (l *Lexicon) Lookup(form string) []core.WordEntry {
	idx, ok := l.index[form]
	if !ok {
		idx = l.index[strings.ToLower(form)]
	}
	out := make([]core.WordEntry, 0, len(idx))
	for _, i := range idx {
		out = append(out, l.entries[i])
	}
	return out
}

// LookupCategory returns the first entry of category cat that produces form.
func (l *Lexicon) LookupCategory(form string, cat core.Category) (core.WordEntry, bool) {
	for _, e := range l.Lookup(form) {
		if e.Category == cat {
			return e, true
		}
	}
	return core.WordEntry{}, false
}

// Forms returns the number of distinct surface forms indexed.
func (l *Lexicon) Forms() int {
	return len(l.index)
}
