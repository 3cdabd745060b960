package core

import (
	"sort"
	"strings"
)

// =============================================================================
// Category
// =============================================================================

// Category is the grammatical category of a lexical entry.
type Category string

// Grammatical categories. The set is closed.
const (
	CategoryNoun           Category = "noun"
	CategoryVerb           Category = "verb"
	CategoryAdjective      Category = "adjective"
	CategoryAdverb         Category = "adverb"
	CategoryPronoun        Category = "pronoun"
	CategoryPreposition    Category = "preposition"
	CategoryConjunction    Category = "conjunction"
	CategoryComplementiser Category = "complementiser"
	CategoryOther          Category = "other"
)

// Categories lists every category in declaration order.
var Categories = []Category{
	CategoryNoun,
	CategoryVerb,
	CategoryAdjective,
	CategoryAdverb,
	CategoryPronoun,
	CategoryPreposition,
	CategoryConjunction,
	CategoryComplementiser,
	CategoryOther,
}

// categoryAliases maps short forms accepted by ParseCategory.
var categoryAliases = map[string]Category{
	"n":              CategoryNoun,
	"v":              CategoryVerb,
	"adj":            CategoryAdjective,
	"adv":            CategoryAdverb,
	"pron":           CategoryPronoun,
	"prep":           CategoryPreposition,
	"conj":           CategoryConjunction,
	"comp":           CategoryComplementiser,
	"complementizer": CategoryComplementiser,
}

// String returns the canonical category name.
func (c Category) String() string {
	return string(c)
}

// ParseCategory converts a string to a Category.
// Returns the category and true if valid, or CategoryOther and false if invalid.
func ParseCategory(s string) (Category, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, c := range Categories {
		if string(c) == s {
			return c, true
		}
	}
	if c, ok := categoryAliases[s]; ok {
		return c, true
	}
	return CategoryOther, false
}

// =============================================================================
// Features
// =============================================================================

// Feature names a grammatical feature carried by a lexical entry.
type Feature string

// Well-known feature names populated by lexicon sources.
const (
	FeatureTense  Feature = "tense"
	FeaturePerson Feature = "person"
	FeatureNumber Feature = "number"
	FeatureGender Feature = "gender"
	FeatureForm   Feature = "form"
)

// Features is an open mapping of feature name to value.
type Features map[Feature]string

// =============================================================================
// WordEntry
// =============================================================================

// WordEntry is a base lexical entry.
// Entries are owned by the lexicon and never mutated once loaded.
type WordEntry struct {
	Base     string
	Category Category
	Features Features
}

// NewWordEntry creates an entry with no features.
func NewWordEntry(base string, cat Category) WordEntry {
	return WordEntry{Base: base, Category: cat}
}

// Feature returns the value of a feature and whether it is set.
func (e WordEntry) Feature(name Feature) (string, bool) {
	v, ok := e.Features[name]
	return v, ok
}

// Key returns the identity of the entry within a lexicon: base form and category.
func (e WordEntry) Key() string {
	return string(e.Category) + ":" + e.Base
}

// =============================================================================
// VariantSet
// =============================================================================

// VariantSet is the set of surface forms derived from one entry.
// Uniqueness is by string equality; the set has no ordering.
type VariantSet map[string]struct{}

// NewVariantSet returns a set seeded with the base form.
func NewVariantSet(base string) VariantSet {
	vs := make(VariantSet, 1)
	vs.Add(base)
	return vs
}

// Add inserts forms into the set.
func (vs VariantSet) Add(forms ...string) {
	for _, f := range forms {
		vs[f] = struct{}{}
	}
}

// Contains reports whether form is a member of the set.
func (vs VariantSet) Contains(form string) bool {
	_, ok := vs[form]
	return ok
}

// Len returns the number of distinct forms.
func (vs VariantSet) Len() int {
	return len(vs)
}

// Sorted returns the members in lexical order, for display.
func (vs VariantSet) Sorted() []string {
	out := make([]string, 0, len(vs))
	for f := range vs {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}
