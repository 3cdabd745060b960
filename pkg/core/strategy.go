package core

// Strategy is the per-language capability set of the realisation core.
// Implementations are immutable after construction and safe for concurrent use.
type Strategy interface {
	// Name returns the language identifier (e.g. "english").
	Name() string
	// Attach joins a suffix to a base form, applying spelling rules.
	Attach(base, suffix string) string
	// Variants returns the base form plus the regular suffixed forms of an
	// entry. Irregular forms are never included; they are added on top of
	// these by the lexicon's Variants.
	Variants(entry WordEntry) VariantSet
	// FormatPremodifiers renders the children placed before a head.
	FormatPremodifiers(children []Element) string
	// FormatPostmodifiers renders the children placed after a head.
	FormatPostmodifiers(children []Element) string
	// Classify returns the interrogative type for a question word, or nil.
	Classify(word string) *InterrogativeType
}
