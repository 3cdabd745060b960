// Package portuguese provides the Portuguese language installation.
package portuguese

import (
	"github.com/hsteffens/SimpleNLG-EnPt-sub001/pkg/core"
	"github.com/hsteffens/SimpleNLG-EnPt-sub001/pkg/language"
	xlanguage "golang.org/x/text/language"
)

// Name is the registry name of the language.
const Name = "portuguese"

func init() {
	language.Register(Portuguese)
}

// Portuguese is the Portuguese language. Verbs take the suffixes of their
// conjugation class; nouns and adjectives agree in number with "s".
var Portuguese = language.NewLanguage(Name).
	Tag(xlanguage.Portuguese).
	Suffixer(Suffixer).
	CategorySuffixes(core.CategoryNoun, Plural).
	CategorySuffixes(core.CategoryAdjective, Plural, Superlative).
	CategorySuffixes(core.CategoryVerb, FirstConjugation...).
	VerbSuffixes(verbSuffixes).
	Interrogatives(Interrogatives...).
	Irregulars(Irregulars...).
	Formatter(Formatter).
	Build()
