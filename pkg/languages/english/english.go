// Package english provides the English language installation.
// Importing it for side effects registers the language:
//
//	import _ "github.com/hsteffens/SimpleNLG-EnPt-sub001/pkg/languages/english"
package english

import (
	"github.com/hsteffens/SimpleNLG-EnPt-sub001/pkg/core"
	"github.com/hsteffens/SimpleNLG-EnPt-sub001/pkg/language"
	xlanguage "golang.org/x/text/language"
)

// Name is the registry name of the language.
const Name = "english"

func init() {
	language.Register(English)
}

// English is the English language.
var English = language.NewLanguage(Name).
	Tag(xlanguage.English).
	Suffixer(Suffixer).
	CategorySuffixes(core.CategoryNoun, Plural).
	CategorySuffixes(core.CategoryAdjective, Comparative, Superlative).
	CategorySuffixes(core.CategoryVerb, PresentThird, Past, PastParticiple, PresentParticiple).
	Interrogatives(Interrogatives...).
	Irregulars(Irregulars...).
	Formatter(Formatter).
	Build()
