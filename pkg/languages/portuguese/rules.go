package portuguese

import (
	"strings"

	"github.com/hsteffens/SimpleNLG-EnPt-sub001/pkg/morph"
)

// Suffixer is the Portuguese spelling rule chain.
var Suffixer = morph.NewSuffixer("portuguese",
	dropInfinitive,
	elideFinalVowel,
	pluralAlternation,
	morph.Concat,
)

// dropInfinitive strips the -ar/-er/-ir ending before a vowel-initial
// inflection: falar+ado -> falado, comer+eu -> comeu.
func dropInfinitive(base, suffix string) string {
	if morph.EndsWithAny(base, "ar", "er", "ir") && morph.StartsWithAny(suffix, "a", "e", "i", "o", "u") {
		return base[:len(base)-2]
	}
	return base
}

// elideFinalVowel drops an unstressed final vowel before i/í:
// bonito+íssimo -> bonitíssimo.
func elideFinalVowel(base, suffix string) string {
	if morph.EndsWithAny(base, "a", "e", "o") && morph.StartsWithAny(suffix, "i", "í") {
		return base[:len(base)-1]
	}
	return base
}

// pluralAlternation applies the stem changes taken by the plural "s":
// limão -> limões, homem -> homens, animal -> animais, mar -> mares.
func pluralAlternation(base, suffix string) string {
	if !strings.HasPrefix(suffix, "s") {
		return base
	}
	switch {
	case strings.HasSuffix(base, "ão"):
		return morph.ReplaceEnding(base, "ão", "õe")
	case strings.HasSuffix(base, "m"):
		return morph.ReplaceEnding(base, "m", "n")
	case strings.HasSuffix(base, "l"):
		return morph.ReplaceEnding(base, "l", "i")
	case morph.EndsWithAny(base, "r", "z", "s"):
		return base + "e"
	default:
		return base
	}
}
