package portuguese

import (
	"strings"

	"github.com/hsteffens/SimpleNLG-EnPt-sub001/pkg/core"
	"github.com/hsteffens/SimpleNLG-EnPt-sub001/pkg/language"
	"github.com/hsteffens/SimpleNLG-EnPt-sub001/pkg/orthography"
)

// Regular suffixes shared by every class.
const (
	Plural      = "s"
	Superlative = "íssimo"
)

// Verb suffixes per conjugation class: present 3rd person singular, past
// (pretérito perfeito) 3rd person singular, past participle, gerund.
var (
	FirstConjugation  = []string{"a", "ou", "ado", "ando"}
	SecondConjugation = []string{"e", "eu", "ido", "endo"}
	ThirdConjugation  = []string{"e", "iu", "ido", "indo"}
)

// verbSuffixes selects the conjugation class from the infinitive ending.
func verbSuffixes(base string) []string {
	switch {
	case strings.HasSuffix(base, "ar"):
		return FirstConjugation
	case strings.HasSuffix(base, "er"):
		return SecondConjugation
	case strings.HasSuffix(base, "ir"):
		return ThirdConjugation
	default:
		return nil
	}
}

// Interrogatives is the Portuguese question-word table in declaration order.
var Interrogatives = []core.InterrogativeType{
	{Name: "COMO", Word: "como"},
	{Name: "QUE_OBJETO", Word: "que", Role: core.RoleObject},
	{Name: "QUE_SUJEITO", Word: "que", Role: core.RoleSubject},
	{Name: "ONDE", Word: "onde"},
	{Name: "QUEM_OBJETO_INDIRETO", Word: "a quem", Role: core.RoleIndirectObject},
	{Name: "QUEM_OBJETO", Word: "quem", Role: core.RoleObject},
	{Name: "QUEM_SUJEITO", Word: "quem", Role: core.RoleSubject},
	{Name: "PORQUE", Word: "por que"},
	{Name: "SIM_NAO", Word: "sim/não", YesNo: true},
	{Name: "QUANTOS", Word: "quantos"},
	{Name: "COMO_PREDICADO", Word: "como"},
}

// Irregulars are the closed-class verb forms added to the regular ones.
var Irregulars = []language.Irregular{
	{
		Base:     "ser",
		Category: core.CategoryVerb,
		Forms:    []string{"sou", "és", "é", "somos", "são", "era", "foi", "fui", "sido", "sendo"},
	},
	{
		Base:     "estar",
		Category: core.CategoryVerb,
		Forms:    []string{"estou", "está", "estamos", "estão", "estava", "esteve", "estive", "estado", "estando"},
	},
	{
		Base:     "ter",
		Category: core.CategoryVerb,
		Forms:    []string{"tenho", "tem", "temos", "têm", "tinha", "teve", "tive", "tido", "tendo"},
	},
	{
		Base:     "ir",
		Category: core.CategoryVerb,
		Forms:    []string{"vou", "vai", "vamos", "vão", "ia", "foi", "fui", "ido", "indo"},
	},
}

// Formatter joins premodifiers as a list ending in "e" and wraps
// appositive postmodifier runs in commas.
var Formatter = orthography.Formatter{
	Premodifiers:  orthography.ModeList,
	Postmodifiers: orthography.ModeAppositive,
	Separator:     ", ",
	Conjunction:   " e ",
}
