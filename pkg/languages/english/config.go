package english

import (
	"github.com/hsteffens/SimpleNLG-EnPt-sub001/pkg/core"
	"github.com/hsteffens/SimpleNLG-EnPt-sub001/pkg/language"
	"github.com/hsteffens/SimpleNLG-EnPt-sub001/pkg/orthography"
)

// Regular suffixes.
const (
	Plural            = "s"
	Comparative       = "er"
	Superlative       = "est"
	PresentThird      = "s"
	Past              = "ed"
	PastParticiple    = "ed"
	PresentParticiple = "ing"
)

// Interrogatives is the English question-word table in declaration order.
// "what", "who" and "how" are shared by several members; lookup by word
// returns the first one declared.
var Interrogatives = []core.InterrogativeType{
	{Name: "HOW", Word: "how"},
	{Name: "WHAT_OBJECT", Word: "what", Role: core.RoleObject},
	{Name: "WHAT_SUBJECT", Word: "what", Role: core.RoleSubject},
	{Name: "WHERE", Word: "where"},
	{Name: "WHO_INDIRECT_OBJECT", Word: "who", Role: core.RoleIndirectObject},
	{Name: "WHO_OBJECT", Word: "who", Role: core.RoleObject},
	{Name: "WHO_SUBJECT", Word: "who", Role: core.RoleSubject},
	{Name: "WHY", Word: "why"},
	{Name: "YES_NO", Word: "yes/no", YesNo: true},
	{Name: "HOW_MANY", Word: "how many"},
	{Name: "HOW_PREDICATE", Word: "how"},
}

// Irregulars are the closed-class verb forms English cannot derive by suffixation.
var Irregulars = []language.Irregular{
	{Base: "be", Category: core.CategoryVerb, Forms: []string{"am", "is", "are", "was", "were", "been", "being"}},
	{Base: "have", Category: core.CategoryVerb, Forms: []string{"has", "had", "having"}},
	{Base: "do", Category: core.CategoryVerb, Forms: []string{"does", "did", "done"}},
	{Base: "go", Category: core.CategoryVerb, Forms: []string{"goes", "went", "gone"}},
}

// Formatter wraps appositive premodifier runs in commas and joins
// postmodifiers as a list ending in "and".
var Formatter = orthography.Formatter{
	Premodifiers:  orthography.ModeAppositive,
	Postmodifiers: orthography.ModeList,
	Separator:     ", ",
	Conjunction:   " and ",
}
