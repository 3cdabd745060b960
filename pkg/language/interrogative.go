package language

import "github.com/hsteffens/SimpleNLG-EnPt-sub001/pkg/core"

// Classify returns the first declared interrogative type whose question
// word matches word, ignoring case. It returns nil when nothing matches.
func (l *Language) Classify(word string) *core.InterrogativeType {
	for _, it := range l.interrogatives {
		if it.Matches(word) {
			return it
		}
	}
	return nil
}

// Interrogatives returns the interrogative table in declaration order.
func (l *Language) Interrogatives() []*core.InterrogativeType {
	out := make([]*core.InterrogativeType, len(l.interrogatives))
	copy(out, l.interrogatives)
	return out
}

// Interrogative returns the member with the given name, e.g. "WHAT_OBJECT".
func (l *Language) Interrogative(name string) (*core.InterrogativeType, bool) {
	for _, it := range l.interrogatives {
		if it.Name == name {
			return it, true
		}
	}
	return nil, false
}

// Classify resolves the named language and classifies word with its table.
// An unknown language classifies nothing.
func Classify(name, word string) *core.InterrogativeType {
	l, err := Resolve(name)
	if err != nil {
		return nil
	}
	return l.Classify(word)
}

// TargetsObjectRole reports whether it seeks the direct object.
func TargetsObjectRole(it *core.InterrogativeType) bool {
	return it.TargetsObjectRole()
}

// TargetsIndirectObjectRole reports whether it seeks the indirect object.
func TargetsIndirectObjectRole(it *core.InterrogativeType) bool {
	return it.TargetsIndirectObjectRole()
}
