package core

import "strings"

// Role is the discourse function a question word targets.
type Role int

const (
	// RoleNone means the question targets no nominal constituent (how, why, yes/no).
	RoleNone Role = iota
	// RoleSubject means the question word stands for the subject.
	RoleSubject
	// RoleObject means the question word stands for the direct object.
	RoleObject
	// RoleIndirectObject means the question word stands for the indirect object.
	RoleIndirectObject
)

// String returns the string representation of the role.
func (r Role) String() string {
	switch r {
	case RoleNone:
		return "none"
	case RoleSubject:
		return "subject"
	case RoleObject:
		return "object"
	case RoleIndirectObject:
		return "indirect_object"
	default:
		return "unknown"
	}
}

// InterrogativeType is one member of a language's closed enumeration of
// question types. Values are declared once per language and never change.
type InterrogativeType struct {
	// Name is the member identifier, e.g. "WHAT_OBJECT".
	Name string
	// Word is the canonical question word, e.g. "what".
	Word string
	// Role is the discourse function the question targets.
	Role Role
	// YesNo marks the polar question member.
	YesNo bool
}

// TargetsObjectRole reports whether the question seeks the direct object.
func (it *InterrogativeType) TargetsObjectRole() bool {
	return it != nil && it.Role == RoleObject
}

// TargetsIndirectObjectRole reports whether the question seeks the indirect object.
func (it *InterrogativeType) TargetsIndirectObjectRole() bool {
	return it != nil && it.Role == RoleIndirectObject
}

// IsYesNo reports whether this is the polar (yes/no) member.
func (it *InterrogativeType) IsYesNo() bool {
	return it != nil && it.YesNo
}

// Matches reports whether word is exactly this member's canonical word,
// ignoring case. Surrounding spaces are not trimmed.
func (it *InterrogativeType) Matches(word string) bool {
	return it != nil && strings.EqualFold(it.Word, word)
}

// String returns the member name.
func (it *InterrogativeType) String() string {
	if it == nil {
		return "none"
	}
	return it.Name
}
