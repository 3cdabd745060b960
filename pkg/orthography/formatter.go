// Package orthography assembles realised phrase children into punctuated
// surface strings and finishes sentences.
package orthography

import (
	"strings"

	"github.com/hsteffens/SimpleNLG-EnPt-sub001/pkg/core"
)

// Mode selects how a modifier position is punctuated.
type Mode int

const (
	// ModeAppositive joins children with spaces and wraps a fully
	// appositive run in a leading and trailing ", ".
	ModeAppositive Mode = iota
	// ModeList joins children as a separated list ending in a conjunction,
	// setting appositive children off with commas.
	ModeList
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeAppositive:
		return "appositive"
	case ModeList:
		return "list"
	default:
		return "unknown"
	}
}

// ParseMode converts a string to a Mode.
func ParseMode(s string) (Mode, bool) {
	switch strings.ToLower(s) {
	case "appositive":
		return ModeAppositive, true
	case "list":
		return ModeList, true
	default:
		return ModeAppositive, false
	}
}

// appositiveComma is the delimiter placed around appositive material.
const appositiveComma = ", "

// Formatter renders premodifier and postmodifier runs for one language.
// Each position carries its own Mode; there is no shared default.
type Formatter struct {
	// Premodifiers is the mode for children placed before the head.
	Premodifiers Mode
	// Postmodifiers is the mode for children placed after the head.
	Postmodifiers Mode
	// Separator is inserted between list items ("A, B").
	Separator string
	// Conjunction is inserted before the last of three or more items (" and ").
	Conjunction string
}

// FormatPremodifiers renders the children placed before a head.
func (f *Formatter) FormatPremodifiers(children []core.Element) string {
	return f.format(f.Premodifiers, children)
}

// FormatPostmodifiers renders the children placed after a head.
func (f *Formatter) FormatPostmodifiers(children []core.Element) string {
	return f.format(f.Postmodifiers, children)
}

func (f *Formatter) format(m Mode, children []core.Element) string {
	if len(children) == 0 {
		return ""
	}
	if m == ModeList {
		return f.realiseList(children)
	}
	return realiseAppositiveRun(children)
}

// AllAppositive reports whether every child in the sequence is appositive.
// An empty sequence is not appositive.
func AllAppositive(children []core.Element) bool {
	if len(children) == 0 {
		return false
	}
	for _, c := range children {
		if !c.Appositive() {
			return false
		}
	}
	return true
}

// realiseAppositiveRun joins the children with single spaces and, when the
// whole run is appositive, wraps it in one comma pair.
func realiseAppositiveRun(children []core.Element) string {
	wrap := AllAppositive(children)

	var b strings.Builder
	for _, c := range children {
		text := c.Realisation()
		if text == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(text)
	}
	if b.Len() == 0 {
		return ""
	}
	if wrap {
		return appositiveComma + b.String() + appositiveComma
	}
	return b.String()
}

// realiseList renders a separated list. Non-appositive neighbours are
// joined by Separator or Conjunction; a boundary next to an appositive
// child is marked by the appositive comma alone.
func (f *Formatter) realiseList(children []core.Element) string {
	items := listItems(children)
	if len(items) == 0 {
		return ""
	}

	var w tokenWriter
	for i, c := range items {
		if i > 0 && !items[i-1].Appositive() && !c.Appositive() {
			w.separator(boundarySeparator(i, len(items), f.Separator, f.Conjunction))
		}
		if c.Appositive() {
			w.separator(appositiveComma)
			w.text(c.Realisation())
			w.separator(appositiveComma)
			continue
		}
		w.text(c.Realisation())
	}
	return w.String()
}

// listItems drops children with no text, list children included, so that
// boundaries and the final conjunction are counted over real items only.
func listItems(children []core.Element) []core.Element {
	items := make([]core.Element, 0, len(children))
	for _, c := range children {
		if c.Realisation() == "" {
			continue
		}
		items = append(items, c)
	}
	return items
}

// boundarySeparator returns the separator placed before item i of n.
func boundarySeparator(i, n int, normal, final string) string {
	if i == n-1 && n >= 3 {
		return final
	}
	return normal
}

// RealiseSeparatedList joins items, placing normal between items and final
// before the last item when there are three or more ("A, B and C").
// Empty items are skipped.
func RealiseSeparatedList(items []string, normal, final string) string {
	nonEmpty := make([]string, 0, len(items))
	for _, it := range items {
		if it != "" {
			nonEmpty = append(nonEmpty, it)
		}
	}

	var b strings.Builder
	for i, it := range nonEmpty {
		if i > 0 {
			b.WriteString(boundarySeparator(i, len(nonEmpty), normal, final))
		}
		b.WriteString(it)
	}
	return b.String()
}
