package orthography

import "strings"

// tokenWriter accumulates text and separators, emitting at most one
// separator between two texts and a single space between adjacent texts.
type tokenWriter struct {
	b strings.Builder
	// pending is a separator waiting for the next text.
	pending string
	// wroteText is true once any text has been emitted.
	wroteText bool
}

// text writes s, preceded by the pending separator or a space.
// Empty text is ignored.
func (w *tokenWriter) text(s string) {
	if s == "" {
		return
	}
	switch {
	case w.pending != "":
		w.b.WriteString(w.pending)
		w.pending = ""
	case w.wroteText:
		w.b.WriteByte(' ')
	}
	w.b.WriteString(s)
	w.wroteText = true
}

// separator records sep to be written before the next text.
// A separator already pending wins over later ones at the same boundary,
// except that the appositive comma always wins over a list separator.
func (w *tokenWriter) separator(sep string) {
	if w.pending == "" || sep == appositiveComma {
		w.pending = sep
	}
}

// String returns the output. A pending appositive comma is kept so that a
// trailing appositive stays closed; any other trailing separator is dropped.
func (w *tokenWriter) String() string {
	out := w.b.String()
	if w.pending == appositiveComma {
		out += w.pending
	}
	return out
}
