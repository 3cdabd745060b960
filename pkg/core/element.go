package core

// Element is a realised child of a phrase, as seen by the orthography stage.
// The syntax stage owns the tree; formatters only read it.
type Element interface {
	// Realisation is the already-realised surface text (possibly empty).
	Realisation() string
	// Appositive reports whether the child is set off by commas.
	Appositive() bool
	// IsList reports whether the child is itself a multi-element list.
	IsList() bool
}

// Realised is a plain value implementation of Element.
type Realised struct {
	Text    string
	Apposed bool
	List    bool
}

// Realisation implements Element.
func (r Realised) Realisation() string { return r.Text }

// Appositive implements Element.
func (r Realised) Appositive() bool { return r.Apposed }

// IsList implements Element.
func (r Realised) IsList() bool { return r.List }

// Texts builds plain, non-appositive children from strings.
func Texts(texts ...string) []Element {
	out := make([]Element, len(texts))
	for i, t := range texts {
		out[i] = Realised{Text: t}
	}
	return out
}
