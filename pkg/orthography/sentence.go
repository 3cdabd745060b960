package orthography

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/hsteffens/SimpleNLG-EnPt-sub001/pkg/core"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Terminal punctuation marks.
const (
	FullStop     = "."
	QuestionMark = "?"
)

// Capitalise upper-cases the first letter of text using the casing rules of tag.
// Leading punctuation and spaces are skipped; the rest of text is untouched.
func Capitalise(text string, tag language.Tag) string {
	for i, r := range text {
		if !unicode.IsLetter(r) {
			continue
		}
		size := utf8.RuneLen(r)
		upper := cases.Upper(tag).String(text[i : i+size])
		return text[:i] + upper + text[i+size:]
	}
	return text
}

// Terminal returns the sentence-final mark for a sentence of the given
// interrogative type. A nil type is a declarative sentence.
func Terminal(it *core.InterrogativeType) string {
	if it == nil {
		return FullStop
	}
	return QuestionMark
}

// Sentence capitalises text and closes it with the terminal mark for it.
// Text that already ends in ".", "?" or "!" keeps its own mark.
func Sentence(text string, tag language.Tag, it *core.InterrogativeType) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	text = Capitalise(text, tag)
	// drop a dangling appositive comma left by the last constituent
	text = strings.TrimRight(strings.TrimSuffix(text, ","), " ")
	if strings.HasSuffix(text, FullStop) || strings.HasSuffix(text, QuestionMark) || strings.HasSuffix(text, "!") {
		return text
	}
	return text + Terminal(it)
}
