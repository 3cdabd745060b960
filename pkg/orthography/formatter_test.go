package orthography

import (
	"strings"
	"testing"

	"github.com/hsteffens/SimpleNLG-EnPt-sub001/pkg/core"
	"github.com/stretchr/testify/assert"
)

func plain(text string) core.Element   { return core.Realised{Text: text} }
func apposed(text string) core.Element { return core.Realised{Text: text, Apposed: true} }
func list(text string) core.Element    { return core.Realised{Text: text, List: true} }

var englishLike = &Formatter{
	Premodifiers:  ModeAppositive,
	Postmodifiers: ModeList,
	Separator:     ", ",
	Conjunction:   " and ",
}

func TestFormatter_EmptyChildren(t *testing.T) {
	for _, f := range []*Formatter{englishLike, {Premodifiers: ModeList, Postmodifiers: ModeAppositive}} {
		assert.Equal(t, "", f.FormatPremodifiers(nil))
		assert.Equal(t, "", f.FormatPostmodifiers(nil))
		assert.Equal(t, "", f.FormatPremodifiers([]core.Element{}))
		assert.Equal(t, "", f.FormatPostmodifiers([]core.Element{}))
	}
}

func TestFormatter_AppositiveRun(t *testing.T) {
	tests := []struct {
		name     string
		children []core.Element
		want     string
	}{
		{"single appositive", []core.Element{apposed("my friend")}, ", my friend, "},
		{"all appositive", []core.Element{apposed("A"), apposed("B"), apposed("C")}, ", A B C, "},
		{"mixed", []core.Element{apposed("A"), plain("B")}, "A B"},
		{"plain", []core.Element{plain("big"), plain("red")}, "big red"},
		{"empty texts skipped", []core.Element{plain("big"), plain(""), plain("red")}, "big red"},
		{"all empty appositive", []core.Element{apposed("")}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := englishLike.FormatPremodifiers(tt.children)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatter_AppositiveWrappedOnce(t *testing.T) {
	for n := 1; n <= 5; n++ {
		children := make([]core.Element, n)
		for i := range children {
			children[i] = apposed("x")
		}
		got := englishLike.FormatPremodifiers(children)
		assert.True(t, strings.HasPrefix(got, ", "))
		assert.True(t, strings.HasSuffix(got, ", "))
		assert.Equal(t, 2, strings.Count(got, ","), "n=%d: %q", n, got)
	}
}

func TestFormatter_List(t *testing.T) {
	tests := []struct {
		name     string
		children []core.Element
		want     string
	}{
		{"one", []core.Element{plain("A")}, "A"},
		{"two", []core.Element{plain("A"), plain("B")}, "A, B"},
		{"three", []core.Element{plain("A"), plain("B"), plain("C")}, "A, B and C"},
		{"four", []core.Element{plain("A"), plain("B"), plain("C"), plain("D")}, "A, B, C and D"},
		{"appositive inside", []core.Element{plain("A"), apposed("B"), plain("C")}, "A, B, C"},
		{"appositive last", []core.Element{plain("A"), apposed("B")}, "A, B, "},
		{"appositive first", []core.Element{apposed("B"), plain("A")}, ", B, A"},
		{"empty plain child dropped", []core.Element{plain("A"), plain(""), plain("C")}, "A, C"},
		{"empty list child takes no position", []core.Element{plain("A"), list(""), plain("C")}, "A, C"},
		{"empty list child among three", []core.Element{plain("A"), plain("B"), list(""), plain("C")}, "A, B and C"},
		{"empty list child before last two", []core.Element{plain("A"), list(""), plain("B"), plain("C")}, "A, B and C"},
		{"trailing empty list child", []core.Element{plain("A"), plain("B"), plain("C"), list("")}, "A, B and C"},
		{"list child", []core.Element{plain("A"), list("B C")}, "A, B C"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := englishLike.FormatPostmodifiers(tt.children)
			assert.Equal(t, tt.want, got)
			assert.NotContains(t, got, "  ")
		})
	}
}

func TestFormatter_ThreeChildSeparators(t *testing.T) {
	got := englishLike.FormatPostmodifiers(core.Texts("in the park", "with a dog", "at noon"))

	assert.Equal(t, "in the park, with a dog and at noon", got)
	assert.Equal(t, 1, strings.Count(got, ", "))
	assert.Equal(t, 1, strings.Count(got, " and "))
	assert.False(t, strings.HasPrefix(got, ", "))
	assert.False(t, strings.HasSuffix(got, ", "))
}

func TestFormatter_PositionsAreIndependent(t *testing.T) {
	swapped := &Formatter{
		Premodifiers:  ModeList,
		Postmodifiers: ModeAppositive,
		Separator:     ", ",
		Conjunction:   " e ",
	}
	children := core.Texts("A", "B", "C")

	assert.Equal(t, "A B C", englishLike.FormatPremodifiers(children))
	assert.Equal(t, "A, B and C", englishLike.FormatPostmodifiers(children))
	assert.Equal(t, "A, B e C", swapped.FormatPremodifiers(children))
	assert.Equal(t, "A B C", swapped.FormatPostmodifiers(children))
}

func TestAllAppositive(t *testing.T) {
	assert.False(t, AllAppositive(nil))
	assert.True(t, AllAppositive([]core.Element{apposed("a")}))
	assert.False(t, AllAppositive([]core.Element{apposed("a"), plain("b")}))
}

func TestRealiseSeparatedList(t *testing.T) {
	tests := []struct {
		items []string
		want  string
	}{
		{nil, ""},
		{[]string{"A"}, "A"},
		{[]string{"A", "B"}, "A, B"},
		{[]string{"A", "B", "C"}, "A, B and C"},
		{[]string{"A", "", "B", "C"}, "A, B and C"},
		{[]string{"", ""}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, RealiseSeparatedList(tt.items, ", ", " and "))
		})
	}
}

func TestParseMode(t *testing.T) {
	m, ok := ParseMode("LIST")
	assert.True(t, ok)
	assert.Equal(t, ModeList, m)

	m, ok = ParseMode("appositive")
	assert.True(t, ok)
	assert.Equal(t, ModeAppositive, m)

	_, ok = ParseMode("bogus")
	assert.False(t, ok)

	assert.Equal(t, "list", ModeList.String())
	assert.Equal(t, "unknown", Mode(9).String())
}
