package lexicon

import (
	"fmt"

	"github.com/hsteffens/SimpleNLG-EnPt-sub001/pkg/core"
)

// UnknownEntryError is returned when an irregular names an entry the
// lexicon does not contain.
type UnknownEntryError struct {
	Base     string
	Category core.Category
}

func (e *UnknownEntryError) Error() string {
	return fmt.Sprintf("no lexicon entry %q with category %s", e.Base, e.Category)
}
