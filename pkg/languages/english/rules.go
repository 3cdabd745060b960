package english

import (
	"strings"

	"github.com/hsteffens/SimpleNLG-EnPt-sub001/pkg/morph"
)

// Suffixer is the English spelling rule chain. The rules approximate
// English orthographic alternation and are kept deliberately small:
// "play"+"s" gives "plaies".
var Suffixer = morph.NewSuffixer("english",
	yToIE,
	dropSilentE,
	epentheticE,
	morph.Concat,
)

// yToIE turns a final "y" into "ie" unless the suffix starts with "i".
// cry+s -> cries, cry+ing -> crying.
func yToIE(base, suffix string) string {
	if strings.HasSuffix(base, "y") && !strings.HasPrefix(suffix, "i") {
		return morph.ReplaceEnding(base, "y", "ie")
	}
	return base
}

// dropSilentE removes a final "e" before a suffix starting with "e" or "i".
// like+ed -> liked, happie+er -> happier.
func dropSilentE(base, suffix string) string {
	if strings.HasSuffix(base, "e") && morph.StartsWithAny(suffix, "e", "i") {
		return strings.TrimSuffix(base, "e")
	}
	return base
}

// epentheticE inserts "e" between a sibilant ending and an "s" suffix.
// watch+s -> watches.
func epentheticE(base, suffix string) string {
	if strings.HasPrefix(suffix, "s") && morph.EndsWithAny(base, "s", "x", "z", "ch", "sh") {
		return base + "e"
	}
	return base
}
