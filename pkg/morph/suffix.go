// Package morph provides the orthographic suffixation engine.
//
// A Suffixer is an ordered chain of spelling rules. Each rule receives the
// base as modified by the rules before it, together with the suffix, and
// returns the base to hand on. After the last rule the base and suffix are
// concatenated. Rules never see or alter the suffix.
package morph

import "strings"

// Rule rewrites a base form in preparation for attaching suffix.
// A rule that does not apply returns base unchanged.
type Rule func(base, suffix string) string

// Suffixer attaches suffixes using a fixed, ordered rule chain.
// A Suffixer is immutable and safe for concurrent use.
type Suffixer struct {
	name  string
	rules []Rule
}

// NewSuffixer creates a suffixer that applies rules in the given order.
func NewSuffixer(name string, rules ...Rule) *Suffixer {
	return &Suffixer{name: name, rules: append([]Rule(nil), rules...)}
}

// Name returns the rule-set name.
func (s *Suffixer) Name() string {
	return s.name
}

// Len returns the number of rules in the chain.
func (s *Suffixer) Len() int {
	return len(s.rules)
}

// Attach joins suffix to base.
// An empty suffix returns base untouched; an empty base yields the suffix.
func (s *Suffixer) Attach(base, suffix string) string {
	if suffix == "" || base == "" {
		return base + suffix
	}
	for _, rule := range s.rules {
		next := rule(base, suffix)
		if next == "" {
			// a rule may not consume the whole base
			continue
		}
		base = next
	}
	return base + suffix
}

// AttachAll attaches every suffix to base, skipping empty suffixes.
func (s *Suffixer) AttachAll(base string, suffixes ...string) []string {
	out := make([]string, 0, len(suffixes))
	for _, suf := range suffixes {
		if suf == "" {
			continue
		}
		out = append(out, s.Attach(base, suf))
	}
	return out
}

// EndsWithAny reports whether s ends with any of the given endings.
func EndsWithAny(s string, endings ...string) bool {
	for _, e := range endings {
		if strings.HasSuffix(s, e) {
			return true
		}
	}
	return false
}

// StartsWithAny reports whether s starts with any of the given prefixes.
func StartsWithAny(s string, prefixes ...string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

// ReplaceEnding replaces a trailing ending of s with repl.
// Returns s unchanged if it does not end with ending.
func ReplaceEnding(s, ending, repl string) string {
	if !strings.HasSuffix(s, ending) {
		return s
	}
	return s[:len(s)-len(ending)] + repl
}

// Concat is the identity rule: the plain concatenation step expressed as a rule.
// It is useful as an explicit placeholder when building chains from data.
func Concat(base, _ string) string {
	return base
}
