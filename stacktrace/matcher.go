package stacktrace

import "strings"

// Matcher decides whether the fully-qualified name of a frame line is
// relevant, i.e. should survive shortening.
type Matcher interface {
	Relevant(name string) bool
}

// PrefixSet matches names against an ordered list of literal,
// case-sensitive package prefixes. An empty set matches nothing.
type PrefixSet []string

func (p PrefixSet) Relevant(name string) bool {
	for _, prefix := range p {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

// NewPrefixSet builds a PrefixSet, dropping blank entries. Returns nil
// when nothing usable remains.
func NewPrefixSet(prefixes ...string) PrefixSet {
	var out PrefixSet
	for _, p := range prefixes {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ParsePrefixList splits a ";"-delimited prefix list, tolerating
// whitespace around the entries: "com.a.; com.b." → {"com.a.", "com.b."}.
func ParsePrefixList(s string) PrefixSet {
	return NewPrefixSet(strings.Split(s, ";")...)
}
