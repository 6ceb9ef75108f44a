package stacktrace

import (
	"github.com/jerrinot/tracetrim/logutil"
)

// ---------------------------------------------------------------------------
// Engine façade
// ---------------------------------------------------------------------------

// Render returns trace text, shortened when cut is true. Explicit non-empty
// prefixes override the process-wide set for this call. With cut false, or
// with no effective prefixes, or on any internal failure, the input text is
// returned unmodified; the latter two cases are logged. Render never fails.
func Render(text string, cut bool, prefixes ...string) string {
	if !cut {
		return text
	}
	m := effectiveMatcher(prefixes)
	if m == nil {
		logutil.Warn().Log("msg", "relevant package prefixes not configured, stacktrace cannot be shortened, returning full text")
		return text
	}
	return RenderWithMatcher(text, true, m)
}

// RenderWithMatcher is Render with a caller-supplied Matcher instead of
// prefix resolution. A nil matcher disables shortening.
func RenderWithMatcher(text string, cut bool, m Matcher) (out string) {
	if !cut || m == nil {
		return text
	}
	// Processing is in-memory and should never fail, but the contract is
	// total: degrade to the original text instead of propagating.
	defer func() {
		if r := recover(); r != nil {
			logutil.Error().Log("msg", "error while shortening stacktrace, returning original text", "panic", r)
			out = text
		}
	}()
	return shorten(text, m)
}

// Shorten is shorthand for Render(text, true, prefixes...).
func Shorten(text string, prefixes ...string) string {
	return Render(text, true, prefixes...)
}

// RenderError renders err into its canonical multi-line trace form (see
// ErrorText) and then behaves like Render.
func RenderError(err error, cut bool, prefixes ...string) string {
	if err == nil {
		return ""
	}
	return Render(ErrorText(err), cut, prefixes...)
}

func effectiveMatcher(prefixes []string) Matcher {
	if ps := NewPrefixSet(prefixes...); len(ps) > 0 {
		return ps
	}
	if ps := defaultPrefixSet(); len(ps) > 0 {
		return ps
	}
	return nil
}
