package stacktrace

import "strings"

const (
	framePrefix      = "at "
	causePrefix      = "Caused by:"
	suppressedPrefix = "Suppressed:"
	elisionMarker    = "\t..."
)

type lineKind int

const (
	kindFrame lineKind = iota
	kindBoundary
	kindTail
)

// classify inspects one raw trace line. Frame lines additionally report
// whether the fully-qualified name after the "at " marker is relevant.
// Anything unrecognized, including "... N more" and blank lines, is Tail.
func classify(line string, m Matcher) (kind lineKind, relevant bool) {
	trimmed := strings.TrimSpace(line)
	switch {
	case strings.HasPrefix(trimmed, framePrefix):
		return kindFrame, m != nil && m.Relevant(trimmed[len(framePrefix):])
	case strings.HasPrefix(trimmed, causePrefix), strings.HasPrefix(trimmed, suppressedPrefix):
		return kindBoundary, false
	default:
		return kindTail, false
	}
}
