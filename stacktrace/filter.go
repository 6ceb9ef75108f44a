package stacktrace

import "strings"

// ---------------------------------------------------------------------------
// Per-segment filter
// ---------------------------------------------------------------------------

// segmentFilter applies the elision policy to the body of one singular
// segment. A fresh filter is used for every segment.
type segmentFilter struct {
	m Matcher

	// printing: the current frame line is emitted verbatim.
	// relevantReached: the previous frame line was relevant.
	// ellipsisPending: an elision marker is owed before the next emitted line.
	printing        bool
	relevantReached bool
	ellipsisPending bool
}

func newSegmentFilter(m Matcher) *segmentFilter {
	return &segmentFilter{m: m, printing: true}
}

// run consumes lines[start:] up to the next Boundary line or end of input,
// appending the filtered body to out. It returns the grown output and the
// index of the Boundary line that stopped it (len(lines) at end of input);
// the Boundary itself is not emitted here, it becomes the next header.
func (f *segmentFilter) run(lines []string, start int, out []string) ([]string, int) {
	for i := start; i < len(lines); i++ {
		line := lines[i]
		kind, relevant := classify(line, f.m)
		switch kind {
		case kindBoundary:
			return out, i

		case kindFrame:
			// A relevant run begins or resumes: print from here and cancel
			// any marker owed from before. Must happen before emission so
			// the first line of the run is printed, not elided.
			if !f.relevantReached && relevant {
				f.relevantReached = true
				f.printing = true
				f.ellipsisPending = false
			}

			if f.printing {
				out = append(out, line)
			} else if f.ellipsisPending {
				out = append(out, elisionMarker)
				f.ellipsisPending = false
			}

			// A relevant run just ended: the line emitted above is the one
			// line of trailing context, everything after is elided until
			// relevance resumes.
			if f.relevantReached && !relevant {
				f.relevantReached = false
				f.printing = false
				f.ellipsisPending = true
			}

		default:
			// A tail line ("... N more", blanks) is informative on its own
			// and replaces a pending marker rather than following one.
			if f.printing || f.ellipsisPending {
				out = append(out, line)
				f.ellipsisPending = false
			}
		}
	}
	return out, len(lines)
}

// ---------------------------------------------------------------------------
// Trace splitter
// ---------------------------------------------------------------------------

// splitLines splits trace text the way a line reader would: a trailing
// newline does not produce an extra empty line.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}

// shorten filters a whole trace, one singular segment at a time. The first
// line of the input and every Boundary line act as segment headers and are
// always kept verbatim. The result carries the conventional leading newline
// and one trailing newline per emitted line.
func shorten(text string, m Matcher) string {
	lines := splitLines(text)
	out := make([]string, 0, len(lines))

	header := 0
	for header < len(lines) {
		out = append(out, lines[header])
		out, header = newSegmentFilter(m).run(lines, header+1, out)
	}

	var b strings.Builder
	b.Grow(len(text) + 1)
	b.WriteString("\n")
	for _, line := range out {
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}
