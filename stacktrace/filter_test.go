package stacktrace

import (
	"strings"
	"testing"
)

const testPrefix = "com.plain.analytics.v2.utils.test."

// Two singular segments; in the second one only two frames are relevant.
const goldenInput = `java.lang.Exception: Bad error
	at com.plain.analytics.v2.utils.test.A.m1(A.java:80)
	at com.plain.analytics.v2.utils.test.A.m2(A.java:30)
	at com.plain.analytics.v2.utils.test.A.main(A.java:25)
Caused by: java.lang.NumberFormatException: For input string: "Hello"
	at java.lang.NumberFormatException.forInputString(Unknown Source)
	at java.lang.Integer.parseInt(Unknown Source)
	at java.lang.Integer.parseInt(Unknown Source)
	at com.plain.analytics.v2.utils.test2.Helper.parseInt(Helper.java:8)
	at com.plain.analytics.v2.utils.test.A$Invoker.runParser(A.java:97)
	at com.plain.analytics.v2.utils.test2.Helper.inner(Helper.java:17)
	at com.plain.analytics.v2.utils.test2.Helper.invoke(Helper.java:12)
	at com.plain.analytics.v2.utils.test.A.m1(A.java:76)
	... 2 more
`

const goldenWant = `
java.lang.Exception: Bad error
	at com.plain.analytics.v2.utils.test.A.m1(A.java:80)
	at com.plain.analytics.v2.utils.test.A.m2(A.java:30)
	at com.plain.analytics.v2.utils.test.A.main(A.java:25)
Caused by: java.lang.NumberFormatException: For input string: "Hello"
	at java.lang.NumberFormatException.forInputString(Unknown Source)
	at java.lang.Integer.parseInt(Unknown Source)
	at java.lang.Integer.parseInt(Unknown Source)
	at com.plain.analytics.v2.utils.test2.Helper.parseInt(Helper.java:8)
	at com.plain.analytics.v2.utils.test.A$Invoker.runParser(A.java:97)
	at com.plain.analytics.v2.utils.test2.Helper.inner(Helper.java:17)
	...
	at com.plain.analytics.v2.utils.test.A.m1(A.java:76)
	... 2 more
`

func TestShortenGolden(t *testing.T) {
	got := Shorten(goldenInput, testPrefix)
	if got != goldenWant {
		t.Errorf("golden mismatch:\ngot:\n%q\nwant:\n%q", got, goldenWant)
	}
}

func TestClassify(t *testing.T) {
	m := PrefixSet{"com.example."}
	tests := []struct {
		line     string
		kind     lineKind
		relevant bool
	}{
		{"\tat com.example.App.run(App.java:1)", kindFrame, true},
		{"   at com.example.App.run(App.java:1)  ", kindFrame, true},
		{"\tat org.other.Lib.call(Lib.java:2)", kindFrame, false},
		{"Caused by: java.io.IOException: boom", kindBoundary, false},
		{"\tSuppressed: java.lang.IllegalStateException", kindBoundary, false},
		{"\t... 3 more", kindTail, false},
		{"", kindTail, false},
		{"java.lang.Exception: header", kindTail, false},
		{"attention: not a frame", kindTail, false},
	}
	for _, tt := range tests {
		kind, relevant := classify(tt.line, m)
		if kind != tt.kind || relevant != tt.relevant {
			t.Errorf("classify(%q) = (%v, %v), want (%v, %v)", tt.line, kind, relevant, tt.kind, tt.relevant)
		}
	}
}

func TestClassifyEmptyMatcher(t *testing.T) {
	kind, relevant := classify("\tat com.example.App.run(App.java:1)", PrefixSet{})
	if kind != kindFrame || relevant {
		t.Errorf("empty prefix set must make every frame irrelevant, got (%v, %v)", kind, relevant)
	}
}

func TestParsePrefixList(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"com.a.;com.b.", []string{"com.a.", "com.b."}},
		{" com.a. ; com.b. ", []string{"com.a.", "com.b."}},
		{"com.a.", []string{"com.a."}},
		{" ; ; ", nil},
		{"", nil},
	}
	for _, tt := range tests {
		got := ParsePrefixList(tt.in)
		if len(got) != len(tt.want) {
			t.Errorf("ParsePrefixList(%q) = %v, want %v", tt.in, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("ParsePrefixList(%q)[%d] = %q, want %q", tt.in, i, got[i], tt.want[i])
			}
		}
	}
}

func countSegments(text string) int {
	n := 0
	for _, line := range splitLines(text) {
		kind, _ := classify(line, nil)
		if kind == kindBoundary {
			n++
		}
	}
	return n + 1
}

func TestSegmentCountPreserved(t *testing.T) {
	got := Shorten(goldenInput, testPrefix)
	if in, out := countSegments(goldenInput), countSegments(got); in != out {
		t.Errorf("segment count changed: input %d, output %d", in, out)
	}
}

func TestAllRelevantSegmentUnchanged(t *testing.T) {
	input := `java.lang.Exception: all relevant
	at com.example.A.a(A.java:1)
	at com.example.B.b(B.java:2)
	at com.example.C.c(C.java:3)
`
	got := Shorten(input, "com.example.")
	if got != "\n"+input {
		t.Errorf("all-relevant segment must pass through verbatim:\ngot %q", got)
	}
	if strings.Contains(got, elisionMarker) {
		t.Error("unexpected elision marker in all-relevant segment")
	}
}

func TestNoRelevantSegmentUnchanged(t *testing.T) {
	// Without a relevant-to-irrelevant transition elision never triggers.
	input := `java.lang.Exception: nothing relevant
	at org.other.A.a(A.java:1)
	at org.other.B.b(B.java:2)
	... 5 more
`
	got := Shorten(input, "com.example.")
	if got != "\n"+input {
		t.Errorf("all-irrelevant segment must pass through verbatim:\ngot %q", got)
	}
}

func TestBoundaryOnlyInput(t *testing.T) {
	input := "java.lang.Exception: top\nCaused by: java.lang.Exception: mid\nCaused by: java.lang.Exception: root\n"
	got := Shorten(input, "com.example.")
	if got != "\n"+input {
		t.Errorf("boundary-only input must keep every header:\ngot %q", got)
	}
}

func TestSingleMarkerPerElidedRun(t *testing.T) {
	input := `java.lang.Exception: long gaps
	at com.example.A.a(A.java:1)
	at org.other.B.b(B.java:1)
	at org.other.C.c(C.java:1)
	at org.other.D.d(D.java:1)
	at org.other.E.e(E.java:1)
	at com.example.F.f(F.java:1)
	at org.other.G.g(G.java:1)
	at org.other.H.h(H.java:1)
	at com.example.I.i(I.java:1)
`
	got := Shorten(input, "com.example.")
	if n := strings.Count(got, elisionMarker+"\n"); n != 2 {
		t.Errorf("expected exactly 2 elision markers, got %d in:\n%s", n, got)
	}
	// One line of trailing context survives after each relevant run.
	for _, keep := range []string{"B.b", "G.g", "F.f", "I.i"} {
		if !strings.Contains(got, keep) {
			t.Errorf("expected %s to survive, got:\n%s", keep, got)
		}
	}
	for _, gone := range []string{"C.c", "D.d", "E.e", "H.h"} {
		if strings.Contains(got, gone) {
			t.Errorf("expected %s to be elided, got:\n%s", gone, got)
		}
	}
}

func TestLeadingContextNeverElided(t *testing.T) {
	input := `java.lang.Exception: leading context
	at org.other.A.a(A.java:1)
	at org.other.B.b(B.java:2)
	at com.example.C.c(C.java:3)
`
	got := Shorten(input, "com.example.")
	for _, keep := range []string{"A.a", "B.b", "C.c"} {
		if !strings.Contains(got, keep) {
			t.Errorf("line %s before the first match must be kept:\n%s", keep, got)
		}
	}
}

func TestTailConsumesPendingMarker(t *testing.T) {
	// A tail line arriving while a marker is owed is emitted itself and
	// cancels the marker.
	input := `java.lang.Exception: tail after relevant run
	at com.example.A.a(A.java:1)
	at org.other.B.b(B.java:1)
	... 2 more
`
	got := Shorten(input, "com.example.")
	if strings.Contains(got, elisionMarker+"\n") {
		t.Errorf("tail line should replace the pending marker:\n%s", got)
	}
	if !strings.Contains(got, "... 2 more") {
		t.Errorf("tail line must be kept:\n%s", got)
	}
}

func TestTailDroppedAfterMarkerEmitted(t *testing.T) {
	// Once the marker for an elided run has been emitted, a later tail
	// line inside the same dead zone is dropped.
	input := `java.lang.Exception: tail after marker
	at com.example.A.a(A.java:1)
	at org.other.B.b(B.java:1)
	at org.other.C.c(C.java:1)
	... 2 more
`
	got := Shorten(input, "com.example.")
	if !strings.Contains(got, elisionMarker+"\n") {
		t.Errorf("expected an elision marker:\n%s", got)
	}
	if strings.Contains(got, "... 2 more") {
		t.Errorf("tail after emitted marker should be dropped:\n%s", got)
	}
	if strings.Contains(got, "C.c") {
		t.Errorf("expected C.c to be elided:\n%s", got)
	}
}

func TestRefilterIdempotent(t *testing.T) {
	once := Shorten(goldenInput, testPrefix)
	twice := Shorten(strings.TrimPrefix(once, "\n"), testPrefix)
	if twice != once {
		t.Errorf("re-filtering changed the output:\nonce:\n%q\ntwice:\n%q", once, twice)
	}
}
