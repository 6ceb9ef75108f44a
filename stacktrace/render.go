package stacktrace

import (
	stderrors "errors"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pkg/errors"
)

// stackTracer is satisfied by errors created with github.com/pkg/errors
// (New, Errorf, WithStack, Wrap).
type stackTracer interface {
	StackTrace() errors.StackTrace
}

// ErrorText renders a live error into the canonical multi-line trace form
// the shortening engine consumes: the error message, one "\tat fn(file:line)"
// line per recorded frame, and a "Caused by:" section per unwrap level.
// Errors without recorded stacks render as their message line alone.
func ErrorText(err error) string {
	if err == nil {
		return ""
	}
	var b strings.Builder
	writeErrorText(&b, err, "")
	return b.String()
}

func writeErrorText(b *strings.Builder, err error, headerPrefix string) {
	b.WriteString(headerPrefix)
	b.WriteString(err.Error())
	b.WriteString("\n")
	if st, ok := err.(stackTracer); ok {
		for _, f := range st.StackTrace() {
			b.WriteString(formatFrame(f))
			b.WriteString("\n")
		}
	}
	if cause := stderrors.Unwrap(err); cause != nil {
		writeErrorText(b, cause, causePrefix+" ")
	}
}

// formatFrame renders one frame as "\tat pkg.Func(file.go:123)".
// errors.Frame is the return address; subtract 1 to land inside the call
// instruction, same as pkg/errors does internally.
func formatFrame(f errors.Frame) string {
	pc := uintptr(f) - 1
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "\tat unknown"
	}
	file, line := fn.FileLine(pc)
	return fmt.Sprintf("\tat %s(%s:%d)", fn.Name(), filepath.Base(file), line)
}
