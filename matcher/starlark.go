package matcher

import (
	"sync"

	"github.com/pkg/errors"
	"go.starlark.net/starlark"

	"github.com/jerrinot/tracetrim/logutil"
	"github.com/jerrinot/tracetrim/stacktrace"
)

// The starlark scheme loads a script file that must define
//
//	def relevant(name):
//	    return name.startswith("com.example.") and "generated" not in name
//
// and calls it once per frame. A failing call makes the frame irrelevant;
// the failure is logged once per matcher, not per frame.
func init() {
	Register("starlark", newScriptMatcher)
}

type scriptMatcher struct {
	fn       starlark.Callable
	failOnce sync.Once
}

func newScriptMatcher(path string) (stacktrace.Matcher, error) {
	if path == "" {
		return nil, errors.New("starlark matcher needs a script path")
	}
	thread := &starlark.Thread{Name: "matcher-load"}
	globals, err := starlark.ExecFile(thread, path, nil, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "loading matcher script %s", path)
	}
	fn, ok := globals["relevant"].(starlark.Callable)
	if !ok {
		return nil, errors.Errorf("script %s does not define a relevant(name) function", path)
	}
	return &scriptMatcher{fn: fn}, nil
}

func (m *scriptMatcher) Relevant(name string) bool {
	thread := &starlark.Thread{Name: "matcher"}
	v, err := starlark.Call(thread, m.fn, starlark.Tuple{starlark.String(name)}, nil)
	if err != nil {
		m.failOnce.Do(func() {
			logutil.Warn().Log("msg", "relevance script failed, treating frames as irrelevant", "err", err)
		})
		return false
	}
	return bool(v.Truth())
}
