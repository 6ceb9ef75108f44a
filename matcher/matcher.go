// Package matcher builds stacktrace.Matcher implementations from textual
// specs of the form "scheme:argument". Implementations register a Factory
// under their scheme name from init(); a spec without a scheme is treated
// as a plain prefix list.
package matcher

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"

	"github.com/jerrinot/tracetrim/registry"
	"github.com/jerrinot/tracetrim/stacktrace"
)

// Factory builds a Matcher from the text after the "scheme:" part.
type Factory func(arg string) (stacktrace.Matcher, error)

var factories = registry.New[Factory]()

// Register makes a factory available under the given scheme.
func Register(scheme string, f Factory) {
	factories.Register(scheme, f)
}

// Schemes returns the registered scheme names.
func Schemes() []string {
	return factories.Names()
}

// New builds a matcher from spec. "prefix:com.a.;com.b.",
// "regexp:^com\.a\.", "starlark:rules.star", or a bare prefix list.
func New(spec string) (stacktrace.Matcher, error) {
	scheme, arg, ok := strings.Cut(spec, ":")
	if !ok {
		scheme, arg = "prefix", spec
	}
	f, found := factories.Lookup(scheme)
	if !found {
		return nil, errors.Errorf("unknown matcher scheme %q (known: %s)", scheme, strings.Join(Schemes(), ", "))
	}
	return f(arg)
}

func init() {
	Register("prefix", func(arg string) (stacktrace.Matcher, error) {
		ps := stacktrace.ParsePrefixList(arg)
		if len(ps) == 0 {
			return nil, errors.New("prefix matcher needs at least one non-blank prefix")
		}
		return ps, nil
	})
	Register("regexp", func(arg string) (stacktrace.Matcher, error) {
		re, err := regexp.Compile(arg)
		if err != nil {
			return nil, errors.Wrap(err, "compiling relevance pattern")
		}
		return regexpMatcher{re: re}, nil
	})
}

type regexpMatcher struct {
	re *regexp.Regexp
}

func (m regexpMatcher) Relevant(name string) bool {
	return m.re.MatchString(name)
}
