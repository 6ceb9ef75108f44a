package stacktrace

import (
	"os"
	"strings"
	"sync"
	"sync/atomic"
)

// EnvRelevantPkgs names the environment variable consulted for the
// process-wide prefix list on first use: a ";"-delimited list of package
// prefixes. A value set through SetRelevantPrefixes takes precedence.
const EnvRelevantPkgs = "TRACETRIM_RELEVANT_PKGS"

var (
	envOnce    sync.Once
	defaultSet atomic.Pointer[PrefixSet]
)

// SetRelevantPrefixes replaces the process-wide prefix set used when Render
// is called without explicit prefixes. The swap is atomic, but no ordering
// is guaranteed relative to in-flight Render calls; callers that need
// strict consistency should pass explicit prefixes per call instead.
func SetRelevantPrefixes(prefixes ...string) {
	ps := NewPrefixSet(prefixes...)
	defaultSet.Store(&ps)
}

// RelevantPrefixes returns the current process-wide prefix set, resolving
// the environment variable if nothing was set programmatically yet.
func RelevantPrefixes() []string {
	return defaultPrefixSet()
}

func defaultPrefixSet() PrefixSet {
	envOnce.Do(func() {
		if v := os.Getenv(EnvRelevantPkgs); strings.TrimSpace(v) != "" {
			ps := ParsePrefixList(v)
			// an explicit SetRelevantPrefixes that ran first wins
			defaultSet.CompareAndSwap(nil, &ps)
		}
	})
	if p := defaultSet.Load(); p != nil {
		return *p
	}
	return nil
}
