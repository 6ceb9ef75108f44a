// Package textutil provides forgiving parse helpers for configuration
// values: on blank or malformed input they log a warning and return the
// caller's default instead of an error.
package textutil

import (
	"strconv"
	"strings"

	"github.com/jerrinot/tracetrim/logutil"
)

// ParseInt parses s as a decimal integer, returning def when s is blank
// or malformed.
func ParseInt(s string, def int) int {
	return int(parseInt64(s, int64(def), strconv.IntSize))
}

// ParseInt64 parses s as a decimal 64-bit integer, returning def when s
// is blank or malformed.
func ParseInt64(s string, def int64) int64 {
	return parseInt64(s, def, 64)
}

func parseInt64(s string, def int64, bitSize int) int64 {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		logutil.Warn().Log("msg", "blank string passed for integer parsing, using default", "default", def)
		return def
	}
	v, err := strconv.ParseInt(trimmed, 10, bitSize)
	if err != nil {
		logutil.Warn().Log("msg", "failed to parse integer, using default", "value", s, "default", def, "err", err)
		return def
	}
	return v
}

// ParseFloat64 parses s as a float, returning def when s is blank or
// malformed.
func ParseFloat64(s string, def float64) float64 {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		logutil.Warn().Log("msg", "blank string passed for float parsing, using default", "default", def)
		return def
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		logutil.Warn().Log("msg", "failed to parse float, using default", "value", s, "default", def, "err", err)
		return def
	}
	return v
}
