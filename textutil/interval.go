package textutil

import (
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/jerrinot/tracetrim/logutil"
)

// Without a suffix an interval value is a number of minutes.
const defaultIntervalUnit = time.Minute

// ParseInterval parses a time interval written as a positive number with
// an optional, case-insensitive unit suffix: "90s", "15m", "2h", or a
// bare "15" meaning minutes. Blank input, an unknown suffix, a malformed
// number, or a value below 1 all log a warning and return def.
func ParseInterval(s string, def time.Duration) time.Duration {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		logutil.Warn().Log("msg", "blank string passed for time interval parsing, using default", "default", def)
		return def
	}

	unit := defaultIntervalUnit
	numPart := trimmed
	if last, size := utf8.DecodeLastRuneInString(trimmed); unicode.IsLetter(last) {
		switch unicode.ToLower(last) {
		case 's':
			unit = time.Second
		case 'm':
			unit = time.Minute
		case 'h':
			unit = time.Hour
		default:
			logutil.Warn().Log("msg", "unknown time interval suffix (valid: s, m, h), using default", "value", s, "default", def)
			return def
		}
		numPart = trimmed[:len(trimmed)-size]
	}

	v, err := strconv.ParseInt(numPart, 10, 64)
	if err != nil {
		logutil.Warn().Log("msg", "failed to parse time interval value, using default", "value", s, "default", def, "err", err)
		return def
	}
	if v < 1 {
		logutil.Warn().Log("msg", "non-positive time interval, using default", "value", s, "default", def)
		return def
	}
	return time.Duration(v) * unit
}
