package version

import (
	"strings"

	"github.com/pkg/errors"
)

const rangeDelimiter = "-"

// Range is an inclusive version range.
type Range struct {
	from Version
	to   Version
}

// NewRange builds a range from its bounds. The lower bound may not exceed
// the upper one.
func NewRange(from, to Version) (Range, error) {
	if from.Compare(to) > 0 {
		return Range{}, errors.Errorf("range lower bound %s exceeds upper bound %s", from, to)
	}
	return Range{from: from, to: to}, nil
}

// ParseRange parses "1.0 - 2.0" or a single "1.0", which denotes the
// range containing exactly that version.
func ParseRange(s string) (Range, error) {
	if strings.TrimSpace(s) == "" {
		return Range{}, errors.New("blank string is not a valid version range")
	}
	parts := strings.SplitN(s, rangeDelimiter, 2)
	from, err := Parse(parts[0])
	if err != nil {
		return Range{}, err
	}
	to := from
	if len(parts) == 2 {
		if to, err = Parse(parts[1]); err != nil {
			return Range{}, err
		}
	}
	return NewRange(from, to)
}

// From returns the lower bound.
func (r Range) From() Version { return r.from }

// To returns the upper bound.
func (r Range) To() Version { return r.to }

// Contains reports whether v lies within the range, bounds included.
func (r Range) Contains(v Version) bool {
	return r.from.Compare(v) <= 0 && r.to.Compare(v) >= 0
}

// Overlaps reports whether the two ranges share at least one version.
func (r Range) Overlaps(other Range) bool {
	return r.from.Compare(other.to) <= 0 && other.from.Compare(r.to) <= 0
}

func (r Range) String() string {
	return r.from.String() + " " + rangeDelimiter + " " + r.to.String()
}
