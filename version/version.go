// Package version wraps dotted numeric version strings with comparison
// and inclusive range-membership semantics.
package version

import (
	"strings"

	goversion "github.com/hashicorp/go-version"
	"github.com/pkg/errors"
)

// Version is a parsed version string. The zero value is not usable; use
// Parse or MustParse.
type Version struct {
	v *goversion.Version
}

// Parse parses a version such as "1.7.2". Leading and trailing whitespace
// is tolerated; blank input is an error.
func Parse(s string) (Version, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Version{}, errors.New("blank string is not a valid version")
	}
	v, err := goversion.NewVersion(trimmed)
	if err != nil {
		return Version{}, errors.Wrapf(err, "invalid version %q", s)
	}
	return Version{v: v}, nil
}

// MustParse is Parse for known-good literals; it panics on error.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// Compare returns -1, 0, or 1 when v is lower than, equal to, or greater
// than other.
func (v Version) Compare(other Version) int {
	return v.v.Compare(other.v)
}

func (v Version) String() string {
	return v.v.Original()
}

// Compare compares two version strings directly.
func Compare(a, b string) (int, error) {
	va, err := Parse(a)
	if err != nil {
		return 0, err
	}
	vb, err := Parse(b)
	if err != nil {
		return 0, err
	}
	return va.Compare(vb), nil
}
