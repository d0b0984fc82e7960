// Package version compares dotted numeric version strings, as found in
// uname kernel releases. It understands nothing about pre-release tags or
// build metadata; callers strip those off first (see LeadingNumeric).
package version

import (
	"strconv"
	"strings"

	"github.com/samber/oops"
)

// Compare compares two dotted numeric versions component by component, left
// to right. A missing trailing component counts as zero, so "4.15" and
// "4.15.0" are equal. Returns -1, 0 or +1, or an error when either string
// contains a component that is not a plain number.
func Compare(a, b string) (int, error) {
	av, err := parse(a)
	if err != nil {
		return 0, err
	}
	bv, err := parse(b)
	if err != nil {
		return 0, err
	}

	n := len(av)
	if len(bv) > n {
		n = len(bv)
	}
	for i := 0; i < n; i++ {
		var x, y int
		if i < len(av) {
			x = av[i]
		}
		if i < len(bv) {
			y = bv[i]
		}
		switch {
		case x < y:
			return -1, nil
		case x > y:
			return 1, nil
		}
	}
	return 0, nil
}

// parse splits a dotted version into its numeric components.
func parse(v string) ([]int, error) {
	if v == "" {
		return nil, oops.Errorf("empty version string")
	}
	parts := strings.Split(v, ".")
	out := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, oops.Errorf("version %q: component %q is not numeric", v, p)
		}
		if n < 0 {
			return nil, oops.Errorf("version %q: component %q is negative", v, p)
		}
		out[i] = n
	}
	return out, nil
}

// LeadingNumeric returns the longest prefix of release consisting of digits
// and dots: "5.10.0-8-amd64" yields "5.10.0". Returns "" when the release
// does not start with a digit or dot. The result is a candidate for
// Compare, not guaranteed to parse.
func LeadingNumeric(release string) string {
	end := 0
	for end < len(release) {
		c := release[end]
		if (c < '0' || c > '9') && c != '.' {
			break
		}
		end++
	}
	return release[:end]
}
