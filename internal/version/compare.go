// Package version compares release versions and tracks the latest
// published padd release.
package version

import (
	"strconv"
	"strings"
)

// Compare orders two version strings numerically, returning -1, 0, or 1.
// A leading 'v' or 'V' is stripped, components are split on '.', and the
// shorter sequence is zero-padded, so "1.2" equals "1.2.0". Unparseable
// input on either side yields 0: a malformed remote version string must
// never block rendering the rest of the screen.
func Compare(a, b string) int {
	aParts, ok := parseParts(a)
	if !ok {
		return 0
	}
	bParts, ok := parseParts(b)
	if !ok {
		return 0
	}

	for len(aParts) < len(bParts) {
		aParts = append(aParts, 0)
	}
	for len(bParts) < len(aParts) {
		bParts = append(bParts, 0)
	}

	for i := range aParts {
		if aParts[i] > bParts[i] {
			return 1
		}
		if aParts[i] < bParts[i] {
			return -1
		}
	}
	return 0
}

// parseParts splits a version string into numeric components.
func parseParts(v string) ([]int, bool) {
	v = strings.TrimLeft(v, "vV")
	if v == "" {
		return nil, false
	}

	fields := strings.Split(v, ".")
	parts := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil || n < 0 {
			return nil, false
		}
		parts = append(parts, n)
	}
	return parts, true
}
