package numbering

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidMarker is returned when a marker cannot be converted back to
// an index. Check with errors.Is.
var ErrInvalidMarker = errors.New("invalid marker")

var romanValues = map[byte]int{
	'I': 1,
	'V': 5,
	'X': 10,
	'L': 50,
	'C': 100,
	'D': 500,
	'M': 1000,
}

// ParseAlpha converts an alpha marker back to its index. The marker must be
// entirely upper case or entirely lower case.
func ParseAlpha(s string) (int, error) {
	if s == "" || len(s) > maxAlphaDigits {
		return 0, fmt.Errorf("%w: alpha %q", ErrInvalidMarker, s)
	}
	upper := strings.ToUpper(s)
	if s != upper && s != strings.ToLower(s) {
		return 0, fmt.Errorf("%w: alpha %q has mixed case", ErrInvalidMarker, s)
	}

	n := 0
	for i := 0; i < len(upper); i++ {
		c := upper[i]
		if c < 'A' || c > 'Z' {
			return 0, fmt.Errorf("%w: alpha %q", ErrInvalidMarker, s)
		}
		n = n*26 + int(c-'A') + 1
	}
	return n, nil
}

// ParseRoman converts a roman numeral back to its index. Only the canonical
// form produced by Roman is accepted, so "IIII" and "IC" are rejected.
func ParseRoman(s string) (int, error) {
	upper := strings.ToUpper(s)
	if s == "" || (s != upper && s != strings.ToLower(s)) {
		return 0, fmt.Errorf("%w: roman %q", ErrInvalidMarker, s)
	}

	n := 0
	for i := 0; i < len(upper); i++ {
		v, ok := romanValues[upper[i]]
		if !ok {
			return 0, fmt.Errorf("%w: roman %q", ErrInvalidMarker, s)
		}
		if i+1 < len(upper) && v < romanValues[upper[i+1]] {
			n -= v
		} else {
			n += v
		}
	}

	if n < 1 || Roman(n) != upper {
		return 0, fmt.Errorf("%w: roman %q is not canonical", ErrInvalidMarker, s)
	}
	return n, nil
}

// Parse converts a marker rendered in style back to its index.
func Parse(marker string, style Style) (int, error) {
	switch style {
	case AlphaLower, AlphaUpper:
		if !matchesCase(marker, style == AlphaUpper) {
			return 0, fmt.Errorf("%w: %q is not %s", ErrInvalidMarker, marker, style)
		}
		return ParseAlpha(marker)
	case RomanLower, RomanUpper:
		if !matchesCase(marker, style == RomanUpper) {
			return 0, fmt.Errorf("%w: %q is not %s", ErrInvalidMarker, marker, style)
		}
		return ParseRoman(marker)
	case Unordered:
		return 0, fmt.Errorf("%w: unordered markers carry no index", ErrInvalidMarker)
	default:
		n, err := strconv.Atoi(marker)
		if err != nil || n < 1 {
			return 0, fmt.Errorf("%w: number %q", ErrInvalidMarker, marker)
		}
		return n, nil
	}
}

func matchesCase(s string, upper bool) bool {
	if upper {
		return s == strings.ToUpper(s)
	}
	return s == strings.ToLower(s)
}
