// Package numbering converts list item indexes to and from the marker
// styles used by HTML ordered and unordered lists.
package numbering

// Style is the numbering presentation of a list or of a single item.
type Style int

const (
	Number     Style = iota // 1, 2, 3
	AlphaLower              // a, b, c
	AlphaUpper              // A, B, C
	RomanLower              // i, ii, iii
	RomanUpper              // I, II, III
	Unordered               // *
)

// Bullet is the marker every item of an unordered list renders as.
const Bullet = "*"

// String returns the HTML type token for the style ("ul" for Unordered).
func (s Style) String() string {
	switch s {
	case AlphaLower:
		return "a"
	case AlphaUpper:
		return "A"
	case RomanLower:
		return "i"
	case RomanUpper:
		return "I"
	case Unordered:
		return "ul"
	default:
		return "1"
	}
}

// IsRoman reports whether markers in this style are roman numerals.
func (s Style) IsRoman() bool {
	return s == RomanLower || s == RomanUpper
}

// IsOrdered reports whether items in this style carry an ordinal marker.
func (s Style) IsOrdered() bool {
	return s != Unordered
}

// ParseStyle maps an HTML type token to a Style. Tokens are case
// sensitive, as in HTML: "a" and "A" are different styles.
func ParseStyle(token string) (Style, bool) {
	switch token {
	case "1":
		return Number, true
	case "a":
		return AlphaLower, true
	case "A":
		return AlphaUpper, true
	case "i":
		return RomanLower, true
	case "I":
		return RomanUpper, true
	case "ul":
		return Unordered, true
	default:
		return Number, false
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Style) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
