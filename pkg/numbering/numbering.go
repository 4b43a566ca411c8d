package numbering

import (
	"fmt"
	"strconv"
	"strings"
)

// maxAlphaDigits bounds the length of an alpha marker.
const maxAlphaDigits = 9

var romanTable = []struct {
	symbol string
	value  int
}{
	{"M", 1000},
	{"CM", 900},
	{"D", 500},
	{"CD", 400},
	{"C", 100},
	{"XC", 90},
	{"L", 50},
	{"XL", 40},
	{"X", 10},
	{"IX", 9},
	{"V", 5},
	{"IV", 4},
	{"I", 1},
}

// Alpha returns the bijective base-26 form of n using A..Z, so 1 is "A",
// 26 is "Z" and 27 is "AA". It panics if n < 1.
func Alpha(n int) string {
	if n < 1 {
		panic(fmt.Sprintf("numbering: alpha marker for non-positive index %d", n))
	}

	var digits [maxAlphaDigits]byte
	i := len(digits)
	for n > 0 && i > 0 {
		n--
		i--
		digits[i] = byte('A' + n%26)
		n /= 26
	}
	return string(digits[i:])
}

// Roman returns n as an upper-case roman numeral using the greedy
// subtractive table. It panics if n < 1.
func Roman(n int) string {
	if n < 1 {
		panic(fmt.Sprintf("numbering: roman numeral for non-positive index %d", n))
	}

	var sb strings.Builder
	for n > 0 {
		for _, r := range romanTable {
			if n >= r.value {
				n -= r.value
				sb.WriteString(r.symbol)
				break
			}
		}
	}
	return sb.String()
}

// Format renders index n in the given style. Unordered always yields the
// bullet marker regardless of n.
func Format(n int, style Style) string {
	switch style {
	case AlphaLower:
		return strings.ToLower(Alpha(n))
	case AlphaUpper:
		return Alpha(n)
	case RomanLower:
		return strings.ToLower(Roman(n))
	case RomanUpper:
		return Roman(n)
	case Unordered:
		return Bullet
	default:
		return strconv.Itoa(n)
	}
}
