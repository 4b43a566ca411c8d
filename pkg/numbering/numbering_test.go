package numbering

import (
	"errors"
	"strings"
	"testing"
)

// --- Alpha Tests ---

func TestAlpha(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{1, "A"},
		{2, "B"},
		{26, "Z"},
		{27, "AA"},
		{28, "AB"},
		{52, "AZ"},
		{53, "BA"},
		{702, "ZZ"},
		{703, "AAA"},
		{18278, "ZZZ"},
	}

	for _, tt := range tests {
		if got := Alpha(tt.n); got != tt.want {
			t.Errorf("Alpha(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestAlpha_OrderedByLengthThenLexically(t *testing.T) {
	prev := Alpha(1)
	for n := 2; n <= 10000; n++ {
		cur := Alpha(n)
		if len(cur) < len(prev) || (len(cur) == len(prev) && cur <= prev) {
			t.Fatalf("Alpha(%d) = %q does not follow Alpha(%d) = %q", n, cur, n-1, prev)
		}
		prev = cur
	}
	if len(Alpha(26)) != 1 || len(Alpha(27)) != 2 {
		t.Error("single letters should end at 26 and double letters start at 27")
	}
}

func TestAlpha_PanicsOnNonPositive(t *testing.T) {
	for _, n := range []int{0, -1} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Alpha(%d) should panic", n)
				}
			}()
			Alpha(n)
		}()
	}
}

// --- Roman Tests ---

func TestRoman(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{1, "I"},
		{3, "III"},
		{4, "IV"},
		{9, "IX"},
		{14, "XIV"},
		{40, "XL"},
		{90, "XC"},
		{400, "CD"},
		{1994, "MCMXCIV"},
		{2024, "MMXXIV"},
		{3999, "MMMCMXCIX"},
	}

	for _, tt := range tests {
		if got := Roman(tt.n); got != tt.want {
			t.Errorf("Roman(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestRoman_RoundTrip(t *testing.T) {
	for n := 1; n <= 10000; n++ {
		got, err := ParseRoman(Roman(n))
		if err != nil {
			t.Fatalf("ParseRoman(Roman(%d)) error = %v", n, err)
		}
		if got != n {
			t.Fatalf("ParseRoman(Roman(%d)) = %d", n, got)
		}
	}
}

func TestRoman_PanicsOnNonPositive(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Roman(0) should panic")
		}
	}()
	Roman(0)
}

// --- Format Tests ---

func TestFormat(t *testing.T) {
	tests := []struct {
		n     int
		style Style
		want  string
	}{
		{3, Number, "3"},
		{3, AlphaLower, "c"},
		{3, AlphaUpper, "C"},
		{4, RomanLower, "iv"},
		{4, RomanUpper, "IV"},
		{4, Unordered, "*"},
		{28, AlphaLower, "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.style.String(), func(t *testing.T) {
			if got := Format(tt.n, tt.style); got != tt.want {
				t.Errorf("Format(%d, %s) = %q, want %q", tt.n, tt.style, got, tt.want)
			}
		})
	}
}

func TestFormat_UnorderedIgnoresIndex(t *testing.T) {
	for _, n := range []int{-5, 0, 1, 2, 1000} {
		if got := Format(n, Unordered); got != Bullet {
			t.Errorf("Format(%d, Unordered) = %q, want %q", n, got, Bullet)
		}
	}
}

// --- Style Tests ---

func TestParseStyle(t *testing.T) {
	tests := []struct {
		token string
		want  Style
		ok    bool
	}{
		{"1", Number, true},
		{"a", AlphaLower, true},
		{"A", AlphaUpper, true},
		{"i", RomanLower, true},
		{"I", RomanUpper, true},
		{"ul", Unordered, true},
		{"disc", Number, false},
		{"", Number, false},
		{"ii", Number, false},
	}

	for _, tt := range tests {
		got, ok := ParseStyle(tt.token)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseStyle(%q) = %v, %v; want %v, %v", tt.token, got, ok, tt.want, tt.ok)
		}
	}
}

func TestStyle_StringRoundTrip(t *testing.T) {
	for _, s := range []Style{Number, AlphaLower, AlphaUpper, RomanLower, RomanUpper, Unordered} {
		got, ok := ParseStyle(s.String())
		if !ok || got != s {
			t.Errorf("ParseStyle(%q) = %v, %v", s.String(), got, ok)
		}
	}
}

// --- Parse Tests ---

func TestParseAlpha_RoundTrip(t *testing.T) {
	for n := 1; n <= 10000; n++ {
		upper, err := ParseAlpha(Alpha(n))
		if err != nil || upper != n {
			t.Fatalf("ParseAlpha(Alpha(%d)) = %d, %v", n, upper, err)
		}
		lower, err := ParseAlpha(strings.ToLower(Alpha(n)))
		if err != nil || lower != n {
			t.Fatalf("ParseAlpha(lower Alpha(%d)) = %d, %v", n, lower, err)
		}
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		marker string
		style  Style
	}{
		{"empty alpha", "", AlphaLower},
		{"digit in alpha", "a1", AlphaLower},
		{"mixed case alpha", "aB", AlphaUpper},
		{"wrong case alpha", "AB", AlphaLower},
		{"non canonical roman", "IIII", RomanUpper},
		{"bad roman order", "IC", RomanUpper},
		{"wrong case roman", "iv", RomanUpper},
		{"unknown roman digit", "IZ", RomanUpper},
		{"zero number", "0", Number},
		{"word number", "two", Number},
		{"bullet", "*", Unordered},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.marker, tt.style)
			if err == nil {
				t.Fatalf("Parse(%q, %s) expected error", tt.marker, tt.style)
			}
			if !errors.Is(err, ErrInvalidMarker) {
				t.Errorf("expected ErrInvalidMarker, got %v", err)
			}
		})
	}
}

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		marker string
		style  Style
		want   int
	}{
		{"12", Number, 12},
		{"ab", AlphaLower, 28},
		{"AB", AlphaUpper, 28},
		{"xiv", RomanLower, 14},
		{"XIV", RomanUpper, 14},
	}

	for _, tt := range tests {
		got, err := Parse(tt.marker, tt.style)
		if err != nil {
			t.Fatalf("Parse(%q, %s) error = %v", tt.marker, tt.style, err)
		}
		if got != tt.want {
			t.Errorf("Parse(%q, %s) = %d, want %d", tt.marker, tt.style, got, tt.want)
		}
	}
}
