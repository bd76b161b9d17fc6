package objectid

import (
	"strings"
	"testing"
)

func TestIsValid(t *testing.T) {
	cases := map[string]bool{
		"65a1f0c2e4b0a1b2c3d4e5f6":  true,
		"000000000000000000000000":  true,
		"ffffffffffffffffffffffff":  true,
		"65A1F0C2E4B0A1B2C3D4E5F6":  false,
		"65a1f0c2e4b0a1b2c3d4e5f":   false,
		"65a1f0c2e4b0a1b2c3d4e5f60": false,
		"65a1f0c2e4b0a1b2c3d4e5fg":  false,
		"not-24-hex":                false,
		"":                          false,
		" 5a1f0c2e4b0a1b2c3d4e5f6":  false,
	}
	for in, want := range cases {
		if got := IsValid(in); got != want {
			t.Fatalf("IsValid(%q): want=%v got=%v", in, want, got)
		}
	}
}

func TestIsValidExhaustiveAlphabet(t *testing.T) {
	const hex = "0123456789abcdef"
	for i := 0; i < 256; i++ {
		c := byte(i)
		s := strings.Repeat("a", Length-1) + string([]byte{c})
		want := strings.IndexByte(hex, c) >= 0
		if got := IsValid(s); got != want {
			t.Fatalf("IsValid with trailing %q: want=%v got=%v", c, want, got)
		}
	}
}

func TestNewIsValidAndUnique(t *testing.T) {
	seen := map[string]struct{}{}
	for i := 0; i < 1000; i++ {
		id := New()
		if !IsValid(id) {
			t.Fatalf("New produced invalid id %q", id)
		}
		if _, dup := seen[id]; dup {
			t.Fatalf("New produced duplicate id %q", id)
		}
		seen[id] = struct{}{}
	}
}
