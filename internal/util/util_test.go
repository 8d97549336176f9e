package util

import "testing"

func TestFallback(t *testing.T) {
	cases := []struct {
		value  string
		def    string
		expect string
	}{
		{"value", "def", "value"},
		{"", "def", "def"},
		{"   ", "def", "def"},
	}

	for _, tc := range cases {
		if got := Fallback(tc.value, tc.def); got != tc.expect {
			t.Fatalf("Fallback(%q, %q): expected %q, got %q", tc.value, tc.def, tc.expect, got)
		}
	}
}

func TestWrapIndex(t *testing.T) {
	cases := []struct {
		current, delta, length, expect int
	}{
		{0, 1, 3, 1},
		{2, 1, 3, 0},
		{0, -1, 3, 2},
		{0, 0, 0, 0},
	}

	for _, tc := range cases {
		if got := WrapIndex(tc.current, tc.delta, tc.length); got != tc.expect {
			t.Fatalf("WrapIndex(%d, %d, %d): expected %d, got %d", tc.current, tc.delta, tc.length, tc.expect, got)
		}
	}
}

func TestTruncateString(t *testing.T) {
	cases := []struct {
		value  string
		width  int
		expect string
	}{
		{"hello", 10, "hello"},
		{"hello world", 8, "hello..."},
		{"hello", 3, "hel"},
		{"hello", 0, ""},
	}

	for _, tc := range cases {
		if got := TruncateString(tc.value, tc.width); got != tc.expect {
			t.Fatalf("TruncateString(%q, %d): expected %q, got %q", tc.value, tc.width, tc.expect, got)
		}
	}
}

func TestPadString(t *testing.T) {
	if got := PadString("ab", 5); got != "ab   " {
		t.Fatalf("expected %q, got %q", "ab   ", got)
	}
	if got := PadString("abcdef", 3); got != "abcdef" {
		t.Fatalf("expected unchanged string, got %q", got)
	}
}
