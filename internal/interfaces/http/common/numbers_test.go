package common

import "testing"

func TestParsePositiveInt(t *testing.T) {
	cases := []struct {
		in       string
		fallback int
		want     int
		ok       bool
	}{
		{"5", 1, 5, true},
		{" 12 ", 1, 12, true},
		{"", 20, 20, false},
		{"0", 20, 20, false},
		{"-3", 20, 20, false},
		{"abc", 20, 20, false},
	}

	for _, tc := range cases {
		got, ok := ParsePositiveInt(tc.in, tc.fallback)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("ParsePositiveInt(%q, %d) = (%d, %v), want (%d, %v)", tc.in, tc.fallback, got, ok, tc.want, tc.ok)
		}
	}
}
