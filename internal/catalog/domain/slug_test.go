package domain

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Minimalist", "minimalist"},
		{"Dark Academia", "dark-academia"},
		{"  Parisian   Chic  ", "parisian-chic"},
		{"Y2K", "y2k"},
		{"", ""},
	}

	for _, tc := range cases {
		if got := Slugify(tc.in); got != tc.want {
			t.Fatalf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestKnownSlugs(t *testing.T) {
	if !IsKnownSlug("minimalist") || !IsKnownSlug("avant-garde") {
		t.Fatalf("expected core archetypes to be known")
	}
	if IsKnownSlug("cyberpunk") {
		t.Fatalf("unknown slug reported as known")
	}

	slugs := KnownSlugs()
	slugs[0] = "mutated"
	if KnownSlugs()[0] == "mutated" {
		t.Fatalf("KnownSlugs handed out the internal slice")
	}
}
