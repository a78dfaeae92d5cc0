package domain

import (
	"strings"
	"testing"
	"time"
)

func testTheme(t *testing.T) *ThemeProperties {
	t.Helper()
	theme, err := NewThemeProperties(ThemePropertiesInput{Colors: []string{"#000000"}, Style: "minimal"})
	if err != nil {
		t.Fatalf("building theme: %v", err)
	}
	return theme
}

func TestNewAestheticValidation(t *testing.T) {
	theme := testTheme(t)

	cases := []struct {
		name        string
		displayName string
		description string
		theme       *ThemeProperties
		imageURL    string
		wantErr     bool
	}{
		{name: "valid", displayName: "Minimalist", description: "Pared-back staples.", theme: theme},
		{name: "blank name", displayName: "  ", description: "desc", theme: theme, wantErr: true},
		{name: "name too long", displayName: strings.Repeat("a", 101), description: "desc", theme: theme, wantErr: true},
		{name: "blank description", displayName: "Minimalist", description: "", theme: theme, wantErr: true},
		{name: "description too long", displayName: "Minimalist", description: strings.Repeat("a", 1001), theme: theme, wantErr: true},
		{name: "image URL too long", displayName: "Minimalist", description: "desc", theme: theme, imageURL: strings.Repeat("a", 501), wantErr: true},
		{name: "nil theme", displayName: "Minimalist", description: "desc", theme: nil, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewAesthetic("", tc.displayName, tc.description, tc.theme, tc.imageURL)
			if tc.wantErr && err == nil {
				t.Fatalf("expected error, got nil")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestNewAestheticStampsTimestamps(t *testing.T) {
	before := time.Now().UTC()
	aesthetic, err := NewAesthetic("a1", "  Dark Academia  ", "Scholarly layers.", testTheme(t), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if aesthetic.Name() != "Dark Academia" {
		t.Fatalf("name not trimmed: %q", aesthetic.Name())
	}
	if aesthetic.Slug() != "dark-academia" {
		t.Fatalf("unexpected slug: %q", aesthetic.Slug())
	}
	if !aesthetic.CreatedAt().Equal(aesthetic.UpdatedAt()) {
		t.Fatalf("createdAt and updatedAt should match on creation")
	}
	if aesthetic.CreatedAt().Before(before) {
		t.Fatalf("createdAt predates construction")
	}
}

func TestAestheticUpdatesTouchUpdatedAt(t *testing.T) {
	aesthetic, err := NewAesthetic("a1", "Minimalist", "Pared-back staples.", testTheme(t), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	created := aesthetic.CreatedAt()
	previous := aesthetic.UpdatedAt()

	if err := aesthetic.UpdateName("Normcore"); err != nil {
		t.Fatalf("UpdateName: %v", err)
	}
	if aesthetic.Name() != "Normcore" || aesthetic.Slug() != "normcore" {
		t.Fatalf("name not updated, got %q", aesthetic.Name())
	}
	if !aesthetic.CreatedAt().Equal(created) {
		t.Fatalf("createdAt must never change")
	}
	if aesthetic.UpdatedAt().Before(previous) {
		t.Fatalf("updatedAt moved backwards")
	}

	if err := aesthetic.UpdateName(""); err == nil {
		t.Fatalf("blank name should be rejected")
	}
	if aesthetic.Name() != "Normcore" {
		t.Fatalf("failed update must not change state")
	}

	if err := aesthetic.UpdateThemeProperties(nil); err == nil {
		t.Fatalf("nil theme should be rejected")
	}

	if err := aesthetic.UpdateImageURL("  https://cdn.example/img.png  "); err != nil {
		t.Fatalf("UpdateImageURL: %v", err)
	}
	if aesthetic.ImageURL() != "https://cdn.example/img.png" {
		t.Fatalf("image URL not trimmed: %q", aesthetic.ImageURL())
	}
}

func TestReconstituteAestheticKeepsTimestamps(t *testing.T) {
	createdAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	updatedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	aesthetic := ReconstituteAesthetic("a1", "Goth", "Darkly romantic.", testTheme(t), "", createdAt, updatedAt)
	if !aesthetic.CreatedAt().Equal(createdAt) || !aesthetic.UpdatedAt().Equal(updatedAt) {
		t.Fatalf("reconstitution must keep persisted timestamps")
	}
}
