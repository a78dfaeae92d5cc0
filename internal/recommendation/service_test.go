package recommendation

import (
	"testing"

	catalogdomain "github.com/stylecrate/stylecrate-services/api/internal/catalog/domain"
)

func newAesthetic(t *testing.T, name string, input catalogdomain.ThemePropertiesInput) *catalogdomain.Aesthetic {
	t.Helper()
	theme, err := catalogdomain.NewThemeProperties(input)
	if err != nil {
		t.Fatalf("building theme: %v", err)
	}
	aesthetic, err := catalogdomain.NewAesthetic("a1", name, "A style archetype.", theme, "")
	if err != nil {
		t.Fatalf("building aesthetic: %v", err)
	}
	return aesthetic
}

func minimalistAesthetic(t *testing.T) *catalogdomain.Aesthetic {
	t.Helper()
	return newAesthetic(t, "Minimalist", catalogdomain.ThemePropertiesInput{
		Colors:   []string{"#FFFFFF", "beige"},
		Style:    "minimal",
		Keywords: []string{"clean", "simple"},
	})
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	service, err := NewService(DefaultRelatedAesthetics())
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return service
}

func TestCalculateProductMatchDirectAndRelated(t *testing.T) {
	service := newTestService(t)
	aesthetic := minimalistAesthetic(t)

	if got := service.CalculateProductMatch([]string{"Minimalist"}, aesthetic); got != 100 {
		t.Fatalf("direct slug match should score 100, got %d", got)
	}
	if got := service.CalculateProductMatch([]string{"Normcore"}, aesthetic); got != 75 {
		t.Fatalf("related match should score 75, got %d", got)
	}
	// Direct matches win even when a related tag is also present.
	if got := service.CalculateProductMatch([]string{"normcore", "minimalist"}, aesthetic); got != 100 {
		t.Fatalf("direct match should take precedence, got %d", got)
	}
}

func TestCalculateProductMatchRelationIsDirectional(t *testing.T) {
	service := newTestService(t)

	coastal := newAesthetic(t, "Coastal", catalogdomain.ThemePropertiesInput{
		Colors: []string{"sand"},
		Style:  "breezy",
	})
	if got := service.CalculateProductMatch([]string{"minimalist"}, coastal); got != 75 {
		t.Fatalf("coastal lists minimalist as related, got %d", got)
	}

	minimalist := minimalistAesthetic(t)
	if got := service.CalculateProductMatch([]string{"coastal"}, minimalist); got == 75 {
		t.Fatalf("minimalist does not list coastal, 75 must not apply")
	}
}

func TestCalculateProductMatchComposite(t *testing.T) {
	service := newTestService(t)
	aesthetic := minimalistAesthetic(t)

	cases := []struct {
		name string
		tags []string
		want catalogdomain.AestheticScore
	}{
		{
			// one of two keywords (20) plus a substring color hit (30)
			// out of 100 possible.
			name: "partial keyword and color",
			tags: []string{"clean", "beige-tone"},
			want: 50,
		},
		{
			name: "all axes hit",
			tags: []string{"clean", "simple", "minimal", "beige"},
			want: 100,
		},
		{
			name: "style only",
			tags: []string{"minimal"},
			want: 30,
		},
		{
			name: "nothing in common",
			tags: []string{"cyber", "neon"},
			want: 0,
		},
		{
			name: "no tags",
			tags: nil,
			want: 0,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := service.CalculateProductMatch(tc.tags, aesthetic); got != tc.want {
				t.Fatalf("got %d, want %d", got, tc.want)
			}
		})
	}
}

func TestCalculateProductMatchIneligibleAxes(t *testing.T) {
	service := newTestService(t)

	// No keywords on the theme, so only style (30) and color (30) count.
	aesthetic := newAesthetic(t, "Normcore", catalogdomain.ThemePropertiesInput{
		Colors: []string{"grey"},
		Style:  "unassuming",
	})
	if got := service.CalculateProductMatch([]string{"unassuming"}, aesthetic); got != 50 {
		t.Fatalf("style hit over 60 possible points should score 50, got %d", got)
	}
}

func TestCalculateProductMatchNilAesthetic(t *testing.T) {
	service := newTestService(t)
	if got := service.CalculateProductMatch([]string{"minimalist"}, nil); got != 0 {
		t.Fatalf("nil aesthetic must score 0, got %d", got)
	}
}

func TestRankProductsSortsDescending(t *testing.T) {
	service := newTestService(t)
	aesthetic := minimalistAesthetic(t)

	products := []Product{
		{ID: "p1", AestheticTags: []string{"clean", "beige-tone"}},
		{ID: "p2", AestheticTags: []string{"minimalist"}},
		{ID: "p3", AestheticTags: []string{"normcore"}},
	}

	matches := service.RankProducts(products, aesthetic)
	if len(matches) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(matches))
	}
	wantOrder := []string{"p2", "p3", "p1"}
	for i, want := range wantOrder {
		if matches[i].ProductID != want {
			t.Fatalf("rank %d: got %q, want %q", i, matches[i].ProductID, want)
		}
		if matches[i].AestheticID != aesthetic.ID() {
			t.Fatalf("match missing aesthetic id")
		}
	}
}

func TestRankProductsStableForEqualScores(t *testing.T) {
	service := newTestService(t)
	aesthetic := minimalistAesthetic(t)

	products := []Product{
		{ID: "first", AestheticTags: []string{"minimalist"}},
		{ID: "second", AestheticTags: []string{"minimalist"}},
	}
	matches := service.RankProducts(products, aesthetic)
	if matches[0].ProductID != "first" || matches[1].ProductID != "second" {
		t.Fatalf("equal scores must keep input order, got %+v", matches)
	}
}

func TestMatchFilters(t *testing.T) {
	service := newTestService(t)
	matches := []ProductMatch{
		{ProductID: "p1", Score: 100},
		{ProductID: "p2", Score: 75},
		{ProductID: "p3", Score: 50},
		{ProductID: "p4", Score: 10},
	}

	if kept := service.FilterByMinimumScore(matches, 75); len(kept) != 2 {
		t.Fatalf("minimum filter must be inclusive, kept %d", len(kept))
	}
	if kept := service.HighMatchProducts(matches); len(kept) != 2 {
		t.Fatalf("expected 2 high matches, got %d", len(kept))
	}
	kept := service.MediumMatchProducts(matches)
	if len(kept) != 1 || kept[0].ProductID != "p3" {
		t.Fatalf("expected only p3 as medium match, got %+v", kept)
	}
}

func TestNewServiceValidatesTable(t *testing.T) {
	if _, err := NewService(map[string][]string{"cyberpunk": {"minimalist"}}); err == nil {
		t.Fatalf("unknown key should fail construction")
	}
	if _, err := NewService(map[string][]string{"minimalist": {"cyberpunk"}}); err == nil {
		t.Fatalf("unknown neighbour should fail construction")
	}

	table := map[string][]string{"minimalist": {"normcore"}}
	service, err := NewService(table)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	table["minimalist"][0] = "goth"

	aesthetic := minimalistAesthetic(t)
	if got := service.CalculateProductMatch([]string{"normcore"}, aesthetic); got != 75 {
		t.Fatalf("service must copy the table, got %d", got)
	}
}
