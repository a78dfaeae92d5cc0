package recommendation

import (
	"fmt"
	"math"
	"sort"
	"strings"

	catalogdomain "github.com/stylecrate/stylecrate-services/api/internal/catalog/domain"
)

const (
	directMatchScore  = 100
	relatedMatchScore = 75

	keywordAxisWeight = 40.0
	styleAxisWeight   = 30.0
	colorAxisWeight   = 30.0
)

// Product is the minimal product shape the engine ranks: an identifier and
// its free-form style tags.
type Product struct {
	ID            string
	AestheticTags []string
}

// ProductMatch is the ephemeral result of scoring one product against one
// aesthetic. It is produced per ranking call and never persisted.
type ProductMatch struct {
	ProductID   string
	AestheticID string
	Score       catalogdomain.AestheticScore
}

// Service scores and ranks products against an aesthetic. It sits on the
// ranking hot path and therefore never returns an error: any abnormal input
// degrades to a score of zero.
type Service struct {
	related map[string][]string
}

// NewService validates the adjacency table against the known slug
// vocabulary and returns the scoring service. A typo in the static table
// fails construction instead of silently never matching.
func NewService(related map[string][]string) (*Service, error) {
	for slug, neighbours := range related {
		if !catalogdomain.IsKnownSlug(slug) {
			return nil, fmt.Errorf("related table references unknown aesthetic %q", slug)
		}
		for _, neighbour := range neighbours {
			if !catalogdomain.IsKnownSlug(neighbour) {
				return nil, fmt.Errorf("related table for %q references unknown aesthetic %q", slug, neighbour)
			}
		}
	}
	copied := make(map[string][]string, len(related))
	for slug, neighbours := range related {
		copied[slug] = append([]string{}, neighbours...)
	}
	return &Service{related: copied}, nil
}

// CalculateProductMatch scores how well the tags fit the aesthetic.
// A tag equal to the aesthetic's slug scores 100, a tag in its related list
// scores 75, otherwise a weighted composite over keyword, style and color
// axes decides.
func (s *Service) CalculateProductMatch(tags []string, aesthetic *catalogdomain.Aesthetic) catalogdomain.AestheticScore {
	if len(tags) == 0 || aesthetic == nil {
		return 0
	}

	slug := aesthetic.Slug()
	normalized := make([]string, 0, len(tags))
	for _, tag := range tags {
		normalized = append(normalized, catalogdomain.Slugify(tag))
	}

	for _, tag := range normalized {
		if tag == slug {
			return directMatchScore
		}
	}

	for _, tag := range normalized {
		if s.isRelated(slug, tag) {
			return relatedMatchScore
		}
	}

	theme := aesthetic.ThemeProperties()
	if theme == nil {
		return 0
	}
	return compositeScore(tags, theme)
}

// RankProducts scores every product and returns the matches sorted by score
// descending. The sort is stable, so equal scores keep input order.
func (s *Service) RankProducts(products []Product, aesthetic *catalogdomain.Aesthetic) []ProductMatch {
	aestheticID := ""
	if aesthetic != nil {
		aestheticID = aesthetic.ID()
	}

	matches := make([]ProductMatch, 0, len(products))
	for _, product := range products {
		matches = append(matches, ProductMatch{
			ProductID:   product.ID,
			AestheticID: aestheticID,
			Score:       s.CalculateProductMatch(product.AestheticTags, aesthetic),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score.GreaterThan(matches[j].Score)
	})
	return matches
}

// FilterByMinimumScore keeps matches whose score is at least min.
func (s *Service) FilterByMinimumScore(matches []ProductMatch, min int) []ProductMatch {
	kept := make([]ProductMatch, 0, len(matches))
	for _, match := range matches {
		if match.Score.Value() >= min {
			kept = append(kept, match)
		}
	}
	return kept
}

// HighMatchProducts keeps matches classified as high.
func (s *Service) HighMatchProducts(matches []ProductMatch) []ProductMatch {
	kept := make([]ProductMatch, 0, len(matches))
	for _, match := range matches {
		if match.Score.IsHighMatch() {
			kept = append(kept, match)
		}
	}
	return kept
}

// MediumMatchProducts keeps matches classified as medium.
func (s *Service) MediumMatchProducts(matches []ProductMatch) []ProductMatch {
	kept := make([]ProductMatch, 0, len(matches))
	for _, match := range matches {
		if match.Score.IsMediumMatch() {
			kept = append(kept, match)
		}
	}
	return kept
}

func (s *Service) isRelated(slug, tag string) bool {
	for _, neighbour := range s.related[slug] {
		if neighbour == tag {
			return true
		}
	}
	return false
}

// compositeScore runs the weighted fallback. Each axis contributes earned
// and possible points only while eligible; the final score is the earned
// share of the possible total, scaled to 0–100.
func compositeScore(tags []string, theme *catalogdomain.ThemeProperties) catalogdomain.AestheticScore {
	lowered := make([]string, 0, len(tags))
	for _, tag := range tags {
		lowered = append(lowered, strings.ToLower(strings.TrimSpace(tag)))
	}

	earned := 0.0
	possible := 0.0

	if keywords := theme.Keywords(); len(keywords) > 0 {
		possible += keywordAxisWeight
		matched := 0
		for _, keyword := range keywords {
			if containsString(lowered, strings.ToLower(keyword)) {
				matched++
			}
		}
		earned += float64(matched) / float64(len(keywords)) * keywordAxisWeight
	}

	possible += styleAxisWeight
	if containsString(lowered, strings.ToLower(theme.Style())) {
		earned += styleAxisWeight
	}

	if colors := theme.Colors(); len(colors) > 0 {
		possible += colorAxisWeight
		if anyColorOverlap(lowered, colors) {
			earned += colorAxisWeight
		}
	}

	if possible == 0 {
		return 0
	}
	score := int(math.Round(earned / possible * 100))
	return catalogdomain.AestheticScore(score)
}

func containsString(values []string, candidate string) bool {
	for _, value := range values {
		if value == candidate {
			return true
		}
	}
	return false
}

// anyColorOverlap applies the bidirectional substring heuristic: a tag
// "off-white" hits the color "white" and a tag "blue" hits "navy-blue".
func anyColorOverlap(tags []string, colors []string) bool {
	for _, color := range colors {
		lowerColor := strings.ToLower(color)
		for _, tag := range tags {
			if tag == "" {
				continue
			}
			if strings.Contains(lowerColor, tag) || strings.Contains(tag, lowerColor) {
				return true
			}
		}
	}
	return false
}
