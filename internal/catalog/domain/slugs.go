package domain

// knownSlugs is the fixed vocabulary of aesthetic archetypes. Quiz weight
// tables and the related-aesthetic graph are keyed by these values, and a
// key outside this list is rejected when those tables are constructed.
var knownSlugs = []string{
	"minimalist",
	"cottagecore",
	"dark-academia",
	"streetwear",
	"y2k",
	"bohemian",
	"grunge",
	"preppy",
	"vintage",
	"athleisure",
	"romantic",
	"edgy",
	"coastal",
	"parisian-chic",
	"old-money",
	"gorpcore",
	"normcore",
	"fairycore",
	"goth",
	"avant-garde",
}

// KnownSlugs returns a copy of the archetype slug vocabulary.
func KnownSlugs() []string {
	return append([]string{}, knownSlugs...)
}

// IsKnownSlug reports whether the slug belongs to the fixed vocabulary.
func IsKnownSlug(slug string) bool {
	for _, known := range knownSlugs {
		if known == slug {
			return true
		}
	}
	return false
}
