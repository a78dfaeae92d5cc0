package recommendation

// DefaultRelatedAesthetics is the hand-curated adjacency table of aesthetics
// that read as close neighbours of each other. The relation is deliberately
// not symmetric: coastal leans on minimalist, minimalist does not lean back.
func DefaultRelatedAesthetics() map[string][]string {
	return map[string][]string{
		"minimalist":    {"normcore", "old-money", "parisian-chic"},
		"cottagecore":   {"fairycore", "romantic", "vintage"},
		"dark-academia": {"goth", "vintage", "preppy"},
		"streetwear":    {"athleisure", "y2k", "grunge"},
		"y2k":           {"streetwear", "vintage"},
		"bohemian":      {"cottagecore", "romantic", "vintage"},
		"grunge":        {"goth", "streetwear", "edgy"},
		"preppy":        {"old-money", "parisian-chic"},
		"vintage":       {"y2k", "cottagecore", "bohemian"},
		"athleisure":    {"streetwear", "gorpcore", "normcore"},
		"romantic":      {"cottagecore", "fairycore", "parisian-chic"},
		"edgy":          {"grunge", "goth", "avant-garde"},
		"coastal":       {"minimalist", "old-money"},
		"parisian-chic": {"minimalist", "old-money", "romantic"},
		"old-money":     {"preppy", "parisian-chic", "minimalist"},
		"gorpcore":      {"athleisure", "streetwear"},
		"normcore":      {"minimalist", "athleisure"},
		"fairycore":     {"cottagecore", "romantic"},
		"goth":          {"grunge", "dark-academia", "edgy"},
		"avant-garde":   {"edgy", "minimalist"},
	}
}
