package domain

// DefaultStyleQuiz returns the fixed style-quiz question bank. The quiz is
// stateless, so callers may build it once at startup and share it freely.
func DefaultStyleQuiz() (*StyleQuiz, error) {
	return NewStyleQuiz("style-quiz-v1", defaultQuestions())
}

func defaultQuestions() []Question {
	return []Question{
		{
			ID:   "q1",
			Text: "Which color palette do you reach for first?",
			Options: []Option{
				{
					ID:   "q1a",
					Text: "Neutral monochrome",
					Weights: []AestheticWeight{
						{Slug: "minimalist", Weight: 10},
						{Slug: "normcore", Weight: 6},
						{Slug: "old-money", Weight: 4},
					},
				},
				{
					ID:   "q1b",
					Text: "Earthy tones and soft florals",
					Weights: []AestheticWeight{
						{Slug: "cottagecore", Weight: 9},
						{Slug: "bohemian", Weight: 7},
						{Slug: "fairycore", Weight: 5},
					},
				},
				{
					ID:   "q1c",
					Text: "All black, everything",
					Weights: []AestheticWeight{
						{Slug: "goth", Weight: 10},
						{Slug: "grunge", Weight: 7},
						{Slug: "edgy", Weight: 6},
						{Slug: "dark-academia", Weight: 4},
					},
				},
				{
					ID:   "q1d",
					Text: "Bright metallics and candy pastels",
					Weights: []AestheticWeight{
						{Slug: "y2k", Weight: 9},
						{Slug: "streetwear", Weight: 5},
						{Slug: "avant-garde", Weight: 4},
					},
				},
			},
		},
		{
			ID:   "q2",
			Text: "Pick a weekend plan.",
			Options: []Option{
				{
					ID:   "q2a",
					Text: "A gallery, then a quiet coffee bar",
					Weights: []AestheticWeight{
						{Slug: "minimalist", Weight: 8},
						{Slug: "parisian-chic", Weight: 6},
						{Slug: "avant-garde", Weight: 4},
					},
				},
				{
					ID:   "q2b",
					Text: "Farmers market and an afternoon of baking",
					Weights: []AestheticWeight{
						{Slug: "cottagecore", Weight: 10},
						{Slug: "romantic", Weight: 5},
						{Slug: "vintage", Weight: 4},
					},
				},
				{
					ID:   "q2c",
					Text: "Record stores and a dive-bar gig",
					Weights: []AestheticWeight{
						{Slug: "grunge", Weight: 9},
						{Slug: "vintage", Weight: 6},
						{Slug: "edgy", Weight: 5},
					},
				},
				{
					ID:   "q2d",
					Text: "A trail run and a sauna",
					Weights: []AestheticWeight{
						{Slug: "gorpcore", Weight: 9},
						{Slug: "athleisure", Weight: 8},
						{Slug: "normcore", Weight: 3},
					},
				},
			},
		},
		{
			ID:   "q3",
			Text: "Your ideal outerwear?",
			Options: []Option{
				{
					ID:   "q3a",
					Text: "A structured wool overcoat",
					Weights: []AestheticWeight{
						{Slug: "old-money", Weight: 8},
						{Slug: "minimalist", Weight: 7},
						{Slug: "dark-academia", Weight: 5},
					},
				},
				{
					ID:   "q3b",
					Text: "An oversized puffer",
					Weights: []AestheticWeight{
						{Slug: "streetwear", Weight: 8},
						{Slug: "gorpcore", Weight: 7},
						{Slug: "y2k", Weight: 4},
					},
				},
				{
					ID:   "q3c",
					Text: "A thrifted leather jacket",
					Weights: []AestheticWeight{
						{Slug: "grunge", Weight: 8},
						{Slug: "edgy", Weight: 7},
						{Slug: "vintage", Weight: 5},
					},
				},
				{
					ID:   "q3d",
					Text: "A linen shawl",
					Weights: []AestheticWeight{
						{Slug: "bohemian", Weight: 8},
						{Slug: "cottagecore", Weight: 6},
						{Slug: "coastal", Weight: 5},
					},
				},
			},
		},
		{
			ID:   "q4",
			Text: "Choose a fabric.",
			Options: []Option{
				{
					ID:   "q4a",
					Text: "Crisp cotton poplin",
					Weights: []AestheticWeight{
						{Slug: "minimalist", Weight: 9},
						{Slug: "preppy", Weight: 6},
						{Slug: "normcore", Weight: 4},
					},
				},
				{
					ID:   "q4b",
					Text: "Lace and chiffon",
					Weights: []AestheticWeight{
						{Slug: "romantic", Weight: 9},
						{Slug: "fairycore", Weight: 7},
						{Slug: "vintage", Weight: 4},
					},
				},
				{
					ID:   "q4c",
					Text: "Distressed denim",
					Weights: []AestheticWeight{
						{Slug: "grunge", Weight: 8},
						{Slug: "streetwear", Weight: 6},
						{Slug: "y2k", Weight: 5},
					},
				},
				{
					ID:   "q4d",
					Text: "Cashmere",
					Weights: []AestheticWeight{
						{Slug: "old-money", Weight: 9},
						{Slug: "parisian-chic", Weight: 6},
						{Slug: "coastal", Weight: 4},
					},
				},
			},
		},
		{
			ID:   "q5",
			Text: "Pick an accessory.",
			Options: []Option{
				{
					ID:   "q5a",
					Text: "A single silver band",
					Weights: []AestheticWeight{
						{Slug: "minimalist", Weight: 10},
						{Slug: "avant-garde", Weight: 3},
					},
				},
				{
					ID:   "q5b",
					Text: "A woven basket bag",
					Weights: []AestheticWeight{
						{Slug: "cottagecore", Weight: 8},
						{Slug: "coastal", Weight: 7},
						{Slug: "bohemian", Weight: 5},
					},
				},
				{
					ID:   "q5c",
					Text: "Chunky sneakers",
					Weights: []AestheticWeight{
						{Slug: "streetwear", Weight: 9},
						{Slug: "athleisure", Weight: 7},
						{Slug: "y2k", Weight: 5},
					},
				},
				{
					ID:   "q5d",
					Text: "A pearl necklace",
					Weights: []AestheticWeight{
						{Slug: "old-money", Weight: 8},
						{Slug: "preppy", Weight: 7},
						{Slug: "romantic", Weight: 4},
					},
				},
			},
		},
		{
			ID:   "q6",
			Text: "Your dream home looks like…",
			Options: []Option{
				{
					ID:   "q6a",
					Text: "White walls, warm wood, nothing extra",
					Weights: []AestheticWeight{
						{Slug: "minimalist", Weight: 10},
						{Slug: "normcore", Weight: 5},
						{Slug: "coastal", Weight: 4},
					},
				},
				{
					ID:   "q6b",
					Text: "A stone cottage with an overgrown garden",
					Weights: []AestheticWeight{
						{Slug: "cottagecore", Weight: 10},
						{Slug: "fairycore", Weight: 6},
						{Slug: "romantic", Weight: 4},
					},
				},
				{
					ID:   "q6c",
					Text: "A loft papered with concert posters",
					Weights: []AestheticWeight{
						{Slug: "grunge", Weight: 7},
						{Slug: "streetwear", Weight: 6},
						{Slug: "edgy", Weight: 5},
					},
				},
				{
					ID:   "q6d",
					Text: "A library with worn leather chairs",
					Weights: []AestheticWeight{
						{Slug: "dark-academia", Weight: 9},
						{Slug: "old-money", Weight: 6},
						{Slug: "vintage", Weight: 4},
					},
				},
			},
		},
		{
			ID:   "q7",
			Text: "Pick a print.",
			Options: []Option{
				{
					ID:   "q7a",
					Text: "No print at all",
					Weights: []AestheticWeight{
						{Slug: "minimalist", Weight: 10},
						{Slug: "normcore", Weight: 7},
					},
				},
				{
					ID:   "q7b",
					Text: "Ditsy floral",
					Weights: []AestheticWeight{
						{Slug: "cottagecore", Weight: 9},
						{Slug: "romantic", Weight: 6},
						{Slug: "vintage", Weight: 4},
					},
				},
				{
					ID:   "q7c",
					Text: "Plaid and tartan",
					Weights: []AestheticWeight{
						{Slug: "dark-academia", Weight: 7},
						{Slug: "preppy", Weight: 7},
						{Slug: "grunge", Weight: 5},
					},
				},
				{
					ID:   "q7d",
					Text: "Animal print",
					Weights: []AestheticWeight{
						{Slug: "y2k", Weight: 7},
						{Slug: "edgy", Weight: 6},
						{Slug: "avant-garde", Weight: 5},
					},
				},
			},
		},
		{
			ID:   "q8",
			Text: "How do you want to feel in your clothes?",
			Options: []Option{
				{
					ID:   "q8a",
					Text: "Calm and intentional",
					Weights: []AestheticWeight{
						{Slug: "minimalist", Weight: 9},
						{Slug: "parisian-chic", Weight: 5},
						{Slug: "old-money", Weight: 4},
					},
				},
				{
					ID:   "q8b",
					Text: "Soft and dreamy",
					Weights: []AestheticWeight{
						{Slug: "fairycore", Weight: 8},
						{Slug: "romantic", Weight: 7},
						{Slug: "cottagecore", Weight: 6},
					},
				},
				{
					ID:   "q8c",
					Text: "Bold and unbothered",
					Weights: []AestheticWeight{
						{Slug: "edgy", Weight: 8},
						{Slug: "streetwear", Weight: 7},
						{Slug: "goth", Weight: 5},
					},
				},
				{
					ID:   "q8d",
					Text: "Ready for anything outdoors",
					Weights: []AestheticWeight{
						{Slug: "gorpcore", Weight: 9},
						{Slug: "athleisure", Weight: 7},
						{Slug: "coastal", Weight: 3},
					},
				},
			},
		},
	}
}
