package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/stylecrate/stylecrate-services/api/internal/catalog/domain"
	mongodoc "github.com/stylecrate/stylecrate-services/api/internal/infrastructure/mongo"
)

type seedAesthetic struct {
	name        string
	description string
	theme       domain.ThemePropertiesInput
}

func main() {
	logger := log.New(os.Stdout, "[stylecrate-seed] ", log.LstdFlags)

	var (
		mongoURI   = flag.String("mongo-uri", envOrDefault("MONGO_URI", "mongodb://localhost:27017"), "MongoDB connection URI")
		database   = flag.String("db", envOrDefault("MONGO_DB", "stylecrate"), "database name")
		collection = flag.String("collection", envOrDefault("AESTHETIC_COLLECTION", "aesthetics"), "aesthetic collection name")
		drop       = flag.Bool("drop", false, "drop the collection before seeding")
	)
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(*mongoURI).SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		logger.Fatalf("failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Printf("error while disconnecting MongoDB: %v", err)
		}
	}()

	db := client.Database(*database)
	if *drop {
		if err := db.Collection(*collection).Drop(ctx); err != nil {
			logger.Fatalf("failed to drop collection %s: %v", *collection, err)
		}
		logger.Printf("dropped collection %s", *collection)
	}

	repo := mongodoc.NewAestheticRepository(db, *collection)

	seeded := 0
	for _, seed := range defaultCatalog() {
		theme, err := domain.NewThemeProperties(seed.theme)
		if err != nil {
			logger.Fatalf("invalid seed theme for %q: %v", seed.name, err)
		}
		aesthetic, err := domain.NewAesthetic("", seed.name, seed.description, theme, "")
		if err != nil {
			logger.Fatalf("invalid seed aesthetic %q: %v", seed.name, err)
		}
		if err := repo.Create(ctx, aesthetic); err != nil {
			logger.Fatalf("failed to insert aesthetic %q: %v", seed.name, err)
		}
		seeded++
	}

	logger.Printf("seeded %d aesthetics into %s.%s", seeded, *database, *collection)
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// defaultCatalog is the stock archetype catalog. Names slugify to exactly
// the vocabulary the quiz weight tables and the related-aesthetic graph use.
func defaultCatalog() []seedAesthetic {
	return []seedAesthetic{
		{
			name:        "Minimalist",
			description: "Pared-back wardrobe staples in neutral tones, built on clean lines and quiet quality.",
			theme: domain.ThemePropertiesInput{
				Colors:   []string{"#FFFFFF", "#000000", "beige", "grey"},
				Style:    "minimal",
				Mood:     "calm",
				Keywords: []string{"clean", "simple", "structured", "timeless"},
			},
		},
		{
			name:        "Cottagecore",
			description: "Romanticized countryside dressing: florals, natural fibers and a homespun softness.",
			theme: domain.ThemePropertiesInput{
				Colors:   []string{"cream", "sage-green", "dusty-rose"},
				Style:    "pastoral",
				Mood:     "nostalgic",
				Patterns: []string{"floral", "gingham"},
				Textures: []string{"linen", "cotton"},
				Keywords: []string{"floral", "prairie", "handmade", "garden"},
			},
		},
		{
			name:        "Dark Academia",
			description: "Scholarly layers in moody tones, drawing on old libraries, tweed and candlelight.",
			theme: domain.ThemePropertiesInput{
				Colors:   []string{"#3B2F2F", "burgundy", "forest-green"},
				Style:    "scholarly",
				Mood:     "moody",
				Patterns: []string{"plaid", "houndstooth"},
				Textures: []string{"tweed", "wool"},
				Keywords: []string{"tweed", "vintage", "library", "tailored"},
			},
		},
		{
			name:        "Streetwear",
			description: "Urban-rooted staples: graphic layers, statement sneakers and an oversized silhouette.",
			theme: domain.ThemePropertiesInput{
				Colors:   []string{"#000000", "#FF0000", "white"},
				Style:    "urban",
				Mood:     "bold",
				Keywords: []string{"graphic", "sneakers", "oversized", "logo"},
			},
		},
		{
			name:        "Y2K",
			description: "Early-2000s revival with low rises, metallics, rhinestones and candy colors.",
			theme: domain.ThemePropertiesInput{
				Colors:   []string{"#FF69B4", "silver", "baby-blue"},
				Style:    "retro-futuristic",
				Mood:     "playful",
				Textures: []string{"metallic", "velour"},
				Keywords: []string{"rhinestone", "butterfly", "low-rise", "glossy"},
			},
		},
		{
			name:        "Bohemian",
			description: "Free-spirited layering of prints, fringe and artisan jewelry with an earthy palette.",
			theme: domain.ThemePropertiesInput{
				Colors:   []string{"terracotta", "mustard", "olive"},
				Style:    "free-spirited",
				Mood:     "earthy",
				Patterns: []string{"paisley", "ikat"},
				Textures: []string{"suede", "crochet"},
				Keywords: []string{"fringe", "flowy", "layered", "artisan"},
			},
		},
		{
			name:        "Grunge",
			description: "Nineties rebellion: flannel, ripped denim, band tees and a deliberately unpolished edge.",
			theme: domain.ThemePropertiesInput{
				Colors:   []string{"#000000", "charcoal", "faded-red"},
				Style:    "rebellious",
				Mood:     "raw",
				Patterns: []string{"plaid"},
				Textures: []string{"flannel", "denim"},
				Keywords: []string{"flannel", "ripped", "band-tee", "combat-boots"},
			},
		},
		{
			name:        "Preppy",
			description: "Collegiate polish with polos, pleats, cable knits and crisp nautical color blocking.",
			theme: domain.ThemePropertiesInput{
				Colors:   []string{"navy", "white", "#DC2626"},
				Style:    "collegiate",
				Mood:     "polished",
				Patterns: []string{"stripe", "argyle"},
				Keywords: []string{"polo", "pleated", "cable-knit", "nautical"},
			},
		},
		{
			name:        "Vintage",
			description: "Era-spanning secondhand finds styled into a deliberate retro wardrobe.",
			theme: domain.ThemePropertiesInput{
				Colors:   []string{"mustard", "rust", "cream"},
				Style:    "retro",
				Mood:     "nostalgic",
				Patterns: []string{"polka-dot"},
				Keywords: []string{"retro", "thrifted", "secondhand", "classic"},
			},
		},
		{
			name:        "Athleisure",
			description: "Performance wear styled for the whole day: leggings, zip-ups and clean trainers.",
			theme: domain.ThemePropertiesInput{
				Colors:   []string{"#333333", "white", "neon-green"},
				Style:    "sporty",
				Mood:     "energetic",
				Textures: []string{"jersey", "mesh"},
				Keywords: []string{"leggings", "sporty", "comfortable", "trainers"},
			},
		},
		{
			name:        "Romantic",
			description: "Soft silhouettes, lace, ruffles and blush tones with an unabashedly feminine mood.",
			theme: domain.ThemePropertiesInput{
				Colors:   []string{"blush", "ivory", "#FADADD"},
				Style:    "feminine",
				Mood:     "dreamy",
				Patterns: []string{"floral"},
				Textures: []string{"lace", "chiffon"},
				Keywords: []string{"ruffle", "lace", "soft", "bow"},
			},
		},
		{
			name:        "Edgy",
			description: "Hard-edged essentials: leather, studs, asymmetry and a monochrome attitude.",
			theme: domain.ThemePropertiesInput{
				Colors:   []string{"#000000", "gunmetal"},
				Style:    "daring",
				Mood:     "intense",
				Textures: []string{"leather"},
				Keywords: []string{"leather", "studs", "asymmetric", "moto"},
			},
		},
		{
			name:        "Coastal",
			description: "Breezy linens and sun-washed neutrals that read like a seaside holiday.",
			theme: domain.ThemePropertiesInput{
				Colors:   []string{"white", "sand", "sea-blue"},
				Style:    "breezy",
				Mood:     "relaxed",
				Patterns: []string{"stripe"},
				Textures: []string{"linen"},
				Keywords: []string{"linen", "nautical", "sun-washed", "espadrilles"},
			},
		},
		{
			name:        "Parisian Chic",
			description: "Effortless French polish: trench coats, breton stripes and perfect basics.",
			theme: domain.ThemePropertiesInput{
				Colors:   []string{"#000000", "cream", "red"},
				Style:    "effortless",
				Mood:     "chic",
				Patterns: []string{"breton-stripe"},
				Keywords: []string{"trench", "breton", "ballet-flats", "classic"},
			},
		},
		{
			name:        "Old Money",
			description: "Quiet luxury staples in heirloom fabrics: cashmere, loafers and understated tailoring.",
			theme: domain.ThemePropertiesInput{
				Colors:   []string{"camel", "navy", "forest-green"},
				Style:    "refined",
				Mood:     "understated",
				Textures: []string{"cashmere", "silk"},
				Keywords: []string{"tailored", "heirloom", "loafers", "quiet-luxury"},
			},
		},
		{
			name:        "Gorpcore",
			description: "Technical outdoor gear worn as fashion: shells, fleece and trail-ready details.",
			theme: domain.ThemePropertiesInput{
				Colors:   []string{"olive", "#FF6600", "black"},
				Style:    "technical",
				Mood:     "rugged",
				Textures: []string{"fleece", "ripstop"},
				Keywords: []string{"hiking", "shell", "utility", "carabiner"},
			},
		},
		{
			name:        "Normcore",
			description: "Deliberately unremarkable basics: straight jeans, plain tees and quiet sneakers.",
			theme: domain.ThemePropertiesInput{
				Colors:   []string{"grey", "white", "denim-blue"},
				Style:    "unassuming",
				Mood:     "easygoing",
				Keywords: []string{"basic", "plain", "everyday", "unbranded"},
			},
		},
		{
			name:        "Fairycore",
			description: "Whimsical ethereal dressing with gauzy layers, wings, glitter and woodland motifs.",
			theme: domain.ThemePropertiesInput{
				Colors:   []string{"lavender", "mint", "#E6E6FA"},
				Style:    "ethereal",
				Mood:     "whimsical",
				Textures: []string{"tulle", "organza"},
				Keywords: []string{"glitter", "wings", "woodland", "iridescent"},
			},
		},
		{
			name:        "Goth",
			description: "Darkly romantic dress codes: black on black, velvet, lace and silver hardware.",
			theme: domain.ThemePropertiesInput{
				Colors:   []string{"#000000", "deep-purple"},
				Style:    "dramatic",
				Mood:     "dark",
				Textures: []string{"velvet", "lace"},
				Keywords: []string{"black", "velvet", "corset", "silver"},
			},
		},
		{
			name:        "Avant-Garde",
			description: "Sculptural, rule-breaking silhouettes that treat clothing as wearable art.",
			theme: domain.ThemePropertiesInput{
				Colors:   []string{"#000000", "white", "cobalt"},
				Style:    "experimental",
				Mood:     "provocative",
				Keywords: []string{"sculptural", "deconstructed", "artistic", "statement"},
			},
		},
	}
}
