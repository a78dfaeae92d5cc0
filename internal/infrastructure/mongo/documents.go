package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ThemePropertiesDocument is the embedded theme vocabulary of an aesthetic.
type ThemePropertiesDocument struct {
	Colors   []string `bson:"colors"`
	Style    string   `bson:"style"`
	Mood     string   `bson:"mood,omitempty"`
	Patterns []string `bson:"patterns,omitempty"`
	Textures []string `bson:"textures,omitempty"`
	Keywords []string `bson:"keywords,omitempty"`
}

// AestheticDocument is the MongoDB schema for an aesthetic. The slug is
// denormalized from the name so quiz-result resolution can query it directly.
type AestheticDocument struct {
	ID          primitive.ObjectID      `bson:"_id"`
	Name        string                  `bson:"name"`
	Slug        string                  `bson:"slug"`
	Description string                  `bson:"description"`
	Theme       ThemePropertiesDocument `bson:"themeProperties"`
	ImageURL    string                  `bson:"imageUrl,omitempty"`
	CreatedAt   time.Time               `bson:"createdAt"`
	UpdatedAt   time.Time               `bson:"updatedAt"`
}
