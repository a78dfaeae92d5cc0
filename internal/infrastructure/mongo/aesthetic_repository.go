package mongo

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/stylecrate/stylecrate-services/api/internal/catalog/application"
	"github.com/stylecrate/stylecrate-services/api/internal/catalog/domain"
)

// AestheticRepository persists the aesthetic catalog in MongoDB.
type AestheticRepository struct {
	aesthetics *mongo.Collection
}

// NewAestheticRepository binds the repository to its collection.
func NewAestheticRepository(db *mongo.Database, collection string) *AestheticRepository {
	return &AestheticRepository{aesthetics: db.Collection(collection)}
}

// FindAll returns the whole catalog sorted by name.
func (r *AestheticRepository) FindAll(ctx context.Context) ([]*domain.Aesthetic, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.aesthetics.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	aesthetics := make([]*domain.Aesthetic, 0)
	for cursor.Next(ctx) {
		var doc AestheticDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		aesthetics = append(aesthetics, mapAestheticDocument(doc))
	}
	return aesthetics, cursor.Err()
}

// FindByID looks an aesthetic up by its hex identifier.
func (r *AestheticRepository) FindByID(ctx context.Context, id string) (*domain.Aesthetic, error) {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return nil, application.ErrAestheticNotFound
	}
	return r.findOne(ctx, bson.M{"_id": objectID})
}

// FindBySlug looks an aesthetic up by its canonical slug.
func (r *AestheticRepository) FindBySlug(ctx context.Context, slug string) (*domain.Aesthetic, error) {
	return r.findOne(ctx, bson.M{"slug": domain.Slugify(slug)})
}

// Create inserts the aesthetic and writes the assigned identifier back into
// the domain object.
func (r *AestheticRepository) Create(ctx context.Context, aesthetic *domain.Aesthetic) error {
	doc := mapAestheticToDocument(aesthetic)
	doc.ID = primitive.NewObjectID()
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = time.Now().UTC()
		doc.UpdatedAt = doc.CreatedAt
	}

	if _, err := r.aesthetics.InsertOne(ctx, doc); err != nil {
		return err
	}

	*aesthetic = *domain.ReconstituteAesthetic(
		doc.ID.Hex(),
		aesthetic.Name(),
		aesthetic.Description(),
		aesthetic.ThemeProperties(),
		aesthetic.ImageURL(),
		doc.CreatedAt,
		doc.UpdatedAt,
	)
	return nil
}

// Update replaces the stored document for the aesthetic.
func (r *AestheticRepository) Update(ctx context.Context, aesthetic *domain.Aesthetic) error {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(aesthetic.ID()))
	if err != nil {
		return application.ErrAestheticNotFound
	}

	doc := mapAestheticToDocument(aesthetic)
	doc.ID = objectID

	result, err := r.aesthetics.ReplaceOne(ctx, bson.M{"_id": objectID}, doc)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return application.ErrAestheticNotFound
	}
	return nil
}

func (r *AestheticRepository) findOne(ctx context.Context, filter bson.M) (*domain.Aesthetic, error) {
	var doc AestheticDocument
	if err := r.aesthetics.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, application.ErrAestheticNotFound
		}
		return nil, err
	}
	return mapAestheticDocument(doc), nil
}

// mapAestheticDocument reconstitutes the domain entity from storage without
// re-validation, keeping the persisted timestamps.
func mapAestheticDocument(doc AestheticDocument) *domain.Aesthetic {
	theme := domain.ReconstituteThemeProperties(domain.ThemePropertiesInput{
		Colors:   doc.Theme.Colors,
		Style:    doc.Theme.Style,
		Mood:     doc.Theme.Mood,
		Patterns: doc.Theme.Patterns,
		Textures: doc.Theme.Textures,
		Keywords: doc.Theme.Keywords,
	})
	return domain.ReconstituteAesthetic(
		doc.ID.Hex(),
		doc.Name,
		doc.Description,
		theme,
		doc.ImageURL,
		doc.CreatedAt,
		doc.UpdatedAt,
	)
}

func mapAestheticToDocument(aesthetic *domain.Aesthetic) AestheticDocument {
	themeJSON := aesthetic.ThemeProperties().ToJSON()
	return AestheticDocument{
		Name:        aesthetic.Name(),
		Slug:        aesthetic.Slug(),
		Description: aesthetic.Description(),
		Theme: ThemePropertiesDocument{
			Colors:   themeJSON.Colors,
			Style:    themeJSON.Style,
			Mood:     themeJSON.Mood,
			Patterns: themeJSON.Patterns,
			Textures: themeJSON.Textures,
			Keywords: themeJSON.Keywords,
		},
		ImageURL:  aesthetic.ImageURL(),
		CreatedAt: aesthetic.CreatedAt(),
		UpdatedAt: aesthetic.UpdatedAt(),
	}
}
