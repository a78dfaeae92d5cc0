package domain

import (
	"fmt"
	"strings"
	"time"
)

const (
	maxNameLength        = 100
	maxDescriptionLength = 1000
	maxImageURLLength    = 500
)

// Aesthetic is a named style archetype: metadata plus the theme properties
// the quiz and recommendation engines score against.
type Aesthetic struct {
	id          string
	name        string
	description string
	theme       *ThemeProperties
	imageURL    string
	createdAt   time.Time
	updatedAt   time.Time
}

// NewAesthetic validates and creates an aesthetic, stamping both timestamps
// with the current time.
func NewAesthetic(id, name, description string, theme *ThemeProperties, imageURL string) (*Aesthetic, error) {
	validName, err := validateName(name)
	if err != nil {
		return nil, err
	}
	validDescription, err := validateDescription(description)
	if err != nil {
		return nil, err
	}
	if err := validateImageURL(imageURL); err != nil {
		return nil, err
	}
	if theme == nil {
		return nil, fmt.Errorf("theme properties are required")
	}

	now := time.Now().UTC()
	return &Aesthetic{
		id:          id,
		name:        validName,
		description: validDescription,
		theme:       theme,
		imageURL:    strings.TrimSpace(imageURL),
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstituteAesthetic rebuilds an aesthetic from storage without
// re-validating, keeping the persisted timestamps.
func ReconstituteAesthetic(id, name, description string, theme *ThemeProperties, imageURL string, createdAt, updatedAt time.Time) *Aesthetic {
	return &Aesthetic{
		id:          id,
		name:        name,
		description: description,
		theme:       theme,
		imageURL:    imageURL,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// ID returns the immutable identifier.
func (a *Aesthetic) ID() string {
	return a.id
}

// Name returns the display name.
func (a *Aesthetic) Name() string {
	return a.name
}

// Slug returns the canonical slug derived from the name.
func (a *Aesthetic) Slug() string {
	return Slugify(a.name)
}

// Description returns the description text.
func (a *Aesthetic) Description() string {
	return a.description
}

// ThemeProperties returns the owned theme properties value.
func (a *Aesthetic) ThemeProperties() *ThemeProperties {
	return a.theme
}

// ImageURL returns the image URL, empty when not set.
func (a *Aesthetic) ImageURL() string {
	return a.imageURL
}

// CreatedAt returns the creation timestamp.
func (a *Aesthetic) CreatedAt() time.Time {
	return a.createdAt
}

// UpdatedAt returns the last-modification timestamp.
func (a *Aesthetic) UpdatedAt() time.Time {
	return a.updatedAt
}

// UpdateName validates and replaces the name.
func (a *Aesthetic) UpdateName(name string) error {
	valid, err := validateName(name)
	if err != nil {
		return err
	}
	a.name = valid
	a.touch()
	return nil
}

// UpdateDescription validates and replaces the description.
func (a *Aesthetic) UpdateDescription(description string) error {
	valid, err := validateDescription(description)
	if err != nil {
		return err
	}
	a.description = valid
	a.touch()
	return nil
}

// UpdateThemeProperties replaces the theme properties value.
func (a *Aesthetic) UpdateThemeProperties(theme *ThemeProperties) error {
	if theme == nil {
		return fmt.Errorf("theme properties are required")
	}
	a.theme = theme
	a.touch()
	return nil
}

// UpdateImageURL replaces the image URL. An empty value clears it.
func (a *Aesthetic) UpdateImageURL(imageURL string) error {
	if err := validateImageURL(imageURL); err != nil {
		return err
	}
	a.imageURL = strings.TrimSpace(imageURL)
	a.touch()
	return nil
}

func (a *Aesthetic) touch() {
	a.updatedAt = time.Now().UTC()
}

func validateName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", fmt.Errorf("name is required")
	}
	if len(trimmed) > maxNameLength {
		return "", fmt.Errorf("name must be <= %d characters", maxNameLength)
	}
	return trimmed, nil
}

func validateDescription(description string) (string, error) {
	trimmed := strings.TrimSpace(description)
	if trimmed == "" {
		return "", fmt.Errorf("description is required")
	}
	if len(trimmed) > maxDescriptionLength {
		return "", fmt.Errorf("description must be <= %d characters", maxDescriptionLength)
	}
	return trimmed, nil
}

func validateImageURL(imageURL string) error {
	if len(strings.TrimSpace(imageURL)) > maxImageURLLength {
		return fmt.Errorf("image URL must be <= %d characters", maxImageURLLength)
	}
	return nil
}
