package domain

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	hexColorPattern   = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
	namedColorPattern = regexp.MustCompile(`^[a-zA-Z]+(?:-[a-zA-Z]+)*$`)
)

// ThemePropertiesInput is the raw shape accepted by NewThemeProperties.
// ToJSON returns the same shape, so serialized properties can be fed back
// into the constructor unchanged.
type ThemePropertiesInput struct {
	Colors   []string `json:"colors" bson:"colors"`
	Style    string   `json:"style" bson:"style"`
	Mood     string   `json:"mood,omitempty" bson:"mood,omitempty"`
	Patterns []string `json:"patterns" bson:"patterns,omitempty"`
	Textures []string `json:"textures" bson:"textures,omitempty"`
	Keywords []string `json:"keywords" bson:"keywords,omitempty"`
}

// ThemeProperties is the validated visual vocabulary of an aesthetic.
// Instances are immutable after construction; accessors hand out copies.
type ThemeProperties struct {
	colors   []string
	style    string
	mood     string
	patterns []string
	textures []string
	keywords []string
}

// NewThemeProperties validates the input and returns an immutable value.
// Colors must be non-empty and each entry either a #RGB/#RRGGBB hex code or
// an alphabetic token (hyphens allowed). Style must not be blank.
func NewThemeProperties(input ThemePropertiesInput) (*ThemeProperties, error) {
	if len(input.Colors) == 0 {
		return nil, fmt.Errorf("colors must not be empty")
	}
	for _, color := range input.Colors {
		if !hexColorPattern.MatchString(color) && !namedColorPattern.MatchString(color) {
			return nil, fmt.Errorf("invalid color: %q", color)
		}
	}
	if strings.TrimSpace(input.Style) == "" {
		return nil, fmt.Errorf("style is required")
	}

	return &ThemeProperties{
		colors:   append([]string{}, input.Colors...),
		style:    strings.TrimSpace(input.Style),
		mood:     strings.TrimSpace(input.Mood),
		patterns: append([]string{}, input.Patterns...),
		textures: append([]string{}, input.Textures...),
		keywords: append([]string{}, input.Keywords...),
	}, nil
}

// ReconstituteThemeProperties rebuilds a value from storage without
// re-validating. Persisted documents were validated on the way in.
func ReconstituteThemeProperties(input ThemePropertiesInput) *ThemeProperties {
	return &ThemeProperties{
		colors:   append([]string{}, input.Colors...),
		style:    input.Style,
		mood:     input.Mood,
		patterns: append([]string{}, input.Patterns...),
		textures: append([]string{}, input.Textures...),
		keywords: append([]string{}, input.Keywords...),
	}
}

// Colors returns a copy of the color list.
func (t *ThemeProperties) Colors() []string {
	return append([]string{}, t.colors...)
}

// Style returns the style token.
func (t *ThemeProperties) Style() string {
	return t.style
}

// Mood returns the mood, empty when not set.
func (t *ThemeProperties) Mood() string {
	return t.mood
}

// Patterns returns a copy of the pattern list.
func (t *ThemeProperties) Patterns() []string {
	return append([]string{}, t.patterns...)
}

// Textures returns a copy of the texture list.
func (t *ThemeProperties) Textures() []string {
	return append([]string{}, t.textures...)
}

// Keywords returns a copy of the keyword list.
func (t *ThemeProperties) Keywords() []string {
	return append([]string{}, t.keywords...)
}

// HasKeyword reports whether the keyword is present, ignoring case.
func (t *ThemeProperties) HasKeyword(keyword string) bool {
	for _, k := range t.keywords {
		if strings.EqualFold(k, keyword) {
			return true
		}
	}
	return false
}

// HasColor reports whether the color is present. Both sides are lowercased
// before comparing so callers do not have to match the stored casing.
func (t *ThemeProperties) HasColor(color string) bool {
	candidate := strings.ToLower(color)
	for _, c := range t.colors {
		if strings.ToLower(c) == candidate {
			return true
		}
	}
	return false
}

// ToJSON returns the serializable form. Omitted optional lists come back as
// empty slices, never nil, so the output always round-trips through
// NewThemeProperties.
func (t *ThemeProperties) ToJSON() ThemePropertiesInput {
	return ThemePropertiesInput{
		Colors:   append([]string{}, t.colors...),
		Style:    t.style,
		Mood:     t.mood,
		Patterns: append([]string{}, t.patterns...),
		Textures: append([]string{}, t.textures...),
		Keywords: append([]string{}, t.keywords...),
	}
}
