package admin

import (
	"time"

	catalogdomain "github.com/stylecrate/stylecrate-services/api/internal/catalog/domain"
)

type themePropertiesPayload struct {
	Colors   []string `json:"colors"`
	Style    string   `json:"style"`
	Mood     string   `json:"mood,omitempty"`
	Patterns []string `json:"patterns"`
	Textures []string `json:"textures"`
	Keywords []string `json:"keywords"`
}

type createAestheticRequest struct {
	Name            string                 `json:"name"`
	Description     string                 `json:"description"`
	ImageURL        string                 `json:"imageUrl"`
	ThemeProperties themePropertiesPayload `json:"themeProperties"`
}

type updateAestheticRequest struct {
	Name            *string                 `json:"name"`
	Description     *string                 `json:"description"`
	ImageURL        *string                 `json:"imageUrl"`
	ThemeProperties *themePropertiesPayload `json:"themeProperties"`
}

type aestheticResponse struct {
	ID              string                 `json:"id"`
	Name            string                 `json:"name"`
	Slug            string                 `json:"slug"`
	Description     string                 `json:"description"`
	ImageURL        string                 `json:"imageUrl,omitempty"`
	ThemeProperties themePropertiesPayload `json:"themeProperties"`
	CreatedAt       time.Time              `json:"createdAt"`
	UpdatedAt       time.Time              `json:"updatedAt"`
}

type aestheticListResponse struct {
	Items []aestheticResponse `json:"items"`
}

func buildAestheticResponse(aesthetic *catalogdomain.Aesthetic) aestheticResponse {
	theme := aesthetic.ThemeProperties().ToJSON()
	return aestheticResponse{
		ID:          aesthetic.ID(),
		Name:        aesthetic.Name(),
		Slug:        aesthetic.Slug(),
		Description: aesthetic.Description(),
		ImageURL:    aesthetic.ImageURL(),
		ThemeProperties: themePropertiesPayload{
			Colors:   theme.Colors,
			Style:    theme.Style,
			Mood:     theme.Mood,
			Patterns: theme.Patterns,
			Textures: theme.Textures,
			Keywords: theme.Keywords,
		},
		CreatedAt: aesthetic.CreatedAt(),
		UpdatedAt: aesthetic.UpdatedAt(),
	}
}

func (p themePropertiesPayload) toInput() catalogdomain.ThemePropertiesInput {
	return catalogdomain.ThemePropertiesInput{
		Colors:   p.Colors,
		Style:    p.Style,
		Mood:     p.Mood,
		Patterns: p.Patterns,
		Textures: p.Textures,
		Keywords: p.Keywords,
	}
}
