package public

import (
	"time"

	catalogdomain "github.com/stylecrate/stylecrate-services/api/internal/catalog/domain"
	quizapp "github.com/stylecrate/stylecrate-services/api/internal/quiz/application"
	quizdomain "github.com/stylecrate/stylecrate-services/api/internal/quiz/domain"
)

type quizOptionResponse struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

type quizQuestionResponse struct {
	ID      string               `json:"id"`
	Text    string               `json:"text"`
	Options []quizOptionResponse `json:"options"`
}

type quizQuestionsResponse struct {
	ID        string                 `json:"id"`
	Questions []quizQuestionResponse `json:"questions"`
}

type quizAnswerRequest struct {
	QuestionID string `json:"questionId"`
	OptionID   string `json:"optionId"`
}

type quizSubmissionRequest struct {
	Answers []quizAnswerRequest `json:"answers"`
}

type quizAestheticResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	ImageURL    string  `json:"imageUrl,omitempty"`
	Score       int     `json:"score"`
	Percentage  float64 `json:"percentage"`
}

type quizSubmissionResponse struct {
	TopAesthetic          quizAestheticResponse   `json:"topAesthetic"`
	AlternativeAesthetics []quizAestheticResponse `json:"alternativeAesthetics"`
}

type themePropertiesResponse struct {
	Colors   []string `json:"colors"`
	Style    string   `json:"style"`
	Mood     string   `json:"mood,omitempty"`
	Patterns []string `json:"patterns"`
	Textures []string `json:"textures"`
	Keywords []string `json:"keywords"`
}

type aestheticResponse struct {
	ID              string                  `json:"id"`
	Name            string                  `json:"name"`
	Slug            string                  `json:"slug"`
	Description     string                  `json:"description"`
	ImageURL        string                  `json:"imageUrl,omitempty"`
	ThemeProperties themePropertiesResponse `json:"themeProperties"`
	CreatedAt       time.Time               `json:"createdAt"`
	UpdatedAt       time.Time               `json:"updatedAt"`
}

type aestheticListResponse struct {
	Items []aestheticResponse `json:"items"`
	Page  int                 `json:"page"`
	Limit int                 `json:"limit"`
	Total int                 `json:"total"`
}

type productMatchRequestItem struct {
	ID            string   `json:"id"`
	AestheticTags []string `json:"aestheticTags"`
}

type productMatchRequest struct {
	Products []productMatchRequestItem `json:"products"`
	MinScore *int                      `json:"minScore,omitempty"`
}

type productMatchResponseItem struct {
	ProductID   string `json:"productId"`
	AestheticID string `json:"aestheticId"`
	Score       int    `json:"score"`
	HighMatch   bool   `json:"highMatch"`
	MediumMatch bool   `json:"mediumMatch"`
}

type productMatchResponse struct {
	Items []productMatchResponseItem `json:"items"`
}

func buildQuizQuestionsResponse(id string, questions []quizdomain.Question) quizQuestionsResponse {
	items := make([]quizQuestionResponse, 0, len(questions))
	for _, question := range questions {
		options := make([]quizOptionResponse, 0, len(question.Options))
		for _, option := range question.Options {
			options = append(options, quizOptionResponse{ID: option.ID, Text: option.Text})
		}
		items = append(items, quizQuestionResponse{
			ID:      question.ID,
			Text:    question.Text,
			Options: options,
		})
	}
	return quizQuestionsResponse{ID: id, Questions: items}
}

func buildQuizAestheticResponse(resolved quizapp.ResolvedAesthetic) quizAestheticResponse {
	return quizAestheticResponse{
		ID:          resolved.Aesthetic.ID(),
		Name:        resolved.Aesthetic.Name(),
		Description: resolved.Aesthetic.Description(),
		ImageURL:    resolved.Aesthetic.ImageURL(),
		Score:       resolved.Score,
		Percentage:  resolved.Percentage,
	}
}

func buildAestheticResponse(aesthetic *catalogdomain.Aesthetic) aestheticResponse {
	theme := aesthetic.ThemeProperties().ToJSON()
	return aestheticResponse{
		ID:          aesthetic.ID(),
		Name:        aesthetic.Name(),
		Slug:        aesthetic.Slug(),
		Description: aesthetic.Description(),
		ImageURL:    aesthetic.ImageURL(),
		ThemeProperties: themePropertiesResponse{
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
