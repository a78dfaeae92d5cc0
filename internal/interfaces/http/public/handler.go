package public

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	catalogapp "github.com/stylecrate/stylecrate-services/api/internal/catalog/application"
	quizapp "github.com/stylecrate/stylecrate-services/api/internal/quiz/application"
	"github.com/stylecrate/stylecrate-services/api/internal/recommendation"
)

// Handler wires public HTTP endpoints to application services.
type Handler struct {
	logger           *log.Logger
	aestheticQueries catalogapp.AestheticQueryService
	quizService      quizapp.QuizService
	recommendations  *recommendation.Service
}

// Config defines dependencies required by Handler.
type Config struct {
	Logger           *log.Logger
	AestheticQueries catalogapp.AestheticQueryService
	QuizService      quizapp.QuizService
	Recommendations  *recommendation.Service
}

// NewHandler constructs a public HTTP handler set.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		logger:           cfg.Logger,
		aestheticQueries: cfg.AestheticQueries,
		quizService:      cfg.QuizService,
		recommendations:  cfg.Recommendations,
	}
}

// Register mounts all public routes onto the router.
func (h *Handler) Register(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Get("/quiz", h.quizQuestionsHandler())
	r.Post("/quiz/submissions", h.quizSubmitHandler())
	r.Get("/aesthetics", h.aestheticListHandler())
	r.Get("/aesthetics/{id}", h.aestheticDetailHandler())
	r.Post("/aesthetics/{id}/product-matches", h.productMatchHandler())
	r.With(authMiddleware).Get("/auth/verify", h.authVerifyHandler())
}
