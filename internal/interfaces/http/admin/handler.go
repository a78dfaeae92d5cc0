package admin

import (
	"log"

	"github.com/go-chi/chi/v5"

	catalogapp "github.com/stylecrate/stylecrate-services/api/internal/catalog/application"
)

// Handler wires admin HTTP endpoints to application services.
type Handler struct {
	logger            *log.Logger
	aestheticQueries  catalogapp.AestheticQueryService
	aestheticCommands catalogapp.AestheticCommandService
}

// Config provides dependencies for Handler.
type Config struct {
	Logger            *log.Logger
	AestheticQueries  catalogapp.AestheticQueryService
	AestheticCommands catalogapp.AestheticCommandService
}

// NewHandler constructs an admin HTTP handler set.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		logger:            cfg.Logger,
		aestheticQueries:  cfg.AestheticQueries,
		aestheticCommands: cfg.AestheticCommands,
	}
}

// Register mounts admin routes onto router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/aesthetics", h.aestheticListHandler())
	r.Get("/aesthetics/{id}", h.aestheticDetailHandler())
	r.Post("/aesthetics", h.aestheticCreateHandler())
	r.Patch("/aesthetics/{id}", h.aestheticUpdateHandler())
}
