package public

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	catalogapp "github.com/stylecrate/stylecrate-services/api/internal/catalog/application"
	"github.com/stylecrate/stylecrate-services/api/internal/interfaces/http/common"
)

func (h *Handler) aestheticListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		query := r.URL.Query()
		page, _ := common.ParsePositiveInt(query.Get("page"), 1)
		limit, _ := common.ParsePositiveInt(query.Get("limit"), 20)

		aesthetics, err := h.aestheticQueries.List(ctx)
		if err != nil {
			h.logger.Printf("aesthetic list fetch failed: %v", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "failed to load aesthetics")
			return
		}

		total := len(aesthetics)
		start := (page - 1) * limit
		if start >= total {
			start = total
		}
		end := start + limit
		if end > total {
			end = total
		}

		items := make([]aestheticResponse, 0, end-start)
		for _, aesthetic := range aesthetics[start:end] {
			items = append(items, buildAestheticResponse(aesthetic))
		}

		common.WriteJSON(h.logger, w, http.StatusOK, aestheticListResponse{
			Items: items,
			Page:  page,
			Limit: limit,
			Total: total,
		})
	}
}

func (h *Handler) aestheticDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		id := strings.TrimSpace(chi.URLParam(r, "id"))
		if id == "" {
			common.WriteError(h.logger, w, http.StatusBadRequest, "aesthetic id is required")
			return
		}

		aesthetic, err := h.aestheticQueries.Detail(ctx, id)
		if err != nil {
			if errors.Is(err, catalogapp.ErrAestheticNotFound) {
				common.WriteError(h.logger, w, http.StatusNotFound, "aesthetic not found")
				return
			}
			h.logger.Printf("aesthetic detail fetch failed id=%q err=%v", id, err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "failed to load aesthetic")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, buildAestheticResponse(aesthetic))
	}
}
