package public

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	catalogapp "github.com/stylecrate/stylecrate-services/api/internal/catalog/application"
	"github.com/stylecrate/stylecrate-services/api/internal/interfaces/http/common"
	"github.com/stylecrate/stylecrate-services/api/internal/recommendation"
)

func (h *Handler) productMatchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		id := strings.TrimSpace(chi.URLParam(r, "id"))
		if id == "" {
			common.WriteError(h.logger, w, http.StatusBadRequest, "aesthetic id is required")
			return
		}

		var request productMatchRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "request body is not valid JSON")
			return
		}

		aesthetic, err := h.aestheticQueries.Detail(ctx, id)
		if err != nil {
			if errors.Is(err, catalogapp.ErrAestheticNotFound) {
				common.WriteError(h.logger, w, http.StatusNotFound, "aesthetic not found")
				return
			}
			h.logger.Printf("aesthetic fetch for product matching failed id=%q err=%v", id, err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "failed to load aesthetic")
			return
		}

		products := make([]recommendation.Product, 0, len(request.Products))
		for _, item := range request.Products {
			products = append(products, recommendation.Product{
				ID:            item.ID,
				AestheticTags: item.AestheticTags,
			})
		}

		matches := h.recommendations.RankProducts(products, aesthetic)
		if request.MinScore != nil {
			matches = h.recommendations.FilterByMinimumScore(matches, *request.MinScore)
		}

		items := make([]productMatchResponseItem, 0, len(matches))
		for _, match := range matches {
			items = append(items, productMatchResponseItem{
				ProductID:   match.ProductID,
				AestheticID: match.AestheticID,
				Score:       match.Score.Value(),
				HighMatch:   match.Score.IsHighMatch(),
				MediumMatch: match.Score.IsMediumMatch(),
			})
		}

		common.WriteJSON(h.logger, w, http.StatusOK, productMatchResponse{Items: items})
	}
}
