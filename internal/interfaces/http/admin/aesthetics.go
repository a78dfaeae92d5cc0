package admin

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
)

func (h *Handler) aestheticListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		aesthetics, err := h.aestheticQueries.List(ctx)
		if err != nil {
			h.logger.Printf("admin aesthetic list fetch failed: %v", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "failed to load aesthetics")
			return
		}

		items := make([]aestheticResponse, 0, len(aesthetics))
		for _, aesthetic := range aesthetics {
			items = append(items, buildAestheticResponse(aesthetic))
		}
		common.WriteJSON(h.logger, w, http.StatusOK, aestheticListResponse{Items: items})
	}
}

func (h *Handler) aestheticDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		id := strings.TrimSpace(chi.URLParam(r, "id"))
		aesthetic, err := h.aestheticQueries.Detail(ctx, id)
		if err != nil {
			if errors.Is(err, catalogapp.ErrAestheticNotFound) {
				common.WriteError(h.logger, w, http.StatusNotFound, "aesthetic not found")
				return
			}
			h.logger.Printf("admin aesthetic detail fetch failed id=%q err=%v", id, err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "failed to load aesthetic")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, buildAestheticResponse(aesthetic))
	}
}

func (h *Handler) aestheticCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		var request createAestheticRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "request body is not valid JSON")
			return
		}

		aesthetic, err := h.aestheticCommands.Create(ctx, catalogapp.CreateAestheticCommand{
			Name:        request.Name,
			Description: request.Description,
			ImageURL:    request.ImageURL,
			Theme:       request.ThemeProperties.toInput(),
		})
		if err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, err.Error())
			return
		}

		common.WriteJSON(h.logger, w, http.StatusCreated, buildAestheticResponse(aesthetic))
	}
}

func (h *Handler) aestheticUpdateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		id := strings.TrimSpace(chi.URLParam(r, "id"))
		var request updateAestheticRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "request body is not valid JSON")
			return
		}

		cmd := catalogapp.UpdateAestheticCommand{
			Name:        request.Name,
			Description: request.Description,
			ImageURL:    request.ImageURL,
		}
		if request.ThemeProperties != nil {
			input := request.ThemeProperties.toInput()
			cmd.Theme = &input
		}

		aesthetic, err := h.aestheticCommands.Update(ctx, id, cmd)
		if err != nil {
			if errors.Is(err, catalogapp.ErrAestheticNotFound) {
				common.WriteError(h.logger, w, http.StatusNotFound, "aesthetic not found")
				return
			}
			common.WriteError(h.logger, w, http.StatusBadRequest, err.Error())
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, buildAestheticResponse(aesthetic))
	}
}
