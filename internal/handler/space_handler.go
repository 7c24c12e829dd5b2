package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"go-metaverse-api/internal/middleware"
	"go-metaverse-api/internal/model"
	"go-metaverse-api/internal/service"
	"go-metaverse-api/pkg/apierror"
)

type SpaceHandler struct {
	service *service.SpaceService
}

func NewSpaceHandler(service *service.SpaceService) *SpaceHandler {
	return &SpaceHandler{service: service}
}

func (h *SpaceHandler) Create(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, model.ErrUnauthorized)
		return
	}

	var payload model.CreateSpaceRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New("invalid JSON body", "", http.StatusBadRequest))
		return
	}

	spaceID, err := h.service.Create(r.Context(), claims.AccountID, payload.Name, payload.Dimensions)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.CreateSpaceResponse{SpaceID: spaceID})
}

func (h *SpaceHandler) ListOwn(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, model.ErrUnauthorized)
		return
	}

	spaces, err := h.service.ListOwn(r.Context(), claims.AccountID)
	if err != nil {
		writeError(w, err)
		return
	}

	summaries := make([]model.SpaceSummary, 0, len(spaces))
	for _, s := range spaces {
		summaries = append(summaries, model.SpaceSummary{ID: s.ID, Name: s.Name, Dimensions: s.Dimensions()})
	}

	writeJSON(w, http.StatusOK, model.SpaceListResponse{Spaces: summaries})
}

func (h *SpaceHandler) Get(w http.ResponseWriter, r *http.Request) {
	space, err := h.service.Get(r.Context(), chi.URLParam(r, "spaceId"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.SpaceSummary{ID: space.ID, Name: space.Name, Dimensions: space.Dimensions()})
}

func (h *SpaceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, model.ErrUnauthorized)
		return
	}

	if err := h.service.Delete(r.Context(), claims.AccountID, chi.URLParam(r, "spaceId")); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, struct{}{})
}
