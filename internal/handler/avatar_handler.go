package handler

import (
	"net/http"

	"go-metaverse-api/internal/model"
	"go-metaverse-api/internal/service"
)

type AvatarHandler struct {
	service *service.AvatarService
}

func NewAvatarHandler(service *service.AvatarService) *AvatarHandler {
	return &AvatarHandler{service: service}
}

// Create takes imageUrl and name from the query string, matching the
// observed client.
func (h *AvatarHandler) Create(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	avatarID, err := h.service.Create(r.Context(), query.Get("name"), query.Get("imageUrl"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.CreateAvatarResponse{AvatarID: avatarID})
}

func (h *AvatarHandler) List(w http.ResponseWriter, r *http.Request) {
	avatars, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.AvatarListResponse{Avatars: avatars})
}
