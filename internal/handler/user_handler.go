package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"go-metaverse-api/internal/middleware"
	"go-metaverse-api/internal/model"
	"go-metaverse-api/internal/service"
	"go-metaverse-api/pkg/apierror"
)

type UserHandler struct {
	service *service.UserService
}

func NewUserHandler(service *service.UserService) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) UpdateMetadata(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, model.ErrUnauthorized)
		return
	}

	var payload model.UpdateMetadataRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New("invalid JSON body", "", http.StatusBadRequest))
		return
	}

	if err := h.service.UpdateMetadata(r.Context(), claims.AccountID, payload.AvatarID); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, struct{}{})
}

func (h *UserHandler) BulkMetadata(w http.ResponseWriter, r *http.Request) {
	ids := parseIDList(r.URL.Query().Get("ids"))

	avatars, err := h.service.BulkMetadata(r.Context(), ids)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.BulkMetadataResponse{Avatars: avatars})
}

// parseIDList accepts the bracketed form the clients send,
// e.g. ids=[a,b,c] or ids=["a","b"], as well as a plain CSV.
func parseIDList(raw string) []string {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "[")
	raw = strings.TrimSuffix(raw, "]")
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]string, 0, len(parts))
	for _, part := range parts {
		id := strings.Trim(strings.TrimSpace(part), `"`)
		if id == "" {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}
