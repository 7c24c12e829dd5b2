package handler

import (
	"encoding/json"
	"net/http"

	"go-metaverse-api/internal/model"
	"go-metaverse-api/internal/service"
	"go-metaverse-api/pkg/apierror"
)

type AuthHandler struct {
	service *service.AuthService
}

func NewAuthHandler(service *service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New("invalid JSON body", "", http.StatusBadRequest))
		return
	}

	userID, err := h.service.Signup(r.Context(), payload.Username, payload.Password, payload.Type)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.SignupResponse{UserID: userID})
}

func (h *AuthHandler) Signin(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.SigninRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New("invalid JSON body", "", http.StatusBadRequest))
		return
	}

	token, err := h.service.Signin(r.Context(), payload.Username, payload.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.SigninResponse{Token: token})
}
