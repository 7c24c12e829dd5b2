package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"go-metaverse-api/internal/model"
	"go-metaverse-api/pkg/apierror"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps service errors onto the wire contract: 400 for
// validation and duplicates, 403 for anything auth-shaped, 500 otherwise.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "internal server error"

	var apiErr *apierror.APIError
	switch {
	case errors.As(err, &apiErr):
		status = apiErr.HTTPStatus
		message = apiErr.Message
	case errors.Is(err, model.ErrUserAlreadyExists):
		status = http.StatusBadRequest
		message = "username already taken"
	case errors.Is(err, model.ErrInvalidCredentials):
		status = http.StatusForbidden
		message = "invalid credentials"
	case errors.Is(err, model.ErrInvalidToken), errors.Is(err, model.ErrUnauthorized):
		status = http.StatusForbidden
		message = "unauthorized"
	case errors.Is(err, model.ErrForbidden):
		status = http.StatusForbidden
		message = "forbidden"
	case errors.Is(err, model.ErrAvatarNotFound):
		status = http.StatusBadRequest
		message = "avatar not found"
	case errors.Is(err, model.ErrSpaceNotFound):
		status = http.StatusBadRequest
		message = "space not found"
	case errors.Is(err, model.ErrUserNotFound):
		status = http.StatusBadRequest
		message = "user not found"
	case errors.Is(err, model.ErrInvalidInput):
		status = http.StatusBadRequest
		message = "invalid input"
	default:
		slog.Error("unhandled error in writeError", "error", err.Error())
	}

	writeJSON(w, status, model.ErrorResponse{Message: message})
}
