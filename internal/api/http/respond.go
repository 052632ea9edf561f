package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"influencer-platform-backend/internal/domain"
	"influencer-platform-backend/internal/logger"
)

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
	Field string `json:"field,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			logger.Error("failed to encode response", "error", err)
		}
	}
}

// respondError translates the domain error taxonomy into HTTP status codes.
func respondError(w http.ResponseWriter, err error) {
	var derr *domain.Error
	status := http.StatusInternalServerError
	body := errorResponse{Error: "server error"}

	if errors.As(err, &derr) {
		body = errorResponse{Error: derr.Message, Kind: string(derr.Kind), Field: derr.Field}
		switch derr.Kind {
		case domain.KindValidation:
			status = http.StatusBadRequest
		case domain.KindAuthorization:
			status = http.StatusForbidden
		case domain.KindStateConflict:
			status = http.StatusConflict
		case domain.KindExpired:
			status = http.StatusGone
		case domain.KindNotFound:
			status = http.StatusNotFound
		case domain.KindDependency:
			status = http.StatusBadGateway
		}
	} else {
		logger.Error("unclassified error", "error", err)
	}

	respondJSON(w, status, body)
}
