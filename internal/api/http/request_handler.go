package http

import (
	"encoding/json"
	"net/http"

	"influencer-platform-backend/internal/service"
)

// RequestHandler handles public applicant submissions
type RequestHandler struct {
	requestSvc service.RequestService
}

func NewRequestHandler(requestSvc service.RequestService) *RequestHandler {
	return &RequestHandler{requestSvc: requestSvc}
}

type submitRequestBody struct {
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone"`
	InstagramID string   `json:"instagram_id"`
	Tags        []string `json:"tags"`
}

func (h *RequestHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var body submitRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	req, err := h.requestSvc.Submit(r.Context(), body.Name, body.Email, body.Phone, body.InstagramID, body.Tags)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{
		"message": "Request submitted successfully",
		"request": req,
	})
}
