package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"influencer-platform-backend/internal/service"
)

// AdminHandler handles the administrator decision endpoints
type AdminHandler struct {
	decisionSvc   service.DecisionService
	influencerSvc service.InfluencerService
}

func NewAdminHandler(decisionSvc service.DecisionService, influencerSvc service.InfluencerService) *AdminHandler {
	return &AdminHandler{decisionSvc: decisionSvc, influencerSvc: influencerSvc}
}

func (h *AdminHandler) ListRequests(w http.ResponseWriter, r *http.Request) {
	reqs, err := h.decisionSvc.ListRequests(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"requests": reqs})
}

type decideBody struct {
	Action string `json:"action"`
}

func (h *AdminHandler) Decide(w http.ResponseWriter, r *http.Request) {
	requestID := mux.Vars(r)["id"]
	adminID := AdminIDFromContext(r.Context())

	var body decideBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	result, err := h.decisionSvc.Decide(r.Context(), requestID, service.DecisionAction(body.Action), adminID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"success":    true,
		"status":     result.Status,
		"email_sent": result.EmailSent,
	})
}

func (h *AdminHandler) ListInfluencers(w http.ResponseWriter, r *http.Request) {
	infs, err := h.influencerSvc.ListInfluencers(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"influencers": infs})
}
