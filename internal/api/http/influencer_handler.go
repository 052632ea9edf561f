package http

import (
	"encoding/json"
	"net/http"

	"influencer-platform-backend/internal/service"
)

// InfluencerHandler handles the authenticated profile endpoints
type InfluencerHandler struct {
	influencerSvc service.InfluencerService
}

func NewInfluencerHandler(influencerSvc service.InfluencerService) *InfluencerHandler {
	return &InfluencerHandler{influencerSvc: influencerSvc}
}

func (h *InfluencerHandler) GetMyProfile(w http.ResponseWriter, r *http.Request) {
	uid := AuthUserIDFromContext(r.Context())
	inf, err := h.influencerSvc.GetProfile(r.Context(), uid)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, inf)
}

type updateProfileBody struct {
	Phone       *string   `json:"phone"`
	InstagramID *string   `json:"instagram_id"`
	Tags        *[]string `json:"tags"`
}

func (h *InfluencerHandler) UpdateMyProfile(w http.ResponseWriter, r *http.Request) {
	uid := AuthUserIDFromContext(r.Context())

	var body updateProfileBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	inf, err := h.influencerSvc.UpdateProfile(r.Context(), uid, service.ProfilePatch{
		Phone:       body.Phone,
		InstagramID: body.InstagramID,
		Tags:        body.Tags,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, inf)
}
