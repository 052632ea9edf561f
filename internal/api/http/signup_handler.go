package http

import (
	"encoding/json"
	"net/http"

	"influencer-platform-backend/internal/service"
)

// SignupHandler handles token preview and signup completion
type SignupHandler struct {
	signupSvc service.SignupService
}

func NewSignupHandler(signupSvc service.SignupService) *SignupHandler {
	return &SignupHandler{signupSvc: signupSvc}
}

func (h *SignupHandler) VerifyToken(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "token is required"})
		return
	}

	preview, err := h.signupSvc.RedeemToken(r.Context(), token)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, preview)
}

type completeSignupBody struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

func (h *SignupHandler) CompleteSignup(w http.ResponseWriter, r *http.Request) {
	var body completeSignupBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if body.Token == "" || body.Password == "" {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "token and password are required"})
		return
	}

	uid, err := h.signupSvc.CompleteSignup(r.Context(), body.Token, body.Password)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"message":      "Signup successful",
		"auth_user_id": uid,
	})
}
