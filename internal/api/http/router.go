package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Handlers bundles everything the router needs.
type Handlers struct {
	Request    *RequestHandler
	Admin      *AdminHandler
	Signup     *SignupHandler
	Auth       *AuthHandler
	Influencer *InfluencerHandler

	AdminMiddleware func(http.Handler) http.Handler
	AuthMiddleware  func(http.Handler) http.Handler
}

// NewRouter builds the API router. Submission, token verification, signup
// completion, and the logins are public; decision and profile endpoints sit
// behind their respective middlewares.
func NewRouter(h Handlers) *mux.Router {
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()

	// Public
	api.HandleFunc("/requests", h.Request.Submit).Methods("POST")
	api.HandleFunc("/signup/verify", h.Signup.VerifyToken).Methods("GET")
	api.HandleFunc("/signup", h.Signup.CompleteSignup).Methods("POST")
	api.HandleFunc("/auth/login", h.Auth.InfluencerLogin).Methods("POST")
	api.HandleFunc("/admin/login", h.Auth.AdminLogin).Methods("POST")

	// Administrator
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(h.AdminMiddleware)
	admin.HandleFunc("/requests", h.Admin.ListRequests).Methods("GET")
	admin.HandleFunc("/requests/{id}/action", h.Admin.Decide).Methods("POST")
	admin.HandleFunc("/influencers", h.Admin.ListInfluencers).Methods("GET")

	// Influencer
	me := api.PathPrefix("/influencers").Subrouter()
	me.Use(h.AuthMiddleware)
	me.HandleFunc("/me", h.Influencer.GetMyProfile).Methods("GET")
	me.HandleFunc("/me", h.Influencer.UpdateMyProfile).Methods("PATCH")

	return r
}
