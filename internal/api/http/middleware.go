package http

import (
	"context"
	"net/http"
	"strings"

	"influencer-platform-backend/internal/identity"
	"influencer-platform-backend/internal/repository"
	"influencer-platform-backend/internal/security"
)

type contextKey string

const (
	adminIDKey    contextKey = "admin_id"
	authUserIDKey contextKey = "auth_user_id"
)

// AdminIDFromContext returns the administrator id set by AdminMiddleware.
func AdminIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(adminIDKey).(string)
	return id
}

// AuthUserIDFromContext returns the identity-provider uid set by AuthMiddleware.
func AuthUserIDFromContext(ctx context.Context) string {
	uid, _ := ctx.Value(authUserIDKey).(string)
	return uid
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}

// AdminMiddleware authenticates administrators: it validates the session JWT
// and re-checks the admin still exists in the store.
func AdminMiddleware(tokenManager security.TokenManager, adminRepo repository.AdminRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing or invalid authorization header"})
				return
			}

			claims, err := tokenManager.ValidateAdminToken(token)
			if err != nil {
				respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "invalid or expired token"})
				return
			}

			if _, err := adminRepo.GetByID(r.Context(), claims.AdminID); err != nil {
				respondJSON(w, http.StatusForbidden, errorResponse{Error: "not an administrator"})
				return
			}

			ctx := context.WithValue(r.Context(), adminIDKey, claims.AdminID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AuthMiddleware authenticates influencers via an identity-provider ID token.
func AuthMiddleware(provider identity.Provider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing or invalid authorization header"})
				return
			}

			uid, err := provider.VerifyIDToken(r.Context(), token)
			if err != nil {
				respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "invalid or expired token"})
				return
			}

			ctx := context.WithValue(r.Context(), authUserIDKey, uid)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
