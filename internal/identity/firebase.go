package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"influencer-platform-backend/internal/domain"
)

const signInEndpoint = "https://identitytoolkit.googleapis.com/v1/accounts:signInWithPassword"

type firebaseProvider struct {
	client     *auth.Client
	webAPIKey  string
	httpClient *http.Client
}

// NewFirebaseProvider builds a Provider on Firebase Auth. Account creation and
// ID-token verification go through the Admin SDK; password sign-in uses the
// Identity Toolkit REST endpoint because the Admin SDK has no password grant.
func NewFirebaseProvider(ctx context.Context, credentialsFile, webAPIKey string) (Provider, error) {
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase auth client: %w", err)
	}
	return &firebaseProvider{
		client:     client,
		webAPIKey:  webAPIKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}, nil
}

func (p *firebaseProvider) CreateAccount(ctx context.Context, email, password string) (string, error) {
	params := (&auth.UserToCreate{}).
		Email(email).
		Password(password).
		EmailVerified(true)

	user, err := p.client.CreateUser(ctx, params)
	if err != nil {
		return "", domain.NewDependencyError(err.Error(), err)
	}
	return user.UID, nil
}

func (p *firebaseProvider) Authenticate(ctx context.Context, email, password string) (string, string, error) {
	payload, err := json.Marshal(map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	})
	if err != nil {
		return "", "", err
	}

	url := fmt.Sprintf("%s?key=%s", signInEndpoint, p.webAPIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", "", domain.NewDependencyError("identity provider unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errBody struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&errBody)
		if resp.StatusCode >= 500 {
			return "", "", domain.NewDependencyError("identity provider error: "+errBody.Error.Message, nil)
		}
		return "", "", domain.NewAuthorizationError("invalid email or password")
	}

	var body struct {
		IDToken string `json:"idToken"`
		LocalID string `json:"localId"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", "", domain.NewDependencyError("malformed identity provider response", err)
	}
	return body.IDToken, body.LocalID, nil
}

func (p *firebaseProvider) VerifyIDToken(ctx context.Context, idToken string) (string, error) {
	token, err := p.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return "", domain.NewAuthorizationError("invalid or expired token")
	}
	return token.UID, nil
}
