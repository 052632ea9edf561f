package identity

import "context"

// Provider is the identity-provider collaborator: it owns login accounts keyed
// by email+password. The onboarding workflow only ever creates accounts and
// checks credentials through it.
type Provider interface {
	CreateAccount(ctx context.Context, email, password string) (uid string, err error)
	Authenticate(ctx context.Context, email, password string) (idToken, uid string, err error)
	VerifyIDToken(ctx context.Context, idToken string) (uid string, err error)
}
