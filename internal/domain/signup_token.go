package domain

import "time"

// SignupToken is a single-use, time-boxed secret that lets one approved
// applicant create a login identity. The email is denormalized from the
// owning request for fast lookup during signup.
type SignupToken struct {
	Token     string    `json:"token"`
	RequestID string    `json:"request_id"`
	Email     string    `json:"email"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
	Used      bool      `json:"used"`
}

func (t *SignupToken) Expired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}

// Redeemable reports whether the token can still complete a signup.
func (t *SignupToken) Redeemable(now time.Time) bool {
	return !t.Used && !t.Expired(now)
}
