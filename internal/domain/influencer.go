package domain

import "time"

// Influencer is the profile created when an approved applicant completes
// signup. AuthUserID links it to the identity-provider account.
type Influencer struct {
	ID          string    `json:"influencer_id"`
	RequestID   string    `json:"request_id"`
	AuthUserID  string    `json:"auth_user_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	InstagramID string    `json:"instagram_id,omitempty"`
	Tags        []string  `json:"tags"`
	JoinedAt    time.Time `json:"joined_at"`
}
