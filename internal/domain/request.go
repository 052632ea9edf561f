package domain

import "time"

type Decision string

const (
	DecisionPending  Decision = "pending"
	DecisionApproved Decision = "approved"
	DecisionRejected Decision = "rejected"
)

// Request is an influencer applicant's submission. The decision is persisted as
// a nullable Approved flag plus a soft-delete timestamp for rejections; once
// either is set the request is terminal.
type Request struct {
	ID          string     `json:"request_id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone"`
	InstagramID string     `json:"instagram_id,omitempty"`
	Tags        []string   `json:"tags"`
	RequestDate time.Time  `json:"request_date"`
	Approved    *bool      `json:"approved"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
	DecidedBy   *string    `json:"decided_by,omitempty"`
	DecidedAt   *time.Time `json:"decided_at,omitempty"`
	EmailSent   *bool      `json:"email_sent"`
}

func (r *Request) Decision() Decision {
	if r.DeletedAt != nil {
		return DecisionRejected
	}
	if r.Approved != nil && *r.Approved {
		return DecisionApproved
	}
	if r.Approved != nil {
		return DecisionRejected
	}
	return DecisionPending
}

// MaxTags bounds the free-text tag list on a request and a profile.
const MaxTags = 5
