package domain

// Admin is an administrator identity. The onboarding workflow only ever reads
// admins; their lifecycle is managed out of band.
type Admin struct {
	ID           string `json:"admin_id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"`
}
