package postgres

import (
	"database/sql"

	"influencer-platform-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.RequestRepository
	repository.SignupTokenRepository
	repository.InfluencerRepository
	repository.AdminRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                    db,
		RequestRepository:     NewRequestRepository(db),
		SignupTokenRepository: NewSignupTokenRepository(db),
		InfluencerRepository:  NewInfluencerRepository(db),
		AdminRepository:       NewAdminRepository(db),
	}
}
