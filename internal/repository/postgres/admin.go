package postgres

import (
	"context"
	"database/sql"

	"influencer-platform-backend/internal/domain"
	"influencer-platform-backend/internal/repository"
)

type adminRepository struct {
	db *sql.DB
}

func NewAdminRepository(db *sql.DB) repository.AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) GetByID(ctx context.Context, id string) (*domain.Admin, error) {
	a := &domain.Admin{}
	query := `SELECT admin_id, email, name, password_hash FROM admins WHERE admin_id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&a.ID, &a.Email, &a.Name, &a.PasswordHash)
	if err == sql.ErrNoRows {
		return nil, domain.NewNotFoundError("admin not found")
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *adminRepository) GetByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	a := &domain.Admin{}
	query := `SELECT admin_id, email, name, password_hash FROM admins WHERE LOWER(email) = LOWER($1)`
	err := r.db.QueryRowContext(ctx, query, email).Scan(&a.ID, &a.Email, &a.Name, &a.PasswordHash)
	if err == sql.ErrNoRows {
		return nil, domain.NewNotFoundError("admin not found")
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}
