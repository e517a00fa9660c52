package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/hostelworks/hostel-service/internal/models"
)

type OwnerRepository interface {
	Create(ctx context.Context, o *models.Owner) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Owner, error)
	GetByEmail(ctx context.Context, email string) (*models.Owner, error)
}

type ownerRepo struct{ db DB }

func NewOwnerRepository(db DB) OwnerRepository {
	return &ownerRepo{db: db}
}

func (r *ownerRepo) Create(ctx context.Context, o *models.Owner) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO owners (id, name, email, password_hash, created_at)
		VALUES ($1,$2,$3,$4, NOW())
	`, o.ID, o.Name, o.Email, o.PasswordHash)
	return err
}

func (r *ownerRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Owner, error) {
	row := r.db.QueryRow(ctx, baseSelectOwner()+" WHERE id=$1", id)
	return scanOwner(row)
}

func (r *ownerRepo) GetByEmail(ctx context.Context, email string) (*models.Owner, error) {
	row := r.db.QueryRow(ctx, baseSelectOwner()+" WHERE email=$1 LIMIT 1", email)
	return scanOwner(row)
}

func baseSelectOwner() string {
	return `SELECT id,name,email,password_hash,created_at FROM owners`
}

func scanOwner(row pgx.Row) (*models.Owner, error) {
	var o models.Owner
	if err := row.Scan(&o.ID, &o.Name, &o.Email, &o.PasswordHash, &o.CreatedAt); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}
