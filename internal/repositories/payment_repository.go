package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/hostelworks/hostel-service/internal/models"
)

type PaymentRepository interface {
	Create(ctx context.Context, p *models.Payment) error
	ListByTenantID(ctx context.Context, tenantID uuid.UUID) ([]*models.Payment, error)
}

type paymentRepo struct{ db DB }

func NewPaymentRepository(db DB) PaymentRepository {
	return &paymentRepo{db: db}
}

func (r *paymentRepo) Create(ctx context.Context, p *models.Payment) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO payments (id, tenant_id, amount, month, method, note, created_at)
		VALUES ($1,$2,$3,$4,$5,$6, NOW())
	`, p.ID, p.TenantID, p.Amount, p.Month, p.Method, p.Note)
	return err
}

func (r *paymentRepo) ListByTenantID(ctx context.Context, tenantID uuid.UUID) ([]*models.Payment, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id,tenant_id,amount,month,method,note,created_at
		 FROM payments WHERE tenant_id=$1 ORDER BY created_at DESC`, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Payment
	for rows.Next() {
		var p models.Payment
		if err := rows.Scan(&p.ID, &p.TenantID, &p.Amount, &p.Month, &p.Method, &p.Note, &p.CreatedAt); err != nil {
			if err == pgx.ErrNoRows {
				return out, nil
			}
			return nil, err
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}
