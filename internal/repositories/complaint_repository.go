package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/hostelworks/hostel-service/internal/models"
)

type ComplaintRepository interface {
	Create(ctx context.Context, c *models.Complaint) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Complaint, error)
	ListAll(ctx context.Context) ([]*models.Complaint, error)
	ListByTenantID(ctx context.Context, tenantID uuid.UUID) ([]*models.Complaint, error)
	MarkResolved(ctx context.Context, id uuid.UUID) error
}

type complaintRepo struct{ db DB }

func NewComplaintRepository(db DB) ComplaintRepository {
	return &complaintRepo{db: db}
}

func (r *complaintRepo) Create(ctx context.Context, c *models.Complaint) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO complaints (id, tenant_id, subject, body, status, created_at)
		VALUES ($1,$2,$3,$4,$5, NOW())
	`, c.ID, c.TenantID, c.Subject, c.Body, c.Status)
	return err
}

func (r *complaintRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Complaint, error) {
	row := r.db.QueryRow(ctx, baseSelectComplaint()+" WHERE id=$1", id)
	return scanComplaint(row)
}

func (r *complaintRepo) ListAll(ctx context.Context) ([]*models.Complaint, error) {
	rows, err := r.db.Query(ctx, baseSelectComplaint()+" ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanComplaints(rows)
}

func (r *complaintRepo) ListByTenantID(ctx context.Context, tenantID uuid.UUID) ([]*models.Complaint, error) {
	rows, err := r.db.Query(ctx, baseSelectComplaint()+" WHERE tenant_id=$1 ORDER BY created_at DESC", tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanComplaints(rows)
}

func (r *complaintRepo) MarkResolved(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE complaints SET status=$1, resolved_at=NOW() WHERE id=$2
	`, models.ComplaintStatusResolved, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func baseSelectComplaint() string {
	return `SELECT id,tenant_id,subject,body,status,created_at,resolved_at FROM complaints`
}

func scanComplaint(row pgx.Row) (*models.Complaint, error) {
	var c models.Complaint
	if err := row.Scan(&c.ID, &c.TenantID, &c.Subject, &c.Body, &c.Status, &c.CreatedAt, &c.ResolvedAt); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func scanComplaints(rows pgx.Rows) ([]*models.Complaint, error) {
	var out []*models.Complaint
	for rows.Next() {
		c, err := scanComplaint(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
