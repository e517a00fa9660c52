package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/hostelworks/hostel-service/internal/models"
)

type LeaveRequestRepository interface {
	Create(ctx context.Context, lr *models.LeaveRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.LeaveRequest, error)
	ListPending(ctx context.Context) ([]*models.LeaveRequest, error)
	ListByTenantID(ctx context.Context, tenantID uuid.UUID) ([]*models.LeaveRequest, error)
	SetStatus(ctx context.Context, id uuid.UUID, status models.LeaveStatus) error
}

type leaveRequestRepo struct{ db DB }

func NewLeaveRequestRepository(db DB) LeaveRequestRepository {
	return &leaveRequestRepo{db: db}
}

func (r *leaveRequestRepo) Create(ctx context.Context, lr *models.LeaveRequest) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO leave_requests (id, tenant_id, reason, status, created_at)
		VALUES ($1,$2,$3,$4, NOW())
	`, lr.ID, lr.TenantID, lr.Reason, lr.Status)
	return err
}

func (r *leaveRequestRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.LeaveRequest, error) {
	row := r.db.QueryRow(ctx, baseSelectLeaveRequest()+" WHERE id=$1", id)
	return scanLeaveRequest(row)
}

func (r *leaveRequestRepo) ListPending(ctx context.Context) ([]*models.LeaveRequest, error) {
	rows, err := r.db.Query(ctx, baseSelectLeaveRequest()+" WHERE status=$1 ORDER BY created_at", models.LeaveStatusPending)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanLeaveRequests(rows)
}

func (r *leaveRequestRepo) ListByTenantID(ctx context.Context, tenantID uuid.UUID) ([]*models.LeaveRequest, error) {
	rows, err := r.db.Query(ctx, baseSelectLeaveRequest()+" WHERE tenant_id=$1 ORDER BY created_at DESC", tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanLeaveRequests(rows)
}

func (r *leaveRequestRepo) SetStatus(ctx context.Context, id uuid.UUID, status models.LeaveStatus) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE leave_requests SET status=$1, decided_at=NOW() WHERE id=$2
	`, status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func baseSelectLeaveRequest() string {
	return `SELECT id,tenant_id,reason,status,created_at,decided_at FROM leave_requests`
}

func scanLeaveRequest(row pgx.Row) (*models.LeaveRequest, error) {
	var lr models.LeaveRequest
	if err := row.Scan(&lr.ID, &lr.TenantID, &lr.Reason, &lr.Status, &lr.CreatedAt, &lr.DecidedAt); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &lr, nil
}

func scanLeaveRequests(rows pgx.Rows) ([]*models.LeaveRequest, error) {
	var out []*models.LeaveRequest
	for rows.Next() {
		lr, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, lr)
	}
	return out, rows.Err()
}
