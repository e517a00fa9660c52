package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/hostelworks/hostel-service/internal/models"
)

/* ───────────── public interface ───────────── */

type TenantRepository interface {
	Create(ctx context.Context, t *models.Tenant) error

	GetByID(ctx context.Context, id uuid.UUID) (*models.Tenant, error)
	GetByPasskey(ctx context.Context, passkey string) (*models.Tenant, error)
	ListAll(ctx context.Context) ([]*models.Tenant, error)
	ListActiveByRoom(ctx context.Context, roomNumber, location string) ([]*models.Tenant, error)
	CountActiveByRoom(ctx context.Context, roomNumber, location string) (int, error)

	Deactivate(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

/* ───────────── implementation ───────────── */

type tenantRepo struct{ db DB }

func NewTenantRepository(db DB) TenantRepository {
	return &tenantRepo{db: db}
}

/* ---------- create ---------- */

func (r *tenantRepo) Create(ctx context.Context, t *models.Tenant) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO tenants (
			id, name, phone, passkey, password_hash, room_number, location,
			is_active, joined_at, created_at, updated_at, row_version
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9, NOW(), NOW(), 1)
	`, t.ID, t.Name, t.Phone, t.Passkey, t.PasswordHash,
		t.RoomNumber, t.Location, t.IsActive, t.JoinedAt)
	return err
}

/* ---------- reads ---------- */

func (r *tenantRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Tenant, error) {
	row := r.db.QueryRow(ctx, baseSelectTenant()+" WHERE id=$1", id)
	return scanTenant(row)
}

func (r *tenantRepo) GetByPasskey(ctx context.Context, passkey string) (*models.Tenant, error) {
	row := r.db.QueryRow(ctx, baseSelectTenant()+" WHERE passkey=$1 LIMIT 1", passkey)
	return scanTenant(row)
}

func (r *tenantRepo) ListAll(ctx context.Context) ([]*models.Tenant, error) {
	rows, err := r.db.Query(ctx, baseSelectTenant()+" ORDER BY created_at")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTenants(rows)
}

func (r *tenantRepo) ListActiveByRoom(ctx context.Context, roomNumber, location string) ([]*models.Tenant, error) {
	rows, err := r.db.Query(ctx,
		baseSelectTenant()+" WHERE room_number=$1 AND location=$2 AND is_active ORDER BY joined_at",
		roomNumber, location)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTenants(rows)
}

// CountActiveByRoom is the authoritative occupancy count for a room - the
// Auditor always trusts this over the cached rooms.current_occupancy.
func (r *tenantRepo) CountActiveByRoom(ctx context.Context, roomNumber, location string) (int, error) {
	var n int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM tenants WHERE room_number=$1 AND location=$2 AND is_active`,
		roomNumber, location).Scan(&n)
	return n, err
}

/* ---------- update / delete ---------- */

func (r *tenantRepo) Deactivate(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE tenants SET is_active=false, updated_at=NOW(), row_version=row_version+1
		WHERE id=$1
	`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *tenantRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM tenants WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

/* ---------- internals ---------- */

func baseSelectTenant() string {
	return `
		SELECT id,name,phone,passkey,password_hash,room_number,location,
		is_active, joined_at, created_at, updated_at, row_version
		FROM tenants`
}

func scanTenant(row pgx.Row) (*models.Tenant, error) {
	var t models.Tenant
	if err := row.Scan(
		&t.ID, &t.Name, &t.Phone, &t.Passkey, &t.PasswordHash,
		&t.RoomNumber, &t.Location,
		&t.IsActive, &t.JoinedAt, &t.CreatedAt, &t.UpdatedAt, &t.RowVersion,
	); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func scanTenants(rows pgx.Rows) ([]*models.Tenant, error) {
	var out []*models.Tenant
	for rows.Next() {
		t, err := scanTenant(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
