package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"

	"github.com/hostelworks/hostel-service/internal/models"
)

/* ───────────── public interface ───────────── */

type RoomRepository interface {
	Create(ctx context.Context, r *models.Room) error

	GetByID(ctx context.Context, id uuid.UUID) (*models.Room, error)
	GetByNumberAndLocation(ctx context.Context, roomNumber, location string) (*models.Room, error)
	ListAll(ctx context.Context) ([]*models.Room, error)
	ListByLocation(ctx context.Context, location string) ([]*models.Room, error)

	Update(ctx context.Context, r *models.Room) error
	UpdateIfVersion(ctx context.Context, r *models.Room, expected int64) (pgconn.CommandTag, error)
	UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.Room) error) error
	Delete(ctx context.Context, id uuid.UUID) error
}

/* ───────────── implementation ───────────── */

type roomRepo struct {
	*BaseVersionedRepo[*models.Room]
	db DB
}

func NewRoomRepository(db DB) RoomRepository {
	r := &roomRepo{db: db}
	selectStmt := baseSelectRoom() + " WHERE id=$1"
	r.BaseVersionedRepo = NewBaseRepo(db, selectStmt, r.scanRoom)
	return r
}

/* ---------- create ---------- */

func (r *roomRepo) Create(ctx context.Context, room *models.Room) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO rooms (
			id, room_number, location, capacity, current_occupancy, is_vacant,
			rent_per_bed, created_at, updated_at, row_version
		) VALUES ($1,$2,$3,$4,$5,$6,$7, NOW(), NOW(), 1)
	`, room.ID, room.RoomNumber, room.Location, room.Capacity,
		room.CurrentOccupancy, room.IsVacant, room.RentPerBed)
	return err
}

/* ---------- reads ---------- */

func (r *roomRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Room, error) {
	return r.BaseVersionedRepo.GetByID(ctx, id.String())
}

func (r *roomRepo) GetByNumberAndLocation(ctx context.Context, roomNumber, location string) (*models.Room, error) {
	row := r.db.QueryRow(ctx, baseSelectRoom()+" WHERE room_number=$1 AND location=$2 LIMIT 1", roomNumber, location)
	return r.scanRoom(row)
}

func (r *roomRepo) ListAll(ctx context.Context) ([]*models.Room, error) {
	rows, err := r.db.Query(ctx, baseSelectRoom()+" ORDER BY location, room_number")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.scanRooms(rows)
}

func (r *roomRepo) ListByLocation(ctx context.Context, location string) ([]*models.Room, error) {
	rows, err := r.db.Query(ctx, baseSelectRoom()+" WHERE location=$1 ORDER BY room_number", location)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.scanRooms(rows)
}

/* ---------- update / delete ---------- */

func (r *roomRepo) Update(ctx context.Context, room *models.Room) error {
	_, err := r.update(ctx, room, false, 0)
	return err
}

func (r *roomRepo) UpdateIfVersion(ctx context.Context, room *models.Room, expected int64) (pgconn.CommandTag, error) {
	return r.update(ctx, room, true, expected)
}

func (r *roomRepo) UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.Room) error) error {
	return r.BaseVersionedRepo.UpdateWithRetry(ctx, id.String(), mutate, r.UpdateIfVersion)
}

func (r *roomRepo) update(ctx context.Context, room *models.Room, check bool, expected int64) (pgconn.CommandTag, error) {
	sql := `
		UPDATE rooms
		SET capacity=$1, current_occupancy=$2, is_vacant=$3, rent_per_bed=$4, updated_at=NOW()
	`
	args := []any{room.Capacity, room.CurrentOccupancy, room.IsVacant, room.RentPerBed}
	if check {
		sql += `, row_version=row_version+1 WHERE id=$5 AND row_version=$6`
		args = append(args, room.ID, expected)
	} else {
		sql += ` WHERE id=$5`
		args = append(args, room.ID)
	}
	return r.db.Exec(ctx, sql, args...)
}

func (r *roomRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM rooms WHERE id=$1`, id)
	return err
}

/* ---------- internals ---------- */

func baseSelectRoom() string {
	return `
		SELECT id,room_number,location,capacity,current_occupancy,is_vacant,
		rent_per_bed, created_at, updated_at, row_version
		FROM rooms`
}

func (r *roomRepo) scanRoom(row pgx.Row) (*models.Room, error) {
	var m models.Room
	if err := row.Scan(
		&m.ID, &m.RoomNumber, &m.Location,
		&m.Capacity, &m.CurrentOccupancy, &m.IsVacant,
		&m.RentPerBed, &m.CreatedAt, &m.UpdatedAt, &m.RowVersion,
	); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *roomRepo) scanRooms(rows pgx.Rows) ([]*models.Room, error) {
	var out []*models.Room
	for rows.Next() {
		m, err := r.scanRoom(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
