package services

import (
	"context"
	"errors"
	"sort"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"

	"github.com/hostelworks/hostel-service/internal/models"
	"github.com/hostelworks/hostel-service/internal/repositories"
)

// In-memory stand-ins for the pgx repositories. They hand out copies the
// way a row scan would, and support per-room error injection so partial
// failure paths can be exercised.

/* ---------------- rooms ---------------- */

type fakeRoomRepo struct {
	rooms      map[uuid.UUID]*models.Room
	updateErrs map[uuid.UUID]error
}

func newFakeRoomRepo() *fakeRoomRepo {
	return &fakeRoomRepo{
		rooms:      make(map[uuid.UUID]*models.Room),
		updateErrs: make(map[uuid.UUID]error),
	}
}

func (f *fakeRoomRepo) failUpdates(id uuid.UUID, err error) { f.updateErrs[id] = err }

func copyRoom(r *models.Room) *models.Room {
	if r == nil {
		return nil
	}
	cp := *r
	return &cp
}

func (f *fakeRoomRepo) Create(_ context.Context, r *models.Room) error {
	r.RowVersion = 1
	f.rooms[r.ID] = copyRoom(r)
	return nil
}

func (f *fakeRoomRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Room, error) {
	return copyRoom(f.rooms[id]), nil
}

func (f *fakeRoomRepo) GetByNumberAndLocation(_ context.Context, roomNumber, location string) (*models.Room, error) {
	for _, r := range f.rooms {
		if r.RoomNumber == roomNumber && r.Location == location {
			return copyRoom(r), nil
		}
	}
	return nil, nil
}

func (f *fakeRoomRepo) ListAll(_ context.Context) ([]*models.Room, error) {
	out := make([]*models.Room, 0, len(f.rooms))
	for _, r := range f.rooms {
		out = append(out, copyRoom(r))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Location != out[j].Location {
			return out[i].Location < out[j].Location
		}
		return out[i].RoomNumber < out[j].RoomNumber
	})
	return out, nil
}

func (f *fakeRoomRepo) ListByLocation(ctx context.Context, location string) ([]*models.Room, error) {
	all, _ := f.ListAll(ctx)
	var out []*models.Room
	for _, r := range all {
		if r.Location == location {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRoomRepo) Update(_ context.Context, r *models.Room) error {
	if err := f.updateErrs[r.ID]; err != nil {
		return err
	}
	if _, ok := f.rooms[r.ID]; !ok {
		return errors.New("room vanished")
	}
	f.rooms[r.ID] = copyRoom(r)
	return nil
}

func (f *fakeRoomRepo) UpdateIfVersion(_ context.Context, r *models.Room, expected int64) (pgconn.CommandTag, error) {
	if err := f.updateErrs[r.ID]; err != nil {
		return nil, err
	}
	stored, ok := f.rooms[r.ID]
	if !ok || stored.RowVersion != expected {
		return pgconn.CommandTag("UPDATE 0"), nil
	}
	cp := copyRoom(r)
	cp.RowVersion = expected + 1
	f.rooms[r.ID] = cp
	return pgconn.CommandTag("UPDATE 1"), nil
}

func (f *fakeRoomRepo) UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.Room) error) error {
	return repositories.WithRetry(ctx, 3, id.String(),
		func(ctx context.Context, _ string) (*models.Room, error) {
			return f.GetByID(ctx, id)
		},
		func(ctx context.Context, r *models.Room, expected int64) (pgconn.CommandTag, error) {
			return f.UpdateIfVersion(ctx, r, expected)
		},
		mutate,
	)
}

func (f *fakeRoomRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.rooms, id)
	return nil
}

/* ---------------- tenants ---------------- */

type fakeTenantRepo struct {
	tenants   map[uuid.UUID]*models.Tenant
	countErrs map[string]error // keyed by location+"/"+roomNumber
}

func newFakeTenantRepo() *fakeTenantRepo {
	return &fakeTenantRepo{
		tenants:   make(map[uuid.UUID]*models.Tenant),
		countErrs: make(map[string]error),
	}
}

func (f *fakeTenantRepo) failCounts(roomNumber, location string, err error) {
	f.countErrs[location+"/"+roomNumber] = err
}

func copyTenant(t *models.Tenant) *models.Tenant {
	if t == nil {
		return nil
	}
	cp := *t
	return &cp
}

func (f *fakeTenantRepo) Create(_ context.Context, t *models.Tenant) error {
	t.RowVersion = 1
	f.tenants[t.ID] = copyTenant(t)
	return nil
}

func (f *fakeTenantRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Tenant, error) {
	return copyTenant(f.tenants[id]), nil
}

func (f *fakeTenantRepo) GetByPasskey(_ context.Context, passkey string) (*models.Tenant, error) {
	for _, t := range f.tenants {
		if t.Passkey == passkey {
			return copyTenant(t), nil
		}
	}
	return nil, nil
}

func (f *fakeTenantRepo) ListAll(_ context.Context) ([]*models.Tenant, error) {
	out := make([]*models.Tenant, 0, len(f.tenants))
	for _, t := range f.tenants {
		out = append(out, copyTenant(t))
	}
	return out, nil
}

func (f *fakeTenantRepo) ListActiveByRoom(_ context.Context, roomNumber, location string) ([]*models.Tenant, error) {
	var out []*models.Tenant
	for _, t := range f.tenants {
		if t.IsActive && t.RoomNumber == roomNumber && t.Location == location {
			out = append(out, copyTenant(t))
		}
	}
	return out, nil
}

func (f *fakeTenantRepo) CountActiveByRoom(ctx context.Context, roomNumber, location string) (int, error) {
	if err := f.countErrs[location+"/"+roomNumber]; err != nil {
		return 0, err
	}
	list, _ := f.ListActiveByRoom(ctx, roomNumber, location)
	return len(list), nil
}

func (f *fakeTenantRepo) Deactivate(_ context.Context, id uuid.UUID) error {
	t, ok := f.tenants[id]
	if !ok {
		return errors.New("no rows in result set")
	}
	t.IsActive = false
	t.RowVersion++
	return nil
}

func (f *fakeTenantRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.tenants[id]; !ok {
		return errors.New("no rows in result set")
	}
	delete(f.tenants, id)
	return nil
}
