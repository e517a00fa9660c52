package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/hostelworks/hostel-service/internal/dtos"
	"github.com/hostelworks/hostel-service/internal/models"
	"github.com/hostelworks/hostel-service/internal/repositories"
	"github.com/hostelworks/hostel-service/internal/utils"
)

// DetachMode selects what happens to the tenant record when a bed is freed.
type DetachMode int

const (
	// DetachHard removes the tenant row entirely (owner-initiated delete).
	DetachHard DetachMode = iota
	// DetachSoft flips is_active off and keeps the row for history
	// (leave approval). Both modes free the bed permanently.
	DetachSoft
)

const passkeyLength = 8

/*
OccupancyService is the occupancy ledger: every tenant attach/detach and
every admin room edit flows through here so that rooms.current_occupancy
and rooms.is_vacant stay consistent with the active-tenant set.

Room writes go through the repository's optimistic UpdateWithRetry, so a
read-modify-write never silently loses a concurrent increment. The
tenant-write then room-write sequence is still two separate statements; a
crash between them leaves the cached occupancy stale, which is exactly
the drift AuditService repairs.
*/
type OccupancyService struct {
	roomRepo   repositories.RoomRepository
	tenantRepo repositories.TenantRepository
}

func NewOccupancyService(roomRepo repositories.RoomRepository, tenantRepo repositories.TenantRepository) *OccupancyService {
	return &OccupancyService{roomRepo: roomRepo, tenantRepo: tenantRepo}
}

/* ---------------- rooms ---------------- */

// CreateRoom inserts a new room. Occupancy starts at 0 and the room is
// vacant regardless of anything else.
func (s *OccupancyService) CreateRoom(ctx context.Context, req dtos.CreateRoomRequest) (*models.Room, error) {
	existing, err := s.roomRepo.GetByNumberAndLocation(ctx, req.RoomNumber, req.Location)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, utils.ErrRoomExists
	}

	room := &models.Room{
		ID:               uuid.New(),
		RoomNumber:       req.RoomNumber,
		Location:         req.Location,
		Capacity:         req.Capacity,
		CurrentOccupancy: 0,
		IsVacant:         true,
		RentPerBed:       req.RentPerBed,
	}
	if err := s.roomRepo.Create(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

// EditRoom applies admin field updates and re-derives vacancy afterward.
// Occupancy is NOT validated against capacity: the edit endpoint trusts
// its caller, and an occupancy above capacity simply yields is_vacant=false.
func (s *OccupancyService) EditRoom(ctx context.Context, roomID uuid.UUID, req dtos.UpdateRoomRequest) (*models.Room, error) {
	err := s.roomRepo.UpdateWithRetry(ctx, roomID, func(room *models.Room) error {
		if req.Capacity != nil {
			room.Capacity = *req.Capacity
		}
		if req.CurrentOccupancy != nil {
			room.CurrentOccupancy = *req.CurrentOccupancy
		}
		if req.RentPerBed != nil {
			room.RentPerBed = *req.RentPerBed
		}
		room.DeriveVacancy()
		return nil
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, utils.ErrRoomNotFound
		}
		return nil, err
	}
	return s.roomRepo.GetByID(ctx, roomID)
}

// DeleteRoom refuses to remove a room that still houses active tenants.
func (s *OccupancyService) DeleteRoom(ctx context.Context, roomID uuid.UUID) error {
	room, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		return err
	}
	if room == nil {
		return utils.ErrRoomNotFound
	}
	n, err := s.tenantRepo.CountActiveByRoom(ctx, room.RoomNumber, room.Location)
	if err != nil {
		return err
	}
	if n > 0 {
		return utils.ErrRoomOccupied
	}
	return s.roomRepo.Delete(ctx, roomID)
}

func (s *OccupancyService) GetRoom(ctx context.Context, roomNumber, location string) (*models.Room, error) {
	room, err := s.roomRepo.GetByNumberAndLocation(ctx, roomNumber, location)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, utils.ErrRoomNotFound
	}
	return room, nil
}

func (s *OccupancyService) ListRooms(ctx context.Context) ([]*models.Room, error) {
	return s.roomRepo.ListAll(ctx)
}

/* ---------------- attach / detach ---------------- */

// AttachTenant creates a tenant in the given room and bumps the room's
// occupancy. The capacity check happens before the tenant row exists, so a
// full room never gains a tenant. If the room update fails after the
// tenant persisted, the drift is left for the auditor rather than rolled
// back.
func (s *OccupancyService) AttachTenant(ctx context.Context, req dtos.CreateTenantRequest) (*dtos.CreateTenantResponse, error) {
	room, err := s.roomRepo.GetByNumberAndLocation(ctx, req.RoomNumber, req.Location)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, utils.ErrRoomNotFound
	}
	if room.CurrentOccupancy >= room.Capacity {
		return nil, utils.ErrRoomFull
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	tenant := &models.Tenant{
		ID:           uuid.New(),
		Name:         req.Name,
		Phone:        req.Phone,
		Passkey:      utils.RandomString(passkeyLength),
		PasswordHash: hash,
		RoomNumber:   room.RoomNumber,
		Location:     room.Location,
		IsActive:     true,
		JoinedAt:     time.Now().UTC(),
	}
	if err := s.tenantRepo.Create(ctx, tenant); err != nil {
		return nil, err
	}

	if err := s.applyRoomDelta(ctx, room.ID, +1); err != nil {
		// Tenant row is already persisted; the next audit pass restores I1.
		utils.Logger.WithError(err).Warnf(
			"room %s/%s not updated after tenant %s persisted; occupancy stale until next audit",
			room.Location, room.RoomNumber, tenant.ID,
		)
		return nil, err
	}

	updated, err := s.roomRepo.GetByID(ctx, room.ID)
	if err != nil {
		return nil, err
	}
	return &dtos.CreateTenantResponse{Tenant: tenant, Room: updated}, nil
}

// DetachTenant removes (hard) or deactivates (soft) a tenant and frees the
// bed. The room decrement is clamped at zero and happens at most once: a
// tenant that is already inactive no longer occupies a bed, so removing
// the row later must not decrement again.
func (s *OccupancyService) DetachTenant(ctx context.Context, tenantID uuid.UUID, mode DetachMode) error {
	tenant, err := s.tenantRepo.GetByID(ctx, tenantID)
	if err != nil {
		return err
	}
	if tenant == nil {
		return utils.ErrTenantNotFound
	}

	wasActive := tenant.IsActive

	switch mode {
	case DetachSoft:
		if wasActive {
			if err := s.tenantRepo.Deactivate(ctx, tenantID); err != nil {
				return err
			}
		}
	case DetachHard:
		if err := s.tenantRepo.Delete(ctx, tenantID); err != nil {
			return err
		}
	}

	if !wasActive {
		return nil
	}

	room, err := s.roomRepo.GetByNumberAndLocation(ctx, tenant.RoomNumber, tenant.Location)
	if err != nil {
		return err
	}
	if room == nil {
		// Tenant pointed at a room that no longer exists. The tenant is
		// gone either way; nothing to decrement.
		utils.Logger.Warnf("tenant %s referenced missing room %s/%s; no room update",
			tenantID, tenant.Location, tenant.RoomNumber)
		return nil
	}

	if err := s.applyRoomDelta(ctx, room.ID, -1); err != nil {
		utils.Logger.WithError(err).Warnf(
			"room %s/%s not updated after tenant %s detached; occupancy stale until next audit",
			room.Location, room.RoomNumber, tenantID,
		)
		return err
	}
	return nil
}

func (s *OccupancyService) GetTenant(ctx context.Context, tenantID uuid.UUID) (*models.Tenant, error) {
	tenant, err := s.tenantRepo.GetByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, utils.ErrTenantNotFound
	}
	return tenant, nil
}

func (s *OccupancyService) ListTenants(ctx context.Context) ([]*models.Tenant, error) {
	return s.tenantRepo.ListAll(ctx)
}

/* ---------------- internals ---------------- */

// applyRoomDelta is the single place occupancy arithmetic happens: clamped
// add, then vacancy re-derivation, inside one optimistic-lock retry loop.
func (s *OccupancyService) applyRoomDelta(ctx context.Context, roomID uuid.UUID, delta int) error {
	return s.roomRepo.UpdateWithRetry(ctx, roomID, func(room *models.Room) error {
		room.CurrentOccupancy += delta
		if room.CurrentOccupancy < 0 {
			room.CurrentOccupancy = 0
		}
		room.DeriveVacancy()
		return nil
	})
}
