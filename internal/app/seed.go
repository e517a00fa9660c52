package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hostelworks/hostel-service/internal/models"
	"github.com/hostelworks/hostel-service/internal/repositories"
	"github.com/hostelworks/hostel-service/internal/utils"
)

// SentinelOwnerID marks a seeded database. If this owner exists, seeding
// already ran and is skipped.
const SentinelOwnerID = "dddddddd-dddd-4ddd-dddd-ddddddddddd1"

const (
	seedOwnerEmail    = "owner@hostelworks.dev"
	seedOwnerPassword = "owner-dev-password"
)

// SeedDevData loads a small dev fixture: one owner account and a handful of
// rooms across two locations. Idempotent via the sentinel owner check.
func SeedDevData(
	ctx context.Context,
	ownerRepo repositories.OwnerRepository,
	roomRepo repositories.RoomRepository,
) error {
	sentinelID := uuid.MustParse(SentinelOwnerID)

	existing, err := ownerRepo.GetByID(ctx, sentinelID)
	if err != nil {
		return fmt.Errorf("failed to check for sentinel owner: %w", err)
	}
	if existing != nil {
		utils.Logger.Info("Seed data already present; skipping seeding.")
		return nil
	}

	hash, err := utils.HashPassword(seedOwnerPassword)
	if err != nil {
		return fmt.Errorf("hash seed owner password: %w", err)
	}

	now := time.Now().UTC()
	owner := &models.Owner{
		ID:           sentinelID,
		Name:         "Dev Owner",
		Email:        seedOwnerEmail,
		PasswordHash: hash,
		CreatedAt:    now,
	}
	if err := ownerRepo.Create(ctx, owner); err != nil {
		return fmt.Errorf("failed to create seed owner: %w", err)
	}

	rooms := []*models.Room{
		{RoomNumber: "101", Location: "north-wing", Capacity: 2, RentPerBed: 450000},
		{RoomNumber: "102", Location: "north-wing", Capacity: 3, RentPerBed: 380000},
		{RoomNumber: "201", Location: "south-wing", Capacity: 4, RentPerBed: 320000},
		{RoomNumber: "202", Location: "south-wing", Capacity: 1, RentPerBed: 600000},
	}
	for _, room := range rooms {
		room.ID = uuid.New()
		room.CurrentOccupancy = 0
		room.IsVacant = true
		room.CreatedAt = now
		room.UpdatedAt = now
		if err := roomRepo.Create(ctx, room); err != nil {
			return fmt.Errorf("failed to create seed room %s/%s: %w", room.Location, room.RoomNumber, err)
		}
		utils.Logger.Infof("Seeded room %s at %s (capacity %d)", room.RoomNumber, room.Location, room.Capacity)
	}

	utils.Logger.Info("Seeding completed successfully.")
	return nil
}
