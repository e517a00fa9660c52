package services

import (
	"context"
	"math"
	"sort"

	"github.com/hostelworks/hostel-service/internal/dtos"
	"github.com/hostelworks/hostel-service/internal/repositories"
	"github.com/hostelworks/hostel-service/internal/utils"
)

/*
AuditService is the consistency auditor for room occupancy. It is an
offline, single-threaded batch: tenants are the ground truth, the rooms
table is a cache, and any divergence between the two is repaired on the
spot. Running it twice back-to-back finds nothing on the second pass.
*/
type AuditService struct {
	roomRepo   repositories.RoomRepository
	tenantRepo repositories.TenantRepository
}

func NewAuditService(roomRepo repositories.RoomRepository, tenantRepo repositories.TenantRepository) *AuditService {
	return &AuditService{roomRepo: roomRepo, tenantRepo: tenantRepo}
}

// RunAudit scans every room, recomputes the true occupancy from the
// active-tenant set and overwrites the cached fields where they disagree.
// A failure on one room is recorded and the scan moves on.
func (s *AuditService) RunAudit(ctx context.Context) (*dtos.AuditReport, error) {
	rooms, err := s.roomRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	report := &dtos.AuditReport{}
	perLocation := make(map[string]*dtos.LocationSummary)

	for _, room := range rooms {
		report.RoomsChecked++

		trueCount, err := s.tenantRepo.CountActiveByRoom(ctx, room.RoomNumber, room.Location)
		if err != nil {
			utils.Logger.WithError(err).Errorf("audit: counting tenants for room %s/%s failed",
				room.Location, room.RoomNumber)
			report.Failures = append(report.Failures, dtos.AuditFailure{
				RoomNumber: room.RoomNumber,
				Location:   room.Location,
				Error:      err.Error(),
			})
			continue
		}
		expectedVacancy := trueCount < room.Capacity

		if room.CurrentOccupancy != trueCount || room.IsVacant != expectedVacancy {
			report.InconsistenciesFound++
			utils.Logger.Warnf("audit: room %s/%s stored occupancy=%d vacant=%t, true occupancy=%d vacant=%t",
				room.Location, room.RoomNumber,
				room.CurrentOccupancy, room.IsVacant, trueCount, expectedVacancy)

			room.CurrentOccupancy = trueCount
			room.IsVacant = expectedVacancy
			if err := s.roomRepo.Update(ctx, room); err != nil {
				utils.Logger.WithError(err).Errorf("audit: repairing room %s/%s failed",
					room.Location, room.RoomNumber)
				report.Failures = append(report.Failures, dtos.AuditFailure{
					RoomNumber: room.RoomNumber,
					Location:   room.Location,
					Error:      err.Error(),
				})
				continue
			}
			report.RoomsFixed++
		}
		// consistent rooms get no redundant write

		sum, ok := perLocation[room.Location]
		if !ok {
			sum = &dtos.LocationSummary{Location: room.Location}
			perLocation[room.Location] = sum
		}
		sum.TotalRooms++
		sum.TotalCapacity += room.Capacity
		sum.TotalOccupied += room.CurrentOccupancy
		if room.IsVacant {
			sum.RoomsAvailable++
		}
	}

	for _, sum := range perLocation {
		if sum.TotalCapacity > 0 {
			sum.OccupancyRate = int(math.Round(100 * float64(sum.TotalOccupied) / float64(sum.TotalCapacity)))
		}
		report.PerLocationSummary = append(report.PerLocationSummary, *sum)
	}
	sort.Slice(report.PerLocationSummary, func(i, j int) bool {
		return report.PerLocationSummary[i].Location < report.PerLocationSummary[j].Location
	})

	utils.Logger.Infof("audit: %d rooms checked, %d inconsistencies, %d fixed, %d failures",
		report.RoomsChecked, report.InconsistenciesFound, report.RoomsFixed, len(report.Failures))
	return report, nil
}
