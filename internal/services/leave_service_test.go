package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/hostelworks/hostel-service/internal/dtos"
	"github.com/hostelworks/hostel-service/internal/models"
	"github.com/hostelworks/hostel-service/internal/utils"
)

type fakeLeaveRepo struct {
	requests map[string]*models.LeaveRequest
}

func newFakeLeaveRepo() *fakeLeaveRepo {
	return &fakeLeaveRepo{requests: make(map[string]*models.LeaveRequest)}
}

func (f *fakeLeaveRepo) Create(_ context.Context, lr *models.LeaveRequest) error {
	cp := *lr
	f.requests[lr.ID.String()] = &cp
	return nil
}

func (f *fakeLeaveRepo) GetByID(_ context.Context, id uuid.UUID) (*models.LeaveRequest, error) {
	lr, ok := f.requests[id.String()]
	if !ok {
		return nil, nil
	}
	cp := *lr
	return &cp, nil
}

func (f *fakeLeaveRepo) ListPending(_ context.Context) ([]*models.LeaveRequest, error) {
	var out []*models.LeaveRequest
	for _, lr := range f.requests {
		if lr.Status == models.LeaveStatusPending {
			cp := *lr
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeLeaveRepo) ListByTenantID(_ context.Context, tenantID uuid.UUID) ([]*models.LeaveRequest, error) {
	var out []*models.LeaveRequest
	for _, lr := range f.requests {
		if lr.TenantID == tenantID {
			cp := *lr
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeLeaveRepo) SetStatus(_ context.Context, id uuid.UUID, status models.LeaveStatus) error {
	lr, ok := f.requests[id.String()]
	if !ok {
		return nil
	}
	lr.Status = status
	return nil
}

func newLeaveFixture(t *testing.T) (*LeaveService, *OccupancyService, *fakeRoomRepo, *fakeTenantRepo) {
	t.Helper()
	roomRepo := newFakeRoomRepo()
	tenantRepo := newFakeTenantRepo()
	occupancySvc := NewOccupancyService(roomRepo, tenantRepo)
	return NewLeaveService(newFakeLeaveRepo(), tenantRepo, occupancySvc), occupancySvc, roomRepo, tenantRepo
}

func TestLeaveApprovalFreesBedOnce(t *testing.T) {
	leaveSvc, occupancySvc, roomRepo, tenantRepo := newLeaveFixture(t)
	room := mustCreateRoom(t, occupancySvc, "101", "A", 2)
	tenantID := mustAttach(t, occupancySvc, "Asha", "101", "A").Tenant.ID

	lr, err := leaveSvc.FileRequest(context.Background(), tenantID, dtos.CreateLeaveRequestRequest{Reason: "moving out"})
	require.NoError(t, err)
	require.Equal(t, models.LeaveStatusPending, lr.Status)

	require.NoError(t, leaveSvc.Approve(context.Background(), lr.ID))

	stored, _ := roomRepo.GetByID(context.Background(), room.ID)
	require.Equal(t, 0, stored.CurrentOccupancy)
	require.True(t, stored.IsVacant)
	require.False(t, tenantRepo.tenants[tenantID].IsActive)

	// the decision is final
	err = leaveSvc.Approve(context.Background(), lr.ID)
	require.ErrorIs(t, err, utils.ErrLeaveAlreadyDecided)
	stored, _ = roomRepo.GetByID(context.Background(), room.ID)
	require.Equal(t, 0, stored.CurrentOccupancy)
}

func TestLeaveRejectKeepsTenantActive(t *testing.T) {
	leaveSvc, occupancySvc, roomRepo, tenantRepo := newLeaveFixture(t)
	room := mustCreateRoom(t, occupancySvc, "101", "A", 2)
	tenantID := mustAttach(t, occupancySvc, "Asha", "101", "A").Tenant.ID

	lr, err := leaveSvc.FileRequest(context.Background(), tenantID, dtos.CreateLeaveRequestRequest{Reason: "maybe"})
	require.NoError(t, err)
	require.NoError(t, leaveSvc.Reject(context.Background(), lr.ID))

	stored, _ := roomRepo.GetByID(context.Background(), room.ID)
	require.Equal(t, 1, stored.CurrentOccupancy)
	require.True(t, tenantRepo.tenants[tenantID].IsActive)
}

func TestLeaveRequestFromInactiveTenant(t *testing.T) {
	leaveSvc, occupancySvc, _, _ := newLeaveFixture(t)
	mustCreateRoom(t, occupancySvc, "101", "A", 2)
	tenantID := mustAttach(t, occupancySvc, "Asha", "101", "A").Tenant.ID

	require.NoError(t, occupancySvc.DetachTenant(context.Background(), tenantID, DetachSoft))

	_, err := leaveSvc.FileRequest(context.Background(), tenantID, dtos.CreateLeaveRequestRequest{Reason: "again"})
	require.ErrorIs(t, err, utils.ErrTenantNotFound)
}
