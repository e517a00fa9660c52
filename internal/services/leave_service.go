package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/hostelworks/hostel-service/internal/dtos"
	"github.com/hostelworks/hostel-service/internal/models"
	"github.com/hostelworks/hostel-service/internal/repositories"
	"github.com/hostelworks/hostel-service/internal/utils"
)

// LeaveService handles tenant leave requests. Approval is the soft-detach
// path of the occupancy ledger: the tenant row survives for history but
// the bed is freed permanently.
type LeaveService struct {
	leaveRepo    repositories.LeaveRequestRepository
	tenantRepo   repositories.TenantRepository
	occupancySvc *OccupancyService
}

func NewLeaveService(leaveRepo repositories.LeaveRequestRepository, tenantRepo repositories.TenantRepository, occupancySvc *OccupancyService) *LeaveService {
	return &LeaveService{leaveRepo: leaveRepo, tenantRepo: tenantRepo, occupancySvc: occupancySvc}
}

func (s *LeaveService) FileRequest(ctx context.Context, tenantID uuid.UUID, req dtos.CreateLeaveRequestRequest) (*models.LeaveRequest, error) {
	tenant, err := s.tenantRepo.GetByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if tenant == nil || !tenant.IsActive {
		return nil, utils.ErrTenantNotFound
	}

	lr := &models.LeaveRequest{
		ID:       uuid.New(),
		TenantID: tenantID,
		Reason:   req.Reason,
		Status:   models.LeaveStatusPending,
	}
	if err := s.leaveRepo.Create(ctx, lr); err != nil {
		return nil, err
	}
	return lr, nil
}

// Approve deactivates the tenant before recording the decision, so a
// failure mid-way leaves the request pending and retryable rather than
// approved with the bed still counted.
func (s *LeaveService) Approve(ctx context.Context, requestID uuid.UUID) error {
	lr, err := s.pendingRequest(ctx, requestID)
	if err != nil {
		return err
	}
	if err := s.occupancySvc.DetachTenant(ctx, lr.TenantID, DetachSoft); err != nil {
		return err
	}
	return s.leaveRepo.SetStatus(ctx, requestID, models.LeaveStatusApproved)
}

func (s *LeaveService) Reject(ctx context.Context, requestID uuid.UUID) error {
	if _, err := s.pendingRequest(ctx, requestID); err != nil {
		return err
	}
	return s.leaveRepo.SetStatus(ctx, requestID, models.LeaveStatusRejected)
}

func (s *LeaveService) ListPending(ctx context.Context) ([]*models.LeaveRequest, error) {
	return s.leaveRepo.ListPending(ctx)
}

func (s *LeaveService) ListForTenant(ctx context.Context, tenantID uuid.UUID) ([]*models.LeaveRequest, error) {
	return s.leaveRepo.ListByTenantID(ctx, tenantID)
}

func (s *LeaveService) pendingRequest(ctx context.Context, requestID uuid.UUID) (*models.LeaveRequest, error) {
	lr, err := s.leaveRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if lr == nil {
		return nil, utils.ErrLeaveRequestNotFound
	}
	if lr.Status != models.LeaveStatusPending {
		return nil, utils.ErrLeaveAlreadyDecided
	}
	return lr, nil
}
