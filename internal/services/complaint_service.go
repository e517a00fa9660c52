package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/hostelworks/hostel-service/internal/dtos"
	"github.com/hostelworks/hostel-service/internal/models"
	"github.com/hostelworks/hostel-service/internal/repositories"
	"github.com/hostelworks/hostel-service/internal/utils"
)

type ComplaintService struct {
	complaintRepo repositories.ComplaintRepository
	tenantRepo    repositories.TenantRepository
}

func NewComplaintService(complaintRepo repositories.ComplaintRepository, tenantRepo repositories.TenantRepository) *ComplaintService {
	return &ComplaintService{complaintRepo: complaintRepo, tenantRepo: tenantRepo}
}

func (s *ComplaintService) File(ctx context.Context, tenantID uuid.UUID, req dtos.CreateComplaintRequest) (*models.Complaint, error) {
	tenant, err := s.tenantRepo.GetByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, utils.ErrTenantNotFound
	}

	c := &models.Complaint{
		ID:       uuid.New(),
		TenantID: tenantID,
		Subject:  req.Subject,
		Body:     req.Body,
		Status:   models.ComplaintStatusOpen,
	}
	if err := s.complaintRepo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *ComplaintService) Resolve(ctx context.Context, complaintID uuid.UUID) error {
	c, err := s.complaintRepo.GetByID(ctx, complaintID)
	if err != nil {
		return err
	}
	if c == nil {
		return utils.ErrComplaintNotFound
	}
	return s.complaintRepo.MarkResolved(ctx, complaintID)
}

func (s *ComplaintService) ListAll(ctx context.Context) ([]*models.Complaint, error) {
	return s.complaintRepo.ListAll(ctx)
}

func (s *ComplaintService) ListForTenant(ctx context.Context, tenantID uuid.UUID) ([]*models.Complaint, error) {
	return s.complaintRepo.ListByTenantID(ctx, tenantID)
}
