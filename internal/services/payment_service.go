package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/hostelworks/hostel-service/internal/dtos"
	"github.com/hostelworks/hostel-service/internal/models"
	"github.com/hostelworks/hostel-service/internal/repositories"
	"github.com/hostelworks/hostel-service/internal/utils"
)

// PaymentService records rent payments against tenants. These are ledger
// entries only; no card processing happens here.
type PaymentService struct {
	paymentRepo repositories.PaymentRepository
	tenantRepo  repositories.TenantRepository
}

func NewPaymentService(paymentRepo repositories.PaymentRepository, tenantRepo repositories.TenantRepository) *PaymentService {
	return &PaymentService{paymentRepo: paymentRepo, tenantRepo: tenantRepo}
}

func (s *PaymentService) Record(ctx context.Context, req dtos.CreatePaymentRequest) (*models.Payment, error) {
	tenantID, err := uuid.Parse(req.TenantID)
	if err != nil {
		return nil, err
	}
	tenant, err := s.tenantRepo.GetByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, utils.ErrTenantNotFound
	}

	p := &models.Payment{
		ID:       uuid.New(),
		TenantID: tenantID,
		Amount:   req.Amount,
		Month:    req.Month,
		Method:   req.Method,
		Note:     req.Note,
	}
	if err := s.paymentRepo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PaymentService) ListForTenant(ctx context.Context, tenantID uuid.UUID) ([]*models.Payment, error) {
	return s.paymentRepo.ListByTenantID(ctx, tenantID)
}
