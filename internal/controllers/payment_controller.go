package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hostelworks/hostel-service/internal/dtos"
	"github.com/hostelworks/hostel-service/internal/services"
	"github.com/hostelworks/hostel-service/internal/utils"
)

type PaymentController struct {
	paymentSvc *services.PaymentService
}

func NewPaymentController(paymentSvc *services.PaymentService) *PaymentController {
	return &PaymentController{paymentSvc: paymentSvc}
}

// -----------------------------------------------------------------------------
// POST /api/v1/payments - owner records a rent payment
// -----------------------------------------------------------------------------
func (c *PaymentController) RecordPaymentHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Invalid payment fields", nil, err)
		return
	}

	payment, err := c.paymentSvc.Record(r.Context(), req)
	if err != nil {
		if errors.Is(err, utils.ErrTenantNotFound) {
			utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "Tenant not found", nil)
			return
		}
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to record payment", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, payment)
}

// -----------------------------------------------------------------------------
// GET /api/v1/payments/tenant/{id}
// -----------------------------------------------------------------------------
func (c *PaymentController) ListTenantPaymentsHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	list, err := c.paymentSvc.ListForTenant(r.Context(), id)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to list payments", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, list)
}
