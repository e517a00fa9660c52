package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hostelworks/hostel-service/internal/dtos"
	"github.com/hostelworks/hostel-service/internal/services"
	"github.com/hostelworks/hostel-service/internal/utils"
)

type TenantController struct {
	occupancySvc *services.OccupancyService
}

func NewTenantController(occupancySvc *services.OccupancyService) *TenantController {
	return &TenantController{occupancySvc: occupancySvc}
}

// -----------------------------------------------------------------------------
// POST /api/v1/tenants - create a tenant in a room (the ledger attach path)
// -----------------------------------------------------------------------------
func (c *TenantController) CreateTenantHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateTenantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Invalid tenant fields", nil, err)
		return
	}

	resp, err := c.occupancySvc.AttachTenant(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrRoomNotFound):
			utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "Room not found", nil)
		case errors.Is(err, utils.ErrRoomFull):
			utils.RespondErrorWithCode(w, http.StatusConflict, utils.ErrCodeRoomFull, "Room is at capacity", nil)
		default:
			utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to create tenant", nil, err)
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, resp)
}

// -----------------------------------------------------------------------------
// GET /api/v1/tenants
// -----------------------------------------------------------------------------
func (c *TenantController) ListTenantsHandler(w http.ResponseWriter, r *http.Request) {
	tenants, err := c.occupancySvc.ListTenants(r.Context())
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to list tenants", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, tenants)
}

// -----------------------------------------------------------------------------
// GET /api/v1/tenants/{id}
// -----------------------------------------------------------------------------
func (c *TenantController) GetTenantHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	tenant, err := c.occupancySvc.GetTenant(r.Context(), id)
	if err != nil {
		if errors.Is(err, utils.ErrTenantNotFound) {
			utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "Tenant not found", nil)
			return
		}
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to fetch tenant", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, tenant)
}

// -----------------------------------------------------------------------------
// DELETE /api/v1/tenants/{id} - hard delete (the ledger detach path)
// -----------------------------------------------------------------------------
func (c *TenantController) DeleteTenantHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := c.occupancySvc.DetachTenant(r.Context(), id, services.DetachHard); err != nil {
		if errors.Is(err, utils.ErrTenantNotFound) {
			utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "Tenant not found", nil)
			return
		}
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to delete tenant", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.MessageResponse{Message: "tenant deleted"})
}
