package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hostelworks/hostel-service/internal/dtos"
	"github.com/hostelworks/hostel-service/internal/middleware"
	"github.com/hostelworks/hostel-service/internal/services"
	"github.com/hostelworks/hostel-service/internal/utils"
)

type ComplaintController struct {
	complaintSvc *services.ComplaintService
}

func NewComplaintController(complaintSvc *services.ComplaintService) *ComplaintController {
	return &ComplaintController{complaintSvc: complaintSvc}
}

// -----------------------------------------------------------------------------
// POST /api/v1/complaints - tenant files a complaint
// -----------------------------------------------------------------------------
func (c *ComplaintController) FileComplaintHandler(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := contextUserID(w, r)
	if !ok {
		return
	}

	var req dtos.CreateComplaintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Subject and body required", nil, err)
		return
	}

	complaint, err := c.complaintSvc.File(r.Context(), tenantID, req)
	if err != nil {
		if errors.Is(err, utils.ErrTenantNotFound) {
			utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "Tenant not found", nil)
			return
		}
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to file complaint", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, complaint)
}

// -----------------------------------------------------------------------------
// GET /api/v1/complaints - owner sees all, tenant sees their own
// -----------------------------------------------------------------------------
func (c *ComplaintController) ListComplaintsHandler(w http.ResponseWriter, r *http.Request) {
	role, _ := r.Context().Value(middleware.ContextKeyRole).(string)
	if role == services.RoleOwner {
		list, err := c.complaintSvc.ListAll(r.Context())
		if err != nil {
			utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to list complaints", nil, err)
			return
		}
		utils.RespondWithJSON(w, http.StatusOK, list)
		return
	}

	tenantID, ok := contextUserID(w, r)
	if !ok {
		return
	}
	list, err := c.complaintSvc.ListForTenant(r.Context(), tenantID)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to list complaints", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, list)
}

// -----------------------------------------------------------------------------
// POST /api/v1/complaints/{id}/resolve - owner only
// -----------------------------------------------------------------------------
func (c *ComplaintController) ResolveComplaintHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := c.complaintSvc.Resolve(r.Context(), id); err != nil {
		if errors.Is(err, utils.ErrComplaintNotFound) {
			utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "Complaint not found", nil)
			return
		}
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to resolve complaint", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.MessageResponse{Message: "complaint resolved"})
}
