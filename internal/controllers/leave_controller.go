package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/hostelworks/hostel-service/internal/dtos"
	"github.com/hostelworks/hostel-service/internal/middleware"
	"github.com/hostelworks/hostel-service/internal/services"
	"github.com/hostelworks/hostel-service/internal/utils"
)

type LeaveController struct {
	leaveSvc *services.LeaveService
}

func NewLeaveController(leaveSvc *services.LeaveService) *LeaveController {
	return &LeaveController{leaveSvc: leaveSvc}
}

// -----------------------------------------------------------------------------
// POST /api/v1/leave-requests - tenant files a request for themselves
// -----------------------------------------------------------------------------
func (c *LeaveController) FileLeaveRequestHandler(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := contextUserID(w, r)
	if !ok {
		return
	}

	var req dtos.CreateLeaveRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Reason required", nil, err)
		return
	}

	lr, err := c.leaveSvc.FileRequest(r.Context(), tenantID, req)
	if err != nil {
		if errors.Is(err, utils.ErrTenantNotFound) {
			utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "Tenant not found", nil)
			return
		}
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to file leave request", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, lr)
}

// -----------------------------------------------------------------------------
// GET /api/v1/leave-requests - tenant's own history
// -----------------------------------------------------------------------------
func (c *LeaveController) ListMyLeaveRequestsHandler(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := contextUserID(w, r)
	if !ok {
		return
	}

	list, err := c.leaveSvc.ListForTenant(r.Context(), tenantID)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to list leave requests", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, list)
}

// -----------------------------------------------------------------------------
// GET /api/v1/leave-requests/pending - owner queue
// -----------------------------------------------------------------------------
func (c *LeaveController) ListPendingHandler(w http.ResponseWriter, r *http.Request) {
	list, err := c.leaveSvc.ListPending(r.Context())
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to list pending requests", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, list)
}

// -----------------------------------------------------------------------------
// POST /api/v1/leave-requests/{id}/approve - soft-detaches the tenant
// -----------------------------------------------------------------------------
func (c *LeaveController) ApproveHandler(w http.ResponseWriter, r *http.Request) {
	c.decide(w, r, c.leaveSvc.Approve, "approved")
}

// -----------------------------------------------------------------------------
// POST /api/v1/leave-requests/{id}/reject
// -----------------------------------------------------------------------------
func (c *LeaveController) RejectHandler(w http.ResponseWriter, r *http.Request) {
	c.decide(w, r, c.leaveSvc.Reject, "rejected")
}

func (c *LeaveController) decide(
	w http.ResponseWriter,
	r *http.Request,
	fn func(ctx context.Context, id uuid.UUID) error,
	verdict string,
) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := fn(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, utils.ErrLeaveRequestNotFound):
			utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "Leave request not found", nil)
		case errors.Is(err, utils.ErrLeaveAlreadyDecided):
			utils.RespondErrorWithCode(w, http.StatusConflict, utils.ErrCodeConflict, "Leave request already decided", nil)
		default:
			utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to decide leave request", nil, err)
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.MessageResponse{Message: "leave request " + verdict})
}

// contextUserID pulls the authenticated subject out of the request context.
func contextUserID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw, _ := r.Context().Value(middleware.ContextKeyUserID).(string)
	id, err := uuid.Parse(raw)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "No user in context", nil, err)
		return uuid.Nil, false
	}
	return id, true
}
