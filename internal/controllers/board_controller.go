package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/hostelworks/hostel-service/internal/dtos"
	"github.com/hostelworks/hostel-service/internal/services"
	"github.com/hostelworks/hostel-service/internal/utils"
)

type BoardController struct {
	boardSvc *services.BoardService
}

func NewBoardController(boardSvc *services.BoardService) *BoardController {
	return &BoardController{boardSvc: boardSvc}
}

// -----------------------------------------------------------------------------
// POST /api/v1/announcements - owner only
// -----------------------------------------------------------------------------
func (c *BoardController) PostAnnouncementHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateAnnouncementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Title and body required", nil, err)
		return
	}

	a, err := c.boardSvc.PostAnnouncement(r.Context(), req)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to post announcement", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, a)
}

// -----------------------------------------------------------------------------
// GET /api/v1/announcements
// -----------------------------------------------------------------------------
func (c *BoardController) ListAnnouncementsHandler(w http.ResponseWriter, r *http.Request) {
	list, err := c.boardSvc.ListAnnouncements(r.Context())
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to list announcements", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, list)
}

// -----------------------------------------------------------------------------
// DELETE /api/v1/announcements/{id} - owner only
// -----------------------------------------------------------------------------
func (c *BoardController) DeleteAnnouncementHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := c.boardSvc.DeleteAnnouncement(r.Context(), id); err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to delete announcement", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.MessageResponse{Message: "announcement deleted"})
}

// -----------------------------------------------------------------------------
// PUT /api/v1/menu - owner upserts one weekday's menu
// -----------------------------------------------------------------------------
func (c *BoardController) UpsertMenuHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.UpsertMenuDayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Invalid menu fields", nil, err)
		return
	}

	m, err := c.boardSvc.UpsertMenuDay(r.Context(), req)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to save menu", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, m)
}

// -----------------------------------------------------------------------------
// GET /api/v1/menu
// -----------------------------------------------------------------------------
func (c *BoardController) WeeklyMenuHandler(w http.ResponseWriter, r *http.Request) {
	list, err := c.boardSvc.WeeklyMenu(r.Context())
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to fetch menu", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, list)
}
