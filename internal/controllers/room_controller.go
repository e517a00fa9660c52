package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/hostelworks/hostel-service/internal/dtos"
	"github.com/hostelworks/hostel-service/internal/services"
	"github.com/hostelworks/hostel-service/internal/utils"
)

type RoomController struct {
	occupancySvc *services.OccupancyService
}

func NewRoomController(occupancySvc *services.OccupancyService) *RoomController {
	return &RoomController{occupancySvc: occupancySvc}
}

// -----------------------------------------------------------------------------
// POST /api/v1/rooms
// -----------------------------------------------------------------------------
func (c *RoomController) CreateRoomHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "room_number, location and capacity >= 1 required", nil, err)
		return
	}

	room, err := c.occupancySvc.CreateRoom(r.Context(), req)
	if err != nil {
		if errors.Is(err, utils.ErrRoomExists) {
			utils.RespondErrorWithCode(w, http.StatusConflict, utils.ErrCodeConflict, "Room already exists at this location", nil)
			return
		}
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to create room", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, room)
}

// -----------------------------------------------------------------------------
// GET /api/v1/rooms
// -----------------------------------------------------------------------------
func (c *RoomController) ListRoomsHandler(w http.ResponseWriter, r *http.Request) {
	rooms, err := c.occupancySvc.ListRooms(r.Context())
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to list rooms", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, rooms)
}

// -----------------------------------------------------------------------------
// GET /api/v1/rooms/lookup?room_number=101&location=A
// -----------------------------------------------------------------------------
func (c *RoomController) LookupRoomHandler(w http.ResponseWriter, r *http.Request) {
	roomNumber := r.URL.Query().Get("room_number")
	location := r.URL.Query().Get("location")
	if roomNumber == "" || location == "" {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "room_number and location query params required", nil)
		return
	}

	room, err := c.occupancySvc.GetRoom(r.Context(), roomNumber, location)
	if err != nil {
		if errors.Is(err, utils.ErrRoomNotFound) {
			utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "Room not found", nil)
			return
		}
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to fetch room", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, room)
}

// -----------------------------------------------------------------------------
// PUT /api/v1/rooms/{id}
// -----------------------------------------------------------------------------
func (c *RoomController) UpdateRoomHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req dtos.UpdateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Invalid room fields", nil, err)
		return
	}

	room, err := c.occupancySvc.EditRoom(r.Context(), id, req)
	if err != nil {
		if errors.Is(err, utils.ErrRoomNotFound) {
			utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "Room not found", nil)
			return
		}
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to update room", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, room)
}

// -----------------------------------------------------------------------------
// DELETE /api/v1/rooms/{id}
// -----------------------------------------------------------------------------
func (c *RoomController) DeleteRoomHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := c.occupancySvc.DeleteRoom(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, utils.ErrRoomNotFound):
			utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "Room not found", nil)
		case errors.Is(err, utils.ErrRoomOccupied):
			utils.RespondErrorWithCode(w, http.StatusConflict, utils.ErrCodeConflict, "Room still has active tenants", nil)
		default:
			utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to delete room", nil, err)
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.MessageResponse{Message: "room deleted"})
}

// pathUUID parses the {name} path variable as a UUID, responding 400 itself
// when it can't.
func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	raw := mux.Vars(r)[name]
	id, err := uuid.Parse(raw)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid id in path", nil, err)
		return uuid.Nil, false
	}
	return id, true
}
