package dtos

import "github.com/hostelworks/hostel-service/internal/models"

type CreateTenantRequest struct {
	Name       string `json:"name" validate:"required"`
	Phone      string `json:"phone" validate:"required"`
	Password   string `json:"password" validate:"required,min=8"`
	RoomNumber string `json:"room_number" validate:"required"`
	Location   string `json:"location" validate:"required"`
}

// CreateTenantResponse returns the freshly issued passkey exactly once,
// together with the room snapshot after the occupancy increment.
type CreateTenantResponse struct {
	Tenant *models.Tenant `json:"tenant"`
	Room   *models.Room   `json:"room"`
}
