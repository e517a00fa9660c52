package models

import (
	"time"

	"github.com/google/uuid"
)

// Room is a bookable space identified by (RoomNumber, Location) - room numbers
// repeat across locations, so the pair is the business key.
//
// CurrentOccupancy is a cached denormalization of the active-tenant count for
// the room; IsVacant is always derived as CurrentOccupancy < Capacity and is
// never set independently.
type Room struct {
	Versioned
	ID               uuid.UUID `json:"id"`
	RoomNumber       string    `json:"room_number"`
	Location         string    `json:"location"`
	Capacity         int       `json:"capacity"`
	CurrentOccupancy int       `json:"current_occupancy"`
	IsVacant         bool      `json:"is_vacant"`
	RentPerBed       int64     `json:"rent_per_bed"` // monthly, in minor units
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (r *Room) GetID() string { return r.ID.String() }

// DeriveVacancy recomputes IsVacant from the current occupancy and capacity.
func (r *Room) DeriveVacancy() {
	r.IsVacant = r.CurrentOccupancy < r.Capacity
}
