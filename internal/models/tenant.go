package models

import (
	"time"

	"github.com/google/uuid"
)

// Tenant is a person assigned to a room. Passkey is the unique opaque
// credential issued at creation; tenants authenticate with it instead of an
// email. The (RoomNumber, Location) pair is fixed at creation - there is no
// room-transfer operation.
//
// IsActive=false means the tenant has left (leave approval); the record is
// retained for history but never counts toward room occupancy.
type Tenant struct {
	Versioned
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	Passkey      string    `json:"passkey"`
	PasswordHash string    `json:"-"`
	RoomNumber   string    `json:"room_number"`
	Location     string    `json:"location"`
	IsActive     bool      `json:"is_active"`
	JoinedAt     time.Time `json:"joined_at"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (t *Tenant) GetID() string { return t.ID.String() }
