package dtos

// CreateRoomRequest - capacity must be at least 1; zero-capacity rooms are
// rejected at the door rather than producing a permanently "vacant" room
// that can never hold anyone.
type CreateRoomRequest struct {
	RoomNumber string `json:"room_number" validate:"required"`
	Location   string `json:"location" validate:"required"`
	Capacity   int    `json:"capacity" validate:"required,min=1"`
	RentPerBed int64  `json:"rent_per_bed" validate:"min=0"`
}

// UpdateRoomRequest carries admin edits. Nil fields are left untouched.
// Occupancy is deliberately not validated against capacity here - the edit
// endpoint trusts its input and only re-derives vacancy afterward.
type UpdateRoomRequest struct {
	Capacity         *int   `json:"capacity,omitempty" validate:"omitempty,min=1"`
	CurrentOccupancy *int   `json:"current_occupancy,omitempty" validate:"omitempty,min=0"`
	RentPerBed       *int64 `json:"rent_per_bed,omitempty" validate:"omitempty,min=0"`
}
