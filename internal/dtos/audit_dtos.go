package dtos

// AuditFailure records a room the auditor could not check or repair. The
// batch keeps going; a partial audit beats none.
type AuditFailure struct {
	RoomNumber string `json:"room_number"`
	Location   string `json:"location"`
	Error      string `json:"error"`
}

// LocationSummary aggregates the post-repair state of one location.
type LocationSummary struct {
	Location       string `json:"location"`
	TotalRooms     int    `json:"total_rooms"`
	TotalCapacity  int    `json:"total_capacity"`
	TotalOccupied  int    `json:"total_occupied"`
	RoomsAvailable int    `json:"rooms_available"`
	OccupancyRate  int    `json:"occupancy_rate"` // round(100 × occupied / capacity)
}

// AuditReport is the result of one consistency pass. RoomsFixed always
// equals InconsistenciesFound minus failed repairs - every detected
// inconsistency is corrected in the same pass.
type AuditReport struct {
	RoomsChecked         int               `json:"rooms_checked"`
	InconsistenciesFound int               `json:"inconsistencies_found"`
	RoomsFixed           int               `json:"rooms_fixed"`
	Failures             []AuditFailure    `json:"failures,omitempty"`
	PerLocationSummary   []LocationSummary `json:"per_location_summary"`
}
