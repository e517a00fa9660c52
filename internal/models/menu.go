package models

import (
	"time"

	"github.com/google/uuid"
)

// MenuDay holds the mess menu for one weekday. One row per weekday, upserted
// by the owner.
type MenuDay struct {
	ID        uuid.UUID `json:"id"`
	Weekday   string    `json:"weekday"` // monday .. sunday
	Breakfast string    `json:"breakfast"`
	Lunch     string    `json:"lunch"`
	Dinner    string    `json:"dinner"`
	UpdatedAt time.Time `json:"updated_at"`
}
