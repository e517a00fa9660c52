package models

import (
	"time"

	"github.com/google/uuid"
)

// Announcement is an owner-authored notice shown to all tenants.
type Announcement struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}
