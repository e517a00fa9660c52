package models

import (
	"time"

	"github.com/google/uuid"
)

// Owner is the hostel operator account. Owners authenticate by email.
type Owner struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
