package models

import (
	"time"

	"github.com/google/uuid"
)

// Payment is a recorded rent payment. This is a cash-ledger entry, not a
// card-processing object.
type Payment struct {
	ID        uuid.UUID `json:"id"`
	TenantID  uuid.UUID `json:"tenant_id"`
	Amount    int64     `json:"amount"` // minor units
	Month     string    `json:"month"`  // "2026-08"
	Method    string    `json:"method"` // cash, upi, bank
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
