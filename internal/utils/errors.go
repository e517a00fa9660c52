// internal/utils/errors.go
package utils

import "errors"

// Domain-level errors used by the service layer to provide
// fine-grained failure reasons. Controllers map these to HTTP codes
// with errors.Is.
var (
	ErrRoomNotFound   = errors.New("room_not_found")
	ErrRoomExists     = errors.New("room_exists")
	ErrRoomFull       = errors.New("room_full")
	ErrRoomOccupied   = errors.New("room_occupied")
	ErrTenantNotFound = errors.New("tenant_not_found")

	ErrInvalidCredentials = errors.New("invalid_credentials")

	ErrLeaveRequestNotFound = errors.New("leave_request_not_found")
	ErrLeaveAlreadyDecided  = errors.New("leave_already_decided")
	ErrComplaintNotFound    = errors.New("complaint_not_found")

	// For concurrency conflicts that survive the retry loop
	ErrRowVersionConflict = errors.New("row_version_conflict")

	ErrNoRowsUpdated = errors.New("no_rows_updated")
)
