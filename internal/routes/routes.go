package routes

const (
	// Health
	Health = "/health"

	// Auth
	AuthTenantLogin = "/api/v1/auth/tenant/login"
	AuthOwnerLogin  = "/api/v1/auth/owner/login"

	// Rooms (owner)
	RoomsBase   = "/api/v1/rooms"
	RoomsByID   = "/api/v1/rooms/{id}"
	RoomsLookup = "/api/v1/rooms/lookup" // ?room_number=&location=

	// Tenants (owner)
	TenantsBase = "/api/v1/tenants"
	TenantsByID = "/api/v1/tenants/{id}"

	// Leave requests
	LeaveBase    = "/api/v1/leave-requests"
	LeavePending = "/api/v1/leave-requests/pending"
	LeaveApprove = "/api/v1/leave-requests/{id}/approve"
	LeaveReject  = "/api/v1/leave-requests/{id}/reject"

	// Complaints
	ComplaintsBase    = "/api/v1/complaints"
	ComplaintsResolve = "/api/v1/complaints/{id}/resolve"

	// Payments
	PaymentsBase     = "/api/v1/payments"
	PaymentsByTenant = "/api/v1/payments/tenant/{id}"

	// Notice board
	AnnouncementsBase = "/api/v1/announcements"
	AnnouncementsByID = "/api/v1/announcements/{id}"
	MenuBase          = "/api/v1/menu"
)
