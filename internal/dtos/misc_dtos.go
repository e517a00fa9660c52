package dtos

type HealthResponse struct {
	Status string `json:"status"`
}

type CreatePaymentRequest struct {
	TenantID string `json:"tenant_id" validate:"required,uuid4"`
	Amount   int64  `json:"amount" validate:"required,gt=0"`
	Month    string `json:"month" validate:"required"`
	Method   string `json:"method" validate:"required,oneof=cash upi bank"`
	Note     string `json:"note"`
}

type CreateComplaintRequest struct {
	Subject string `json:"subject" validate:"required"`
	Body    string `json:"body" validate:"required"`
}

type CreateLeaveRequestRequest struct {
	Reason string `json:"reason" validate:"required"`
}

type CreateAnnouncementRequest struct {
	Title string `json:"title" validate:"required"`
	Body  string `json:"body" validate:"required"`
}

type UpsertMenuDayRequest struct {
	Weekday   string `json:"weekday" validate:"required,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	Breakfast string `json:"breakfast" validate:"required"`
	Lunch     string `json:"lunch" validate:"required"`
	Dinner    string `json:"dinner" validate:"required"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
