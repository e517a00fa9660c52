package dtos

type TenantLoginRequest struct {
	Passkey  string `json:"passkey" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type OwnerLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
	ID    string `json:"id"`
	Name  string `json:"name"`
}
