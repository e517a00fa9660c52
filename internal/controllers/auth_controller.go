package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/hostelworks/hostel-service/internal/dtos"
	"github.com/hostelworks/hostel-service/internal/services"
	"github.com/hostelworks/hostel-service/internal/utils"
)

var validate = validator.New()

type AuthController struct {
	authSvc *services.AuthService
}

func NewAuthController(authSvc *services.AuthService) *AuthController {
	return &AuthController{authSvc: authSvc}
}

// -----------------------------------------------------------------------------
// POST /api/v1/auth/tenant/login
// -----------------------------------------------------------------------------
func (c *AuthController) TenantLoginHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.TenantLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Passkey and password required", nil, err)
		return
	}

	resp, err := c.authSvc.LoginTenant(r.Context(), req)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidCredentials) {
			utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeInvalidCredentials, "Invalid passkey or password", nil)
			return
		}
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Login failed", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// -----------------------------------------------------------------------------
// POST /api/v1/auth/owner/login
// -----------------------------------------------------------------------------
func (c *AuthController) OwnerLoginHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.OwnerLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Email and password required", nil, err)
		return
	}

	resp, err := c.authSvc.LoginOwner(r.Context(), req)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidCredentials) {
			utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeInvalidCredentials, "Invalid email or password", nil)
			return
		}
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Login failed", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}
