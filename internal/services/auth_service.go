package services

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/hostelworks/hostel-service/internal/dtos"
	"github.com/hostelworks/hostel-service/internal/repositories"
	"github.com/hostelworks/hostel-service/internal/utils"
)

const (
	TokenIssuer = "hostel-service"

	RoleTenant = "tenant"
	RoleOwner  = "owner"

	tokenTTL = 24 * time.Hour
)

// AuthService issues HS256 JWTs for the two actor roles. Tenants sign in
// with the opaque passkey issued at creation; owners with their email.
type AuthService struct {
	tenantRepo repositories.TenantRepository
	ownerRepo  repositories.OwnerRepository
	jwtSecret  []byte
}

func NewAuthService(tenantRepo repositories.TenantRepository, ownerRepo repositories.OwnerRepository, jwtSecret []byte) *AuthService {
	return &AuthService{tenantRepo: tenantRepo, ownerRepo: ownerRepo, jwtSecret: jwtSecret}
}

func (s *AuthService) LoginTenant(ctx context.Context, req dtos.TenantLoginRequest) (*dtos.LoginResponse, error) {
	tenant, err := s.tenantRepo.GetByPasskey(ctx, req.Passkey)
	if err != nil {
		return nil, err
	}
	if tenant == nil || !tenant.IsActive {
		return nil, utils.ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(req.Password, tenant.PasswordHash) {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := s.issueToken(tenant.ID.String(), RoleTenant)
	if err != nil {
		return nil, err
	}
	return &dtos.LoginResponse{Token: token, Role: RoleTenant, ID: tenant.ID.String(), Name: tenant.Name}, nil
}

func (s *AuthService) LoginOwner(ctx context.Context, req dtos.OwnerLoginRequest) (*dtos.LoginResponse, error) {
	owner, err := s.ownerRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, utils.ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(req.Password, owner.PasswordHash) {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := s.issueToken(owner.ID.String(), RoleOwner)
	if err != nil {
		return nil, err
	}
	return &dtos.LoginResponse{Token: token, Role: RoleOwner, ID: owner.ID.String(), Name: owner.Name}, nil
}

func (s *AuthService) issueToken(subject, role string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"iss":  TokenIssuer,
		"sub":  subject,
		"role": role,
		"iat":  now.Unix(),
		"exp":  now.Add(tokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
}
