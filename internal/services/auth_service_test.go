package services

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/hostelworks/hostel-service/internal/dtos"
	"github.com/hostelworks/hostel-service/internal/models"
	"github.com/hostelworks/hostel-service/internal/utils"
)

type fakeOwnerRepo struct {
	owners map[string]*models.Owner // keyed by email
}

func (f *fakeOwnerRepo) Create(_ context.Context, o *models.Owner) error {
	f.owners[o.Email] = o
	return nil
}

func (f *fakeOwnerRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Owner, error) {
	for _, o := range f.owners {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, nil
}

func (f *fakeOwnerRepo) GetByEmail(_ context.Context, email string) (*models.Owner, error) {
	return f.owners[email], nil
}

func TestTenantLoginRoundTrip(t *testing.T) {
	roomRepo := newFakeRoomRepo()
	tenantRepo := newFakeTenantRepo()
	occupancySvc := NewOccupancyService(roomRepo, tenantRepo)
	secret := []byte("test-secret")
	authSvc := NewAuthService(tenantRepo, &fakeOwnerRepo{owners: map[string]*models.Owner{}}, secret)

	mustCreateRoom(t, occupancySvc, "101", "A", 2)
	created := mustAttach(t, occupancySvc, "Asha", "101", "A")

	resp, err := authSvc.LoginTenant(context.Background(), dtos.TenantLoginRequest{
		Passkey:  created.Tenant.Passkey,
		Password: "hunter2hunter2",
	})
	require.NoError(t, err)
	require.Equal(t, RoleTenant, resp.Role)

	tok, err := jwt.Parse(resp.Token, func(*jwt.Token) (any, error) { return secret, nil })
	require.NoError(t, err)
	claims := tok.Claims.(jwt.MapClaims)
	require.Equal(t, created.Tenant.ID.String(), claims["sub"])
	require.Equal(t, RoleTenant, claims["role"])
	require.Equal(t, TokenIssuer, claims["iss"])
}

func TestTenantLoginRejections(t *testing.T) {
	roomRepo := newFakeRoomRepo()
	tenantRepo := newFakeTenantRepo()
	occupancySvc := NewOccupancyService(roomRepo, tenantRepo)
	authSvc := NewAuthService(tenantRepo, &fakeOwnerRepo{owners: map[string]*models.Owner{}}, []byte("s"))

	mustCreateRoom(t, occupancySvc, "101", "A", 2)
	created := mustAttach(t, occupancySvc, "Asha", "101", "A")

	_, err := authSvc.LoginTenant(context.Background(), dtos.TenantLoginRequest{
		Passkey: created.Tenant.Passkey, Password: "wrong-password",
	})
	require.ErrorIs(t, err, utils.ErrInvalidCredentials)

	_, err = authSvc.LoginTenant(context.Background(), dtos.TenantLoginRequest{
		Passkey: "nosuchkey", Password: "hunter2hunter2",
	})
	require.ErrorIs(t, err, utils.ErrInvalidCredentials)

	// deactivated tenants can no longer sign in
	require.NoError(t, occupancySvc.DetachTenant(context.Background(), created.Tenant.ID, DetachSoft))
	_, err = authSvc.LoginTenant(context.Background(), dtos.TenantLoginRequest{
		Passkey: created.Tenant.Passkey, Password: "hunter2hunter2",
	})
	require.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestOwnerLogin(t *testing.T) {
	hash, err := utils.HashPassword("owner-password")
	require.NoError(t, err)
	ownerRepo := &fakeOwnerRepo{owners: map[string]*models.Owner{
		"owner@example.com": {ID: uuid.New(), Name: "Owner", Email: "owner@example.com", PasswordHash: hash},
	}}
	authSvc := NewAuthService(newFakeTenantRepo(), ownerRepo, []byte("s"))

	resp, err := authSvc.LoginOwner(context.Background(), dtos.OwnerLoginRequest{
		Email: "owner@example.com", Password: "owner-password",
	})
	require.NoError(t, err)
	require.Equal(t, RoleOwner, resp.Role)

	_, err = authSvc.LoginOwner(context.Background(), dtos.OwnerLoginRequest{
		Email: "owner@example.com", Password: "nope",
	})
	require.ErrorIs(t, err, utils.ErrInvalidCredentials)
}
