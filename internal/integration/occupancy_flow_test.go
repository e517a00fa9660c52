//go:build dev_test && integration

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/hostelworks/hostel-service/internal/dtos"
	"github.com/hostelworks/hostel-service/internal/models"
	"github.com/hostelworks/hostel-service/internal/routes"
	"github.com/hostelworks/hostel-service/internal/services"
	"github.com/hostelworks/hostel-service/internal/utils"
)

const ownerPassword = "integration-owner-pw"

func createTestOwner(t *testing.T, ctx context.Context) *models.Owner {
	hash, err := utils.HashPassword(ownerPassword)
	require.NoError(t, err)

	owner := &models.Owner{
		ID:           uuid.New(),
		Name:         "Integration Owner",
		Email:        fmt.Sprintf("owner-%s@hostelworks.dev", uuid.NewString()[:8]),
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	require.NoError(t, ownerRepo.Create(ctx, owner))
	return owner
}

func doJSON(t *testing.T, method, path, token string, body, out any) *http.Response {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, baseURL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func ownerToken(t *testing.T, ctx context.Context) string {
	owner := createTestOwner(t, ctx)

	var login dtos.LoginResponse
	resp := doJSON(t, http.MethodPost, routes.AuthOwnerLogin, "", dtos.OwnerLoginRequest{
		Email:    owner.Email,
		Password: ownerPassword,
	}, &login)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, services.RoleOwner, login.Role)
	require.NotEmpty(t, login.Token)
	return login.Token
}

// Full lifecycle over the wire: room creation, attach-to-capacity with a
// rejected overflow, tenant login with the issued passkey, leave approval
// freeing a bed, and a fresh attach into the freed bed.
func TestOccupancyFlow(t *testing.T) {
	ctx := context.Background()
	token := ownerToken(t, ctx)

	roomNumber := "it-" + uuid.NewString()[:8]
	location := "integration-wing"

	var room models.Room
	resp := doJSON(t, http.MethodPost, routes.RoomsBase, token, dtos.CreateRoomRequest{
		RoomNumber: roomNumber,
		Location:   location,
		Capacity:   2,
		RentPerBed: 100000,
	}, &room)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Equal(t, 0, room.CurrentOccupancy)
	require.True(t, room.IsVacant)

	attach := func(name string) (*dtos.CreateTenantResponse, int) {
		var out dtos.CreateTenantResponse
		resp := doJSON(t, http.MethodPost, routes.TenantsBase, token, dtos.CreateTenantRequest{
			Name:       name,
			Phone:      "+15550001234",
			Password:   "tenant-pw-123",
			RoomNumber: roomNumber,
			Location:   location,
		}, &out)
		return &out, resp.StatusCode
	}

	first, code := attach("Tenant One")
	require.Equal(t, http.StatusCreated, code)
	require.NotEmpty(t, first.Tenant.Passkey)
	require.Equal(t, 1, first.Room.CurrentOccupancy)

	second, code := attach("Tenant Two")
	require.Equal(t, http.StatusCreated, code)
	require.Equal(t, 2, second.Room.CurrentOccupancy)
	require.False(t, second.Room.IsVacant)

	_, code = attach("Tenant Overflow")
	require.Equal(t, http.StatusConflict, code)

	got, err := roomRepo.GetByNumberAndLocation(ctx, roomNumber, location)
	require.NoError(t, err)
	require.Equal(t, 2, got.CurrentOccupancy)

	// Tenant logs in with the one-time-issued passkey.
	var tenantLogin dtos.LoginResponse
	resp = doJSON(t, http.MethodPost, routes.AuthTenantLogin, "", dtos.TenantLoginRequest{
		Passkey:  first.Tenant.Passkey,
		Password: "tenant-pw-123",
	}, &tenantLogin)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, services.RoleTenant, tenantLogin.Role)

	// Tenant files a leave request; owner approves it, which frees the bed.
	var lr models.LeaveRequest
	resp = doJSON(t, http.MethodPost, routes.LeaveBase, tenantLogin.Token, dtos.CreateLeaveRequestRequest{
		Reason: "moving out for work",
	}, &lr)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	approvePath := routes.LeaveBase + "/" + lr.ID.String() + "/approve"
	resp = doJSON(t, http.MethodPost, approvePath, token, nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	got, err = roomRepo.GetByNumberAndLocation(ctx, roomNumber, location)
	require.NoError(t, err)
	require.Equal(t, 1, got.CurrentOccupancy)
	require.True(t, got.IsVacant)

	// The departed tenant's record survives for history but stays inactive.
	departed, err := tenantRepo.GetByID(ctx, first.Tenant.ID)
	require.NoError(t, err)
	require.NotNil(t, departed)
	require.False(t, departed.IsActive)

	// The freed bed is attachable again.
	_, code = attach("Tenant Three")
	require.Equal(t, http.StatusCreated, code)
}

// The tenant hard-delete path decrements exactly once even when the tenant
// was already deactivated by a leave approval.
func TestDetachAfterLeaveDoesNotDoubleFree(t *testing.T) {
	ctx := context.Background()
	token := ownerToken(t, ctx)

	roomNumber := "it-" + uuid.NewString()[:8]
	location := "integration-wing"

	var room models.Room
	resp := doJSON(t, http.MethodPost, routes.RoomsBase, token, dtos.CreateRoomRequest{
		RoomNumber: roomNumber,
		Location:   location,
		Capacity:   1,
		RentPerBed: 100000,
	}, &room)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var attached dtos.CreateTenantResponse
	resp = doJSON(t, http.MethodPost, routes.TenantsBase, token, dtos.CreateTenantRequest{
		Name:       "Short Stay",
		Phone:      "+15550005678",
		Password:   "tenant-pw-123",
		RoomNumber: roomNumber,
		Location:   location,
	}, &attached)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var tenantLogin dtos.LoginResponse
	resp = doJSON(t, http.MethodPost, routes.AuthTenantLogin, "", dtos.TenantLoginRequest{
		Passkey:  attached.Tenant.Passkey,
		Password: "tenant-pw-123",
	}, &tenantLogin)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var lr models.LeaveRequest
	resp = doJSON(t, http.MethodPost, routes.LeaveBase, tenantLogin.Token, dtos.CreateLeaveRequestRequest{
		Reason: "end of term",
	}, &lr)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, http.MethodPost, routes.LeaveBase+"/"+lr.ID.String()+"/approve", token, nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Hard delete after the soft detach: record goes away, occupancy stays 0.
	resp = doJSON(t, http.MethodDelete, routes.TenantsBase+"/"+attached.Tenant.ID.String(), token, nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	got, err := roomRepo.GetByNumberAndLocation(ctx, roomNumber, location)
	require.NoError(t, err)
	require.Equal(t, 0, got.CurrentOccupancy)
	require.True(t, got.IsVacant)
}
