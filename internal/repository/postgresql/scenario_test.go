package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/raminfosys/attendance-backend-go/internal/domain/attendance"
	"github.com/raminfosys/attendance-backend-go/internal/domain/user"
	"github.com/raminfosys/attendance-backend-go/internal/pkg/metrics"
	"github.com/raminfosys/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/raminfosys/attendance-backend-go/internal/service/attendance"
	dashboardService "github.com/raminfosys/attendance-backend-go/internal/service/dashboard"
	userService "github.com/raminfosys/attendance-backend-go/internal/service/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func location(lat, long float64) attendance.LocationRequest {
	return attendance.LocationRequest{Latitude: &lat, Longitude: &long}
}

func TestScenario_CheckInCheckOutSummary(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	ledger := attendanceService.NewAttendanceService(postgresql.NewAttendanceRepository(db), metrics.Noop{}, time.UTC)
	reports := dashboardService.NewDashboardService(postgresql.NewDashboardRepository(db), metrics.Noop{}, time.UTC)
	a := createTestUser(t, db, "a@example.com", user.RoleEmployee)

	_, err := ledger.CheckIn(ctx, a.ID, location(10.0, 20.0))
	require.NoError(t, err)

	status, err := ledger.GetStatus(ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, status.CheckedIn)
	assert.False(t, status.CheckedOut)

	_, err = ledger.CheckIn(ctx, a.ID, location(10.0, 20.0))
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)

	_, err = ledger.CheckOut(ctx, a.ID, location(10.1, 20.1))
	require.NoError(t, err)

	status, err = ledger.GetStatus(ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, status.CheckedIn)
	assert.True(t, status.CheckedOut)
	require.NotNil(t, status.CheckOutLatitude)
	assert.InDelta(t, 10.1, *status.CheckOutLatitude, 1e-6)
	assert.InDelta(t, 20.1, *status.CheckOutLongitude, 1e-6)

	_, err = ledger.CheckOut(ctx, a.ID, location(10.1, 20.1))
	assert.ErrorIs(t, err, attendance.ErrNoOpenCheckIn)

	summary, err := reports.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), summary.TotalEmployees)
	assert.Equal(t, int64(1), summary.CheckedInToday)
	assert.Equal(t, int64(1), summary.CheckedOutToday)
	assert.Equal(t, int64(0), summary.StillPresent)
}

func TestScenario_DuplicateEmailLeavesExistingUser(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	repo := postgresql.NewUserRepository(db)
	svc := userService.NewUserService(db, repo)

	existing := createTestUser(t, db, "taken@example.com", user.RoleEmployee)

	_, err := svc.CreateUser(ctx, user.CreateUserRequest{
		Name: "Someone Else", Email: "taken@example.com", Password: "secret", Role: "hr",
	})
	assert.ErrorIs(t, err, user.ErrUserEmailExists)

	stored, err := repo.GetByEmail(ctx, "taken@example.com")
	require.NoError(t, err)
	assert.Equal(t, existing.ID, stored.ID)
	assert.Equal(t, existing.Name, stored.Name)
	assert.Equal(t, user.RoleEmployee, stored.Role)
	assert.Equal(t, existing.PasswordHash, stored.PasswordHash)
}

func TestScenario_UpdateUserPersistsInsideTransaction(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	repo := postgresql.NewUserRepository(db)
	svc := userService.NewUserService(db, repo)

	target := createTestUser(t, db, "target@example.com", user.RoleEmployee)
	other := createTestUser(t, db, "other@example.com", user.RoleEmployee)

	resp, err := svc.UpdateUser(ctx, user.UpdateUserRequest{
		ID: target.ID, Name: "Renamed", Email: "renamed@example.com", Role: "hr",
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", resp.Name)

	stored, err := repo.GetByID(ctx, target.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", stored.Name)
	assert.Equal(t, "renamed@example.com", stored.Email)
	assert.Equal(t, user.RoleHR, stored.Role)
	assert.Equal(t, target.PasswordHash, stored.PasswordHash)

	_, err = svc.UpdateUser(ctx, user.UpdateUserRequest{
		ID: target.ID, Name: "Clash", Email: other.Email, Role: "hr",
	})
	assert.ErrorIs(t, err, user.ErrEmailInUse)

	stored, err = repo.GetByID(ctx, target.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", stored.Name)
	assert.Equal(t, "renamed@example.com", stored.Email)
}
