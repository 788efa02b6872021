package postgresql_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/raminfosys/attendance-backend-go/internal/domain/attendance"
	"github.com/raminfosys/attendance-backend-go/internal/domain/user"
	"github.com/raminfosys/attendance-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCheckIn(t *testing.T, userID string, at time.Time) attendance.Attendance {
	return attendance.Attendance{
		ID:          newID(t),
		UserID:      userID,
		CheckInDate: attendance.Day(at, time.UTC),
		CheckInTime: at,
		CheckInLat:  12.97159900,
		CheckInLong: 77.59456300,
	}
}

func TestAttendanceRepository_CheckInAndOut(t *testing.T) {
	db := setupDB(t)
	repo := postgresql.NewAttendanceRepository(db)
	ctx := context.Background()
	u := createTestUser(t, db, "asha@example.com", user.RoleEmployee)

	at := time.Date(2024, 3, 5, 9, 15, 0, 0, time.UTC)
	created, err := repo.Create(ctx, newCheckIn(t, u.ID, at))
	require.NoError(t, err)
	assert.True(t, created.CheckInTime.Equal(at))
	assert.InDelta(t, 12.971599, created.CheckInLat, 1e-6)
	assert.False(t, created.IsCheckedOut())

	day := attendance.Day(at, time.UTC)
	out := at.Add(8 * time.Hour)
	checkedOut, err := repo.CheckOut(ctx, u.ID, day, out, 12.98, 77.60)
	require.NoError(t, err)
	require.NotNil(t, checkedOut.CheckOutTime)
	assert.True(t, checkedOut.CheckOutTime.Equal(out))
	require.NotNil(t, checkedOut.CheckOutLat)
	assert.InDelta(t, 12.98, *checkedOut.CheckOutLat, 1e-6)

	stored, err := repo.GetByUserAndDate(ctx, u.ID, day)
	require.NoError(t, err)
	assert.Equal(t, created.ID, stored.ID)
	assert.True(t, stored.IsCheckedOut())
	assert.True(t, stored.CheckInDate.Equal(day))
}

func TestAttendanceRepository_OneRowPerDay(t *testing.T) {
	db := setupDB(t)
	repo := postgresql.NewAttendanceRepository(db)
	ctx := context.Background()
	u := createTestUser(t, db, "asha@example.com", user.RoleEmployee)

	at := time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC)
	_, err := repo.Create(ctx, newCheckIn(t, u.ID, at))
	require.NoError(t, err)

	_, err = repo.Create(ctx, newCheckIn(t, u.ID, at.Add(3*time.Hour)))
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)

	_, err = repo.Create(ctx, newCheckIn(t, u.ID, at.Add(24*time.Hour)))
	assert.NoError(t, err)
}

func TestAttendanceRepository_ConcurrentCheckIn(t *testing.T) {
	db := setupDB(t)
	repo := postgresql.NewAttendanceRepository(db)
	u := createTestUser(t, db, "asha@example.com", user.RoleEmployee)
	at := time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC)

	const attempts = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		conflicts int
	)
	for i := 0; i < attempts; i++ {
		rec := newCheckIn(t, u.ID, at)
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Create(context.Background(), rec)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn):
				conflicts++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, attempts-1, conflicts)
}

func TestAttendanceRepository_CheckOutRequiresOpenRow(t *testing.T) {
	db := setupDB(t)
	repo := postgresql.NewAttendanceRepository(db)
	ctx := context.Background()
	u := createTestUser(t, db, "asha@example.com", user.RoleEmployee)

	at := time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC)
	day := attendance.Day(at, time.UTC)

	_, err := repo.CheckOut(ctx, u.ID, day, at, 1, 1)
	assert.ErrorIs(t, err, attendance.ErrNoOpenCheckIn)

	_, err = repo.Create(ctx, newCheckIn(t, u.ID, at))
	require.NoError(t, err)

	_, err = repo.CheckOut(ctx, u.ID, day, at.Add(time.Hour), 1, 1)
	require.NoError(t, err)

	_, err = repo.CheckOut(ctx, u.ID, day, at.Add(2*time.Hour), 1, 1)
	assert.ErrorIs(t, err, attendance.ErrNoOpenCheckIn)
}
