package attendance

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/raminfosys/attendance-backend-go/internal/domain/attendance"
	"github.com/raminfosys/attendance-backend-go/internal/pkg/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dayKey struct {
	userID string
	day    time.Time
}

// fakeAttendanceRepository mimics the (user_id, check_in_date) unique constraint.
type fakeAttendanceRepository struct {
	mu      sync.Mutex
	rows    map[dayKey]attendance.Attendance
	creates int
	err     error
}

func newFakeAttendanceRepository() *fakeAttendanceRepository {
	return &fakeAttendanceRepository{rows: make(map[dayKey]attendance.Attendance)}
}

func (f *fakeAttendanceRepository) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return attendance.Attendance{}, f.err
	}
	f.creates++
	key := dayKey{a.UserID, a.CheckInDate}
	if _, exists := f.rows[key]; exists {
		return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
	}
	a.CreatedAt = a.CheckInTime
	f.rows[key] = a
	return a, nil
}

func (f *fakeAttendanceRepository) CheckOut(ctx context.Context, userID string, day time.Time, at time.Time, lat, long float64) (attendance.Attendance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := dayKey{userID, day}
	row, exists := f.rows[key]
	if !exists || row.CheckOutTime != nil {
		return attendance.Attendance{}, attendance.ErrNoOpenCheckIn
	}
	row.CheckOutTime, row.CheckOutLat, row.CheckOutLong = &at, &lat, &long
	f.rows[key] = row
	return row, nil
}

func (f *fakeAttendanceRepository) GetByUserAndDate(ctx context.Context, userID string, day time.Time) (attendance.Attendance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return attendance.Attendance{}, f.err
	}
	row, exists := f.rows[dayKey{userID, day}]
	if !exists {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	return row, nil
}

type clock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *clock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = t
}

var ist = time.FixedZone("IST", 5*3600+1800)

func newTestService(start time.Time) (*AttendanceServiceImpl, *fakeAttendanceRepository, *clock) {
	repo := newFakeAttendanceRepository()
	c := &clock{t: start}
	svc := NewAttendanceService(repo, metrics.Noop{}, ist).(*AttendanceServiceImpl)
	svc.now = c.Now
	return svc, repo, c
}

func loc(lat, long float64) attendance.LocationRequest {
	return attendance.LocationRequest{Latitude: &lat, Longitude: &long}
}

const userA = "0192f1a4-0000-7000-8000-00000000000a"

// Test CheckIn - Success, then the second one the same day is rejected
func TestCheckIn_OncePerDay(t *testing.T) {
	svc, _, _ := newTestService(time.Date(2024, 3, 4, 9, 0, 0, 0, ist))
	ctx := context.Background()

	created, err := svc.CheckIn(ctx, userA, loc(12.9716, 77.5946))
	require.NoError(t, err)
	assert.Equal(t, userA, created.UserID)
	assert.Equal(t, time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), created.CheckInDate)
	assert.Equal(t, 12.9716, created.CheckInLat)
	assert.Equal(t, 77.5946, created.CheckInLong)
	assert.Nil(t, created.CheckOutTime)
	assert.NotEmpty(t, created.ID)

	_, err = svc.CheckIn(ctx, userA, loc(12.9716, 77.5946))
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

// Test CheckIn - Missing coordinates never reach storage
func TestCheckIn_MissingLocation(t *testing.T) {
	svc, repo, _ := newTestService(time.Date(2024, 3, 4, 9, 0, 0, 0, ist))
	lat := 12.9716

	tests := []attendance.LocationRequest{
		{},
		{Latitude: &lat},
		{Longitude: &lat},
	}
	for _, req := range tests {
		_, err := svc.CheckIn(context.Background(), userA, req)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "latitude and longitude are required")
	}
	assert.Equal(t, 0, repo.creates)
}

// Test CheckIn - Zero coordinates are valid values
func TestCheckIn_ZeroCoordinates(t *testing.T) {
	svc, _, _ := newTestService(time.Date(2024, 3, 4, 9, 0, 0, 0, ist))

	created, err := svc.CheckIn(context.Background(), userA, loc(0, 0))
	require.NoError(t, err)
	assert.Equal(t, 0.0, created.CheckInLat)
}

// Test CheckIn - Concurrent requests produce exactly one row
func TestCheckIn_Concurrent(t *testing.T) {
	svc, repo, _ := newTestService(time.Date(2024, 3, 4, 9, 0, 0, 0, ist))

	const n = 10
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.CheckIn(context.Background(), userA, loc(1, 2))
		}(i)
	}
	wg.Wait()

	var ok, conflicts int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, attendance.ErrAlreadyCheckedIn):
			conflicts++
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, n-1, conflicts)
	assert.Len(t, repo.rows, 1)
}

// Test CheckIn - A new local day allows a new check-in
func TestCheckIn_NextDay(t *testing.T) {
	svc, _, c := newTestService(time.Date(2024, 3, 4, 23, 50, 0, 0, ist))

	_, err := svc.CheckIn(context.Background(), userA, loc(1, 2))
	require.NoError(t, err)

	c.Set(time.Date(2024, 3, 5, 0, 10, 0, 0, ist))
	created, err := svc.CheckIn(context.Background(), userA, loc(1, 2))
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), created.CheckInDate)
}

// Test CheckOut - Success, then no open check-in remains
func TestCheckOut_Success(t *testing.T) {
	svc, _, c := newTestService(time.Date(2024, 3, 4, 9, 0, 0, 0, ist))
	ctx := context.Background()

	_, err := svc.CheckIn(ctx, userA, loc(12.9716, 77.5946))
	require.NoError(t, err)

	c.Set(time.Date(2024, 3, 4, 18, 0, 0, 0, ist))
	updated, err := svc.CheckOut(ctx, userA, loc(12.9721, 77.5933))
	require.NoError(t, err)
	require.NotNil(t, updated.CheckOutTime)
	assert.True(t, updated.CheckOutTime.Equal(time.Date(2024, 3, 4, 18, 0, 0, 0, ist)))
	assert.Equal(t, 12.9721, *updated.CheckOutLat)
	assert.Equal(t, 77.5933, *updated.CheckOutLong)

	_, err = svc.CheckOut(ctx, userA, loc(12.9721, 77.5933))
	assert.ErrorIs(t, err, attendance.ErrNoOpenCheckIn)
}

// Test CheckOut - Without a check-in today
func TestCheckOut_NoCheckIn(t *testing.T) {
	svc, _, _ := newTestService(time.Date(2024, 3, 4, 9, 0, 0, 0, ist))

	_, err := svc.CheckOut(context.Background(), userA, loc(1, 2))
	assert.ErrorIs(t, err, attendance.ErrNoOpenCheckIn)
}

// Test CheckOut - Yesterday's open row is not closed today
func TestCheckOut_AfterMidnight(t *testing.T) {
	svc, _, c := newTestService(time.Date(2024, 3, 4, 22, 0, 0, 0, ist))

	_, err := svc.CheckIn(context.Background(), userA, loc(1, 2))
	require.NoError(t, err)

	c.Set(time.Date(2024, 3, 5, 1, 0, 0, 0, ist))
	_, err = svc.CheckOut(context.Background(), userA, loc(1, 2))
	assert.ErrorIs(t, err, attendance.ErrNoOpenCheckIn)
}

// Test CheckOut - Missing coordinates
func TestCheckOut_MissingLocation(t *testing.T) {
	svc, _, _ := newTestService(time.Date(2024, 3, 4, 9, 0, 0, 0, ist))

	_, err := svc.CheckOut(context.Background(), userA, attendance.LocationRequest{})
	require.Error(t, err)
	assert.NotErrorIs(t, err, attendance.ErrNoOpenCheckIn)
}

// Test GetStatus - Follows the day's state machine
func TestGetStatus_Transitions(t *testing.T) {
	svc, _, c := newTestService(time.Date(2024, 3, 4, 9, 0, 0, 0, ist))
	ctx := context.Background()

	status, err := svc.GetStatus(ctx, userA)
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusResponse{}, status)

	_, err = svc.CheckIn(ctx, userA, loc(12.9716, 77.5946))
	require.NoError(t, err)

	status, err = svc.GetStatus(ctx, userA)
	require.NoError(t, err)
	assert.True(t, status.CheckedIn)
	assert.False(t, status.CheckedOut)
	require.NotNil(t, status.CheckInTime)
	assert.Nil(t, status.CheckOutTime)
	assert.Equal(t, 12.9716, *status.CheckInLatitude)

	c.Set(time.Date(2024, 3, 4, 18, 0, 0, 0, ist))
	_, err = svc.CheckOut(ctx, userA, loc(12.9721, 77.5933))
	require.NoError(t, err)

	status, err = svc.GetStatus(ctx, userA)
	require.NoError(t, err)
	assert.True(t, status.CheckedIn)
	assert.True(t, status.CheckedOut)
	require.NotNil(t, status.CheckOutTime)
	assert.Equal(t, 77.5933, *status.CheckOutLongitude)

	// Next day starts fresh
	c.Set(time.Date(2024, 3, 5, 8, 0, 0, 0, ist))
	status, err = svc.GetStatus(ctx, userA)
	require.NoError(t, err)
	assert.False(t, status.CheckedIn)
	assert.False(t, status.CheckedOut)
}

// Test GetStatus - Storage failure is surfaced
func TestGetStatus_RepositoryError(t *testing.T) {
	svc, repo, _ := newTestService(time.Date(2024, 3, 4, 9, 0, 0, 0, ist))
	repo.err = errors.New("connection reset")

	_, err := svc.GetStatus(context.Background(), userA)
	assert.Error(t, err)
}
