package antispam_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studio-sofia/barbershop-booking/internal/clock"
	"github.com/studio-sofia/barbershop-booking/internal/config"
	"github.com/studio-sofia/barbershop-booking/internal/domain/antispam"
	"github.com/studio-sofia/barbershop-booking/internal/infra/repository"
	"github.com/studio-sofia/barbershop-booking/internal/models"
)

var testSpamCfg = config.AntiSpam{
	MaxBookingsPerPeriod:   3,
	PeriodHours:            24,
	MinDaysBetweenBookings: 7,
	FlagIfMoreThan:         2,
	FlagPeriodHours:        2,
	MaxUpcomingBookings:    5,
}

var testNow = time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

func newChecker(t *testing.T) (*antispam.Checker, *repository.MemoryRepository) {
	t.Helper()
	repo := repository.NewMemoryRepository()
	return antispam.NewChecker(repo, testSpamCfg, clock.Fixed(testNow)), repo
}

func seedBooking(t *testing.T, repo *repository.MemoryRepository, name, phone, date, timeOfDay, status string, createdAt time.Time) {
	t.Helper()
	require.NoError(t, repo.CreateAppointment(context.Background(), &models.Appointment{
		CustomerName:    name,
		CustomerPhone:   phone,
		BarberID:        "b1",
		AppointmentDate: date,
		AppointmentTime: timeOfDay,
		Status:          status,
		CreatedAt:       createdAt,
	}))
}

// --------------------------------------------------
// Normalization
// --------------------------------------------------

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"088 123 4567", "0881234567"},
		{"088-123-4567", "0881234567"},
		{"(088) 123 4567", "0881234567"},
		{"+359881234567", "0881234567"},
		{"+359 88 123 4567", "0881234567"},
		{"00359881234567", "0881234567"},
		{"0881234567", "0881234567"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, antispam.NormalizePhone(tt.in))
		})
	}
}

func TestPhonesMatch(t *testing.T) {
	assert.True(t, antispam.PhonesMatch("+359 88 123 4567", "0881234567"))
	assert.True(t, antispam.PhonesMatch("088-123-4567", "088 123 4567"))

	// Containment in either direction counts as a match.
	assert.True(t, antispam.PhonesMatch("881234567", "0881234567"))

	assert.False(t, antispam.PhonesMatch("0881234567", "0887654321"))
	assert.False(t, antispam.PhonesMatch("", "0881234567"))
}

func TestNamesMatch(t *testing.T) {
	assert.True(t, antispam.NamesMatch("  Ivan   Petrov ", "ivan petrov"))
	assert.False(t, antispam.NamesMatch("Ivan Petrov", "Ivan Ivanov"))
	assert.False(t, antispam.NamesMatch("", ""))
}

// --------------------------------------------------
// Decisions
// --------------------------------------------------

func TestCheckCleanCustomer(t *testing.T) {
	checker, _ := newChecker(t)

	res, err := checker.Check(context.Background(), "Ivan Petrov", "0881234567", "2026-09-01", "10:00")
	require.NoError(t, err)

	assert.False(t, res.IsDuplicate)
	assert.False(t, res.IsSuspicious)
	assert.False(t, res.Blocked())
	assert.Empty(t, res.Warnings)
	assert.Empty(t, res.ExistingBookings)
}

func TestCheckExactDuplicate(t *testing.T) {
	checker, repo := newChecker(t)

	// Same customer under a different phone spelling, same slot.
	seedBooking(t, repo, "Ivan Petrov", "+359 88 123 4567", "2026-09-01", "10:00", models.StatusUpcoming, testNow.Add(-48*time.Hour))

	res, err := checker.Check(context.Background(), "Georgi Dimitrov", "0881234567", "2026-09-01", "10:00")
	require.NoError(t, err)

	assert.True(t, res.IsDuplicate)
	assert.Equal(t, antispam.ReasonExactDuplicate, res.Reason)
	assert.False(t, res.Blocked())
	assert.Len(t, res.ExistingBookings, 1)
}

func TestCheckNameMatchAlone(t *testing.T) {
	checker, repo := newChecker(t)

	seedBooking(t, repo, "Ivan Petrov", "0881111111", "2026-09-01", "10:00", models.StatusUpcoming, testNow.Add(-48*time.Hour))

	// Different phone, same normalized name.
	res, err := checker.Check(context.Background(), " ivan  petrov ", "0999999999", "2026-09-01", "10:00")
	require.NoError(t, err)

	assert.True(t, res.IsDuplicate)
	assert.Equal(t, antispam.ReasonExactDuplicate, res.Reason)
}

func TestCheckNearWindow(t *testing.T) {
	checker, repo := newChecker(t)

	seedBooking(t, repo, "Ivan Petrov", "0881234567", "2026-09-03", "10:00", models.StatusUpcoming, testNow.Add(-48*time.Hour))

	// Different slot, 4 days away: inside the 7-day window.
	res, err := checker.Check(context.Background(), "Ivan Petrov", "0881234567", "2026-09-07", "11:00")
	require.NoError(t, err)

	assert.True(t, res.IsDuplicate)
	assert.Equal(t, antispam.ReasonRecentBooking, res.Reason)
	assert.False(t, res.Blocked())
}

func TestCheckOutsideWindowIsClean(t *testing.T) {
	checker, repo := newChecker(t)

	seedBooking(t, repo, "Ivan Petrov", "0881234567", "2026-09-01", "10:00", models.StatusUpcoming, testNow.Add(-48*time.Hour))

	res, err := checker.Check(context.Background(), "Ivan Petrov", "0881234567", "2026-09-20", "11:00")
	require.NoError(t, err)

	assert.False(t, res.IsDuplicate)
	assert.False(t, res.Blocked())
}

func TestCheckRateLimit(t *testing.T) {
	checker, repo := newChecker(t)

	// Three bookings created within the trailing 24h: the hard limit.
	for i := 0; i < 3; i++ {
		seedBooking(t, repo, "Ivan Petrov", "0881234567",
			fmt.Sprintf("2026-10-%02d", 10+10*i), "10:00",
			models.StatusUpcoming, testNow.Add(-time.Duration(i+1)*3*time.Hour))
	}

	res, err := checker.Check(context.Background(), "Ivan Petrov", "0881234567", "2026-12-01", "11:00")
	require.NoError(t, err)

	assert.True(t, res.Blocked())
	assert.Equal(t, antispam.ReasonRateLimit, res.Reason)
	assert.True(t, res.IsSuspicious)
}

func TestCheckRateLimitOverridesNearWindow(t *testing.T) {
	checker, repo := newChecker(t)

	// All three recent bookings also sit inside the near-window: the rate
	// limit is what surfaces.
	for i := 0; i < 3; i++ {
		seedBooking(t, repo, "Ivan Petrov", "0881234567",
			fmt.Sprintf("2026-09-%02d", i+1), "10:00",
			models.StatusUpcoming, testNow.Add(-time.Duration(i+1)*time.Hour))
	}

	res, err := checker.Check(context.Background(), "Ivan Petrov", "0881234567", "2026-09-04", "11:00")
	require.NoError(t, err)

	assert.Equal(t, antispam.ReasonRateLimit, res.Reason)
	assert.True(t, res.Blocked())
}

func TestCheckOldBookingsDoNotRateLimit(t *testing.T) {
	checker, repo := newChecker(t)

	// Same volume, but created days ago: outside the trailing period.
	for i := 0; i < 3; i++ {
		seedBooking(t, repo, "Ivan Petrov", "0881234567",
			fmt.Sprintf("2026-10-%02d", 10+10*i), "10:00",
			models.StatusUpcoming, testNow.Add(-time.Duration(i+2)*24*time.Hour))
	}

	res, err := checker.Check(context.Background(), "Ivan Petrov", "0881234567", "2026-12-01", "11:00")
	require.NoError(t, err)

	assert.False(t, res.Blocked())
}

func TestCheckFlagWindow(t *testing.T) {
	checker, repo := newChecker(t)

	// Two bookings inside the 2h flag window: suspicious, not blocked.
	seedBooking(t, repo, "Ivan Petrov", "0881234567", "2026-10-10", "10:00", models.StatusUpcoming, testNow.Add(-30*time.Minute))
	seedBooking(t, repo, "Ivan Petrov", "0881234567", "2026-10-20", "10:00", models.StatusUpcoming, testNow.Add(-90*time.Minute))

	res, err := checker.Check(context.Background(), "Ivan Petrov", "0881234567", "2026-12-01", "11:00")
	require.NoError(t, err)

	assert.True(t, res.IsSuspicious)
	assert.False(t, res.Blocked())
}

func TestCheckSuspiciousVolume(t *testing.T) {
	checker, repo := newChecker(t)

	// Five upcoming bookings, all created long ago and far apart.
	for i := 0; i < 5; i++ {
		seedBooking(t, repo, "Ivan Petrov", "0881234567",
			fmt.Sprintf("2026-10-%02d", (i+1)*5), "10:00",
			models.StatusUpcoming, testNow.Add(-time.Duration(i+3)*24*time.Hour))
	}

	res, err := checker.Check(context.Background(), "Ivan Petrov", "0881234567", "2027-06-01", "11:00")
	require.NoError(t, err)

	assert.True(t, res.IsSuspicious)
	assert.False(t, res.Blocked())
	assert.NotEmpty(t, res.Warnings)
}

func TestCheckIgnoresTerminalBookings(t *testing.T) {
	checker, repo := newChecker(t)

	seedBooking(t, repo, "Ivan Petrov", "0881234567", "2026-09-01", "10:00", models.StatusCancelled, testNow.Add(-time.Hour))
	seedBooking(t, repo, "Ivan Petrov", "0881234567", "2026-09-01", "11:00", models.StatusCompleted, testNow.Add(-time.Hour))

	// Even re-requesting the cancelled slot is clean.
	res, err := checker.Check(context.Background(), "Ivan Petrov", "0881234567", "2026-09-01", "10:00")
	require.NoError(t, err)

	assert.False(t, res.IsDuplicate)
	assert.False(t, res.IsSuspicious)
	assert.Empty(t, res.ExistingBookings)
}
