package appointment_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studio-sofia/barbershop-booking/internal/audit"
	"github.com/studio-sofia/barbershop-booking/internal/clock"
	"github.com/studio-sofia/barbershop-booking/internal/config"
	"github.com/studio-sofia/barbershop-booking/internal/domain/antispam"
	"github.com/studio-sofia/barbershop-booking/internal/domain/schedule"
	"github.com/studio-sofia/barbershop-booking/internal/httperr"
	"github.com/studio-sofia/barbershop-booking/internal/infra/repository"
	"github.com/studio-sofia/barbershop-booking/internal/lock"
	"github.com/studio-sofia/barbershop-booking/internal/models"
	ucAppointment "github.com/studio-sofia/barbershop-booking/internal/usecase/appointment"
)

// --------------------------------------------------
// Fixture
// --------------------------------------------------

type nopSink struct{}

func (nopSink) Log(action, entity, entityID string, metadata any) error { return nil }

type fixture struct {
	repo       *repository.MemoryRepository
	create     *ucAppointment.CreateAppointment
	reschedule *ucAppointment.RescheduleAppointment
	status     *ucAppointment.UpdateAppointmentStatus
	delete     *ucAppointment.DeleteAppointment
	slots      *ucAppointment.GetAvailability
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	repo := repository.NewMemoryRepository()
	guard := schedule.NewConflictGuard(repo)
	hours := config.WorkingHours{StartHour: 9, EndHour: 20, SlotMinutes: 30}
	spam := config.AntiSpam{
		MaxBookingsPerPeriod:   3,
		PeriodHours:            24,
		MinDaysBetweenBookings: 7,
		FlagIfMoreThan:         2,
		FlagPeriodHours:        2,
		MaxUpcomingBookings:    5,
	}

	// The store stamps CreatedAt with the real wall clock, so the checker's
	// trailing windows have to run on the same clock.
	checker := antispam.NewChecker(repo, spam, clock.Real())
	locker := lock.NewNoopLocker()
	dispatcher := audit.NewDispatcher(nopSink{})

	require.NoError(t, repo.CreateBarber(context.Background(), &models.Barber{
		ID:       "b1",
		Name:     "Mitko",
		IsActive: true,
	}))
	require.NoError(t, repo.CreateBarber(context.Background(), &models.Barber{
		ID:       "b-retired",
		Name:     "Stoyan",
		IsActive: false,
	}))

	return &fixture{
		repo:       repo,
		create:     ucAppointment.NewCreateAppointment(repo, guard, checker, locker, dispatcher),
		reschedule: ucAppointment.NewRescheduleAppointment(repo, guard, locker, dispatcher),
		status:     ucAppointment.NewUpdateAppointmentStatus(repo, dispatcher),
		delete:     ucAppointment.NewDeleteAppointment(repo, dispatcher),
		slots:      ucAppointment.NewGetAvailability(repo, schedule.NewCalculator(repo, hours)),
	}
}

func validInput() ucAppointment.CreateAppointmentInput {
	return ucAppointment.CreateAppointmentInput{
		ServiceIDs:    []string{"classic-haircut"},
		BarberID:      "b1",
		Date:          "2026-09-01",
		Time:          "10:00",
		CustomerName:  "Ivan Petrov",
		CustomerPhone: "0881234567",
	}
}

// --------------------------------------------------
// Create
// --------------------------------------------------

func TestCreateAppointment(t *testing.T) {
	f := newFixture(t)

	out, err := f.create.Execute(context.Background(), validInput())
	require.NoError(t, err)

	ap := out.Appointment
	assert.NotEmpty(t, ap.ID)
	assert.Equal(t, models.StatusUpcoming, ap.Status)
	assert.Equal(t, "2026-09-01", ap.AppointmentDate)
	assert.Equal(t, "10:00", ap.AppointmentTime)
	assert.False(t, ap.Flagged)
	assert.False(t, out.IsDuplicate)
	assert.Empty(t, out.Warnings)
}

func TestCreateAppointmentSlotConflict(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.create.Execute(ctx, validInput())
	require.NoError(t, err)

	in := validInput()
	in.CustomerName = "Georgi Dimitrov"
	in.CustomerPhone = "0899999999"

	_, err = f.create.Execute(ctx, in)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeSlotConflict), "got %v", err)

	// Same time with another barber is fine.
	in2 := validInput()
	in2.CustomerName = "Petar Iliev"
	in2.CustomerPhone = "0877777777"
	in2.BarberID = "b1"
	in2.Time = "10:30"
	_, err = f.create.Execute(ctx, in2)
	assert.NoError(t, err)
}

func TestCreateAppointmentValidation(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name   string
		mutate func(*ucAppointment.CreateAppointmentInput)
	}{
		{"no services", func(in *ucAppointment.CreateAppointmentInput) { in.ServiceIDs = nil }},
		{"missing name", func(in *ucAppointment.CreateAppointmentInput) { in.CustomerName = "" }},
		{"short name", func(in *ucAppointment.CreateAppointmentInput) { in.CustomerName = "I" }},
		{"missing phone", func(in *ucAppointment.CreateAppointmentInput) { in.CustomerPhone = "" }},
		{"phone with letters", func(in *ucAppointment.CreateAppointmentInput) { in.CustomerPhone = "088abc4567" }},
		{"short phone", func(in *ucAppointment.CreateAppointmentInput) { in.CustomerPhone = "08812" }},
		{"bad date", func(in *ucAppointment.CreateAppointmentInput) { in.Date = "01.09.2026" }},
		{"bad time", func(in *ucAppointment.CreateAppointmentInput) { in.Time = "9:00" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)
			_, err := f.create.Execute(context.Background(), in)
			assert.True(t, httperr.IsBusiness(err, httperr.CodeValidation), "got %v", err)
		})
	}
}

func TestCreateAppointmentBarberChecks(t *testing.T) {
	f := newFixture(t)

	in := validInput()
	in.BarberID = "missing"
	_, err := f.create.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeBarberUnavailable), "got %v", err)

	in = validInput()
	in.BarberID = "b-retired"
	_, err = f.create.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeBarberUnavailable), "got %v", err)
}

func TestCreateAppointmentUnknownService(t *testing.T) {
	f := newFixture(t)

	in := validInput()
	in.ServiceIDs = []string{"classic-haircut", "mullet-restoration"}

	_, err := f.create.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeServiceUnknown), "got %v", err)
}

func TestCreateAppointmentRateLimited(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// Burn through the per-period limit.
	for i, slot := range []string{"10:00", "11:00", "12:00"} {
		in := validInput()
		in.Date = "2026-09-0" + string(rune('1'+i))
		in.Time = slot
		_, err := f.create.Execute(ctx, in)
		require.NoError(t, err, "booking %d", i)
	}

	in := validInput()
	in.Date = "2026-09-20"
	in.Time = "15:00"
	_, err := f.create.Execute(ctx, in)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeRateLimited), "got %v", err)

	// The rejected booking must not be persisted.
	all, err := f.repo.ListAppointments(ctx, schedule.AppointmentFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestCreateAppointmentFlagsNearDuplicate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.create.Execute(ctx, validInput())
	require.NoError(t, err)
	require.False(t, first.Appointment.Flagged)

	// Same customer, different slot two days later: allowed but flagged.
	in := validInput()
	in.Date = "2026-09-03"
	in.Time = "14:00"

	out, err := f.create.Execute(ctx, in)
	require.NoError(t, err)

	assert.True(t, out.IsDuplicate)
	assert.True(t, out.Appointment.Flagged)
	assert.NotEmpty(t, out.Appointment.FlagReason)
	assert.NotEmpty(t, out.Warnings)
}
