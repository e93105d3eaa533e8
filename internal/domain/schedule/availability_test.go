package schedule_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studio-sofia/barbershop-booking/internal/config"
	"github.com/studio-sofia/barbershop-booking/internal/domain/schedule"
	"github.com/studio-sofia/barbershop-booking/internal/infra/repository"
	"github.com/studio-sofia/barbershop-booking/internal/models"
)

var testHours = config.WorkingHours{StartHour: 9, EndHour: 20, SlotMinutes: 30}

func newCalculator(t *testing.T) (*schedule.Calculator, *repository.MemoryRepository) {
	t.Helper()
	repo := repository.NewMemoryRepository()
	return schedule.NewCalculator(repo, testHours), repo
}

func slotMap(slots []schedule.TimeSlot) map[string]bool {
	m := make(map[string]bool, len(slots))
	for _, s := range slots {
		m[s.Time] = s.Available
	}
	return m
}

func TestAvailableSlotsEmptyDay(t *testing.T) {
	calc, _ := newCalculator(t)

	slots, err := calc.AvailableSlots(context.Background(), "b1", "2026-09-01")
	require.NoError(t, err)
	require.Len(t, slots, 22)

	for _, s := range slots {
		assert.True(t, s.Available, "slot %s should be free on an empty day", s.Time)
	}
}

func TestAvailableSlotsBooked(t *testing.T) {
	calc, repo := newCalculator(t)

	require.NoError(t, repo.CreateAppointment(context.Background(), &models.Appointment{
		BarberID:        "b1",
		AppointmentDate: "2026-09-01",
		AppointmentTime: "10:00",
		Status:          models.StatusUpcoming,
	}))

	slots, err := calc.AvailableSlots(context.Background(), "b1", "2026-09-01")
	require.NoError(t, err)

	m := slotMap(slots)
	assert.False(t, m["10:00"])
	assert.True(t, m["09:30"])
	assert.True(t, m["10:30"])
}

func TestAvailableSlotsIgnoresOtherBarberAndTerminalStatuses(t *testing.T) {
	calc, repo := newCalculator(t)
	ctx := context.Background()

	require.NoError(t, repo.CreateAppointment(ctx, &models.Appointment{
		BarberID:        "b2",
		AppointmentDate: "2026-09-01",
		AppointmentTime: "10:00",
		Status:          models.StatusUpcoming,
	}))
	require.NoError(t, repo.CreateAppointment(ctx, &models.Appointment{
		BarberID:        "b1",
		AppointmentDate: "2026-09-01",
		AppointmentTime: "11:00",
		Status:          models.StatusCancelled,
	}))
	require.NoError(t, repo.CreateAppointment(ctx, &models.Appointment{
		BarberID:        "b1",
		AppointmentDate: "2026-09-01",
		AppointmentTime: "11:30",
		Status:          models.StatusCompleted,
	}))

	slots, err := calc.AvailableSlots(ctx, "b1", "2026-09-01")
	require.NoError(t, err)

	m := slotMap(slots)
	assert.True(t, m["10:00"], "other barber's booking must not occupy b1's slot")
	assert.True(t, m["11:00"], "cancelled appointments release their slot")
	assert.True(t, m["11:30"], "completed appointments release their slot")
}

func TestAvailableSlotsWholeDayBlock(t *testing.T) {
	calc, repo := newCalculator(t)

	require.NoError(t, repo.CreateBlockedSlot(context.Background(), &models.BlockedSlot{
		BarberID:    "b1",
		BlockedDate: "2026-09-01",
	}))

	slots, err := calc.AvailableSlots(context.Background(), "b1", "2026-09-01")
	require.NoError(t, err)

	for _, s := range slots {
		assert.False(t, s.Available, "slot %s should be blocked", s.Time)
	}
}

func TestAvailableSlotsRangeBlockIsHalfOpen(t *testing.T) {
	calc, repo := newCalculator(t)

	start, end := "12:00", "13:00"
	require.NoError(t, repo.CreateBlockedSlot(context.Background(), &models.BlockedSlot{
		BarberID:    "b1",
		BlockedDate: "2026-09-01",
		StartTime:   &start,
		EndTime:     &end,
	}))

	slots, err := calc.AvailableSlots(context.Background(), "b1", "2026-09-01")
	require.NoError(t, err)

	m := slotMap(slots)
	assert.True(t, m["11:30"])
	assert.False(t, m["12:00"])
	assert.False(t, m["12:30"])
	assert.True(t, m["13:00"], "end of the blocked range is exclusive")
}

func TestAvailableSlotsOffGridBookingIgnored(t *testing.T) {
	calc, repo := newCalculator(t)

	// Legacy booking at 10:15 never matches a grid slot; the grid view
	// simply does not show it.
	require.NoError(t, repo.CreateAppointment(context.Background(), &models.Appointment{
		BarberID:        "b1",
		AppointmentDate: "2026-09-01",
		AppointmentTime: "10:15",
		Status:          models.StatusUpcoming,
	}))

	slots, err := calc.AvailableSlots(context.Background(), "b1", "2026-09-01")
	require.NoError(t, err)

	m := slotMap(slots)
	assert.True(t, m["10:00"])
	assert.True(t, m["10:30"])
	_, onGrid := m["10:15"]
	assert.False(t, onGrid)
}

func TestAvailableSlotsIdempotent(t *testing.T) {
	calc, repo := newCalculator(t)
	ctx := context.Background()

	require.NoError(t, repo.CreateAppointment(ctx, &models.Appointment{
		BarberID:        "b1",
		AppointmentDate: "2026-09-01",
		AppointmentTime: "14:00",
		Status:          models.StatusUpcoming,
	}))

	first, err := calc.AvailableSlots(ctx, "b1", "2026-09-01")
	require.NoError(t, err)
	second, err := calc.AvailableSlots(ctx, "b1", "2026-09-01")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
