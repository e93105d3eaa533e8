package schedule

import (
	"context"

	"github.com/studio-sofia/barbershop-booking/internal/config"
	"github.com/studio-sofia/barbershop-booking/internal/models"
)

type TimeSlot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// Calculator produces the per-slot availability view for one barber on one
// date: the full grid intersected with upcoming bookings and blocked ranges.
type Calculator struct {
	repo  Repository
	hours config.WorkingHours
}

func NewCalculator(repo Repository, hours config.WorkingHours) *Calculator {
	return &Calculator{repo: repo, hours: hours}
}

// AvailableSlots returns one entry per grid slot, in ascending time order.
// A slot is available iff it is neither booked (exact time match against an
// upcoming appointment) nor covered by any blocked range. Booked times that
// do not land on a grid boundary never match a grid slot and are silently
// ignored here; they still occupy the ConflictGuard's exact-match check.
func (calc *Calculator) AvailableSlots(ctx context.Context, barberID, date string) ([]TimeSlot, error) {
	booked, err := calc.repo.ListAppointments(ctx, AppointmentFilter{
		BarberID: barberID,
		Date:     date,
		Status:   models.StatusUpcoming,
	})
	if err != nil {
		return nil, err
	}

	bookedTimes := make(map[string]bool, len(booked))
	for _, ap := range booked {
		bookedTimes[ap.AppointmentTime] = true
	}

	blocked, err := calc.repo.ListBlockedSlots(ctx, barberID, date)
	if err != nil {
		return nil, err
	}

	grid := Grid(calc.hours)
	slots := make([]TimeSlot, 0, len(grid))

	for _, t := range grid {
		available := !bookedTimes[t]
		if available {
			for i := range blocked {
				if blocked[i].Covers(t) {
					available = false
					break
				}
			}
		}
		slots = append(slots, TimeSlot{Time: t, Available: available})
	}

	return slots, nil
}
