package schedule

import (
	"fmt"

	"github.com/studio-sofia/barbershop-booking/internal/config"
)

// Grid produces the ordered sequence of bookable time points for one day,
// from StartHour to EndHour (exclusive) stepping by SlotMinutes, formatted
// as zero-padded HH:MM. Pure function of the working-hours configuration.
func Grid(hours config.WorkingHours) []string {
	var slots []string
	for h := hours.StartHour; h < hours.EndHour; h++ {
		for m := 0; m < 60; m += hours.SlotMinutes {
			slots = append(slots, fmt.Sprintf("%02d:%02d", h, m))
		}
	}
	return slots
}
