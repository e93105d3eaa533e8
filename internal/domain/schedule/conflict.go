package schedule

import "context"

// ConflictGuard enforces slot exclusivity: for a fixed barber and (date,
// time) pair at most one upcoming appointment may exist. The check is an
// exact string match on whatever time is supplied, independent of the grid,
// so legacy off-grid times still occupy their slot.
type ConflictGuard struct {
	repo Repository
}

func NewConflictGuard(repo Repository) *ConflictGuard {
	return &ConflictGuard{repo: repo}
}

// HasConflict reports whether (barberID, date, timeOfDay) is already
// occupied by an upcoming appointment other than excludeID. Pass excludeID
// during reschedule so an appointment does not conflict with itself.
func (g *ConflictGuard) HasConflict(ctx context.Context, barberID, date, timeOfDay, excludeID string) (bool, error) {
	ap, err := g.repo.FindConflict(ctx, barberID, date, timeOfDay, excludeID)
	if err != nil {
		return false, err
	}
	return ap != nil, nil
}
