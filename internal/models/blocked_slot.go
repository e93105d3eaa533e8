package models

import "time"

// BlockedSlot is an admin-declared unavailability window for one barber.
// StartTime/EndTime are both nil for a whole-day block; otherwise the block
// covers the half-open interval [StartTime, EndTime). Overlapping blocks are
// permitted, their union is what matters.
type BlockedSlot struct {
	ID string `gorm:"primaryKey;size:64" json:"id"`

	BarberID    string `gorm:"size:64;index" json:"barber_id"`
	BlockedDate string `gorm:"size:10;index" json:"blocked_date"`

	StartTime *string `gorm:"size:5" json:"start_time"`
	EndTime   *string `gorm:"size:5" json:"end_time"`

	Reason string `gorm:"size:255" json:"reason"`

	CreatedAt time.Time `json:"created_at"`
}

// WholeDay reports whether the block covers every slot of its date.
func (b *BlockedSlot) WholeDay() bool {
	return b.StartTime == nil || b.EndTime == nil
}

// Covers reports whether the given grid time falls inside the block.
// Zero-padded HH:MM strings compare correctly as plain strings.
func (b *BlockedSlot) Covers(t string) bool {
	if b.WholeDay() {
		return true
	}
	return t >= *b.StartTime && t < *b.EndTime
}
