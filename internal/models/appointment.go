package models

import (
	"database/sql/driver"
	"errors"
	"strings"
	"time"
)

// Appointment statuses. Only "upcoming" occupies a slot; the other two are
// historical and never block new bookings.
const (
	StatusUpcoming  = "upcoming"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// ServiceIDList is an ordered list of service identifiers. It is stored as a
// single comma-joined text column (the encoding the legacy data uses) but
// exposed as a proper slice. Order is insertion order and carries no meaning
// for conflict or availability purposes.
type ServiceIDList []string

func (s ServiceIDList) Value() (driver.Value, error) {
	return strings.Join(s, ","), nil
}

func (s *ServiceIDList) Scan(value any) error {
	var raw string
	switch v := value.(type) {
	case nil:
		*s = nil
		return nil
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return errors.New("service id list: unsupported column type")
	}

	parts := strings.Split(raw, ",")
	out := make(ServiceIDList, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	*s = out
	return nil
}

type Appointment struct {
	ID string `gorm:"primaryKey;size:64" json:"id"`

	ServiceIDs ServiceIDList `gorm:"type:text" json:"service_ids"`

	BarberID string `gorm:"size:64;index" json:"barber_id"`

	CustomerName  string `gorm:"size:100" json:"customer_name"`
	CustomerPhone string `gorm:"size:30" json:"customer_phone"`
	CustomerEmail string `gorm:"size:100" json:"customer_email"`

	// Wall-clock date and time, no timezone: "YYYY-MM-DD" and "HH:MM".
	AppointmentDate string `gorm:"size:10;index" json:"appointment_date"`
	AppointmentTime string `gorm:"size:5" json:"appointment_time"`

	Status string `gorm:"size:20;default:'upcoming'" json:"status"`

	Flagged    bool   `json:"is_flagged"`
	FlagReason string `gorm:"size:500" json:"flag_reason,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Occupying reports whether the appointment holds its slot.
func (a *Appointment) Occupying() bool {
	return a.Status == StatusUpcoming
}
