package models

import "time"

type Barber struct {
	ID string `gorm:"primaryKey;size:64" json:"id"`

	Name      string `gorm:"size:100;not null" json:"name"`
	Specialty string `gorm:"size:100" json:"specialty"`
	PhotoURL  string `gorm:"size:255" json:"photo_url"`

	// Only active barbers accept new public bookings. Historical
	// appointments referencing an inactive barber stay valid.
	IsActive bool `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
