package models

import "time"

// Booking is one confirmed appointment. The (barber_name, day, time)
// triple is unique at the database level.
type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BarberName string `gorm:"size:100;not null;uniqueIndex:idx_bookings_slot,priority:1" json:"barber_name"`
	Day        string `gorm:"type:date;not null;uniqueIndex:idx_bookings_slot,priority:2" json:"day"`
	Time       string `gorm:"type:time;not null;uniqueIndex:idx_bookings_slot,priority:3" json:"time"`

	ClientName  string `gorm:"size:100;not null" json:"client_name"`
	PhoneNumber string `gorm:"size:30;not null" json:"phone_number"`
	Notes       string `gorm:"size:255" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
}

// SlotLabel trims a stored time ("10:30:00") down to its catalog label.
func SlotLabel(stored string) string {
	if len(stored) >= 5 {
		return stored[:5]
	}
	return stored
}
