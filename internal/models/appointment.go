package models

import "time"

// Appointment is the single persisted booking record. The composite unique
// index on (date, time_slot) is the authoritative double-booking guard.
type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string `gorm:"size:100;not null" json:"name"`
	PhoneNumber string `gorm:"size:15;not null" json:"phone_number"`

	Date     time.Time `gorm:"type:date;not null;uniqueIndex:idx_appointments_date_slot" json:"date"`
	TimeSlot string    `gorm:"size:10;not null;uniqueIndex:idx_appointments_date_slot" json:"time_slot"`

	CreatedAt time.Time `json:"created_at"`
}
