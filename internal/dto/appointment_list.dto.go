package dto

import "time"

type AppointmentListDTO struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	PhoneNumber string    `json:"phone_number"`
	Date        string    `json:"date"`
	TimeSlot    string    `json:"time_slot"`
	CreatedAt   time.Time `json:"created_at"`
}
