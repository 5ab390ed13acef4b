package booking

import (
	"context"
	"time"

	"github.com/BruksfildServices01/appointment-booking/internal/models"
)

type Repository interface {
	// -------- Availability --------
	ListBookedSlots(
		ctx context.Context,
		date time.Time,
	) ([]string, error)

	// -------- Booking --------
	HasAppointment(
		ctx context.Context,
		date time.Time,
		timeSlot string,
	) (bool, error)

	// CreateAppointment must return ErrSlotAlreadyBooked when the
	// (date, time_slot) unique constraint rejects the insert.
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Listing --------
	ListAppointmentsForDate(
		ctx context.Context,
		date time.Time,
	) ([]models.Appointment, error)
}
