package booking

import (
	"context"
	"sort"
	"time"

	domain "github.com/BruksfildServices01/appointment-booking/internal/domain/booking"
	"github.com/BruksfildServices01/appointment-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/appointment-booking/internal/models"
)

type ListAppointmentsByDate struct {
	repo domain.Repository
}

func NewListAppointmentsByDate(repo domain.Repository) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{repo: repo}
}

// Execute returns the day's bookings ordered by slot. Labels sort
// lexicographically in the wrong order ("02:00 PM" before "10:00 AM"), so
// ordering goes through the vocabulary index instead of the column.
func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	date time.Time,
) ([]models.Appointment, error) {

	aps, err := uc.repo.ListAppointmentsForDate(ctx, date)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(aps, func(i, j int) bool {
		return schedule.SlotIndex(aps[i].TimeSlot) < schedule.SlotIndex(aps[j].TimeSlot)
	})

	return aps, nil
}
