package booking

import (
	"context"
	"time"

	"github.com/BruksfildServices01/appointment-booking/internal/audit"
	domain "github.com/BruksfildServices01/appointment-booking/internal/domain/booking"
	"github.com/BruksfildServices01/appointment-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/appointment-booking/internal/httperr"
	"github.com/BruksfildServices01/appointment-booking/internal/infra/cache"
	"github.com/BruksfildServices01/appointment-booking/internal/models"
	"github.com/BruksfildServices01/appointment-booking/internal/validators"
)

type BookAppointmentInput struct {
	Name        string
	PhoneNumber string
	Date        time.Time
	TimeSlot    string
}

type BookAppointment struct {
	repo  domain.Repository
	cache cache.SlotsCache
	audit *audit.Dispatcher
}

func NewBookAppointment(
	repo domain.Repository,
	slotsCache cache.SlotsCache,
	auditDispatcher *audit.Dispatcher,
) *BookAppointment {
	return &BookAppointment{
		repo:  repo,
		cache: slotsCache,
		audit: auditDispatcher,
	}
}

func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookAppointmentInput,
) (*models.Appointment, error) {

	// 1. Slot must exist in the fixed schedule
	if err := schedule.ValidateSlot(in.TimeSlot); err != nil {
		return nil, err
	}

	// 2. Phone format, before touching the store
	if !validators.IsValidPhoneNumber(in.PhoneNumber) {
		return nil, domain.ErrInvalidPhoneNumber
	}

	// 3. Advisory pre-check for a friendlier conflict error; the unique
	// constraint below is the authoritative guard
	exists, err := uc.repo.HasAppointment(ctx, in.Date, in.TimeSlot)
	if err != nil {
		return nil, err
	}
	if exists {
		uc.dispatchConflict(in)
		return nil, domain.ErrSlotAlreadyBooked
	}

	// 4. Insert; a concurrent booking loses here on the constraint
	ap := &models.Appointment{
		Name:        in.Name,
		PhoneNumber: in.PhoneNumber,
		Date:        in.Date,
		TimeSlot:    in.TimeSlot,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		if httperr.IsBusiness(err, domain.ErrSlotAlreadyBooked.Code) {
			uc.dispatchConflict(in)
		}
		return nil, err
	}

	uc.cache.Invalidate(ctx, in.Date)

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_booked",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

func (uc *BookAppointment) dispatchConflict(in BookAppointmentInput) {
	uc.audit.Dispatch(audit.Event{
		Action: "booking_conflict",
		Entity: "appointment",
		Metadata: map[string]any{
			"date":      in.Date.Format("2006-01-02"),
			"time_slot": in.TimeSlot,
		},
	})
}
