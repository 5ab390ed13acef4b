package booking

import (
	"context"
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/BruksfildServices01/appointment-booking/internal/audit"
	domain "github.com/BruksfildServices01/appointment-booking/internal/domain/booking"
	"github.com/BruksfildServices01/appointment-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/appointment-booking/internal/httperr"
	"github.com/BruksfildServices01/appointment-booking/internal/infra/cache"
	"github.com/BruksfildServices01/appointment-booking/internal/models"
)

// ------------------------------------------------------
// in-memory repository
// ------------------------------------------------------

type fakeRepo struct {
	appointments map[string]models.Appointment
	nextID       uint

	// forces the insert itself to report a duplicate, simulating a
	// concurrent booking that won the race after the pre-check
	conflictOnCreate bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		appointments: map[string]models.Appointment{},
		nextID:       1,
	}
}

func key(date time.Time, slot string) string {
	return fmt.Sprintf("%s|%s", date.Format("2006-01-02"), slot)
}

func (r *fakeRepo) ListBookedSlots(_ context.Context, date time.Time) ([]string, error) {
	var slots []string
	for _, ap := range r.appointments {
		if ap.Date.Format("2006-01-02") == date.Format("2006-01-02") {
			slots = append(slots, ap.TimeSlot)
		}
	}
	return slots, nil
}

func (r *fakeRepo) HasAppointment(_ context.Context, date time.Time, slot string) (bool, error) {
	_, ok := r.appointments[key(date, slot)]
	return ok, nil
}

func (r *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	if r.conflictOnCreate {
		return domain.ErrSlotAlreadyBooked
	}
	k := key(ap.Date, ap.TimeSlot)
	if _, ok := r.appointments[k]; ok {
		return domain.ErrSlotAlreadyBooked
	}
	ap.ID = r.nextID
	ap.CreatedAt = time.Now()
	r.nextID++
	r.appointments[k] = *ap
	return nil
}

func (r *fakeRepo) ListAppointmentsForDate(_ context.Context, date time.Time) ([]models.Appointment, error) {
	var aps []models.Appointment
	for _, ap := range r.appointments {
		if ap.Date.Format("2006-01-02") == date.Format("2006-01-02") {
			aps = append(aps, ap)
		}
	}
	return aps, nil
}

var _ domain.Repository = (*fakeRepo)(nil)

// ------------------------------------------------------
// helpers
// ------------------------------------------------------

func testDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(audit.New(nil))
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func validInput() BookAppointmentInput {
	return BookAppointmentInput{
		Name:        "Test User",
		PhoneNumber: "1234567890",
		Date:        day(2025, 3, 15),
		TimeSlot:    "10:00 AM",
	}
}

// ------------------------------------------------------
// BookAppointment
// ------------------------------------------------------

func TestBookAppointment_Success(t *testing.T) {
	repo := newFakeRepo()
	uc := NewBookAppointment(repo, cache.NewNoopSlotsCache(), testDispatcher())

	ap, err := uc.Execute(context.Background(), validInput())
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if ap.ID == 0 {
		t.Fatal("expected a generated appointment id")
	}
	if len(repo.appointments) != 1 {
		t.Fatalf("expected 1 persisted appointment, got %d", len(repo.appointments))
	}
}

func TestBookAppointment_DoubleBookingRejected(t *testing.T) {
	repo := newFakeRepo()
	uc := NewBookAppointment(repo, cache.NewNoopSlotsCache(), testDispatcher())

	if _, err := uc.Execute(context.Background(), validInput()); err != nil {
		t.Fatalf("first booking failed: %v", err)
	}

	in := validInput()
	in.Name = "Someone Else"
	in.PhoneNumber = "0987654321"

	_, err := uc.Execute(context.Background(), in)
	if !httperr.IsBusiness(err, "slot_already_booked") {
		t.Fatalf("expected slot_already_booked, got %v", err)
	}
	if len(repo.appointments) != 1 {
		t.Fatalf("second booking must not persist, got %d records", len(repo.appointments))
	}
}

func TestBookAppointment_ConstraintViolationOnInsert(t *testing.T) {
	// pre-check passes, insert loses the race: the constraint error must
	// surface as the same slot_already_booked business error
	repo := newFakeRepo()
	repo.conflictOnCreate = true
	uc := NewBookAppointment(repo, cache.NewNoopSlotsCache(), testDispatcher())

	_, err := uc.Execute(context.Background(), validInput())
	if !httperr.IsBusiness(err, "slot_already_booked") {
		t.Fatalf("expected slot_already_booked, got %v", err)
	}
}

func TestBookAppointment_InvalidSlot(t *testing.T) {
	repo := newFakeRepo()
	uc := NewBookAppointment(repo, cache.NewNoopSlotsCache(), testDispatcher())

	in := validInput()
	in.TimeSlot = "01:00 PM"

	_, err := uc.Execute(context.Background(), in)
	if !httperr.IsBusiness(err, "lunch_break") {
		t.Fatalf("expected lunch_break, got %v", err)
	}
	if len(repo.appointments) != 0 {
		t.Fatal("rejected booking must not persist")
	}
}

func TestBookAppointment_InvalidPhone(t *testing.T) {
	repo := newFakeRepo()
	uc := NewBookAppointment(repo, cache.NewNoopSlotsCache(), testDispatcher())

	in := validInput()
	in.PhoneNumber = "12345"

	_, err := uc.Execute(context.Background(), in)
	if !httperr.IsBusiness(err, "invalid_phone_number") {
		t.Fatalf("expected invalid_phone_number, got %v", err)
	}
	if len(repo.appointments) != 0 {
		t.Fatal("rejected booking must not persist")
	}
}

// ------------------------------------------------------
// GetAvailableSlots
// ------------------------------------------------------

func TestGetAvailableSlots_EmptyStore(t *testing.T) {
	repo := newFakeRepo()
	uc := NewGetAvailableSlots(repo, cache.NewNoopSlotsCache())

	slots, err := uc.Execute(context.Background(), day(2025, 3, 15))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(slots, schedule.Slots()) {
		t.Fatalf("expected full vocabulary, got %v", slots)
	}
}

func TestGetAvailableSlots_BookedSlotRemoved(t *testing.T) {
	repo := newFakeRepo()
	availUC := NewGetAvailableSlots(repo, cache.NewNoopSlotsCache())
	bookUC := NewBookAppointment(repo, cache.NewNoopSlotsCache(), testDispatcher())

	if _, err := bookUC.Execute(context.Background(), validInput()); err != nil {
		t.Fatalf("booking failed: %v", err)
	}

	slots, err := availUC.Execute(context.Background(), day(2025, 3, 15))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 11 {
		t.Fatalf("expected 11 slots after one booking, got %d", len(slots))
	}
	for _, s := range slots {
		if s == "10:00 AM" {
			t.Fatal("booked slot must not appear as available")
		}
	}

	// a different date is unaffected
	other, err := availUC.Execute(context.Background(), day(2025, 3, 16))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(other) != 12 {
		t.Fatalf("expected other dates untouched, got %d slots", len(other))
	}
}

func TestGetAvailableSlots_IdempotentRead(t *testing.T) {
	repo := newFakeRepo()
	uc := NewGetAvailableSlots(repo, cache.NewNoopSlotsCache())

	first, err := uc.Execute(context.Background(), day(2025, 3, 15))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := uc.Execute(context.Background(), day(2025, 3, 15))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("reads without writes must match: %v vs %v", first, second)
	}
}

// ------------------------------------------------------
// ListAppointmentsByDate
// ------------------------------------------------------

func TestListAppointmentsByDate_SlotOrder(t *testing.T) {
	repo := newFakeRepo()
	bookUC := NewBookAppointment(repo, cache.NewNoopSlotsCache(), testDispatcher())
	listUC := NewListAppointmentsByDate(repo)

	for _, slot := range []string{"04:30 PM", "10:00 AM", "02:00 PM"} {
		in := validInput()
		in.TimeSlot = slot
		if _, err := bookUC.Execute(context.Background(), in); err != nil {
			t.Fatalf("booking %s failed: %v", slot, err)
		}
	}

	aps, err := listUC.Execute(context.Background(), day(2025, 3, 15))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got []string
	for _, ap := range aps {
		got = append(got, ap.TimeSlot)
	}
	want := []string{"10:00 AM", "02:00 PM", "04:30 PM"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected chronological order %v, got %v", want, got)
	}
}
