package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/appointment-booking/internal/domain/booking"
	"github.com/BruksfildServices01/appointment-booking/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *AppointmentGormRepository) ListBookedSlots(
	ctx context.Context,
	date time.Time,
) ([]string, error) {

	var slots []string
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("date = ?", dateOnly(date)).
		Pluck("time_slot", &slots).Error; err != nil {
		return nil, err
	}

	return slots, nil
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

func (r *AppointmentGormRepository) HasAppointment(
	ctx context.Context,
	date time.Time,
	timeSlot string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("date = ? AND time_slot = ?", dateOnly(date), timeSlot).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	ap.Date = dateOnly(ap.Date)

	if err := r.db.WithContext(ctx).Create(ap).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrSlotAlreadyBooked
		}
		return err
	}

	return nil
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

func (r *AppointmentGormRepository) ListAppointmentsForDate(
	ctx context.Context,
	date time.Time,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("date = ?", dateOnly(date)).
		Order("created_at ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

// isUniqueViolation covers both gorm's translated error and the raw
// postgres SQLSTATE, depending on which layer surfaces the conflict.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// dateOnly strips any time-of-day component so the DATE column and the
// unique index always see midnight UTC.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
