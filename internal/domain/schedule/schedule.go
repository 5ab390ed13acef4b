package schedule

import (
	"time"

	"github.com/BruksfildServices01/appointment-booking/internal/httperr"
)

// Fixed business schedule: 10:00 AM to 5:00 PM in 30-minute steps, with the
// 1:00 PM hour reserved for lunch. Expressed as minutes from midnight.
const (
	businessStartMin = 10 * 60
	businessEndMin   = 17 * 60
	lunchStartMin    = 13 * 60
	lunchEndMin      = 14 * 60
	slotStepMin      = 30
)

// LabelFormat is the canonical slot label layout, e.g. "10:00 AM".
const LabelFormat = "03:04 PM"

var (
	ErrInvalidFormat = httperr.BusinessError{
		Code:    "invalid_slot_format",
		Message: "Time slot must be in hh:mm AM/PM format, e.g. 10:00 AM",
	}
	ErrOutOfHours = httperr.BusinessError{
		Code:    "outside_business_hours",
		Message: "Time slot is outside business hours (10:00 AM to 5:00 PM)",
	}
	ErrLunchBreak = httperr.BusinessError{
		Code:    "lunch_break",
		Message: "Time slot falls within the lunch break (1:00 PM to 2:00 PM)",
	}
	ErrBadGranularity = httperr.BusinessError{
		Code:    "invalid_slot_interval",
		Message: "Time slot must start on a 30-minute boundary",
	}
)

// Slots returns every bookable label for one business day, in chronological
// order. The schedule is fixed, so this never consults the store.
func Slots() []string {
	var labels []string

	for cur := businessStartMin; cur < businessEndMin; cur += slotStepMin {
		if cur >= lunchStartMin && cur < lunchEndMin {
			continue
		}
		labels = append(labels, formatLabel(cur))
	}

	return labels
}

// ValidateSlot re-derives the schedule constraints from a candidate label
// instead of checking membership in Slots. Only the canonical 2-digit form is
// accepted; "2:00 PM" would otherwise create a second spelling of an existing
// slot and sidestep the uniqueness constraint.
func ValidateSlot(label string) error {
	t, err := time.Parse(LabelFormat, label)
	if err != nil || t.Format(LabelFormat) != label {
		return ErrInvalidFormat
	}

	min := t.Hour()*60 + t.Minute()

	if min < businessStartMin || min >= businessEndMin {
		return ErrOutOfHours
	}

	if min >= lunchStartMin && min < lunchEndMin {
		return ErrLunchBreak
	}

	if min%slotStepMin != 0 {
		return ErrBadGranularity
	}

	return nil
}

// SlotIndex reports the chronological position of a label in the vocabulary,
// or -1 for labels outside it.
func SlotIndex(label string) int {
	for i, s := range Slots() {
		if s == label {
			return i
		}
	}
	return -1
}

func formatLabel(min int) string {
	return time.Date(2000, 1, 1, min/60, min%60, 0, 0, time.UTC).Format(LabelFormat)
}
