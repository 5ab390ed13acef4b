package booking

import "github.com/BruksfildServices01/appointment-booking/internal/httperr"

var (
	ErrSlotAlreadyBooked = httperr.BusinessError{
		Code:    "slot_already_booked",
		Message: "This slot is already booked",
	}
	ErrInvalidPhoneNumber = httperr.BusinessError{
		Code:    "invalid_phone_number",
		Message: "Phone number must be entered in the format: '+999999999'. Up to 15 digits allowed.",
	}
)
