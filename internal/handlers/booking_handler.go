package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/appointment-booking/internal/dto"
	"github.com/BruksfildServices01/appointment-booking/internal/httperr"
	"github.com/BruksfildServices01/appointment-booking/internal/httpresp"
	ucbooking "github.com/BruksfildServices01/appointment-booking/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	availableSlotsUC *ucbooking.GetAvailableSlots
	bookAppointment  *ucbooking.BookAppointment
	listByDateUC     *ucbooking.ListAppointmentsByDate
}

func NewBookingHandler(
	availableSlotsUC *ucbooking.GetAvailableSlots,
	bookAppointment *ucbooking.BookAppointment,
	listByDateUC *ucbooking.ListAppointmentsByDate,
) *BookingHandler {
	return &BookingHandler{
		availableSlotsUC: availableSlotsUC,
		bookAppointment:  bookAppointment,
		listByDateUC:     listByDateUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookAppointmentRequest struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
	Date        string `json:"date"`      // YYYY-MM-DD
	TimeSlot    string `json:"time_slot"` // hh:mm AM/PM
}

// ======================================================
// AVAILABLE SLOTS
// ======================================================

func (h *BookingHandler) AvailableSlots(c *gin.Context) {
	date, ok := h.requireDate(c)
	if !ok {
		return
	}

	slots, err := h.availableSlotsUC.Execute(c.Request.Context(), date)
	if err != nil {
		httperr.Internal(c, "availability_failed", "Failed to compute available slots")
		return
	}

	httpresp.OK(c, gin.H{"available_slots": slots})
}

// ======================================================
// BOOK APPOINTMENT
// ======================================================

func (h *BookingHandler) Book(c *gin.Context) {
	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body")
		return
	}

	if req.Name == "" || req.PhoneNumber == "" || req.Date == "" || req.TimeSlot == "" {
		httperr.BadRequest(c, "missing_fields", "All fields are required")
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date format. Use YYYY-MM-DD")
		return
	}

	ap, err := h.bookAppointment.Execute(
		c.Request.Context(),
		ucbooking.BookAppointmentInput{
			Name:        req.Name,
			PhoneNumber: req.PhoneNumber,
			Date:        date,
			TimeSlot:    req.TimeSlot,
		},
	)

	if err != nil {
		if be, ok := httperr.AsBusiness(err); ok {
			httperr.BadRequest(c, be.Code, be.Message)
			return
		}

		httperr.Internal(c, "failed_to_book_appointment", "Failed to book appointment")
		return
	}

	httpresp.OK(c, gin.H{
		"success":        true,
		"message":        "Appointment booked successfully",
		"appointment_id": ap.ID,
	})
}

// ======================================================
// LIST BY DATE
// ======================================================

func (h *BookingHandler) ListByDate(c *gin.Context) {
	date, ok := h.requireDate(c)
	if !ok {
		return
	}

	aps, err := h.listByDateUC.Execute(c.Request.Context(), date)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Failed to list appointments")
		return
	}

	items := make([]dto.AppointmentListDTO, 0, len(aps))
	for _, ap := range aps {
		items = append(items, dto.AppointmentListDTO{
			ID:          ap.ID,
			Name:        ap.Name,
			PhoneNumber: ap.PhoneNumber,
			Date:        ap.Date.Format("2006-01-02"),
			TimeSlot:    ap.TimeSlot,
			CreatedAt:   ap.CreatedAt,
		})
	}

	httpresp.List(c, items)
}

// ======================================================
// HELPERS
// ======================================================

func (h *BookingHandler) requireDate(c *gin.Context) (time.Time, bool) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Date parameter is required")
		return time.Time{}, false
	}

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date format. Use YYYY-MM-DD")
		return time.Time{}, false
	}

	return date, true
}
