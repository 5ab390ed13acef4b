package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/appointment-booking/internal/audit"
	"github.com/BruksfildServices01/appointment-booking/internal/config"
	"github.com/BruksfildServices01/appointment-booking/internal/handlers"
	"github.com/BruksfildServices01/appointment-booking/internal/infra/cache"
	infraRepo "github.com/BruksfildServices01/appointment-booking/internal/infra/repository"
	ucBooking "github.com/BruksfildServices01/appointment-booking/internal/usecase/booking"
)

const slotsCacheTTL = 30 * time.Second

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	slotsCache := cache.NewNoopSlotsCache()
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		slotsCache = cache.NewRedisSlotsCache(client, slotsCacheTTL)
	}

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES
	// ======================================================
	availableSlotsUC := ucBooking.NewGetAvailableSlots(
		appointmentRepo,
		slotsCache,
	)

	bookAppointmentUC := ucBooking.NewBookAppointment(
		appointmentRepo,
		slotsCache,
		auditDispatcher,
	)

	listByDateUC := ucBooking.NewListAppointmentsByDate(
		appointmentRepo,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	bookingHandler := handlers.NewBookingHandler(
		availableSlotsUC,
		bookAppointmentUC,
		listByDateUC,
	)

	// ======================================================
	// ROUTES
	// ======================================================
	r.GET("/available-slots/", bookingHandler.AvailableSlots)
	r.POST("/book-appointment/", bookingHandler.Book)
	r.GET("/appointments/", bookingHandler.ListByDate)
}
