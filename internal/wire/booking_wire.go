package wire

import (
	"spa-booking/internal/adaptor"
	"spa-booking/internal/data/repository"
	"spa-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES (guest or member) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.OptionalAuth(repo.Session, log))

		// POST /api/v1/bookings - Create booking
		r.Post("/api/v1/bookings", bookingHandler.CreateBooking)

		// POST /api/v1/bookings/quick - One-shot booking without a wizard session
		r.Post("/api/v1/bookings/quick", bookingHandler.QuickBooking)

		// GET /api/v1/bookings/{referenceNumber} - Booking detail by reference
		r.Get("/api/v1/bookings/{referenceNumber}", bookingHandler.GetByReference)

		// PUT /api/v1/bookings/{id}/cancel - Cancel a booking
		r.Put("/api/v1/bookings/{id}/cancel", bookingHandler.CancelBooking)
	})

	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(repo.Session, log))

		// GET /api/v1/user/bookings - Member's booking history
		r.Get("/api/v1/user/bookings", bookingHandler.GetUserBookings)
	})

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/v1/admin/bookings", func(r chi.Router) {
		r.Use(middleware.RequireAuth(repo.Session, log))
		r.Use(middleware.Admin(repo.User, log))

		// GET /api/v1/admin/bookings/stats - Booking counts by status
		r.Get("/stats", bookingHandler.GetStats)
	})
}
