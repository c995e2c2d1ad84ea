package wire

import (
	"spa-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAvailability(r chi.Router, availabilityHandler *adaptor.AvailabilityHandler, log *zap.Logger) {
	// GET /api/v1/availability - Slot grid for a branch, service and date
	r.Get("/api/v1/availability", availabilityHandler.GetAvailability)
}
