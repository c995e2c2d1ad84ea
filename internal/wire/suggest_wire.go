package wire

import (
	"spa-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireSuggest(r chi.Router, suggestHandler *adaptor.SuggestHandler, log *zap.Logger) {
	// POST /api/v1/ai/suggest-timeslot - Ranked slot suggestions
	r.Post("/api/v1/ai/suggest-timeslot", suggestHandler.SuggestTimeslot)

	// GET /api/v1/ai/health - Whether the AI reason writer is configured
	r.Get("/api/v1/ai/health", suggestHandler.Health)
}
