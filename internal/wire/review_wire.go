package wire

import (
	"spa-booking/internal/adaptor"
	"spa-booking/internal/data/repository"
	"spa-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReview(
	r chi.Router,
	reviewHandler *adaptor.ReviewHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// GET /api/v1/reviews - List reviews (serviceId/branchId filters)
	r.Get("/api/v1/reviews", reviewHandler.GetReviews)

	// POST /api/v1/reviews - Guests review with name/email, members with
	// their account
	r.Group(func(r chi.Router) {
		r.Use(middleware.OptionalAuth(repo.Session, log))
		r.Post("/api/v1/reviews", reviewHandler.CreateReview)
	})
}
