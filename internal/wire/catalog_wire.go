package wire

import (
	"spa-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCatalog(r chi.Router, catalogHandler *adaptor.CatalogHandler, log *zap.Logger) {
	// GET /api/v1/services - List services (categoryId, featured, paginated)
	r.Get("/api/v1/services", catalogHandler.GetServices)

	// GET /api/v1/services/{id} - Service detail with category
	r.Get("/api/v1/services/{id}", catalogHandler.GetService)

	// GET /api/v1/categories - List categories
	r.Get("/api/v1/categories", catalogHandler.GetCategories)
}
