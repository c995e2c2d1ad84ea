package adaptor

import (
	"net/http"

	"spa-booking/internal/dto/request"
	"spa-booking/internal/usecase"
	"spa-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CatalogHandler struct {
	service usecase.CatalogService
	log     *zap.Logger
}

func NewCatalogHandler(service usecase.CatalogService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		log:     log.With(zap.String("handler", "catalog")),
	}
}

// GetServices handles GET /api/v1/services
func (h *CatalogHandler) GetServices(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("limit"), 10),
	}

	var categoryID *string
	if v := query.Get("categoryId"); v != "" {
		categoryID = &v
	}
	var featured *bool
	if v := query.Get("featured"); v != "" {
		f := v == "true"
		featured = &f
	}

	services, err := h.service.GetServices(r.Context(), req, categoryID, featured)
	if err != nil {
		handleServiceError(h.log, w, err, "get services")
		return
	}

	utils.ResponseSuccess(w, "success", services)
}

// GetService handles GET /api/v1/services/{id}
func (h *CatalogHandler) GetService(w http.ResponseWriter, r *http.Request) {
	serviceID := chi.URLParam(r, "id")

	service, err := h.service.GetService(r.Context(), serviceID)
	if err != nil {
		handleServiceError(h.log, w, err, "get service")
		return
	}

	utils.ResponseSuccess(w, "success", service)
}

// GetCategories handles GET /api/v1/categories
func (h *CatalogHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.GetCategories(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "get categories")
		return
	}

	utils.ResponseSuccess(w, "success", categories)
}
