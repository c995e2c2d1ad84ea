package adaptor

import (
	"net/http"

	"spa-booking/internal/usecase"
	"spa-booking/pkg/utils"

	"go.uber.org/zap"
)

type AvailabilityHandler struct {
	service usecase.AvailabilityService
	log     *zap.Logger
}

func NewAvailabilityHandler(service usecase.AvailabilityService, log *zap.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{
		service: service,
		log:     log.With(zap.String("handler", "availability")),
	}
}

// GetAvailability handles GET /api/v1/availability?serviceId&branchId&date
func (h *AvailabilityHandler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	serviceID := query.Get("serviceId")
	branchID := query.Get("branchId")
	date := query.Get("date")

	if serviceID == "" || branchID == "" || date == "" {
		utils.ResponseBadRequest(w, "serviceId, branchId and date are required", nil)
		return
	}

	availability, err := h.service.GetAvailability(r.Context(), serviceID, branchID, date)
	if err != nil {
		handleServiceError(h.log, w, err, "get availability")
		return
	}

	utils.ResponseSuccess(w, "success", availability)
}
