package adaptor

import (
	"encoding/json"
	"net/http"

	"spa-booking/internal/dto/request"
	"spa-booking/internal/usecase"
	"spa-booking/pkg/utils"

	"go.uber.org/zap"
)

type SuggestHandler struct {
	service usecase.SuggestService
	log     *zap.Logger
}

func NewSuggestHandler(service usecase.SuggestService, log *zap.Logger) *SuggestHandler {
	return &SuggestHandler{
		service: service,
		log:     log.With(zap.String("handler", "suggest")),
	}
}

// SuggestTimeslot handles POST /api/v1/ai/suggest-timeslot
func (h *SuggestHandler) SuggestTimeslot(w http.ResponseWriter, r *http.Request) {
	var req request.SuggestTimeslotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	result, err := h.service.SuggestTimeslot(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "suggest timeslot")
		return
	}

	utils.ResponseSuccess(w, "success", result)
}

// Health handles GET /api/v1/ai/health
func (h *SuggestHandler) Health(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "success", h.service.Health())
}
