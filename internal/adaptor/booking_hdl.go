package adaptor

import (
	"encoding/json"
	"net/http"
	"time"

	"spa-booking/internal/dto/request"
	"spa-booking/internal/usecase"
	"spa-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	wizard  usecase.WizardService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, wizard usecase.WizardService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		wizard:  wizard,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// CreateBooking handles POST /api/v1/bookings (guest or member)
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	booking, err := h.service.Create(r.Context(), contextUserID(r), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create booking")
		return
	}

	utils.ResponseCreated(w, "success", booking)
}

// QuickBooking handles POST /api/v1/bookings/quick
func (h *BookingHandler) QuickBooking(w http.ResponseWriter, r *http.Request) {
	var req request.QuickBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	result, err := h.wizard.QuickBook(r.Context(), contextUserID(r), &req, clientIP(r))
	if err != nil {
		handleServiceError(h.log, w, err, "quick booking")
		return
	}

	utils.ResponseCreated(w, "success", result)
}

// GetByReference handles GET /api/v1/bookings/{referenceNumber}
func (h *BookingHandler) GetByReference(w http.ResponseWriter, r *http.Request) {
	reference := chi.URLParam(r, "referenceNumber")
	if reference == "" {
		utils.ResponseBadRequest(w, "Reference number is required", nil)
		return
	}

	booking, err := h.service.GetByReference(r.Context(), reference)
	if err != nil {
		handleServiceError(h.log, w, err, "get booking by reference")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// GetUserBookings handles GET /api/v1/user/bookings (protected)
func (h *BookingHandler) GetUserBookings(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("perPage"), 10),
	}

	var status *string
	if v := query.Get("status"); v != "" {
		status = &v
	}

	bookings, err := h.service.GetUserBookings(r.Context(), userID, req, status)
	if err != nil {
		handleServiceError(h.log, w, err, "get user bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// CancelBooking handles PUT /api/v1/bookings/{id}/cancel
func (h *BookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	var req request.CancelBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	booking, err := h.service.Cancel(r.Context(), bookingID, contextUserID(r), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "cancel booking")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// GetStats handles GET /api/v1/admin/bookings/stats (admin only)
func (h *BookingHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var from, to *time.Time
	if v := query.Get("from"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			utils.ResponseBadRequest(w, "Invalid from date", nil)
			return
		}
		from = &t
	}
	if v := query.Get("to"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			utils.ResponseBadRequest(w, "Invalid to date", nil)
			return
		}
		to = &t
	}

	stats, err := h.service.GetStats(r.Context(), from, to)
	if err != nil {
		handleServiceError(h.log, w, err, "get booking stats")
		return
	}

	utils.ResponseSuccess(w, "success", stats)
}
