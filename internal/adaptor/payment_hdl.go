package adaptor

import (
	"encoding/json"
	"net/http"

	"spa-booking/internal/dto/request"
	"spa-booking/internal/usecase"
	"spa-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PaymentHandler struct {
	service usecase.PaymentService
	log     *zap.Logger
}

func NewPaymentHandler(service usecase.PaymentService, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		service: service,
		log:     log.With(zap.String("handler", "payment")),
	}
}

// CreatePaymentURL handles POST /api/v1/payments/vnpay/create-payment-url
func (h *PaymentHandler) CreatePaymentURL(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePaymentURLRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	result, err := h.service.CreatePaymentURL(r.Context(), &req, clientIP(r))
	if err != nil {
		handleServiceError(h.log, w, err, "create payment URL")
		return
	}

	utils.ResponseSuccess(w, "success", result)
}

// HandleReturn handles GET /api/v1/payments/vnpay/return (the browser
// redirect back from the gateway)
func (h *PaymentHandler) HandleReturn(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.HandleReturn(r.Context(), r.URL.Query())
	if err != nil {
		handleServiceError(h.log, w, err, "handle payment return")
		return
	}

	utils.ResponseSuccess(w, "success", result)
}

// HandleIPN handles GET /api/v1/payments/vnpay/ipn (the gateway's
// server-to-server callback). The body is always 200 with the contract's
// RspCode; the gateway keys off the code, not the HTTP status.
func (h *PaymentHandler) HandleIPN(w http.ResponseWriter, r *http.Request) {
	result := h.service.HandleIPN(r.Context(), r.URL.Query())

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(result)
}

// GetBookingPayments handles GET /api/v1/payments/bookings/{bookingId}
func (h *PaymentHandler) GetBookingPayments(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "bookingId")

	payments, err := h.service.GetBookingPayments(r.Context(), bookingID)
	if err != nil {
		handleServiceError(h.log, w, err, "get booking payments")
		return
	}

	utils.ResponseSuccess(w, "success", payments)
}
