package wire

import (
	"spa-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wirePayment(r chi.Router, paymentHandler *adaptor.PaymentHandler, log *zap.Logger) {
	r.Route("/api/v1/payments", func(r chi.Router) {
		// POST /api/v1/payments/vnpay/create-payment-url
		r.Post("/vnpay/create-payment-url", paymentHandler.CreatePaymentURL)

		// GET /api/v1/payments/vnpay/return - Browser redirect from the gateway
		r.Get("/vnpay/return", paymentHandler.HandleReturn)

		// GET /api/v1/payments/vnpay/ipn - Gateway server callback
		r.Get("/vnpay/ipn", paymentHandler.HandleIPN)

		// GET /api/v1/payments/bookings/{bookingId} - Payments for a booking
		r.Get("/bookings/{bookingId}", paymentHandler.GetBookingPayments)
	})
}
