package usecase

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"spa-booking/internal/data/entity"
	"spa-booking/internal/data/repository"
	"spa-booking/internal/dto/request"
	"spa-booking/internal/dto/response"
	"spa-booking/pkg/kafka"
	"spa-booking/pkg/utils"
	"spa-booking/pkg/vnpay"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PaymentService interface {
	CreatePaymentURL(ctx context.Context, req *request.CreatePaymentURLRequest, ipAddr string) (*response.PaymentURLResponse, error)
	HandleReturn(ctx context.Context, query url.Values) (*response.PaymentReturnResponse, error)
	HandleIPN(ctx context.Context, query url.Values) *response.IPNResponse
	GetBookingPayments(ctx context.Context, bookingID string) ([]response.PaymentResponse, error)
}

type paymentService struct {
	repo     *repository.Repository
	gateway  *vnpay.Client
	producer *kafka.Producer
	topics   utils.KafkaConfig
	log      *zap.Logger
	now      func() time.Time
}

func NewPaymentService(repo *repository.Repository, gateway *vnpay.Client, producer *kafka.Producer, cfg *utils.Config, log *zap.Logger) PaymentService {
	return &paymentService{
		repo:     repo,
		gateway:  gateway,
		producer: producer,
		topics:   cfg.Kafka,
		log:      log.With(zap.String("service", "payment")),
		now:      time.Now,
	}
}

func (s *paymentService) CreatePaymentURL(ctx context.Context, req *request.CreatePaymentURLRequest, ipAddr string) (*response.PaymentURLResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	bookingID, err := uuid.Parse(req.BookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s", req.BookingID)
	}

	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s not found", req.BookingID)
	}

	payment, err := s.repo.Payment.FindPendingByBookingID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get pending payment: %w", err)
	}
	if payment == nil {
		return nil, fmt.Errorf("no pending payment for booking %s", req.BookingID)
	}

	paymentURL, err := s.gateway.BuildPaymentURL(vnpay.PaymentURLParams{
		TxnRef:    booking.ReferenceNumber,
		Amount:    payment.Amount,
		OrderInfo: "Thanh toan don hang " + booking.ReferenceNumber,
		Locale:    req.Locale,
		BankCode:  req.BankCode,
		IPAddr:    ipAddr,
	})
	if err != nil {
		s.log.Error("Failed to build payment URL",
			zap.Error(err),
			zap.String("booking_id", req.BookingID),
		)
		return nil, fmt.Errorf("build payment URL: %w", err)
	}

	s.log.Info("Payment URL created",
		zap.String("booking_id", req.BookingID),
		zap.String("reference", booking.ReferenceNumber),
	)

	return &response.PaymentURLResponse{PaymentURL: paymentURL}, nil
}

// HandleReturn processes the browser redirect back from the gateway. The
// outcome is reported to the user; the IPN is the authoritative channel,
// so a payment already settled by IPN is left as is.
func (s *paymentService) HandleReturn(ctx context.Context, query url.Values) (*response.PaymentReturnResponse, error) {
	if !s.gateway.VerifyCallback(query) {
		s.log.Warn("Return callback with invalid signature")
		return &response.PaymentReturnResponse{
			Success:      false,
			ResponseCode: "97",
			Message:      "Invalid signature",
		}, nil
	}

	ref := query.Get("vnp_TxnRef")
	responseCode := query.Get("vnp_ResponseCode")
	txnNo := query.Get("vnp_TransactionNo")

	booking, err := s.repo.Booking.FindByReference(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s not found", ref)
	}

	result := &response.PaymentReturnResponse{
		ReferenceNumber: ref,
		ResponseCode:    responseCode,
		Success:         responseCode == vnpay.ResponseCodeSuccess,
	}
	if txnNo != "" {
		result.TransactionID = &txnNo
	}

	payment, err := s.repo.Payment.FindPendingByBookingID(ctx, booking.ID)
	if err != nil {
		return nil, fmt.Errorf("get pending payment: %w", err)
	}
	if payment == nil {
		// already settled via IPN
		result.Message = "Payment already processed"
		return result, nil
	}

	if err := s.settle(ctx, booking, payment, result.Success, txnNo); err != nil {
		return nil, err
	}

	if result.Success {
		result.Message = "Payment successful"
	} else {
		result.Message = "Payment failed or cancelled"
	}

	return result, nil
}

// HandleIPN implements the gateway's server-to-server confirmation. The
// response codes follow the VNPay IPN contract; the gateway retries until
// it gets a definitive answer, so every outcome maps to a code instead of
// an HTTP error.
func (s *paymentService) HandleIPN(ctx context.Context, query url.Values) *response.IPNResponse {
	if !s.gateway.VerifyCallback(query) {
		s.log.Warn("IPN with invalid signature")
		return &response.IPNResponse{RspCode: "97", Message: "Invalid signature"}
	}

	ref := query.Get("vnp_TxnRef")
	responseCode := query.Get("vnp_ResponseCode")
	txnNo := query.Get("vnp_TransactionNo")

	booking, err := s.repo.Booking.FindByReference(ctx, ref)
	if err != nil {
		s.log.Error("IPN booking lookup failed", zap.Error(err), zap.String("reference", ref))
		return &response.IPNResponse{RspCode: "99", Message: "Unknown error"}
	}
	if booking == nil {
		return &response.IPNResponse{RspCode: "01", Message: "Order not found"}
	}

	payment, err := s.repo.Payment.FindPendingByBookingID(ctx, booking.ID)
	if err != nil {
		s.log.Error("IPN payment lookup failed", zap.Error(err), zap.String("reference", ref))
		return &response.IPNResponse{RspCode: "99", Message: "Unknown error"}
	}
	if payment == nil {
		return &response.IPNResponse{RspCode: "02", Message: "Order already confirmed"}
	}

	success := responseCode == vnpay.ResponseCodeSuccess
	if err := s.settle(ctx, booking, payment, success, txnNo); err != nil {
		s.log.Error("IPN settle failed", zap.Error(err), zap.String("reference", ref))
		return &response.IPNResponse{RspCode: "99", Message: "Unknown error"}
	}

	return &response.IPNResponse{RspCode: "00", Message: "Confirm Success"}
}

func (s *paymentService) GetBookingPayments(ctx context.Context, bookingID string) ([]response.PaymentResponse, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s", bookingID)
	}

	payments, err := s.repo.Payment.FindByBookingID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list booking payments: %w", err)
	}

	data := make([]response.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		data = append(data, response.PaymentToResponse(p))
	}
	return data, nil
}

// settle finalizes a pending payment and, on success, confirms the booking
// and emits the payment event.
func (s *paymentService) settle(ctx context.Context, booking *entity.Booking, payment *entity.Payment, success bool, txnNo string) error {
	status := entity.PaymentStatusFailed
	if success {
		status = entity.PaymentStatusCompleted
	}

	var transactionID *string
	if txnNo != "" {
		transactionID = &txnNo
	}

	if err := s.repo.Payment.UpdateStatus(ctx, payment.ID, status, transactionID); err != nil {
		return fmt.Errorf("update payment status: %w", err)
	}

	if !success {
		s.log.Info("Payment failed",
			zap.String("booking_id", booking.ID.String()),
			zap.String("reference", booking.ReferenceNumber),
		)
		return nil
	}

	booking.Status = entity.BookingStatusConfirmed
	booking.UpdatedAt = s.now()
	if err := s.repo.Booking.Update(ctx, booking); err != nil {
		return fmt.Errorf("confirm booking: %w", err)
	}

	publishEvent(ctx, s.producer, s.log, s.topics.PaymentTopic, booking.ID.String(), paymentEvent{
		Event:         eventPaymentCompleted,
		PaymentID:     payment.ID.String(),
		BookingID:     booking.ID.String(),
		Amount:        payment.Amount,
		TransactionID: txnNo,
		OccurredAt:    s.now(),
	})

	s.log.Info("Payment completed",
		zap.String("booking_id", booking.ID.String()),
		zap.String("reference", booking.ReferenceNumber),
	)

	return nil
}
