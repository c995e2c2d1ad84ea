package usecase

import (
	"context"
	"fmt"
	"time"

	"spa-booking/internal/data/entity"
	"spa-booking/internal/data/repository"
	"spa-booking/internal/dto/request"
	"spa-booking/internal/dto/response"
	"spa-booking/pkg/kafka"
	"spa-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Appointments are only bookable inside these clinic-wide hours, on top of
// whatever the branch's own operating hours allow.
const (
	businessOpen  = "08:00"
	businessClose = "18:00"
)

type BookingService interface {
	Create(ctx context.Context, userID *uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	GetByReference(ctx context.Context, referenceNumber string) (*response.BookingResponse, error)
	GetUserBookings(ctx context.Context, userID uuid.UUID, req *request.PaginatedRequest, status *string) (*response.PaginatedResponse[response.BookingResponse], error)
	Cancel(ctx context.Context, bookingID string, userID *uuid.UUID, req *request.CancelBookingRequest) (*response.BookingResponse, error)
	GetStats(ctx context.Context, from, to *time.Time) (*response.BookingStatsResponse, error)
}

type bookingService struct {
	repo     *repository.Repository
	producer *kafka.Producer
	topics   utils.KafkaConfig
	log      *zap.Logger
	now      func() time.Time
}

func NewBookingService(repo *repository.Repository, producer *kafka.Producer, cfg *utils.Config, log *zap.Logger) BookingService {
	return &bookingService{
		repo:     repo,
		producer: producer,
		topics:   cfg.Kafka,
		log:      log.With(zap.String("service", "booking")),
		now:      time.Now,
	}
}

func (s *bookingService) Create(ctx context.Context, userID *uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// Guest bookings carry their own contact details; member bookings take
	// them from the account and ignore the guest fields.
	if userID == nil {
		if req.Name == "" {
			return nil, fmt.Errorf("validation failed: name is required for guest bookings")
		}
		if req.Phone == "" {
			return nil, fmt.Errorf("validation failed: phone is required for guest bookings")
		}
		if !emailRx.MatchString(req.Email) {
			return nil, fmt.Errorf("validation failed: a valid email is required for guest bookings")
		}
	}

	paymentType, err := entity.WirePaymentType(req.PaymentMethod)
	if err != nil {
		return nil, fmt.Errorf("validation failed: %s", err.Error())
	}

	branchID, err := uuid.Parse(req.BranchID)
	if err != nil {
		return nil, fmt.Errorf("invalid branch ID format %s", req.BranchID)
	}
	branch, err := s.repo.Branch.FindByID(ctx, branchID)
	if err != nil {
		return nil, fmt.Errorf("get branch: %w", err)
	}
	if branch == nil {
		return nil, fmt.Errorf("branch %s not found", req.BranchID)
	}

	services, err := s.resolveServices(ctx, req.ServiceIDs)
	if err != nil {
		return nil, err
	}

	appointmentDate, err := time.ParseInLocation("2006-01-02", req.Date, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid date format %s", req.Date)
	}
	if err := s.checkAppointmentTime(appointmentDate, req.Time); err != nil {
		return nil, err
	}

	var totalPrice float64
	var totalDuration int
	for _, svc := range services {
		totalPrice += svc.Price
		totalDuration += svc.Duration
	}

	language := req.Language
	if language == "" {
		language = "en"
	}

	now := s.now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		ReferenceNumber: utils.GenerateReferenceNumber(),
		UserID:          userID,
		BranchID:        branchID,
		AppointmentDate: appointmentDate,
		AppointmentTime: req.Time,
		Status:          entity.BookingStatusPending,
		Notes:           optional(req.Notes),
		Language:        language,
		TotalPrice:      totalPrice,
		TotalDuration:   totalDuration,
	}
	if userID == nil {
		booking.GuestName = optional(req.Name)
		booking.GuestEmail = optional(req.Email)
		booking.GuestPhone = optional(req.Phone)
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		s.log.Error("Failed to create booking", zap.Error(err))
		return nil, fmt.Errorf("create booking: %w", err)
	}

	items := make([]*entity.BookingService, 0, len(services))
	for _, svc := range services {
		items = append(items, &entity.BookingService{
			BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: now},
			BookingID:  booking.ID,
			ServiceID:  svc.ID,
		})
	}
	if err := s.repo.BookingService.CreateBatch(ctx, items); err != nil {
		s.log.Error("Failed to attach booking services",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
		return nil, fmt.Errorf("attach booking services: %w", err)
	}

	// Gateway payments get a pending payment row up front; the payment URL
	// is requested separately and reads its amount from this row.
	var paymentResp *response.PaymentResponse
	if paymentType.IsGateway() {
		payment := &entity.Payment{
			BaseNoDelete: entity.BaseNoDelete{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
			BookingID:    booking.ID,
			Amount:       totalPrice,
			Currency:     "VND",
			PaymentType:  paymentType,
			Status:       entity.PaymentStatusPending,
		}
		if err := s.repo.Payment.Create(ctx, payment); err != nil {
			s.log.Error("Failed to create pending payment",
				zap.Error(err),
				zap.String("booking_id", booking.ID.String()),
			)
			return nil, fmt.Errorf("create pending payment: %w", err)
		}
		pr := response.PaymentToResponse(payment)
		paymentResp = &pr
	}

	publishEvent(ctx, s.producer, s.log, s.topics.BookingTopic, booking.ID.String(), bookingEvent{
		Event:           eventBookingCreated,
		BookingID:       booking.ID.String(),
		ReferenceNumber: booking.ReferenceNumber,
		BranchID:        branchID.String(),
		Status:          string(booking.Status),
		TotalPrice:      totalPrice,
		OccurredAt:      now,
	})

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("reference", booking.ReferenceNumber),
		zap.String("payment_type", string(paymentType)),
	)

	serviceResponses := make([]response.ServiceResponse, 0, len(services))
	for _, svc := range services {
		serviceResponses = append(serviceResponses, response.ServiceToResponse(svc, nil))
	}

	resp := response.BookingToResponse(booking, branch.Name, serviceResponses, paymentResp)
	return &resp, nil
}

func (s *bookingService) GetByReference(ctx context.Context, referenceNumber string) (*response.BookingResponse, error) {
	booking, err := s.repo.Booking.FindByReference(ctx, referenceNumber)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s not found", referenceNumber)
	}

	return s.toDetailResponse(ctx, booking)
}

func (s *bookingService) GetUserBookings(ctx context.Context, userID uuid.UUID, req *request.PaginatedRequest, status *string) (*response.PaginatedResponse[response.BookingResponse], error) {
	var statusFilter *entity.BookingStatus
	if status != nil && *status != "" {
		st := entity.BookingStatus(*status)
		statusFilter = &st
	}

	bookings, err := s.repo.Booking.FindByUserID(ctx, userID, req.Limit(), req.Offset(), statusFilter)
	if err != nil {
		s.log.Error("Failed to list user bookings", zap.Error(err))
		return nil, fmt.Errorf("list user bookings: %w", err)
	}

	total, err := s.repo.Booking.CountByUserID(ctx, userID, statusFilter)
	if err != nil {
		return nil, fmt.Errorf("count user bookings: %w", err)
	}

	data := make([]response.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		data = append(data, response.BookingToResponse(b, "", nil, nil))
	}

	return response.NewPaginatedResponse(data, req.Page, req.Limit(), total), nil
}

func (s *bookingService) Cancel(ctx context.Context, bookingID string, userID *uuid.UUID, req *request.CancelBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s", bookingID)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}

	// Member bookings may only be cancelled by their owner. Guest bookings
	// have no owner; knowing the id is the credential.
	if booking.UserID != nil && (userID == nil || *userID != *booking.UserID) {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}

	switch booking.Status {
	case entity.BookingStatusCancelled:
		return nil, fmt.Errorf("booking already cancelled")
	case entity.BookingStatusCompleted:
		return nil, fmt.Errorf("cannot cancel a completed booking")
	}
	if s.appointmentStart(booking).Before(s.now()) {
		return nil, fmt.Errorf("cannot cancel a past booking")
	}

	booking.Status = entity.BookingStatusCancelled
	booking.CancellationReason = req.Reason
	booking.UpdatedAt = s.now()

	if err := s.repo.Booking.Update(ctx, booking); err != nil {
		s.log.Error("Failed to cancel booking",
			zap.Error(err),
			zap.String("booking_id", bookingID),
		)
		return nil, fmt.Errorf("cancel booking: %w", err)
	}

	publishEvent(ctx, s.producer, s.log, s.topics.BookingTopic, booking.ID.String(), bookingEvent{
		Event:           eventBookingCancelled,
		BookingID:       booking.ID.String(),
		ReferenceNumber: booking.ReferenceNumber,
		BranchID:        booking.BranchID.String(),
		Status:          string(booking.Status),
		TotalPrice:      booking.TotalPrice,
		OccurredAt:      s.now(),
	})

	s.log.Info("Booking cancelled",
		zap.String("booking_id", booking.ID.String()),
		zap.String("reference", booking.ReferenceNumber),
	)

	return s.toDetailResponse(ctx, booking)
}

func (s *bookingService) GetStats(ctx context.Context, from, to *time.Time) (*response.BookingStatsResponse, error) {
	stats := &response.BookingStatsResponse{}

	counts := []struct {
		status entity.BookingStatus
		dest   *int64
	}{
		{entity.BookingStatusPending, &stats.Pending},
		{entity.BookingStatusConfirmed, &stats.Confirmed},
		{entity.BookingStatusCancelled, &stats.Cancelled},
		{entity.BookingStatusCompleted, &stats.Completed},
		{entity.BookingStatusNoShow, &stats.NoShow},
	}

	total, err := s.repo.Booking.CountByStatus(ctx, nil, from, to)
	if err != nil {
		return nil, fmt.Errorf("count bookings: %w", err)
	}
	stats.Total = total

	for _, c := range counts {
		status := c.status
		n, err := s.repo.Booking.CountByStatus(ctx, &status, from, to)
		if err != nil {
			return nil, fmt.Errorf("count %s bookings: %w", status, err)
		}
		*c.dest = n
	}

	return stats, nil
}

// checkAppointmentTime enforces a future appointment inside business hours.
func (s *bookingService) checkAppointmentTime(date time.Time, clock string) error {
	minutes, err := parseClock(clock)
	if err != nil {
		return fmt.Errorf("invalid time format %s", clock)
	}

	openMin, _ := parseClock(businessOpen)
	closeMin, _ := parseClock(businessClose)
	if minutes < openMin || minutes > closeMin {
		return fmt.Errorf("validation failed: appointment time must be between %s and %s", businessOpen, businessClose)
	}

	start := time.Date(date.Year(), date.Month(), date.Day(), minutes/60, minutes%60, 0, 0, time.Local)
	if !start.After(s.now()) {
		return fmt.Errorf("validation failed: appointment must be in the future")
	}

	return nil
}

func (s *bookingService) appointmentStart(b *entity.Booking) time.Time {
	minutes, err := parseClock(b.AppointmentTime)
	if err != nil {
		return b.AppointmentDate
	}
	d := b.AppointmentDate
	return time.Date(d.Year(), d.Month(), d.Day(), minutes/60, minutes%60, 0, 0, time.Local)
}

func (s *bookingService) resolveServices(ctx context.Context, serviceIDs []string) ([]*entity.Service, error) {
	ids := make([]uuid.UUID, 0, len(serviceIDs))
	for _, raw := range serviceIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid service ID format %s", raw)
		}
		ids = append(ids, id)
	}

	services, err := s.repo.Service.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("resolve services: %w", err)
	}
	if len(services) != len(ids) {
		return nil, fmt.Errorf("one or more services not found")
	}

	return services, nil
}

// toDetailResponse hydrates branch name, services and latest payment.
func (s *bookingService) toDetailResponse(ctx context.Context, booking *entity.Booking) (*response.BookingResponse, error) {
	branchName := ""
	if branch, err := s.repo.Branch.FindByID(ctx, booking.BranchID); err == nil && branch != nil {
		branchName = branch.Name
	}

	var serviceResponses []response.ServiceResponse
	serviceIDs, err := s.repo.BookingService.FindServiceIDsByBooking(ctx, booking.ID)
	if err == nil && len(serviceIDs) > 0 {
		if services, err := s.repo.Service.FindByIDs(ctx, serviceIDs); err == nil {
			for _, svc := range services {
				serviceResponses = append(serviceResponses, response.ServiceToResponse(svc, nil))
			}
		}
	}

	var paymentResp *response.PaymentResponse
	payments, err := s.repo.Payment.FindByBookingID(ctx, booking.ID)
	if err == nil && len(payments) > 0 {
		pr := response.PaymentToResponse(payments[0])
		paymentResp = &pr
	}

	resp := response.BookingToResponse(booking, branchName, serviceResponses, paymentResp)
	return &resp, nil
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
