package usecase

import (
	"spa-booking/internal/data/repository"
	"spa-booking/pkg/kafka"
	"spa-booking/pkg/utils"
	"spa-booking/pkg/vnpay"

	"go.uber.org/zap"
)

type Service struct {
	Catalog      CatalogService
	Branch       BranchService
	Availability AvailabilityService
	Booking      BookingService
	Payment      PaymentService
	Review       ReviewService
	Suggest      SuggestService
	Wizard       WizardService
}

func NewService(repo *repository.Repository, config *utils.Config, producer *kafka.Producer, gateway *vnpay.Client, log *zap.Logger) *Service {
	catalog := NewCatalogService(repo, log)
	availability := NewAvailabilityService(repo, log)
	booking := NewBookingService(repo, producer, config, log)
	payment := NewPaymentService(repo, gateway, producer, config, log)

	return &Service{
		Catalog:      catalog,
		Branch:       NewBranchService(repo, log),
		Availability: availability,
		Booking:      booking,
		Payment:      payment,
		Review:       NewReviewService(repo, log),
		Suggest:      NewSuggestService(catalog, availability, config, log),
		Wizard:       NewWizardService(repo, booking, payment, log),
	}
}
