package adaptor

import (
	"errors"
	"net"
	"net/http"
	"strings"

	"spa-booking/internal/usecase"
	"spa-booking/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Wizard       *WizardHandler
	Booking      *BookingHandler
	Catalog      *CatalogHandler
	Branch       *BranchHandler
	Availability *AvailabilityHandler
	Review       *ReviewHandler
	Payment      *PaymentHandler
	Suggest      *SuggestHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Wizard:       NewWizardHandler(service.Wizard, log),
		Booking:      NewBookingHandler(service.Booking, service.Wizard, log),
		Catalog:      NewCatalogHandler(service.Catalog, log),
		Branch:       NewBranchHandler(service.Branch, log),
		Availability: NewAvailabilityHandler(service.Availability, log),
		Review:       NewReviewHandler(service.Review, log),
		Payment:      NewPaymentHandler(service.Payment, log),
		Suggest:      NewSuggestHandler(service.Suggest, log),
	}
}

// handleServiceError classifies usecase errors into envelope responses.
// Step gate failures carry their field map and map to 422; everything else
// is classified by message.
func handleServiceError(log *zap.Logger, w http.ResponseWriter, err error, operation string) {
	var stepErr *usecase.StepIncompleteError
	if errors.As(err, &stepErr) {
		log.Warn(operation+" blocked by step gate",
			zap.String("step", stepErr.Step),
			zap.Any("fields", stepErr.Fields))
		utils.ResponseUnprocessable(w, "Step incomplete", stepErr.Fields)
		return
	}

	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"):
		log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "invalid"):
		log.Warn("Invalid input for "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "already"):
		log.Warn(operation+" failed - conflicting state",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseConflict(w, errMsg)

	case strings.Contains(errMsg, "cannot"):
		log.Warn(operation+" failed - invalid state",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		log.Error(operation+" failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

// clientIP extracts the caller address, preferring the proxy header.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		parts := strings.Split(fwd, ",")
		return strings.TrimSpace(parts[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
