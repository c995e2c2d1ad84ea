package wire

import (
	"net/http"

	"spa-booking/internal/adaptor"
	"spa-booking/internal/data/repository"
	"spa-booking/internal/usecase"
	"spa-booking/pkg/kafka"
	"spa-booking/pkg/middleware"
	"spa-booking/pkg/utils"
	"spa-booking/pkg/vnpay"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired dependencies
type App struct {
	Router *chi.Mux
}

// Wiring initializes services, handlers and routes
func Wiring(repo *repository.Repository, config *utils.Config, producer *kafka.Producer, gateway *vnpay.Client, logger *zap.Logger) *App {
	service := usecase.NewService(repo, config, producer, gateway, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, repo, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS)

	// Feature routes
	wireWizard(r, handler.Wizard, repo, logger)
	wireBooking(r, handler.Booking, repo, logger)
	wireCatalog(r, handler.Catalog, logger)
	wireBranch(r, handler.Branch, logger)
	wireAvailability(r, handler.Availability, logger)
	wireReview(r, handler.Review, repo, logger)
	wirePayment(r, handler.Payment, logger)
	wireSuggest(r, handler.Suggest, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
