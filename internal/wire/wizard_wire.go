package wire

import (
	"spa-booking/internal/adaptor"
	"spa-booking/internal/data/repository"
	"spa-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireWizard(
	r chi.Router,
	wizardHandler *adaptor.WizardHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// The wizard is open to guests; a presented session token only enriches
	// the draft with the member's details.
	r.Route("/api/v1/wizard", func(r chi.Router) {
		r.Use(middleware.OptionalAuth(repo.Session, log))

		r.Post("/", wizardHandler.StartSession)
		r.Get("/{id}", wizardHandler.GetSession)
		r.Patch("/{id}", wizardHandler.UpdateDraft)
		r.Post("/{id}/next", wizardHandler.Next)
		r.Post("/{id}/prev", wizardHandler.Prev)
		r.Post("/{id}/submit", wizardHandler.Submit)
		r.Delete("/{id}", wizardHandler.Abandon)
	})
}
