package adaptor

import (
	"encoding/json"
	"io"
	"net/http"

	"spa-booking/internal/dto/request"
	"spa-booking/internal/usecase"
	"spa-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type WizardHandler struct {
	service usecase.WizardService
	log     *zap.Logger
}

func NewWizardHandler(service usecase.WizardService, log *zap.Logger) *WizardHandler {
	return &WizardHandler{
		service: service,
		log:     log.With(zap.String("handler", "wizard")),
	}
}

// StartSession handles POST /api/v1/wizard. Prefill comes from the JSON
// body, or from query parameters when an entry widget links straight in
// (?source=chat-widget&service=...&branch=...).
func (h *WizardHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	var req request.StartWizardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	query := r.URL.Query()
	if v := query.Get("source"); v != "" {
		req.Source = v
	}
	if v := query.Get("service"); v != "" {
		req.ServiceID = v
	}
	if v := query.Get("branch"); v != "" {
		req.BranchID = v
	}
	if v := query.Get("date"); v != "" {
		req.Date = v
	}
	if v := query.Get("time"); v != "" {
		req.Time = v
	}
	if query.Get("aiAssist") == "true" {
		req.AIAssist = true
	}

	session, err := h.service.StartSession(r.Context(), contextUserID(r), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "start wizard session")
		return
	}

	utils.ResponseCreated(w, "success", session)
}

// GetSession handles GET /api/v1/wizard/{id}
func (h *WizardHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")

	session, err := h.service.GetSession(r.Context(), sessionID)
	if err != nil {
		handleServiceError(h.log, w, err, "get wizard session")
		return
	}

	utils.ResponseSuccess(w, "success", session)
}

// UpdateDraft handles PATCH /api/v1/wizard/{id}
func (h *WizardHandler) UpdateDraft(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")

	var req request.UpdateDraftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	session, err := h.service.UpdateDraft(r.Context(), sessionID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update wizard draft")
		return
	}

	utils.ResponseSuccess(w, "success", session)
}

// Next handles POST /api/v1/wizard/{id}/next
func (h *WizardHandler) Next(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")

	session, err := h.service.Next(r.Context(), sessionID)
	if err != nil {
		handleServiceError(h.log, w, err, "advance wizard step")
		return
	}

	utils.ResponseSuccess(w, "success", session)
}

// Prev handles POST /api/v1/wizard/{id}/prev
func (h *WizardHandler) Prev(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")

	session, err := h.service.Prev(r.Context(), sessionID)
	if err != nil {
		handleServiceError(h.log, w, err, "rewind wizard step")
		return
	}

	utils.ResponseSuccess(w, "success", session)
}

// Submit handles POST /api/v1/wizard/{id}/submit
func (h *WizardHandler) Submit(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")

	result, err := h.service.Submit(r.Context(), sessionID, clientIP(r))
	if err != nil {
		handleServiceError(h.log, w, err, "submit wizard booking")
		return
	}

	utils.ResponseCreated(w, "success", result)
}

// Abandon handles DELETE /api/v1/wizard/{id}
func (h *WizardHandler) Abandon(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")

	if err := h.service.Abandon(r.Context(), sessionID); err != nil {
		handleServiceError(h.log, w, err, "abandon wizard session")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// contextUserID returns the authenticated user when OptionalAuth attached
// one, nil otherwise.
func contextUserID(r *http.Request) *uuid.UUID {
	if id, ok := utils.GetUserIDFromContext(r.Context()); ok {
		return &id
	}
	return nil
}
