package usecase

import (
	"context"
	"fmt"
	"time"

	"spa-booking/internal/data/entity"
	"spa-booking/internal/data/repository"
	"spa-booking/internal/dto/request"
	"spa-booking/internal/dto/response"
	"spa-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// WizardService owns the multi-step booking flow: a draft session lives in
// Redis, moves through the step machine, and ends in a submission that
// creates the booking and, for gateway payments, a payment redirect URL.
type WizardService interface {
	StartSession(ctx context.Context, userID *uuid.UUID, req *request.StartWizardRequest) (*response.WizardSessionResponse, error)
	GetSession(ctx context.Context, sessionID string) (*response.WizardSessionResponse, error)
	UpdateDraft(ctx context.Context, sessionID string, req *request.UpdateDraftRequest) (*response.WizardSessionResponse, error)
	Next(ctx context.Context, sessionID string) (*response.WizardSessionResponse, error)
	Prev(ctx context.Context, sessionID string) (*response.WizardSessionResponse, error)
	Submit(ctx context.Context, sessionID, ipAddr string) (*response.SubmitResponse, error)
	Abandon(ctx context.Context, sessionID string) error

	QuickBook(ctx context.Context, userID *uuid.UUID, req *request.QuickBookingRequest, ipAddr string) (*response.SubmitResponse, error)
}

type wizardService struct {
	repo    *repository.Repository
	booking BookingService
	payment PaymentService
	log     *zap.Logger
	now     func() time.Time
}

func NewWizardService(repo *repository.Repository, booking BookingService, payment PaymentService, log *zap.Logger) WizardService {
	return &wizardService{
		repo:    repo,
		booking: booking,
		payment: payment,
		log:     log.With(zap.String("service", "wizard")),
		now:     time.Now,
	}
}

func (s *wizardService) StartSession(ctx context.Context, userID *uuid.UUID, req *request.StartWizardRequest) (*response.WizardSessionResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Start wizard validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	draft := entity.BookingDraft{Language: "en"}
	if req.Language != "" {
		draft.Language = req.Language
	}
	draft.Name = req.Name
	draft.Email = req.Email
	draft.Phone = req.Phone

	// Prefill resolution. Entry widgets pass ids they already collected; a
	// lookup that fails is logged and skipped so the visitor just starts a
	// step earlier.
	if req.ServiceID != "" {
		if svc := s.lookupService(ctx, req.ServiceID); svc != nil {
			draft.ServiceIDs = []string{svc.ID.String()}
		}
	}
	if req.BranchID != "" {
		if branch := s.lookupBranch(ctx, req.BranchID); branch != nil {
			draft.Branch = &entity.BranchSnapshot{
				ID:      branch.ID,
				Name:    branch.Name,
				Address: branch.Address,
				Phone:   branch.Phone,
			}
		}
	}
	if req.Date != "" && req.Time != "" {
		if validDate(req.Date) && validTime(req.Time) {
			draft.Date = req.Date
			draft.Time = req.Time
		} else {
			s.log.Warn("Prefill date/time malformed, skipped",
				zap.String("date", req.Date),
				zap.String("time", req.Time),
			)
		}
	}

	// Member details are copied once at creation; later account changes do
	// not flow into an open draft.
	if userID != nil {
		draft.UserID = userID
		if user, err := s.repo.User.FindByID(ctx, *userID); err == nil && user != nil {
			if draft.Name == "" {
				draft.Name = user.Name
			}
			if draft.Email == "" {
				draft.Email = user.Email
			}
			if draft.Phone == "" {
				draft.Phone = user.Phone
			}
		}
	}

	// Start-step cascade over what actually resolved.
	hasService := len(draft.ServiceIDs) > 0
	hasBranch := draft.Branch != nil
	step := entity.StepSelectServices
	switch {
	case hasService && hasBranch && draft.Date != "" && draft.Time != "":
		step = entity.StepContactInfo
	case hasService && hasBranch && req.AIAssist:
		step = entity.StepPickDateTime
		draft.UseAI = true
		if draft.Date == "" {
			draft.Date = s.now().Format("2006-01-02")
		}
	case hasService && hasBranch:
		step = entity.StepPickDateTime
	case hasService:
		step = entity.StepChooseBranch
	}

	now := s.now()
	session := &entity.WizardSession{
		ID:          uuid.NewString(),
		CurrentStep: step,
		Draft:       draft,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Draft.Save(ctx, session); err != nil {
		return nil, err
	}

	s.log.Info("Wizard session started",
		zap.String("session_id", session.ID),
		zap.String("step", step.String()),
		zap.String("source", req.Source),
	)

	return s.toResponse(ctx, session), nil
}

func (s *wizardService) GetSession(ctx context.Context, sessionID string) (*response.WizardSessionResponse, error) {
	session, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.toResponse(ctx, session), nil
}

func (s *wizardService) UpdateDraft(ctx context.Context, sessionID string, req *request.UpdateDraftRequest) (*response.WizardSessionResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update draft validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	session, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	// Work on a copy and swap it in whole; the stored draft is replaced,
	// never mutated in place.
	draft := session.Draft

	if req.ServiceIDs != nil {
		draft.ServiceIDs = dedupe(*req.ServiceIDs)
	}
	if req.ToggleServiceID != nil {
		draft.ServiceIDs = toggle(draft.ServiceIDs, *req.ToggleServiceID)
	}
	if req.BranchID != nil {
		branch := s.lookupBranch(ctx, *req.BranchID)
		if branch == nil {
			return nil, fmt.Errorf("branch %s not found", *req.BranchID)
		}
		draft.Branch = &entity.BranchSnapshot{
			ID:      branch.ID,
			Name:    branch.Name,
			Address: branch.Address,
			Phone:   branch.Phone,
		}
	}
	if req.Date != nil {
		draft.Date = *req.Date
	}
	if req.Time != nil {
		draft.Time = *req.Time
	}
	if req.Name != nil {
		draft.Name = *req.Name
	}
	if req.Email != nil {
		draft.Email = *req.Email
	}
	if req.Phone != nil {
		draft.Phone = *req.Phone
	}
	if req.Notes != nil {
		draft.Notes = *req.Notes
	}
	if req.PaymentMethod != nil {
		draft.PaymentMethod = *req.PaymentMethod
	}
	if req.PaymentDetailsComplete != nil {
		draft.PaymentDetailsComplete = *req.PaymentDetailsComplete
	}
	if req.PromoCode != nil {
		draft.PromoCode = *req.PromoCode
	}
	if req.Language != nil {
		draft.Language = *req.Language
	}
	if req.UseAI != nil {
		draft.UseAI = *req.UseAI
		// Turning assist on without a date picks today as the starting
		// point; turning it off keeps whatever was already chosen.
		if draft.UseAI && draft.Date == "" {
			draft.Date = s.now().Format("2006-01-02")
		}
	}

	session.Draft = draft
	session.UpdatedAt = s.now()

	if err := s.repo.Draft.Save(ctx, session); err != nil {
		return nil, err
	}

	return s.toResponse(ctx, session), nil
}

func (s *wizardService) Next(ctx context.Context, sessionID string) (*response.WizardSessionResponse, error) {
	session, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if errs := StepFieldErrors(session.CurrentStep, &session.Draft); len(errs) > 0 {
		return nil, &StepIncompleteError{Step: session.CurrentStep.String(), Fields: errs}
	}

	if next, ok := session.CurrentStep.Next(); ok {
		session.CurrentStep = next
		session.UpdatedAt = s.now()
		if err := s.repo.Draft.Save(ctx, session); err != nil {
			return nil, err
		}
	}

	return s.toResponse(ctx, session), nil
}

func (s *wizardService) Prev(ctx context.Context, sessionID string) (*response.WizardSessionResponse, error) {
	session, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	// Going back never re-validates.
	if prev, ok := session.CurrentStep.Prev(); ok {
		session.CurrentStep = prev
		session.UpdatedAt = s.now()
		if err := s.repo.Draft.Save(ctx, session); err != nil {
			return nil, err
		}
	}

	return s.toResponse(ctx, session), nil
}

func (s *wizardService) Submit(ctx context.Context, sessionID, ipAddr string) (*response.SubmitResponse, error) {
	session, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	result, err := s.submitDraft(ctx, session.Draft.UserID, &session.Draft, ipAddr)
	if err != nil {
		// The session survives a failed submission so the visitor can fix
		// the draft and retry. A booking created before a payment-URL
		// failure stays as well; there is no compensating cancellation.
		return nil, err
	}

	if err := s.repo.Draft.Delete(ctx, sessionID); err != nil {
		s.log.Warn("Failed to delete wizard session after submit",
			zap.Error(err),
			zap.String("session_id", sessionID),
		)
	}

	return result, nil
}

func (s *wizardService) Abandon(ctx context.Context, sessionID string) error {
	// Deleting an unknown session is fine; abandon is idempotent.
	return s.repo.Draft.Delete(ctx, sessionID)
}

// QuickBook is the one-shot path: the whole draft arrives in a single
// request and is validated as one conjunction, then submitted exactly like
// a wizard draft.
func (s *wizardService) QuickBook(ctx context.Context, userID *uuid.UUID, req *request.QuickBookingRequest, ipAddr string) (*response.SubmitResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Quick booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	draft := entity.BookingDraft{
		ServiceIDs:             dedupe(req.ServiceIDs),
		Date:                   req.Date,
		Time:                   req.Time,
		Name:                   req.Name,
		Email:                  req.Email,
		Phone:                  req.Phone,
		Notes:                  req.Notes,
		PaymentMethod:          req.PaymentMethod,
		PaymentDetailsComplete: req.PaymentDetailsComplete,
		PromoCode:              req.PromoCode,
		Language:               req.Language,
		UserID:                 userID,
	}
	if draft.Language == "" {
		draft.Language = "en"
	}

	// Unlike wizard prefill there is no earlier step to fall back to, so an
	// unresolvable branch is an explicit failure.
	branch := s.lookupBranch(ctx, req.BranchID)
	if branch == nil {
		return nil, fmt.Errorf("branch %s not found", req.BranchID)
	}
	draft.Branch = &entity.BranchSnapshot{
		ID:      branch.ID,
		Name:    branch.Name,
		Address: branch.Address,
		Phone:   branch.Phone,
	}

	if userID != nil {
		if user, err := s.repo.User.FindByID(ctx, *userID); err == nil && user != nil {
			if draft.Name == "" {
				draft.Name = user.Name
			}
			if draft.Email == "" {
				draft.Email = user.Email
			}
			if draft.Phone == "" {
				draft.Phone = user.Phone
			}
		}
	}

	return s.submitDraft(ctx, userID, &draft, ipAddr)
}

// submitDraft runs the full submission conjunction and then the two
// collaborators in strict order: the booking is created first, and only a
// created booking with a gateway payment asks for a payment URL.
func (s *wizardService) submitDraft(ctx context.Context, userID *uuid.UUID, draft *entity.BookingDraft, ipAddr string) (*response.SubmitResponse, error) {
	if errs := SubmitFieldErrors(draft); len(errs) > 0 {
		return nil, &StepIncompleteError{Step: "submit", Fields: errs}
	}

	booking, err := s.booking.Create(ctx, userID, &request.CreateBookingRequest{
		ServiceIDs:    draft.ServiceIDs,
		BranchID:      draft.Branch.ID.String(),
		Date:          draft.Date,
		Time:          draft.Time,
		Name:          draft.Name,
		Email:         draft.Email,
		Phone:         draft.Phone,
		Notes:         draft.Notes,
		PaymentMethod: draft.PaymentMethod,
		Language:      draft.Language,
	})
	if err != nil {
		return nil, err
	}

	result := &response.SubmitResponse{
		ReferenceNumber: booking.ReferenceNumber,
		BookingID:       booking.ID,
	}

	paymentType, _ := entity.WirePaymentType(draft.PaymentMethod)
	if !paymentType.IsGateway() {
		return result, nil
	}

	locale := "en"
	if draft.Language == "vi" {
		locale = "vn"
	}
	urlResp, err := s.payment.CreatePaymentURL(ctx, &request.CreatePaymentURLRequest{
		BookingID: booking.ID,
		Locale:    locale,
	}, ipAddr)
	if err != nil {
		s.log.Error("Payment URL creation failed after booking",
			zap.Error(err),
			zap.String("reference", booking.ReferenceNumber),
		)
		return nil, fmt.Errorf("booking %s was created but the payment could not be started: %w", booking.ReferenceNumber, err)
	}

	result.PaymentURL = &urlResp.PaymentURL
	return result, nil
}

func (s *wizardService) load(ctx context.Context, sessionID string) (*entity.WizardSession, error) {
	session, err := s.repo.Draft.Find(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, fmt.Errorf("wizard session %s not found", sessionID)
	}
	return session, nil
}

func validDate(v string) bool {
	_, err := time.Parse("2006-01-02", v)
	return err == nil
}

func validTime(v string) bool {
	_, err := time.Parse("15:04", v)
	return err == nil
}

func (s *wizardService) lookupService(ctx context.Context, raw string) *entity.Service {
	id, err := uuid.Parse(raw)
	if err != nil {
		s.log.Warn("Prefill service id unparseable", zap.String("service_id", raw))
		return nil
	}
	svc, err := s.repo.Service.FindByID(ctx, id)
	if err != nil || svc == nil {
		s.log.Warn("Prefill service lookup failed", zap.String("service_id", raw), zap.Error(err))
		return nil
	}
	return svc
}

func (s *wizardService) lookupBranch(ctx context.Context, raw string) *entity.Branch {
	id, err := uuid.Parse(raw)
	if err != nil {
		s.log.Warn("Prefill branch id unparseable", zap.String("branch_id", raw))
		return nil
	}
	branch, err := s.repo.Branch.FindByID(ctx, id)
	if err != nil || branch == nil {
		s.log.Warn("Prefill branch lookup failed", zap.String("branch_id", raw), zap.Error(err))
		return nil
	}
	return branch
}

// toResponse derives the client view: selected services are resolved from
// the stored ids, totals are summed over what resolved.
func (s *wizardService) toResponse(ctx context.Context, session *entity.WizardSession) *response.WizardSessionResponse {
	draft := session.Draft

	selected := make([]response.ServiceResponse, 0, len(draft.ServiceIDs))
	var totalPrice float64
	var totalDuration int
	if len(draft.ServiceIDs) > 0 {
		ids := make([]uuid.UUID, 0, len(draft.ServiceIDs))
		for _, raw := range draft.ServiceIDs {
			if id, err := uuid.Parse(raw); err == nil {
				ids = append(ids, id)
			}
		}
		services, err := s.repo.Service.FindByIDs(ctx, ids)
		if err != nil {
			s.log.Warn("Failed to derive selected services",
				zap.Error(err),
				zap.String("session_id", session.ID),
			)
		}
		for _, svc := range services {
			selected = append(selected, response.ServiceToResponse(svc, nil))
			totalPrice += svc.Price
			totalDuration += svc.Duration
		}
	}

	fieldErrors := StepFieldErrors(session.CurrentStep, &draft)
	if len(fieldErrors) == 0 {
		fieldErrors = nil
	}

	return &response.WizardSessionResponse{
		ID:          session.ID,
		CurrentStep: session.CurrentStep.String(),
		StepNumber:  int(session.CurrentStep),
		Draft: response.DraftResponse{
			ServiceIDs:             draft.ServiceIDs,
			SelectedServices:       selected,
			Branch:                 draft.Branch,
			Date:                   draft.Date,
			Time:                   draft.Time,
			Name:                   draft.Name,
			Email:                  draft.Email,
			Phone:                  draft.Phone,
			Notes:                  draft.Notes,
			PaymentMethod:          draft.PaymentMethod,
			PaymentDetailsComplete: draft.PaymentDetailsComplete,
			PromoCode:              draft.PromoCode,
			UseAI:                  draft.UseAI,
			Language:               draft.Language,
			TotalPrice:             totalPrice,
			TotalDuration:          totalDuration,
		},
		CanContinue: len(fieldErrors) == 0,
		FieldErrors: fieldErrors,
		CreatedAt:   session.CreatedAt,
		UpdatedAt:   session.UpdatedAt,
	}
}

// dedupe keeps first occurrences, preserving order.
func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// toggle flips one id in or out of the selection; applying it twice
// restores the original set.
func toggle(ids []string, id string) []string {
	out := make([]string, 0, len(ids)+1)
	removed := false
	for _, existing := range ids {
		if existing == id {
			removed = true
			continue
		}
		out = append(out, existing)
	}
	if !removed {
		out = append(out, id)
	}
	return out
}
