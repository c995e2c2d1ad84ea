package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"spa-booking/internal/dto/request"
	"spa-booking/internal/dto/response"
	"spa-booking/pkg/utils"

	genai "github.com/google/generative-ai-go/genai"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

const defaultSuggestDuration = 60 // minutes, used when no services given

type SuggestService interface {
	SuggestTimeslot(ctx context.Context, req *request.SuggestTimeslotRequest) (*response.SuggestTimeslotResponse, error)
	Health() *response.AIHealthResponse
}

type suggestService struct {
	catalog      CatalogService
	availability AvailabilityService
	model        *genai.GenerativeModel
	modelName    string
	log          *zap.Logger
}

// NewSuggestService builds the suggestion service. The Gemini model is
// optional: without an API key (or when the client fails to initialize)
// suggestions still work on the deterministic heuristic alone.
func NewSuggestService(catalog CatalogService, availability AvailabilityService, cfg *utils.Config, log *zap.Logger) SuggestService {
	s := &suggestService{
		catalog:      catalog,
		availability: availability,
		modelName:    cfg.AI.Model,
		log:          log.With(zap.String("service", "suggest")),
	}

	if cfg.AI.GeminiAPIKey != "" {
		client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.AI.GeminiAPIKey))
		if err != nil {
			s.log.Warn("Failed to create Gemini client, falling back to heuristic reasons", zap.Error(err))
		} else {
			s.model = client.GenerativeModel(cfg.AI.Model)
		}
	}

	return s
}

func (s *suggestService) SuggestTimeslot(ctx context.Context, req *request.SuggestTimeslotRequest) (*response.SuggestTimeslotResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	branchID, err := uuid.Parse(req.BranchID)
	if err != nil {
		return nil, fmt.Errorf("invalid branch ID format %s", req.BranchID)
	}

	duration := defaultSuggestDuration
	if len(req.ServiceIDs) > 0 {
		services, err := s.catalog.ResolveServices(ctx, req.ServiceIDs)
		if err != nil {
			return nil, err
		}
		duration = 0
		for _, svc := range services {
			duration += svc.Duration
		}
	}

	slots, err := s.availability.SlotsForDuration(ctx, branchID, req.Date, duration)
	if err != nil {
		return nil, err
	}

	scored := scoreSlots(slots)
	if len(scored) == 0 {
		return &response.SuggestTimeslotResponse{
			SuggestedSlots: []response.SuggestedSlot{},
			Confidence:     0,
			Message:        "No available time slots on this date",
		}, nil
	}

	if len(scored) > 3 {
		scored = scored[:3]
	}

	s.rewriteReasons(ctx, req.Date, scored)

	best := scored[0]
	confidence := best.Score
	if confidence > 0.95 {
		confidence = 0.95
	}

	return &response.SuggestTimeslotResponse{
		SuggestedSlots: scored,
		BestSlot:       &best,
		Confidence:     confidence,
	}, nil
}

func (s *suggestService) Health() *response.AIHealthResponse {
	resp := &response.AIHealthResponse{Status: "ok", Enabled: s.model != nil}
	if s.model != nil {
		resp.Model = s.modelName
	}
	return resp
}

// scoreSlots ranks the available slots with a deterministic heuristic:
// quiet hours score higher, a free neighboring slot adds slack for
// overruns.
func scoreSlots(slots []response.TimeSlot) []response.SuggestedSlot {
	var scored []response.SuggestedSlot
	for i, slot := range slots {
		if !slot.Available {
			continue
		}

		minutes, err := parseClock(slot.Time)
		if err != nil {
			continue
		}

		score := 0.5
		reasons := []string{}

		switch {
		case minutes < 11*60:
			score += 0.2
			reasons = append(reasons, "quiet morning hours")
		case minutes >= 15*60:
			score += 0.1
			reasons = append(reasons, "calmer late afternoon")
		default:
			reasons = append(reasons, "midday availability")
		}

		if i+1 < len(slots) && slots[i+1].Available {
			score += 0.15
			reasons = append(reasons, "open slot right after for extra slack")
		}

		scored = append(scored, response.SuggestedSlot{
			Time:   slot.Time,
			Score:  score,
			Reason: strings.Join(reasons, ", "),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return scored
}

// rewriteReasons asks Gemini for friendlier reason lines, one per slot.
// Any failure or shape mismatch leaves the heuristic reasons untouched.
func (s *suggestService) rewriteReasons(ctx context.Context, date string, slots []response.SuggestedSlot) {
	if s.model == nil || len(slots) == 0 {
		return
	}

	var b strings.Builder
	b.WriteString("You are a spa booking assistant. For each suggested appointment slot below, ")
	b.WriteString("write one short friendly sentence (no numbering, one per line, same order) ")
	b.WriteString("telling the customer why this time works well. Date: ")
	b.WriteString(date)
	b.WriteString("\n")
	for _, slot := range slots {
		fmt.Fprintf(&b, "- %s (%s)\n", slot.Time, slot.Reason)
	}

	resp, err := s.model.GenerateContent(ctx, genai.Text(b.String()))
	if err != nil {
		s.log.Warn("Gemini rewrite failed, keeping heuristic reasons", zap.Error(err))
		return
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}

	var lines []string
	for _, line := range strings.Split(sb.String(), "\n") {
		line = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "-"))
		if line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) < len(slots) {
		s.log.Warn("Gemini returned fewer reasons than slots, keeping heuristic reasons")
		return
	}

	for i := range slots {
		slots[i].Reason = lines[i]
	}
}
