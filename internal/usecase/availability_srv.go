package usecase

import (
	"context"
	"fmt"
	"time"

	"spa-booking/internal/data/repository"
	"spa-booking/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	slotIntervalMin = 30 // slot grid granularity
	slotBufferMin   = 15 // gap required between appointments
)

type AvailabilityService interface {
	GetAvailability(ctx context.Context, serviceID, branchID, date string) (*response.AvailabilityResponse, error)
	SlotsForDuration(ctx context.Context, branchID uuid.UUID, date string, totalDuration int) ([]response.TimeSlot, error)
}

type availabilityService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewAvailabilityService(repo *repository.Repository, log *zap.Logger) AvailabilityService {
	return &availabilityService{
		repo: repo,
		log:  log.With(zap.String("service", "availability")),
		now:  time.Now,
	}
}

func (s *availabilityService) GetAvailability(ctx context.Context, serviceID, branchID, date string) (*response.AvailabilityResponse, error) {
	svcID, err := uuid.Parse(serviceID)
	if err != nil {
		return nil, fmt.Errorf("invalid service ID format %s", serviceID)
	}
	brID, err := uuid.Parse(branchID)
	if err != nil {
		return nil, fmt.Errorf("invalid branch ID format %s", branchID)
	}

	svc, err := s.repo.Service.FindByID(ctx, svcID)
	if err != nil {
		return nil, fmt.Errorf("get service: %w", err)
	}
	if svc == nil {
		return nil, fmt.Errorf("service %s not found", serviceID)
	}

	slots, err := s.SlotsForDuration(ctx, brID, date, svc.Duration)
	if err != nil {
		return nil, err
	}

	return &response.AvailabilityResponse{Date: date, Slots: slots}, nil
}

// SlotsForDuration computes the slot grid for one branch day: slots every
// 30 minutes inside the branch's operating hours, where an appointment of
// totalDuration minutes still finishes before close, does not collide with
// a pending/confirmed booking (15-minute buffer on both sides), and has
// not already passed when the date is today.
func (s *availabilityService) SlotsForDuration(ctx context.Context, branchID uuid.UUID, date string, totalDuration int) ([]response.TimeSlot, error) {
	day, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid date format %s", date)
	}

	branch, err := s.repo.Branch.FindByID(ctx, branchID)
	if err != nil {
		return nil, fmt.Errorf("get branch: %w", err)
	}
	if branch == nil {
		return nil, fmt.Errorf("branch %s not found", branchID.String())
	}

	hours := branch.OperatingHours.ForDate(day)
	if hours == nil {
		// closed that day
		return []response.TimeSlot{}, nil
	}

	openMin, err := parseClock(hours.Open)
	if err != nil {
		return nil, fmt.Errorf("branch %s has malformed opening time: %w", branchID.String(), err)
	}
	closeMin, err := parseClock(hours.Close)
	if err != nil {
		return nil, fmt.Errorf("branch %s has malformed closing time: %w", branchID.String(), err)
	}

	existing, err := s.repo.Booking.FindActiveByBranchAndDate(ctx, branchID, day)
	if err != nil {
		s.log.Error("Failed to load day bookings",
			zap.Error(err),
			zap.String("branch_id", branchID.String()),
			zap.String("date", date),
		)
		return nil, fmt.Errorf("load day bookings: %w", err)
	}

	now := s.now()
	today := now.Format("2006-01-02") == date
	nowMin := now.Hour()*60 + now.Minute()

	var slots []response.TimeSlot
	for start := openMin; start+totalDuration <= closeMin; start += slotIntervalMin {
		if today && start <= nowMin {
			continue
		}
		slots = append(slots, response.TimeSlot{
			Time:      formatClock(start),
			Available: !conflicts(start, totalDuration, existing),
		})
	}
	if slots == nil {
		slots = []response.TimeSlot{}
	}

	return slots, nil
}

// conflicts reports whether [start, start+duration) comes within the
// buffer of any existing appointment.
func conflicts(start, duration int, existing []repository.BranchDayBooking) bool {
	end := start + duration
	for _, b := range existing {
		bStart, err := parseClock(b.AppointmentTime)
		if err != nil {
			continue
		}
		bEnd := bStart + b.TotalDuration
		if start < bEnd+slotBufferMin && bStart < end+slotBufferMin {
			return true
		}
	}
	return false
}

func parseClock(v string) (int, error) {
	t, err := time.Parse("15:04", v)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q", v)
	}
	return t.Hour()*60 + t.Minute(), nil
}

func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
