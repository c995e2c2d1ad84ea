package usecase

import (
	"context"
	"testing"
	"time"

	"spa-booking/internal/data/entity"
	"spa-booking/internal/data/repository"

	"go.uber.org/zap"
)

func weekHours(open, close string) entity.OperatingHours {
	hours := entity.OperatingHours{}
	for _, day := range []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday"} {
		hours[day] = &entity.DayHours{Open: open, Close: close}
	}
	// sunday closed
	return hours
}

func newTestAvailability(t *testing.T) (*availabilityService, *testRepo) {
	t.Helper()
	repo, fakes := newTestRepo()
	svc := NewAvailabilityService(repo, zap.NewNop()).(*availabilityService)
	svc.now = func() time.Time {
		return time.Date(2026, 9, 1, 8, 0, 0, 0, time.Local)
	}
	return svc, fakes
}

func TestSlotsRespectGridAndClose(t *testing.T) {
	svc, fakes := newTestAvailability(t)
	branch := addBranch(fakes, "Downtown", weekHours("09:00", "12:00"))

	slots, err := svc.SlotsForDuration(context.Background(), branch.ID, "2026-09-10", 60)
	if err != nil {
		t.Fatalf("SlotsForDuration: %v", err)
	}

	want := []string{"09:00", "09:30", "10:00", "10:30", "11:00"}
	if len(slots) != len(want) {
		t.Fatalf("slot count = %d, want %d (%v)", len(slots), len(want), slots)
	}
	for i, w := range want {
		if slots[i].Time != w {
			t.Errorf("slot[%d] = %s, want %s", i, slots[i].Time, w)
		}
		if !slots[i].Available {
			t.Errorf("slot %s unexpectedly unavailable", w)
		}
	}
}

func TestSlotsLongServiceShortensTheDay(t *testing.T) {
	svc, fakes := newTestAvailability(t)
	branch := addBranch(fakes, "Downtown", weekHours("09:00", "18:00"))

	slots, err := svc.SlotsForDuration(context.Background(), branch.ID, "2026-09-10", 120)
	if err != nil {
		t.Fatalf("SlotsForDuration: %v", err)
	}
	last := slots[len(slots)-1]
	if last.Time != "16:00" {
		t.Errorf("last slot = %s, want 16:00 so a 2h service still finishes by close", last.Time)
	}
}

func TestSlotsBufferAroundExistingBooking(t *testing.T) {
	svc, fakes := newTestAvailability(t)
	branch := addBranch(fakes, "Downtown", weekHours("09:00", "18:00"))
	// One appointment 12:00-13:00.
	fakes.bookings.dayBusy = []repository.BranchDayBooking{
		{AppointmentTime: "12:00", TotalDuration: 60},
	}

	slots, err := svc.SlotsForDuration(context.Background(), branch.ID, "2026-09-10", 30)
	if err != nil {
		t.Fatalf("SlotsForDuration: %v", err)
	}

	availability := map[string]bool{}
	for _, s := range slots {
		availability[s.Time] = s.Available
	}

	tests := []struct {
		slot string
		want bool
	}{
		{"11:00", true},  // ends 11:30, clear of the 11:45 buffer line
		{"11:30", false}, // ends 12:00, inside the leading buffer
		{"12:00", false},
		{"12:30", false},
		{"13:00", false}, // starts inside the trailing buffer
		{"13:30", true},
	}
	for _, tt := range tests {
		got, ok := availability[tt.slot]
		if !ok {
			t.Fatalf("slot %s missing from grid", tt.slot)
		}
		if got != tt.want {
			t.Errorf("slot %s available = %v, want %v", tt.slot, got, tt.want)
		}
	}
}

func TestSlotsTodayDropsPastTimes(t *testing.T) {
	svc, fakes := newTestAvailability(t)
	branch := addBranch(fakes, "Downtown", weekHours("09:00", "18:00"))
	svc.now = func() time.Time {
		return time.Date(2026, 9, 10, 10, 10, 0, 0, time.Local)
	}

	slots, err := svc.SlotsForDuration(context.Background(), branch.ID, "2026-09-10", 30)
	if err != nil {
		t.Fatalf("SlotsForDuration: %v", err)
	}
	if len(slots) == 0 {
		t.Fatal("no slots at all")
	}
	if slots[0].Time != "10:30" {
		t.Errorf("first slot = %s, want 10:30 (earlier times already passed)", slots[0].Time)
	}
}

func TestSlotsClosedDay(t *testing.T) {
	svc, fakes := newTestAvailability(t)
	branch := addBranch(fakes, "Downtown", weekHours("09:00", "18:00"))

	// 2026-09-13 is a Sunday, which has no hours entry.
	slots, err := svc.SlotsForDuration(context.Background(), branch.ID, "2026-09-13", 30)
	if err != nil {
		t.Fatalf("SlotsForDuration: %v", err)
	}
	if slots == nil {
		t.Fatal("closed day must return an empty grid, not nil")
	}
	if len(slots) != 0 {
		t.Errorf("closed day returned %d slots", len(slots))
	}
}

func TestSlotsUnknownBranch(t *testing.T) {
	svc, fakes := newTestAvailability(t)
	branch := addBranch(fakes, "Downtown", weekHours("09:00", "18:00"))
	delete(fakes.branches.branches, branch.ID)

	if _, err := svc.SlotsForDuration(context.Background(), branch.ID, "2026-09-10", 30); err == nil {
		t.Fatal("expected error for unknown branch")
	}
}

func TestGetAvailabilityUsesServiceDuration(t *testing.T) {
	svc, fakes := newTestAvailability(t)
	branch := addBranch(fakes, "Downtown", weekHours("09:00", "11:00"))
	long := addService(fakes, "Hot Stone", 500000, 90)

	got, err := svc.GetAvailability(context.Background(), long.ID.String(), branch.ID.String(), "2026-09-10")
	if err != nil {
		t.Fatalf("GetAvailability: %v", err)
	}
	// 90 minutes inside 09:00-11:00 fits only at 09:00 and 09:30.
	if len(got.Slots) != 2 {
		t.Errorf("slot count = %d, want 2 (%v)", len(got.Slots), got.Slots)
	}
	if got.Date != "2026-09-10" {
		t.Errorf("date = %s", got.Date)
	}
}
