package entity

import (
	"testing"
	"time"
)

func TestOperatingHoursForDate(t *testing.T) {
	hours := OperatingHours{
		"monday":   {Open: "09:00", Close: "18:00"},
		"saturday": {Open: "10:00", Close: "16:00"},
		// sunday closed
	}

	monday := time.Date(2026, 9, 7, 0, 0, 0, 0, time.Local)
	if got := hours.ForDate(monday); got == nil || got.Open != "09:00" {
		t.Fatalf("monday hours = %+v, want open 09:00", got)
	}

	saturday := time.Date(2026, 9, 5, 0, 0, 0, 0, time.Local)
	if got := hours.ForDate(saturday); got == nil || got.Close != "16:00" {
		t.Fatalf("saturday hours = %+v, want close 16:00", got)
	}

	sunday := time.Date(2026, 9, 6, 0, 0, 0, 0, time.Local)
	if got := hours.ForDate(sunday); got != nil {
		t.Fatalf("sunday hours = %+v, want closed", got)
	}

	var none OperatingHours
	if got := none.ForDate(monday); got != nil {
		t.Fatal("nil hours should read as closed")
	}
}
