package entity

import (
	"time"
)

// DayHours is an open/close pair in HH:MM. A nil entry means closed that day.
type DayHours struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// OperatingHours maps lowercase weekday names ("monday"...) to hours.
type OperatingHours map[string]*DayHours

// ForDate returns the hours for the weekday of t, or nil when closed.
func (h OperatingHours) ForDate(t time.Time) *DayHours {
	if h == nil {
		return nil
	}
	return h[weekdayKey(t.Weekday())]
}

func weekdayKey(d time.Weekday) string {
	switch d {
	case time.Sunday:
		return "sunday"
	case time.Monday:
		return "monday"
	case time.Tuesday:
		return "tuesday"
	case time.Wednesday:
		return "wednesday"
	case time.Thursday:
		return "thursday"
	case time.Friday:
		return "friday"
	case time.Saturday:
		return "saturday"
	}
	return ""
}

type Branch struct {
	BaseNoDelete
	Name           string         `db:"name"`
	Slug           string         `db:"slug"`
	Address        string         `db:"address"`
	Phone          string         `db:"phone"`
	Email          *string        `db:"email"`
	Latitude       *float64       `db:"latitude"`
	Longitude      *float64       `db:"longitude"`
	Images         []string       `db:"images"`
	OperatingHours OperatingHours `db:"operating_hours"`
	Active         bool           `db:"active"`
}
