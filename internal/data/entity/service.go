package entity

import (
	"github.com/google/uuid"
)

// Service is a bookable treatment. Price is in VND, Duration in minutes.
type Service struct {
	BaseNoDelete
	CategoryID  uuid.UUID `db:"category_id"`
	Name        string    `db:"name"`
	Slug        string    `db:"slug"`
	Description *string   `db:"description"`
	Excerpt     *string   `db:"excerpt"`
	Price       float64   `db:"price"`
	Duration    int       `db:"duration"`
	Images      []string  `db:"images"`
	Featured    bool      `db:"featured"`
	Active      bool      `db:"active"`
}
