package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Base
	Name  string `db:"name"`
	Email string `db:"email"`
	Phone string `db:"phone"`
	Role  string `db:"role"` // customer | admin
}

// Session is an opaque auth token issued out of band. This service only
// validates it; it never mints or refreshes sessions.
type Session struct {
	BaseSimple
	UserID    uuid.UUID `db:"user_id"`
	Token     string    `db:"token"`
	ExpiresAt time.Time `db:"expires_at"`
}
