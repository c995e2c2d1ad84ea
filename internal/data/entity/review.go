package entity

import (
	"github.com/google/uuid"
)

type Review struct {
	BaseSimple
	UserID    *uuid.UUID `db:"user_id"`
	ServiceID *uuid.UUID `db:"service_id"`
	BranchID  *uuid.UUID `db:"branch_id"`
	Rating    int        `db:"rating"` // 1-5
	Comment   *string    `db:"comment"`
	Name      string     `db:"name"`
	Email     *string    `db:"email"`
}
