package repository

import (
	"context"
	"fmt"
	"time"

	"spa-booking/internal/data/entity"
	"spa-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// BranchDayBooking is the slice of a booking the availability engine needs.
type BranchDayBooking struct {
	AppointmentTime string
	TotalDuration   int
}

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByReference(ctx context.Context, referenceNumber string) (*entity.Booking, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int, status *entity.BookingStatus) ([]*entity.Booking, error)
	CountByUserID(ctx context.Context, userID uuid.UUID, status *entity.BookingStatus) (int64, error)
	Update(ctx context.Context, booking *entity.Booking) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Business queries
	FindActiveByBranchAndDate(ctx context.Context, branchID uuid.UUID, date time.Time) ([]BranchDayBooking, error)
	CountByStatus(ctx context.Context, status *entity.BookingStatus, from, to *time.Time) (int64, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, reference_number, user_id, branch_id, appointment_date, appointment_time,
	status, guest_name, guest_email, guest_phone, notes, language, total_price, total_duration,
	cancellation_reason, created_at, updated_at`

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var b entity.Booking
	err := row.Scan(
		&b.ID,
		&b.ReferenceNumber,
		&b.UserID,
		&b.BranchID,
		&b.AppointmentDate,
		&b.AppointmentTime,
		&b.Status,
		&b.GuestName,
		&b.GuestEmail,
		&b.GuestPhone,
		&b.Notes,
		&b.Language,
		&b.TotalPrice,
		&b.TotalDuration,
		&b.CancellationReason,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, reference_number, user_id, branch_id, appointment_date, appointment_time,
			status, guest_name, guest_email, guest_phone, notes, language, total_price, total_duration,
			cancellation_reason, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.ReferenceNumber,
		booking.UserID,
		booking.BranchID,
		booking.AppointmentDate,
		booking.AppointmentTime,
		booking.Status,
		booking.GuestName,
		booking.GuestEmail,
		booking.GuestPhone,
		booking.Notes,
		booking.Language,
		booking.TotalPrice,
		booking.TotalDuration,
		booking.CancellationReason,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("reference_number", booking.ReferenceNumber),
		)
		return fmt.Errorf("create booking %s: %w", booking.ReferenceNumber, err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	b, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return b, nil
}

func (r *bookingRepository) FindByReference(ctx context.Context, referenceNumber string) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE reference_number = $1`

	b, err := scanBooking(r.db.QueryRow(ctx, query, referenceNumber))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by reference",
			zap.Error(err),
			zap.String("reference_number", referenceNumber),
		)
		return nil, fmt.Errorf("find booking by reference %s: %w", referenceNumber, err)
	}

	return b, nil
}

func (r *bookingRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int, status *entity.BookingStatus) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE user_id = $1
		  AND ($4::text IS NULL OR status = $4)
		ORDER BY appointment_date DESC, created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, userID, limit, offset, status)
	if err != nil {
		r.log.Error("Failed to find bookings by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find bookings by user ID %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, b)
	}

	return bookings, nil
}

func (r *bookingRepository) CountByUserID(ctx context.Context, userID uuid.UUID, status *entity.BookingStatus) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE user_id = $1 AND ($2::text IS NULL OR status = $2)`

	var count int64
	if err := r.db.QueryRow(ctx, query, userID, status).Scan(&count); err != nil {
		r.log.Error("Failed to count bookings by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("count bookings by user ID %s: %w", userID.String(), err)
	}

	return count, nil
}

func (r *bookingRepository) Update(ctx context.Context, booking *entity.Booking) error {
	query := `
		UPDATE bookings
		SET status = $2, notes = $3, cancellation_reason = $4, updated_at = $5
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.Status,
		booking.Notes,
		booking.CancellationReason,
		booking.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to update booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
		return fmt.Errorf("update booking %s: %w", booking.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", booking.ID.String())
	}

	return nil
}

func (r *bookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete booking",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return fmt.Errorf("delete booking %s: %w", id.String(), err)
	}
	return nil
}

func (r *bookingRepository) FindActiveByBranchAndDate(ctx context.Context, branchID uuid.UUID, date time.Time) ([]BranchDayBooking, error) {
	query := `
		SELECT appointment_time, total_duration
		FROM bookings
		WHERE branch_id = $1
		  AND appointment_date = $2
		  AND status IN ('PENDING', 'CONFIRMED')
	`

	rows, err := r.db.Query(ctx, query, branchID, date)
	if err != nil {
		r.log.Error("Failed to find bookings by branch and date",
			zap.Error(err),
			zap.String("branch_id", branchID.String()),
			zap.Time("date", date),
		)
		return nil, fmt.Errorf("find bookings by branch and date: %w", err)
	}
	defer rows.Close()

	var bookings []BranchDayBooking
	for rows.Next() {
		var b BranchDayBooking
		if err := rows.Scan(&b.AppointmentTime, &b.TotalDuration); err != nil {
			return nil, fmt.Errorf("scan branch day booking: %w", err)
		}
		bookings = append(bookings, b)
	}

	return bookings, nil
}

func (r *bookingRepository) CountByStatus(ctx context.Context, status *entity.BookingStatus, from, to *time.Time) (int64, error) {
	query := `
		SELECT COUNT(*) FROM bookings
		WHERE ($1::text IS NULL OR status = $1)
		  AND ($2::timestamptz IS NULL OR appointment_date >= $2)
		  AND ($3::timestamptz IS NULL OR appointment_date <= $3)
	`

	var count int64
	if err := r.db.QueryRow(ctx, query, status, from, to).Scan(&count); err != nil {
		r.log.Error("Failed to count bookings by status", zap.Error(err))
		return 0, fmt.Errorf("count bookings by status: %w", err)
	}

	return count, nil
}
