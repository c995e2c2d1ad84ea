package repository

import (
	"context"
	"fmt"

	"spa-booking/internal/data/entity"
	"spa-booking/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingServiceRepository interface {
	CreateBatch(ctx context.Context, items []*entity.BookingService) error
	FindServiceIDsByBooking(ctx context.Context, bookingID uuid.UUID) ([]uuid.UUID, error)
	DeleteByBooking(ctx context.Context, bookingID uuid.UUID) error
}

type bookingServiceRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingServiceRepository(db database.PgxIface, log *zap.Logger) BookingServiceRepository {
	return &bookingServiceRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking_service")),
	}
}

func (r *bookingServiceRepository) CreateBatch(ctx context.Context, items []*entity.BookingService) error {
	if len(items) == 0 {
		return nil
	}

	query := `INSERT INTO booking_services (id, booking_id, service_id, created_at) VALUES ($1, $2, $3, $4)`

	for _, item := range items {
		if _, err := r.db.Exec(ctx, query, item.ID, item.BookingID, item.ServiceID, item.CreatedAt); err != nil {
			r.log.Error("Failed to create booking service",
				zap.Error(err),
				zap.String("booking_id", item.BookingID.String()),
				zap.String("service_id", item.ServiceID.String()),
			)
			return fmt.Errorf("create booking service: %w", err)
		}
	}

	return nil
}

func (r *bookingServiceRepository) FindServiceIDsByBooking(ctx context.Context, bookingID uuid.UUID) ([]uuid.UUID, error) {
	query := `SELECT service_id FROM booking_services WHERE booking_id = $1`

	rows, err := r.db.Query(ctx, query, bookingID)
	if err != nil {
		r.log.Error("Failed to find service IDs by booking",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return nil, fmt.Errorf("find service IDs by booking %s: %w", bookingID.String(), err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan service ID: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, nil
}

func (r *bookingServiceRepository) DeleteByBooking(ctx context.Context, bookingID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM booking_services WHERE booking_id = $1`, bookingID)
	if err != nil {
		r.log.Error("Failed to delete booking services",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return fmt.Errorf("delete booking services %s: %w", bookingID.String(), err)
	}
	return nil
}
