package repository

import (
	"context"
	"fmt"

	"spa-booking/internal/data/entity"
	"spa-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ServiceRepository interface {
	FindAll(ctx context.Context, limit, offset int, categoryID *uuid.UUID, featured *bool) ([]*entity.Service, error)
	CountAll(ctx context.Context, categoryID *uuid.UUID, featured *bool) (int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Service, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Service, error)
}

type serviceRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewServiceRepository(db database.PgxIface, log *zap.Logger) ServiceRepository {
	return &serviceRepository{
		db:  db,
		log: log.With(zap.String("repository", "service")),
	}
}

const serviceColumns = `id, category_id, name, slug, description, excerpt, price, duration, images, featured, active, created_at, updated_at`

func scanService(row pgx.Row) (*entity.Service, error) {
	var svc entity.Service
	err := row.Scan(
		&svc.ID,
		&svc.CategoryID,
		&svc.Name,
		&svc.Slug,
		&svc.Description,
		&svc.Excerpt,
		&svc.Price,
		&svc.Duration,
		&svc.Images,
		&svc.Featured,
		&svc.Active,
		&svc.CreatedAt,
		&svc.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *serviceRepository) FindAll(ctx context.Context, limit, offset int, categoryID *uuid.UUID, featured *bool) ([]*entity.Service, error) {
	query := `
		SELECT ` + serviceColumns + `
		FROM services
		WHERE active = true
		  AND ($3::uuid IS NULL OR category_id = $3)
		  AND ($4::boolean IS NULL OR featured = $4)
		ORDER BY name
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset, categoryID, featured)
	if err != nil {
		r.log.Error("Failed to find services",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find services: %w", err)
	}
	defer rows.Close()

	var services []*entity.Service
	for rows.Next() {
		svc, err := scanService(rows)
		if err != nil {
			r.log.Error("Failed to scan service row", zap.Error(err))
			return nil, fmt.Errorf("scan service row: %w", err)
		}
		services = append(services, svc)
	}

	return services, nil
}

func (r *serviceRepository) CountAll(ctx context.Context, categoryID *uuid.UUID, featured *bool) (int64, error) {
	query := `
		SELECT COUNT(*) FROM services
		WHERE active = true
		  AND ($1::uuid IS NULL OR category_id = $1)
		  AND ($2::boolean IS NULL OR featured = $2)
	`

	var count int64
	if err := r.db.QueryRow(ctx, query, categoryID, featured).Scan(&count); err != nil {
		r.log.Error("Failed to count services", zap.Error(err))
		return 0, fmt.Errorf("count services: %w", err)
	}

	return count, nil
}

func (r *serviceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services WHERE id = $1 AND active = true`

	svc, err := scanService(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find service by ID",
			zap.Error(err),
			zap.String("service_id", id.String()),
		)
		return nil, fmt.Errorf("find service by ID %s: %w", id.String(), err)
	}

	return svc, nil
}

func (r *serviceRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Service, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `SELECT ` + serviceColumns + ` FROM services WHERE id = ANY($1) AND active = true`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		r.log.Error("Failed to find services by IDs", zap.Error(err), zap.Int("count", len(ids)))
		return nil, fmt.Errorf("find services by IDs: %w", err)
	}
	defer rows.Close()

	var services []*entity.Service
	for rows.Next() {
		svc, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("scan service row: %w", err)
		}
		services = append(services, svc)
	}

	return services, nil
}
