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

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	FindAll(ctx context.Context, limit, offset int, serviceID, branchID *uuid.UUID) ([]*entity.Review, error)
	CountAll(ctx context.Context, serviceID, branchID *uuid.UUID) (int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)
}

type reviewRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReviewRepository(db database.PgxIface, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "review")),
	}
}

const reviewColumns = `id, user_id, service_id, branch_id, rating, comment, name, email, created_at`

func scanReview(row pgx.Row) (*entity.Review, error) {
	var rv entity.Review
	err := row.Scan(
		&rv.ID,
		&rv.UserID,
		&rv.ServiceID,
		&rv.BranchID,
		&rv.Rating,
		&rv.Comment,
		&rv.Name,
		&rv.Email,
		&rv.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rv, nil
}

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	query := `
		INSERT INTO reviews (id, user_id, service_id, branch_id, rating, comment, name, email, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		review.ID,
		review.UserID,
		review.ServiceID,
		review.BranchID,
		review.Rating,
		review.Comment,
		review.Name,
		review.Email,
		review.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create review", zap.Error(err))
		return fmt.Errorf("create review: %w", err)
	}

	return nil
}

func (r *reviewRepository) FindAll(ctx context.Context, limit, offset int, serviceID, branchID *uuid.UUID) ([]*entity.Review, error) {
	query := `
		SELECT ` + reviewColumns + `
		FROM reviews
		WHERE ($3::uuid IS NULL OR service_id = $3)
		  AND ($4::uuid IS NULL OR branch_id = $4)
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset, serviceID, branchID)
	if err != nil {
		r.log.Error("Failed to find reviews", zap.Error(err))
		return nil, fmt.Errorf("find reviews: %w", err)
	}
	defer rows.Close()

	var reviews []*entity.Review
	for rows.Next() {
		rv, err := scanReview(rows)
		if err != nil {
			r.log.Error("Failed to scan review row", zap.Error(err))
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, rv)
	}

	return reviews, nil
}

func (r *reviewRepository) CountAll(ctx context.Context, serviceID, branchID *uuid.UUID) (int64, error) {
	query := `
		SELECT COUNT(*) FROM reviews
		WHERE ($1::uuid IS NULL OR service_id = $1)
		  AND ($2::uuid IS NULL OR branch_id = $2)
	`

	var count int64
	if err := r.db.QueryRow(ctx, query, serviceID, branchID).Scan(&count); err != nil {
		r.log.Error("Failed to count reviews", zap.Error(err))
		return 0, fmt.Errorf("count reviews: %w", err)
	}

	return count, nil
}

func (r *reviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE id = $1`

	rv, err := scanReview(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find review by ID",
			zap.Error(err),
			zap.String("review_id", id.String()),
		)
		return nil, fmt.Errorf("find review by ID %s: %w", id.String(), err)
	}

	return rv, nil
}
