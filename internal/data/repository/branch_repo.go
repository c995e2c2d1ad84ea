package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"spa-booking/internal/data/entity"
	"spa-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BranchRepository interface {
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Branch, error)
	CountAll(ctx context.Context) (int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Branch, error)
}

type branchRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBranchRepository(db database.PgxIface, log *zap.Logger) BranchRepository {
	return &branchRepository{
		db:  db,
		log: log.With(zap.String("repository", "branch")),
	}
}

const branchColumns = `id, name, slug, address, phone, email, latitude, longitude, images, operating_hours, active, created_at, updated_at`

func scanBranch(row pgx.Row) (*entity.Branch, error) {
	var b entity.Branch
	var hoursRaw []byte
	err := row.Scan(
		&b.ID,
		&b.Name,
		&b.Slug,
		&b.Address,
		&b.Phone,
		&b.Email,
		&b.Latitude,
		&b.Longitude,
		&b.Images,
		&hoursRaw,
		&b.Active,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(hoursRaw) > 0 {
		if err := json.Unmarshal(hoursRaw, &b.OperatingHours); err != nil {
			return nil, fmt.Errorf("decode operating hours: %w", err)
		}
	}

	return &b, nil
}

func (r *branchRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Branch, error) {
	query := `
		SELECT ` + branchColumns + `
		FROM branches
		WHERE active = true
		ORDER BY name
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find branches",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find branches: %w", err)
	}
	defer rows.Close()

	var branches []*entity.Branch
	for rows.Next() {
		b, err := scanBranch(rows)
		if err != nil {
			r.log.Error("Failed to scan branch row", zap.Error(err))
			return nil, fmt.Errorf("scan branch row: %w", err)
		}
		branches = append(branches, b)
	}

	return branches, nil
}

func (r *branchRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM branches WHERE active = true`).Scan(&count); err != nil {
		r.log.Error("Failed to count branches", zap.Error(err))
		return 0, fmt.Errorf("count branches: %w", err)
	}
	return count, nil
}

func (r *branchRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Branch, error) {
	query := `SELECT ` + branchColumns + ` FROM branches WHERE id = $1 AND active = true`

	b, err := scanBranch(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find branch by ID",
			zap.Error(err),
			zap.String("branch_id", id.String()),
		)
		return nil, fmt.Errorf("find branch by ID %s: %w", id.String(), err)
	}

	return b, nil
}
