package usecase

import (
	"context"
	"fmt"

	"spa-booking/internal/data/entity"
	"spa-booking/internal/data/repository"
	"spa-booking/internal/dto/request"
	"spa-booking/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CatalogService interface {
	GetServices(ctx context.Context, req *request.PaginatedRequest, categoryID *string, featured *bool) (*response.PaginatedResponse[response.ServiceResponse], error)
	GetService(ctx context.Context, serviceID string) (*response.ServiceResponse, error)
	GetCategories(ctx context.Context) ([]response.CategoryResponse, error)
	ResolveServices(ctx context.Context, serviceIDs []string) ([]*entity.Service, error)
}

type catalogService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCatalogService(repo *repository.Repository, log *zap.Logger) CatalogService {
	return &catalogService{
		repo: repo,
		log:  log.With(zap.String("service", "catalog")),
	}
}

func (s *catalogService) GetServices(ctx context.Context, req *request.PaginatedRequest, categoryID *string, featured *bool) (*response.PaginatedResponse[response.ServiceResponse], error) {
	var categoryUUID *uuid.UUID
	if categoryID != nil && *categoryID != "" {
		id, err := uuid.Parse(*categoryID)
		if err != nil {
			return nil, fmt.Errorf("invalid category ID format %s", *categoryID)
		}
		categoryUUID = &id
	}

	services, err := s.repo.Service.FindAll(ctx, req.Limit(), req.Offset(), categoryUUID, featured)
	if err != nil {
		s.log.Error("Failed to list services", zap.Error(err))
		return nil, fmt.Errorf("list services: %w", err)
	}

	total, err := s.repo.Service.CountAll(ctx, categoryUUID, featured)
	if err != nil {
		s.log.Error("Failed to count services", zap.Error(err))
		return nil, fmt.Errorf("count services: %w", err)
	}

	data := make([]response.ServiceResponse, 0, len(services))
	for _, svc := range services {
		data = append(data, response.ServiceToResponse(svc, nil))
	}

	return response.NewPaginatedResponse(data, req.Page, req.Limit(), total), nil
}

func (s *catalogService) GetService(ctx context.Context, serviceID string) (*response.ServiceResponse, error) {
	id, err := uuid.Parse(serviceID)
	if err != nil {
		return nil, fmt.Errorf("invalid service ID format %s", serviceID)
	}

	svc, err := s.repo.Service.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get service: %w", err)
	}
	if svc == nil {
		return nil, fmt.Errorf("service %s not found", serviceID)
	}

	category, err := s.repo.Category.FindByID(ctx, svc.CategoryID)
	if err != nil {
		s.log.Warn("Failed to load service category",
			zap.Error(err),
			zap.String("service_id", serviceID),
		)
	}

	resp := response.ServiceToResponse(svc, category)
	return &resp, nil
}

func (s *catalogService) GetCategories(ctx context.Context) ([]response.CategoryResponse, error) {
	categories, err := s.repo.Category.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list categories", zap.Error(err))
		return nil, fmt.Errorf("list categories: %w", err)
	}

	data := make([]response.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		data = append(data, response.CategoryToResponse(c))
	}
	return data, nil
}

// ResolveServices loads the full records for a set of service ids. Every id
// must exist and be parseable; the order of the input is preserved.
func (s *catalogService) ResolveServices(ctx context.Context, serviceIDs []string) ([]*entity.Service, error) {
	ids := make([]uuid.UUID, 0, len(serviceIDs))
	for _, raw := range serviceIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid service ID format %s", raw)
		}
		ids = append(ids, id)
	}

	services, err := s.repo.Service.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("resolve services: %w", err)
	}

	byID := make(map[uuid.UUID]*entity.Service, len(services))
	for _, svc := range services {
		byID[svc.ID] = svc
	}

	ordered := make([]*entity.Service, 0, len(ids))
	for i, id := range ids {
		svc, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("service %s not found", serviceIDs[i])
		}
		ordered = append(ordered, svc)
	}

	return ordered, nil
}
