package usecase

import (
	"context"
	"fmt"
	"time"

	"spa-booking/internal/data/entity"
	"spa-booking/internal/data/repository"
	"spa-booking/internal/dto/request"
	"spa-booking/internal/dto/response"
	"spa-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReviewService interface {
	CreateReview(ctx context.Context, userID *uuid.UUID, req *request.CreateReviewRequest) (*response.ReviewResponse, error)
	GetReviews(ctx context.Context, req *request.PaginatedRequest, serviceID, branchID *string) (*response.PaginatedResponse[response.ReviewResponse], error)
}

type reviewService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReviewService(repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) CreateReview(ctx context.Context, userID *uuid.UUID, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create review validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	if req.ServiceID == nil && req.BranchID == nil {
		return nil, fmt.Errorf("validation failed: a review needs a service or a branch")
	}

	review := &entity.Review{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		UserID:     userID,
		Rating:     req.Rating,
		Comment:    req.Comment,
		Email:      req.Email,
	}

	if req.ServiceID != nil {
		serviceID, err := uuid.Parse(*req.ServiceID)
		if err != nil {
			return nil, fmt.Errorf("invalid service ID format %s", *req.ServiceID)
		}
		svc, err := s.repo.Service.FindByID(ctx, serviceID)
		if err != nil || svc == nil {
			return nil, fmt.Errorf("service %s not found", *req.ServiceID)
		}
		review.ServiceID = &serviceID
	}

	if req.BranchID != nil {
		branchID, err := uuid.Parse(*req.BranchID)
		if err != nil {
			return nil, fmt.Errorf("invalid branch ID format %s", *req.BranchID)
		}
		branch, err := s.repo.Branch.FindByID(ctx, branchID)
		if err != nil || branch == nil {
			return nil, fmt.Errorf("branch %s not found", *req.BranchID)
		}
		review.BranchID = &branchID
	}

	// Display name: member reviews use the account name, guests must
	// provide one.
	if userID != nil {
		user, err := s.repo.User.FindByID(ctx, *userID)
		if err != nil {
			return nil, fmt.Errorf("get user: %w", err)
		}
		if user != nil {
			review.Name = user.Name
		}
	}
	if review.Name == "" {
		if req.Name == "" {
			return nil, fmt.Errorf("validation failed: name is required for guest reviews")
		}
		review.Name = req.Name
	}

	if err := s.repo.Review.Create(ctx, review); err != nil {
		s.log.Error("Failed to create review", zap.Error(err))
		return nil, fmt.Errorf("create review: %w", err)
	}

	s.log.Info("Review created",
		zap.String("review_id", review.ID.String()),
		zap.Int("rating", review.Rating),
	)

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

func (s *reviewService) GetReviews(ctx context.Context, req *request.PaginatedRequest, serviceID, branchID *string) (*response.PaginatedResponse[response.ReviewResponse], error) {
	var serviceUUID, branchUUID *uuid.UUID
	if serviceID != nil && *serviceID != "" {
		id, err := uuid.Parse(*serviceID)
		if err != nil {
			return nil, fmt.Errorf("invalid service ID format %s", *serviceID)
		}
		serviceUUID = &id
	}
	if branchID != nil && *branchID != "" {
		id, err := uuid.Parse(*branchID)
		if err != nil {
			return nil, fmt.Errorf("invalid branch ID format %s", *branchID)
		}
		branchUUID = &id
	}

	reviews, err := s.repo.Review.FindAll(ctx, req.Limit(), req.Offset(), serviceUUID, branchUUID)
	if err != nil {
		s.log.Error("Failed to list reviews", zap.Error(err))
		return nil, fmt.Errorf("list reviews: %w", err)
	}

	total, err := s.repo.Review.CountAll(ctx, serviceUUID, branchUUID)
	if err != nil {
		return nil, fmt.Errorf("count reviews: %w", err)
	}

	data := make([]response.ReviewResponse, 0, len(reviews))
	for _, rv := range reviews {
		data = append(data, response.ReviewToResponse(rv))
	}

	return response.NewPaginatedResponse(data, req.Page, req.Limit(), total), nil
}
