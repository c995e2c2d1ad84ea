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

type BranchService interface {
	GetBranches(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BranchResponse], error)
	GetBranch(ctx context.Context, branchID string) (*response.BranchResponse, error)
	ResolveBranch(ctx context.Context, branchID string) (*entity.Branch, error)
}

type branchService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBranchService(repo *repository.Repository, log *zap.Logger) BranchService {
	return &branchService{
		repo: repo,
		log:  log.With(zap.String("service", "branch")),
	}
}

func (s *branchService) GetBranches(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BranchResponse], error) {
	branches, err := s.repo.Branch.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list branches", zap.Error(err))
		return nil, fmt.Errorf("list branches: %w", err)
	}

	total, err := s.repo.Branch.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count branches", zap.Error(err))
		return nil, fmt.Errorf("count branches: %w", err)
	}

	data := make([]response.BranchResponse, 0, len(branches))
	for _, b := range branches {
		data = append(data, response.BranchToResponse(b))
	}

	return response.NewPaginatedResponse(data, req.Page, req.Limit(), total), nil
}

func (s *branchService) GetBranch(ctx context.Context, branchID string) (*response.BranchResponse, error) {
	branch, err := s.ResolveBranch(ctx, branchID)
	if err != nil {
		return nil, err
	}

	resp := response.BranchToResponse(branch)
	return &resp, nil
}

// ResolveBranch loads the branch entity, erroring when it does not exist.
func (s *branchService) ResolveBranch(ctx context.Context, branchID string) (*entity.Branch, error) {
	id, err := uuid.Parse(branchID)
	if err != nil {
		return nil, fmt.Errorf("invalid branch ID format %s", branchID)
	}

	branch, err := s.repo.Branch.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get branch: %w", err)
	}
	if branch == nil {
		return nil, fmt.Errorf("branch %s not found", branchID)
	}

	return branch, nil
}
