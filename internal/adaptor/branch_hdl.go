package adaptor

import (
	"net/http"

	"spa-booking/internal/dto/request"
	"spa-booking/internal/usecase"
	"spa-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BranchHandler struct {
	service usecase.BranchService
	log     *zap.Logger
}

func NewBranchHandler(service usecase.BranchService, log *zap.Logger) *BranchHandler {
	return &BranchHandler{
		service: service,
		log:     log.With(zap.String("handler", "branch")),
	}
}

// GetBranches handles GET /api/v1/branches
func (h *BranchHandler) GetBranches(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("limit"), 10),
	}

	branches, err := h.service.GetBranches(r.Context(), req)
	if err != nil {
		handleServiceError(h.log, w, err, "get branches")
		return
	}

	utils.ResponseSuccess(w, "success", branches)
}

// GetBranch handles GET /api/v1/branches/{id}
func (h *BranchHandler) GetBranch(w http.ResponseWriter, r *http.Request) {
	branchID := chi.URLParam(r, "id")

	branch, err := h.service.GetBranch(r.Context(), branchID)
	if err != nil {
		handleServiceError(h.log, w, err, "get branch")
		return
	}

	utils.ResponseSuccess(w, "success", branch)
}
