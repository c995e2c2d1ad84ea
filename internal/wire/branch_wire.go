package wire

import (
	"spa-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBranch(r chi.Router, branchHandler *adaptor.BranchHandler, log *zap.Logger) {
	// GET /api/v1/branches - List branches (paginated)
	r.Get("/api/v1/branches", branchHandler.GetBranches)

	// GET /api/v1/branches/{id} - Branch detail with operating hours
	r.Get("/api/v1/branches/{id}", branchHandler.GetBranch)
}
