package response

import (
	"time"

	"spa-booking/internal/data/entity"
)

type ReviewResponse struct {
	ID        string    `json:"id"`
	ServiceID *string   `json:"serviceId,omitempty"`
	BranchID  *string   `json:"branchId,omitempty"`
	Rating    int       `json:"rating"`
	Comment   *string   `json:"comment,omitempty"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// Helper converter. Reviewer email is intentionally not exposed.
func ReviewToResponse(r *entity.Review) ReviewResponse {
	resp := ReviewResponse{
		ID:        r.ID.String(),
		Rating:    r.Rating,
		Comment:   r.Comment,
		Name:      r.Name,
		CreatedAt: r.CreatedAt,
	}
	if r.ServiceID != nil {
		s := r.ServiceID.String()
		resp.ServiceID = &s
	}
	if r.BranchID != nil {
		b := r.BranchID.String()
		resp.BranchID = &b
	}
	return resp
}
