package response

import (
	"spa-booking/internal/data/entity"
)

type BranchResponse struct {
	ID             string                `json:"id"`
	Name           string                `json:"name"`
	Slug           string                `json:"slug"`
	Address        string                `json:"address"`
	Phone          string                `json:"phone"`
	Email          *string               `json:"email,omitempty"`
	Latitude       *float64              `json:"latitude,omitempty"`
	Longitude      *float64              `json:"longitude,omitempty"`
	Images         []string              `json:"images,omitempty"`
	OperatingHours entity.OperatingHours `json:"operatingHours"`
}

func BranchToResponse(b *entity.Branch) BranchResponse {
	return BranchResponse{
		ID:             b.ID.String(),
		Name:           b.Name,
		Slug:           b.Slug,
		Address:        b.Address,
		Phone:          b.Phone,
		Email:          b.Email,
		Latitude:       b.Latitude,
		Longitude:      b.Longitude,
		Images:         b.Images,
		OperatingHours: b.OperatingHours,
	}
}
