package response

import (
	"time"

	"spa-booking/internal/data/entity"
)

type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type ServiceResponse struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Slug        string            `json:"slug"`
	Description *string           `json:"description,omitempty"`
	Excerpt     *string           `json:"excerpt,omitempty"`
	Price       float64           `json:"price"`
	Duration    int               `json:"duration"`
	Images      []string          `json:"images,omitempty"`
	Featured    bool              `json:"featured"`
	Category    *CategoryResponse `json:"category,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
}

// Helper converters
func CategoryToResponse(c *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:   c.ID.String(),
		Name: c.Name,
		Slug: c.Slug,
	}
}

func ServiceToResponse(s *entity.Service, category *entity.Category) ServiceResponse {
	resp := ServiceResponse{
		ID:          s.ID.String(),
		Name:        s.Name,
		Slug:        s.Slug,
		Description: s.Description,
		Excerpt:     s.Excerpt,
		Price:       s.Price,
		Duration:    s.Duration,
		Images:      s.Images,
		Featured:    s.Featured,
		CreatedAt:   s.CreatedAt,
	}
	if category != nil {
		c := CategoryToResponse(category)
		resp.Category = &c
	}
	return resp
}
