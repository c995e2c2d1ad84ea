package request

type CreateReviewRequest struct {
	ServiceID *string `json:"serviceId,omitempty" validate:"omitempty,uuid4"`
	BranchID  *string `json:"branchId,omitempty" validate:"omitempty,uuid4"`
	Rating    int     `json:"rating" validate:"required,min=1,max=5"`
	Comment   *string `json:"comment,omitempty" validate:"omitempty,max=500"`
	Name      string  `json:"name,omitempty" validate:"omitempty,max=100"`
	Email     *string `json:"email,omitempty" validate:"omitempty,email"`
}
