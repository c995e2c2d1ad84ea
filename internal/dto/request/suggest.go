package request

type SuggestTimeslotRequest struct {
	Date       string   `json:"date" validate:"required,datetime=2006-01-02"`
	BranchID   string   `json:"branchId" validate:"required,uuid4"`
	ServiceIDs []string `json:"serviceIds,omitempty" validate:"omitempty,dive,uuid4"`
}
