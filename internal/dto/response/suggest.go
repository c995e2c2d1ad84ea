package response

type SuggestedSlot struct {
	Time   string  `json:"time"`
	Reason string  `json:"reason"`
	Score  float64 `json:"score"`
}

type SuggestTimeslotResponse struct {
	SuggestedSlots []SuggestedSlot `json:"suggestedSlots"`
	BestSlot       *SuggestedSlot  `json:"bestSlot,omitempty"`
	Confidence     float64         `json:"confidence"`
	Message        string          `json:"message,omitempty"`
}

type AIHealthResponse struct {
	Status  string `json:"status"`
	Model   string `json:"model,omitempty"`
	Enabled bool   `json:"enabled"`
}
