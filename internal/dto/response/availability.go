package response

type TimeSlot struct {
	Time      string `json:"time"` // HH:MM, 24-hour
	Available bool   `json:"available"`
}

type AvailabilityResponse struct {
	Date  string     `json:"date"`
	Slots []TimeSlot `json:"slots"`
}
