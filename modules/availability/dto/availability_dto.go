package dto

// AvailabilityRequest is bound from either path or query parameters.
type AvailabilityRequest struct {
	Date    string `param:"date" query:"date"`
	CourtID string `param:"court_id" query:"court_id"`
}

type TimeBlockResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type AvailabilityResponse struct {
	Date           string              `json:"date"`
	CourtID        int64               `json:"court_id"`
	AvailableSlots []TimeBlockResponse `json:"available_slots"`
	TotalAvailable int                 `json:"total_available"`
}
