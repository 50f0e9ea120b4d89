package dto

type CourtRequest struct {
	Name         string  `json:"name"`
	Location     string  `json:"location"`
	Type         string  `json:"type"`
	PricePerHour float64 `json:"price_per_hour"`
	Status       string  `json:"status"`
}

type CourtResponse struct {
	ID           int64   `json:"id"`
	Slug         string  `json:"slug"`
	Name         string  `json:"name"`
	Location     string  `json:"location"`
	Type         string  `json:"type"`
	PricePerHour float64 `json:"price_per_hour"`
	Status       string  `json:"status"`
}
