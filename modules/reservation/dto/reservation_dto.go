package dto

type ReservationRequest struct {
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Status    string `json:"status"`
	CourtID   int64  `json:"court_id"`
	UserRut   string `json:"user_rut"`
}

type CourtSummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Type string `json:"type,omitempty"`
}

type UserSummary struct {
	Rut      string `json:"rut"`
	FullName string `json:"full_name"`
	Email    string `json:"email,omitempty"`
}

type ReservationResponse struct {
	ID        int64         `json:"id"`
	Date      string        `json:"date"`
	StartTime string        `json:"start_time"`
	EndTime   string        `json:"end_time"`
	Status    string        `json:"status"`
	CourtID   int64         `json:"court_id"`
	UserRut   string        `json:"user_rut"`
	Court     *CourtSummary `json:"court,omitempty"`
	User      *UserSummary  `json:"user,omitempty"`
}
