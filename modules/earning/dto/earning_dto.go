package dto

type EarningRequest struct {
	Bookings *int     `json:"bookings"`
	Period   string   `json:"period"`
	Total    *float64 `json:"total_amount"`
	Date     string   `json:"date"`
}

type EarningResponse struct {
	ID       int64   `json:"id"`
	Bookings int     `json:"bookings"`
	Period   string  `json:"period"`
	Total    float64 `json:"total_amount"`
	Date     string  `json:"date"`
}

type EarningListResponse struct {
	Total    int               `json:"total"`
	Earnings []EarningResponse `json:"earnings"`
}

type RecalculateRequest struct {
	Period string `json:"period"`
}
