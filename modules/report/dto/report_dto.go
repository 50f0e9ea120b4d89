package dto

import "time"

type ReportRequest struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	UserRut     string `json:"user_rut"`
	Date        string `json:"date"`
}

type ReportResponse struct {
	ID          int64     `json:"id"`
	Date        time.Time `json:"date"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	UserRut     string    `json:"user_rut"`
	UserName    string    `json:"user_name,omitempty"`
}

type MonthlyRevenue struct {
	Period   string  `json:"period"`
	Month    string  `json:"month"`
	Revenue  float64 `json:"revenue"`
	Bookings int     `json:"bookings"`
}

type CourtUsage struct {
	Name     string `json:"name"`
	Bookings int    `json:"bookings"`
	Usage    int    `json:"usage"`
}

type TimeBand struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type Variations struct {
	Revenue  float64 `json:"revenue"`
	Bookings float64 `json:"bookings"`
}

type StatisticsSummary struct {
	TotalRevenue   float64    `json:"total_revenue"`
	TotalBookings  int        `json:"total_bookings"`
	OccupancyRate  int        `json:"occupancy_rate"`
	AverageBooking int        `json:"average_booking"`
	Variations     Variations `json:"variations"`
}

type StatisticsResponse struct {
	From             string            `json:"from"`
	To               string            `json:"to"`
	RevenueData      []MonthlyRevenue  `json:"revenue_data"`
	CourtUsageData   []CourtUsage      `json:"court_usage_data"`
	TimeDistribution []TimeBand        `json:"time_distribution_data"`
	Summary          StatisticsSummary `json:"summary"`
}

type ExportResponse struct {
	TaskType string `json:"task_type"`
	AsOf     string `json:"as_of"`
}
