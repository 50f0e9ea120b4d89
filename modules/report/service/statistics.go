package service

import (
	"math"
	"sort"
	"time"

	"court-reservation-api/core/constants"
	"court-reservation-api/core/utils"
	"court-reservation-api/modules/report/dto"
	"court-reservation-api/modules/report/entity"
)

var monthNames = [...]string{"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sep", "oct", "nov", "dic"}

type timeBand struct {
	name     string
	from, to int
}

var timeBands = []timeBand{
	{"15:00-17:00", 15, 17},
	{"17:00-19:00", 17, 19},
	{"19:00-21:00", 19, 21},
	{"21:00-23:00", 21, 23},
}

// StatsWindow returns the first instant of the oldest month in the window
// ending at asOf.
func StatsWindow(asOf time.Time) time.Time {
	y, m, _ := asOf.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, asOf.Location()).AddDate(0, -(constants.StatsMonths - 1), 0)
}

// NormalizeAmount scales legacy amounts that were stored in thousands.
func NormalizeAmount(amount float64) float64 {
	if amount < constants.LegacyAmountLT {
		return amount * 1000
	}
	return amount
}

// BuildStatistics aggregates paid bookings over the months ending at asOf.
// Payment times are bucketed in asOf's location.
func BuildStatistics(items []entity.PaidBooking, asOf time.Time) *dto.StatisticsResponse {
	from := StatsWindow(asOf)
	loc := asOf.Location()

	months := make([]dto.MonthlyRevenue, constants.StatsMonths)
	index := make(map[string]int, constants.StatsMonths)
	for i := range months {
		m := from.AddDate(0, i, 0)
		months[i] = dto.MonthlyRevenue{Period: utils.Period(m), Month: monthNames[m.Month()-1]}
		index[months[i].Period] = i
	}

	courts := map[string]int{}
	bands := make([]int, len(timeBands))
	counted := 0

	for _, it := range items {
		i, ok := index[utils.Period(it.PaidAt.In(loc))]
		if !ok {
			continue
		}
		counted++
		months[i].Revenue += NormalizeAmount(it.Amount)
		months[i].Bookings++
		courts[it.CourtName]++

		if start, err := time.Parse(constants.TimeLayout, it.StartTime); err == nil {
			for b, band := range timeBands {
				if start.Hour() >= band.from && start.Hour() < band.to {
					bands[b]++
					break
				}
			}
		}
	}

	stats := &dto.StatisticsResponse{
		From:             from.Format(constants.DateLayout),
		To:               asOf.Format(constants.DateLayout),
		RevenueData:      months,
		CourtUsageData:   make([]dto.CourtUsage, 0, len(courts)),
		TimeDistribution: make([]dto.TimeBand, len(timeBands)),
	}

	for name, n := range courts {
		stats.CourtUsageData = append(stats.CourtUsageData, dto.CourtUsage{
			Name: name, Bookings: n, Usage: percent(float64(n), float64(counted)),
		})
	}
	sort.Slice(stats.CourtUsageData, func(i, j int) bool {
		return stats.CourtUsageData[i].Name < stats.CourtUsageData[j].Name
	})

	for b, band := range timeBands {
		stats.TimeDistribution[b] = dto.TimeBand{Name: band.name, Value: percent(float64(bands[b]), float64(counted))}
	}

	summary := &stats.Summary
	for _, m := range months {
		summary.TotalRevenue += m.Revenue
		summary.TotalBookings += m.Bookings
	}
	capacity := float64(len(courts) * constants.StatsMonths * constants.DaysPerMonth)
	summary.OccupancyRate = percent(float64(summary.TotalBookings), capacity)
	if summary.TotalBookings > 0 {
		summary.AverageBooking = int(math.Round(summary.TotalRevenue / float64(summary.TotalBookings)))
	}

	current, previous := months[len(months)-1], months[len(months)-2]
	summary.Variations = dto.Variations{
		Revenue:  variation(current.Revenue, previous.Revenue),
		Bookings: variation(float64(current.Bookings), float64(previous.Bookings)),
	}
	return stats
}

func percent(part, whole float64) int {
	if whole == 0 {
		return 0
	}
	return int(math.Round(part / whole * 100))
}

// variation is the percent change from previous to current, to one decimal.
func variation(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return math.Round((current-previous)/previous*1000) / 10
}
