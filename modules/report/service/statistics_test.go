package service

import (
	"testing"
	"time"

	"court-reservation-api/modules/report/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paid(amount float64, at time.Time, start, court string) entity.PaidBooking {
	return entity.PaidBooking{Amount: amount, PaidAt: at, StartTime: start, CourtName: court}
}

func TestStatsWindow(t *testing.T) {
	asOf := time.Date(2026, 3, 19, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC), StatsWindow(asOf))
}

func TestNormalizeAmount(t *testing.T) {
	assert.Equal(t, 15000.0, NormalizeAmount(15))
	assert.Equal(t, 15000.0, NormalizeAmount(15000))
	assert.Equal(t, 1000.0, NormalizeAmount(1000))
}

func TestBuildStatistics(t *testing.T) {
	asOf := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	sep := time.Date(2026, 9, 10, 18, 0, 0, 0, time.UTC)
	oct := time.Date(2026, 10, 5, 18, 0, 0, 0, time.UTC)

	stats := BuildStatistics([]entity.PaidBooking{
		paid(20, sep, "18:00:00", "Cancha 1"),
		paid(15000, oct, "16:00:00", "Cancha 1"),
		paid(15000, oct, "20:00:00", "Cancha 2"),
		paid(15000, oct, "22:00:00", "Cancha 2"),
		paid(99999, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), "18:00:00", "Cancha 3"),
	}, asOf)

	assert.Equal(t, "2026-05-01", stats.From)
	assert.Equal(t, "2026-10-19", stats.To)

	require.Len(t, stats.RevenueData, 6)
	assert.Equal(t, "2026-05", stats.RevenueData[0].Period)
	assert.Equal(t, "may", stats.RevenueData[0].Month)
	assert.Equal(t, "2026-09", stats.RevenueData[4].Period)
	assert.Equal(t, 20000.0, stats.RevenueData[4].Revenue)
	assert.Equal(t, 45000.0, stats.RevenueData[5].Revenue)
	assert.Equal(t, 3, stats.RevenueData[5].Bookings)

	require.Len(t, stats.CourtUsageData, 2)
	assert.Equal(t, "Cancha 1", stats.CourtUsageData[0].Name)
	assert.Equal(t, 50, stats.CourtUsageData[0].Usage)
	assert.Equal(t, 50, stats.CourtUsageData[1].Usage)

	require.Len(t, stats.TimeDistribution, 4)
	assert.Equal(t, "15:00-17:00", stats.TimeDistribution[0].Name)
	assert.Equal(t, 25, stats.TimeDistribution[0].Value)
	assert.Equal(t, 25, stats.TimeDistribution[1].Value)
	assert.Equal(t, 25, stats.TimeDistribution[2].Value)
	assert.Equal(t, 25, stats.TimeDistribution[3].Value)

	assert.Equal(t, 65000.0, stats.Summary.TotalRevenue)
	assert.Equal(t, 4, stats.Summary.TotalBookings)
	// 4 bookings over 2 courts * 6 months * 30 days.
	assert.Equal(t, 1, stats.Summary.OccupancyRate)
	assert.Equal(t, 16250, stats.Summary.AverageBooking)
	assert.Equal(t, 125.0, stats.Summary.Variations.Revenue)
	assert.Equal(t, 200.0, stats.Summary.Variations.Bookings)
}

func TestBuildStatistics_Empty(t *testing.T) {
	stats := BuildStatistics(nil, time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC))

	assert.Len(t, stats.RevenueData, 6)
	assert.Empty(t, stats.CourtUsageData)
	assert.Zero(t, stats.Summary.OccupancyRate)
	assert.Zero(t, stats.Summary.AverageBooking)
	assert.Zero(t, stats.Summary.Variations.Revenue)
	for _, band := range stats.TimeDistribution {
		assert.Zero(t, band.Value)
	}
}
