package service

import (
	"fmt"
	"time"

	"court-reservation-api/core/constants"
	"court-reservation-api/core/utils"
	"court-reservation-api/modules/availability/entity"
)

const lastStartHour = constants.HoursPerDay - 1

// SlotGenerator produces the hourly blocks a court can be booked in.
// Blocks run from OpeningHour up to midnight; the last block ends at 00:00:00.
type SlotGenerator struct {
	OpeningHour int
}

func NewSlotGenerator(openingHour int) *SlotGenerator {
	return &SlotGenerator{OpeningHour: openingHour}
}

func (g *SlotGenerator) GenerateBlocks() []entity.TimeBlock {
	return g.GenerateBlocksFrom(g.OpeningHour)
}

// GenerateBlocksFrom returns blocks for hours [startHour, 23]. Empty when startHour > 23.
func (g *SlotGenerator) GenerateBlocksFrom(startHour int) []entity.TimeBlock {
	if startHour < 0 {
		startHour = 0
	}
	if startHour > lastStartHour {
		return []entity.TimeBlock{}
	}

	blocks := make([]entity.TimeBlock, 0, lastStartHour-startHour+1)
	for h := startHour; h <= lastStartHour; h++ {
		blocks = append(blocks, entity.TimeBlock{
			Start: formatHour(h),
			End:   formatHour((h + 1) % constants.HoursPerDay),
		})
	}
	return blocks
}

// EffectiveStartHour returns the first bookable hour for date given the current time.
// now must already be in the business timezone. Only the calendar day of date is
// used; it is not converted to now's location.
func (g *SlotGenerator) EffectiveStartHour(date, now time.Time) int {
	today := utils.StartOfDay(now)
	y, m, d := date.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	if !day.Equal(today) {
		return g.OpeningHour
	}
	return max(g.OpeningHour, now.Hour()+1)
}

// FilterAvailable drops every block whose start and end both equal a reservation's.
// Partial overlaps are not removed. Neither input is modified.
func FilterAvailable(blocks []entity.TimeBlock, reservations []entity.ReservationWindow) []entity.TimeBlock {
	available := make([]entity.TimeBlock, 0, len(blocks))
	for _, block := range blocks {
		taken := false
		for _, r := range reservations {
			if r.Start == block.Start && r.End == block.End {
				taken = true
				break
			}
		}
		if !taken {
			available = append(available, block)
		}
	}
	return available
}

func formatHour(h int) string {
	return fmt.Sprintf("%02d:00:00", h)
}
