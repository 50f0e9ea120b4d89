package service

import (
	"testing"
	"time"

	"court-reservation-api/modules/availability/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateBlocks_FullWindow(t *testing.T) {
	blocks := NewSlotGenerator(16).GenerateBlocks()

	require.Len(t, blocks, 8)
	assert.Equal(t, entity.TimeBlock{Start: "16:00:00", End: "17:00:00"}, blocks[0])
	assert.Equal(t, entity.TimeBlock{Start: "23:00:00", End: "00:00:00"}, blocks[7])
}

func TestGenerateBlocksFrom_CountAndContiguity(t *testing.T) {
	g := NewSlotGenerator(16)

	for start := 16; start <= 25; start++ {
		blocks := g.GenerateBlocksFrom(start)

		want := 24 - start
		if want < 0 {
			want = 0
		}
		require.Len(t, blocks, want, "start hour %d", start)

		for i := 1; i < len(blocks); i++ {
			assert.Equal(t, blocks[i-1].End, blocks[i].Start, "blocks must be contiguous")
			assert.Less(t, blocks[i-1].Start, blocks[i].Start, "blocks must be ascending")
		}
		if len(blocks) > 0 {
			assert.Equal(t, "00:00:00", blocks[len(blocks)-1].End)
		}
	}
}

func TestEffectiveStartHour(t *testing.T) {
	loc := time.FixedZone("CLT", -3*60*60)
	g := NewSlotGenerator(16)
	today := time.Date(2026, 10, 19, 0, 0, 0, 0, loc)
	tomorrow := today.AddDate(0, 0, 1)

	tests := []struct {
		name string
		date time.Time
		now  time.Time
		want int
	}{
		{"tomorrow early morning", tomorrow, time.Date(2026, 10, 19, 3, 0, 0, 0, loc), 16},
		{"tomorrow late night", tomorrow, time.Date(2026, 10, 19, 23, 59, 0, 0, loc), 16},
		{"today before opening", today, time.Date(2026, 10, 19, 9, 15, 0, 0, loc), 16},
		{"today at opening hour", today, time.Date(2026, 10, 19, 16, 0, 0, 0, loc), 17},
		{"today at 20", today, time.Date(2026, 10, 19, 20, 45, 0, 0, loc), 21},
		{"today at 23", today, time.Date(2026, 10, 19, 23, 5, 0, 0, loc), 24},
		{"tomorrow given in UTC", time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC), time.Date(2026, 10, 19, 20, 0, 0, 0, loc), 16},
		{"today given in UTC", time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC), time.Date(2026, 10, 19, 20, 0, 0, 0, loc), 21},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, g.EffectiveStartHour(tt.date, tt.now))
		})
	}
}

func TestFilterAvailable_ExactMatch(t *testing.T) {
	blocks := NewSlotGenerator(16).GenerateBlocks()
	reservations := []entity.ReservationWindow{{Start: "18:00:00", End: "19:00:00"}}

	available := FilterAvailable(blocks, reservations)

	require.Len(t, available, 7)
	for _, b := range available {
		assert.NotEqual(t, "18:00:00", b.Start)
	}
	assert.Len(t, blocks, 8, "input must not be mutated")
}

func TestFilterAvailable_PartialOverlapKeepsBlocks(t *testing.T) {
	blocks := NewSlotGenerator(16).GenerateBlocks()
	reservations := []entity.ReservationWindow{
		{Start: "18:30:00", End: "19:30:00"},
		{Start: "18:00:00", End: "20:00:00"},
	}

	assert.Equal(t, blocks, FilterAvailable(blocks, reservations))
}

func TestFilterAvailable_Empty(t *testing.T) {
	available := FilterAvailable(nil, []entity.ReservationWindow{{Start: "16:00:00", End: "17:00:00"}})

	assert.NotNil(t, available)
	assert.Empty(t, available)
}
