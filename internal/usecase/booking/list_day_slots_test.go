package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/barber-chatbot/internal/domain/booking"
	"github.com/BruksfildServices01/barber-chatbot/internal/httperr"
)

func TestListDaySlotsFlagsBookedTimes(t *testing.T) {
	repo := newMemoryRepo()
	repo.book("Marcelo", "2026-10-15", "10:30", "19:30")
	uc := NewListDaySlots(repo, domain.Roster{"Marcelo"})

	out, err := uc.Execute(context.Background(), "2026-10-15", "")
	require.NoError(t, err)

	assert.Equal(t, "Marcelo", out.Barber)
	assert.True(t, out.WorkingDay)
	require.Len(t, out.Slots, 20)
	assert.True(t, out.Slots[0].Available)
	assert.False(t, out.Slots[1].Available)
	assert.False(t, out.Slots[19].Available)
}

func TestListDaySlotsSundayHasNoSlots(t *testing.T) {
	uc := NewListDaySlots(newMemoryRepo(), domain.Roster{"Marcelo"})

	out, err := uc.Execute(context.Background(), "2026-10-18", "Marcelo")
	require.NoError(t, err)
	assert.False(t, out.WorkingDay)
	assert.Empty(t, out.Slots)
}

func TestListDaySlotsRequiresBarberWithLargerRoster(t *testing.T) {
	uc := NewListDaySlots(newMemoryRepo(), domain.Roster{"Marcelo", "Dani"})

	_, err := uc.Execute(context.Background(), "2026-10-15", "")
	assert.True(t, httperr.IsBusiness(err, "invalid_barber"))

	_, err = uc.Execute(context.Background(), "tomorrow", "Dani")
	assert.True(t, httperr.IsBusiness(err, "invalid_day"))
}

func TestCheckAvailabilityReadsStore(t *testing.T) {
	repo := newMemoryRepo()
	repo.book("Marcelo", "2026-10-15", "10:30")
	uc := NewCheckAvailability(repo)

	booked, err := uc.IsBooked(context.Background(), "2026-10-15", "10:30", "Marcelo")
	require.NoError(t, err)
	assert.True(t, booked)

	booked, err = uc.IsBooked(context.Background(), "2026-10-15", "11:00", "Marcelo")
	require.NoError(t, err)
	assert.False(t, booked)
}
