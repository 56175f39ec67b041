package booking

import (
	"context"

	domain "github.com/BruksfildServices01/barber-chatbot/internal/domain/booking"
)

type CheckAvailability struct {
	repo domain.Repository
}

func NewCheckAvailability(repo domain.Repository) *CheckAvailability {
	return &CheckAvailability{repo: repo}
}

// IsBooked reports whether the slot is taken. A store failure comes back
// as domain.ErrStoreUnavailable, never as "booked".
func (uc *CheckAvailability) IsBooked(
	ctx context.Context,
	day string,
	slot string,
	barber string,
) (bool, error) {
	return uc.repo.IsBooked(ctx, day, slot, barber)
}
