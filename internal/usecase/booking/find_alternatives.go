package booking

import (
	"context"
	"slices"

	domain "github.com/BruksfildServices01/barber-chatbot/internal/domain/booking"
)

const (
	maxAlternatives = 3
	maxSameDay      = 2
)

// slot offsets scanned around a rejected time, nearest first
var neighbourOffsets = []int{-1, 1, -2, 2}

type FindAlternatives struct {
	repo domain.Repository
}

func NewFindAlternatives(repo domain.Repository) *FindAlternatives {
	return &FindAlternatives{repo: repo}
}

// Execute proposes up to two free same-day neighbours followed by the same
// time on the next working day. Every returned pair is free when read.
func (uc *FindAlternatives) Execute(
	ctx context.Context,
	day string,
	slot string,
	barber string,
) ([]domain.Alternative, error) {

	alternatives := []domain.Alternative{}
	slots := domain.Slots()

	// --------------------------------------------------
	// same day neighbours
	// --------------------------------------------------
	if idx := domain.SlotIndex(slot); idx >= 0 {
		bookedSameDay, err := uc.repo.BookedTimes(ctx, day, barber)
		if err != nil {
			return nil, err
		}

		for _, off := range neighbourOffsets {
			i := idx + off
			if i < 0 || i >= len(slots) {
				continue
			}
			if slices.Contains(bookedSameDay, slots[i]) {
				continue
			}

			alternatives = append(alternatives, domain.Alternative{Day: day, Time: slots[i]})
			if len(alternatives) >= maxSameDay {
				break
			}
		}
	}

	// --------------------------------------------------
	// next working day, same time
	// --------------------------------------------------
	if nextDay, ok := domain.NextWorkingDay(day); ok && domain.IsSlot(slot) {
		bookedNextDay, err := uc.repo.BookedTimes(ctx, nextDay, barber)
		if err != nil {
			return nil, err
		}

		if !slices.Contains(bookedNextDay, slot) {
			alternatives = append(alternatives, domain.Alternative{Day: nextDay, Time: slot})
		}
	}

	if len(alternatives) > maxAlternatives {
		alternatives = alternatives[:maxAlternatives]
	}
	return alternatives, nil
}
