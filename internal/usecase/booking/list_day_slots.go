package booking

import (
	"context"
	"slices"

	domain "github.com/BruksfildServices01/barber-chatbot/internal/domain/booking"
	"github.com/BruksfildServices01/barber-chatbot/internal/httperr"
)

type DaySlot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

type DaySlots struct {
	Day        string    `json:"day"`
	Barber     string    `json:"barber"`
	WorkingDay bool      `json:"working_day"`
	Slots      []DaySlot `json:"slots"`
}

// ListDaySlots backs the calendar-picker client: every catalog slot of a
// day flagged free or taken.
type ListDaySlots struct {
	repo   domain.Repository
	roster domain.Roster
}

func NewListDaySlots(repo domain.Repository, roster domain.Roster) *ListDaySlots {
	return &ListDaySlots{repo: repo, roster: roster}
}

func (uc *ListDaySlots) Execute(
	ctx context.Context,
	day string,
	barber string,
) (*DaySlots, error) {

	if barber == "" {
		if sole, ok := uc.roster.Sole(); ok {
			barber = sole
		}
	}

	name, ok := uc.roster.Lookup(barber)
	if !ok {
		return nil, httperr.ErrBusiness("invalid_barber")
	}

	if _, ok := domain.ParseDay(day); !ok {
		return nil, httperr.ErrBusiness("invalid_day")
	}

	out := &DaySlots{
		Day:        day,
		Barber:     name,
		WorkingDay: domain.IsWorkingDayString(day),
		Slots:      []DaySlot{},
	}

	if !out.WorkingDay {
		return out, nil
	}

	booked, err := uc.repo.BookedTimes(ctx, day, name)
	if err != nil {
		return nil, err
	}

	for _, s := range domain.Slots() {
		out.Slots = append(out.Slots, DaySlot{
			Time:      s,
			Available: !slices.Contains(booked, s),
		})
	}

	return out, nil
}
