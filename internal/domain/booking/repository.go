package booking

import (
	"context"

	"github.com/BruksfildServices01/barber-chatbot/internal/models"
)

// Alternative is a free (day, time) pair offered instead of a taken slot.
type Alternative struct {
	Day  string `json:"day"`
	Time string `json:"time"`
}

type Repository interface {
	IsBooked(
		ctx context.Context,
		day string,
		time string,
		barber string,
	) (bool, error)

	// BookedTimes lists the slot labels already taken for a barber on a day.
	BookedTimes(
		ctx context.Context,
		day string,
		barber string,
	) ([]string, error)

	// CreateBooking inserts one row. A violated slot uniqueness
	// constraint is returned as ErrSlotTaken.
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error
}
