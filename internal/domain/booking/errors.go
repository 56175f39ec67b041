package booking

import "errors"

var (
	// ErrSlotTaken means the (barber, day, time) triple already has a booking.
	ErrSlotTaken = errors.New("slot_taken")

	// ErrStoreUnavailable wraps every store failure that is worth retrying.
	ErrStoreUnavailable = errors.New("store_unavailable")
)
