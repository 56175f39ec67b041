package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/barber-chatbot/internal/domain/booking"
	"github.com/BruksfildServices01/barber-chatbot/internal/httperr"
	"github.com/BruksfildServices01/barber-chatbot/internal/models"
)

const defaultStoreTimeout = 3 * time.Second

type BookingGormRepository struct {
	db      *gorm.DB
	timeout time.Duration
}

func NewBookingGormRepository(db *gorm.DB, timeout time.Duration) *BookingGormRepository {
	if timeout <= 0 {
		timeout = defaultStoreTimeout
	}
	return &BookingGormRepository{db: db, timeout: timeout}
}

// storedTime is the column form of a slot label.
func storedTime(label string) string {
	return label + ":00"
}

func unavailable(err error) error {
	return fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *BookingGormRepository) IsBooked(
	ctx context.Context,
	day string,
	slot string,
	barber string,
) (bool, error) {

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where(`barber_name = ? AND day = ? AND "time" = ?`, barber, day, storedTime(slot)).
		Count(&count).Error; err != nil {
		return false, unavailable(err)
	}

	return count > 0, nil
}

func (r *BookingGormRepository) BookedTimes(
	ctx context.Context,
	day string,
	barber string,
) ([]string, error) {

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var stored []string
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("barber_name = ? AND day = ?", barber, day).
		Order(`"time" ASC`).
		Pluck(`CAST("time" AS TEXT)`, &stored).Error; err != nil {
		return nil, unavailable(err)
	}

	labels := make([]string, 0, len(stored))
	for _, s := range stored {
		labels = append(labels, models.SlotLabel(s))
	}
	return labels, nil
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	row := *b
	row.Time = storedTime(b.Time)

	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if httperr.IsUniqueConflict(err) {
			return domain.ErrSlotTaken
		}
		return unavailable(err)
	}

	b.ID = row.ID
	b.CreatedAt = row.CreatedAt
	return nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
