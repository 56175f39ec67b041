package repository

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	dbpkg "github.com/BruksfildServices01/barber-chatbot/internal/db"
	domain "github.com/BruksfildServices01/barber-chatbot/internal/domain/booking"
	"github.com/BruksfildServices01/barber-chatbot/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// one connection so every query sees the same in-memory database
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, dbpkg.Migrate(db))
	return db
}

func sampleBooking() *models.Booking {
	return &models.Booking{
		BarberName:  "Marcelo",
		Day:         "2026-10-15",
		Time:        "10:00",
		ClientName:  "Alex",
		PhoneNumber: "+34600000000",
		Notes:       "Reservado via chatbot",
	}
}

func TestCreateBookingAndIsBooked(t *testing.T) {
	repo := NewBookingGormRepository(newTestDB(t), time.Second)
	ctx := context.Background()

	booked, err := repo.IsBooked(ctx, "2026-10-15", "10:00", "Marcelo")
	require.NoError(t, err)
	assert.False(t, booked)

	b := sampleBooking()
	require.NoError(t, repo.CreateBooking(ctx, b))
	assert.NotZero(t, b.ID)
	assert.Equal(t, "10:00", b.Time, "caller keeps the slot label")

	booked, err = repo.IsBooked(ctx, "2026-10-15", "10:00", "Marcelo")
	require.NoError(t, err)
	assert.True(t, booked)

	booked, err = repo.IsBooked(ctx, "2026-10-15", "10:30", "Marcelo")
	require.NoError(t, err)
	assert.False(t, booked)

	booked, err = repo.IsBooked(ctx, "2026-10-15", "10:00", "Dani")
	require.NoError(t, err)
	assert.False(t, booked)
}

func TestCreateBookingDuplicateSlotIsConflict(t *testing.T) {
	db := newTestDB(t)
	repo := NewBookingGormRepository(db, time.Second)
	ctx := context.Background()

	require.NoError(t, repo.CreateBooking(ctx, sampleBooking()))

	second := sampleBooking()
	second.ClientName = "Sam"
	err := repo.CreateBooking(ctx, second)
	assert.ErrorIs(t, err, domain.ErrSlotTaken)

	var count int64
	require.NoError(t, db.Model(&models.Booking{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestConcurrentCommitsOnlyOneWins(t *testing.T) {
	db := newTestDB(t)
	repo := NewBookingGormRepository(db, 5*time.Second)

	const attempts = 5
	errs := make([]error, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = repo.CreateBooking(context.Background(), sampleBooking())
		}(i)
	}
	wg.Wait()

	var ok, taken int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, domain.ErrSlotTaken):
			taken++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, attempts-1, taken)
}

func TestBookedTimesReturnsSlotLabels(t *testing.T) {
	repo := NewBookingGormRepository(newTestDB(t), time.Second)
	ctx := context.Background()

	for _, slot := range []string{"12:30", "10:00"} {
		b := sampleBooking()
		b.Time = slot
		require.NoError(t, repo.CreateBooking(ctx, b))
	}

	other := sampleBooking()
	other.Day = "2026-10-16"
	require.NoError(t, repo.CreateBooking(ctx, other))

	times, err := repo.BookedTimes(ctx, "2026-10-15", "Marcelo")
	require.NoError(t, err)
	assert.Equal(t, []string{"10:00", "12:30"}, times)
}

func TestStoreFailureIsUnavailable(t *testing.T) {
	db := newTestDB(t)
	repo := NewBookingGormRepository(db, time.Second)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	_, err = repo.IsBooked(context.Background(), "2026-10-15", "10:00", "Marcelo")
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)

	err = repo.CreateBooking(context.Background(), sampleBooking())
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	assert.NotErrorIs(t, err, domain.ErrSlotTaken)
}
