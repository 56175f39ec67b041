package cache

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	domain "github.com/BruksfildServices01/barber-chatbot/internal/domain/booking"
	"github.com/BruksfildServices01/barber-chatbot/internal/models"
)

// BookedTimesLRU is the in-process variant of BookedTimesCache for single
// instance deployments without Redis. Entries expire after ttl.
type BookedTimesLRU struct {
	next  domain.Repository
	lists *expirable.LRU[string, []string]
}

func NewBookedTimesLRU(next domain.Repository, size int, ttl time.Duration) *BookedTimesLRU {
	return &BookedTimesLRU{
		next:  next,
		lists: expirable.NewLRU[string, []string](size, nil, ttl),
	}
}

func (c *BookedTimesLRU) IsBooked(ctx context.Context, day, slot, barber string) (bool, error) {
	return c.next.IsBooked(ctx, day, slot, barber)
}

func (c *BookedTimesLRU) BookedTimes(ctx context.Context, day, barber string) ([]string, error) {
	k := key(day, barber)
	if times, ok := c.lists.Get(k); ok {
		return slices.Clone(times), nil
	}

	times, err := c.next.BookedTimes(ctx, day, barber)
	if err != nil {
		return nil, err
	}

	c.lists.Add(k, slices.Clone(times))
	return times, nil
}

func (c *BookedTimesLRU) CreateBooking(ctx context.Context, b *models.Booking) error {
	err := c.next.CreateBooking(ctx, b)
	if err == nil || errors.Is(err, domain.ErrSlotTaken) {
		c.lists.Remove(key(b.Day, b.BarberName))
	}
	return err
}

var _ domain.Repository = (*BookedTimesLRU)(nil)
