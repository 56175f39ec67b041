package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/barber-chatbot/internal/domain/booking"
	"github.com/BruksfildServices01/barber-chatbot/internal/models"
)

// BookedTimesCache keeps per-day booked slot lists in Redis in front of
// another repository. Redis failures only cost a cache miss.
type BookedTimesCache struct {
	next   domain.Repository
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

func NewBookedTimesCache(
	next domain.Repository,
	client *redis.Client,
	ttl time.Duration,
	log *zap.Logger,
) *BookedTimesCache {
	return &BookedTimesCache{
		next:   next,
		client: client,
		ttl:    ttl,
		log:    log,
	}
}

// NewClient connects and pings with a short deadline.
func NewClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

func key(day, barber string) string {
	return fmt.Sprintf("booked:%s:%s", barber, day)
}

// IsBooked always asks the store; only list reads are cached.
func (c *BookedTimesCache) IsBooked(
	ctx context.Context,
	day string,
	slot string,
	barber string,
) (bool, error) {
	return c.next.IsBooked(ctx, day, slot, barber)
}

func (c *BookedTimesCache) BookedTimes(
	ctx context.Context,
	day string,
	barber string,
) ([]string, error) {

	k := key(day, barber)

	raw, err := c.client.Get(ctx, k).Bytes()
	switch {
	case err == nil:
		var times []string
		if jsonErr := json.Unmarshal(raw, &times); jsonErr == nil {
			return times, nil
		}
	case !errors.Is(err, redis.Nil):
		c.log.Warn("booked times cache read failed", zap.String("key", k), zap.Error(err))
	}

	times, err := c.next.BookedTimes(ctx, day, barber)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(times); err == nil {
		if err := c.client.Set(ctx, k, payload, c.ttl).Err(); err != nil {
			c.log.Warn("booked times cache write failed", zap.String("key", k), zap.Error(err))
		}
	}

	return times, nil
}

func (c *BookedTimesCache) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {

	err := c.next.CreateBooking(ctx, b)
	if err == nil || errors.Is(err, domain.ErrSlotTaken) {
		c.invalidate(ctx, b.Day, b.BarberName)
	}
	return err
}

func (c *BookedTimesCache) invalidate(ctx context.Context, day, barber string) {
	if err := c.client.Del(ctx, key(day, barber)).Err(); err != nil {
		c.log.Warn("booked times cache invalidation failed", zap.String("key", key(day, barber)), zap.Error(err))
	}
}

var _ domain.Repository = (*BookedTimesCache)(nil)
