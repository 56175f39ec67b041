package booking

import (
	"context"
	"sort"
	"sync"

	domain "github.com/BruksfildServices01/barber-chatbot/internal/domain/booking"
	"github.com/BruksfildServices01/barber-chatbot/internal/models"
)

type memoryRepo struct {
	mu      sync.Mutex
	rows    map[string]models.Booking
	failErr error
	nextID  uint
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{rows: map[string]models.Booking{}}
}

func slotKey(barber, day, slot string) string {
	return barber + "|" + day + "|" + slot
}

func (m *memoryRepo) book(barber, day string, slots ...string) {
	for _, s := range slots {
		m.rows[slotKey(barber, day, s)] = models.Booking{BarberName: barber, Day: day, Time: s}
	}
}

func (m *memoryRepo) IsBooked(_ context.Context, day, slot, barber string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failErr != nil {
		return false, m.failErr
	}
	_, ok := m.rows[slotKey(barber, day, slot)]
	return ok, nil
}

func (m *memoryRepo) BookedTimes(_ context.Context, day, barber string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failErr != nil {
		return nil, m.failErr
	}
	var out []string
	for _, b := range m.rows {
		if b.BarberName == barber && b.Day == day {
			out = append(out, b.Time)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (m *memoryRepo) CreateBooking(_ context.Context, b *models.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failErr != nil {
		return m.failErr
	}
	k := slotKey(b.BarberName, b.Day, b.Time)
	if _, ok := m.rows[k]; ok {
		return domain.ErrSlotTaken
	}
	m.nextID++
	b.ID = m.nextID
	m.rows[k] = *b
	return nil
}
