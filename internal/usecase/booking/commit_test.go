package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-chatbot/internal/audit"
	domain "github.com/BruksfildServices01/barber-chatbot/internal/domain/booking"
	"github.com/BruksfildServices01/barber-chatbot/internal/httperr"
)

// Wednesday 2026-10-14 in the shop timezone
func fixedClock() time.Time {
	return time.Date(2026, 10, 14, 18, 0, 0, 0, time.UTC)
}

type recordingSink struct {
	actions []string
}

func (r *recordingSink) Log(ev audit.Event) error {
	r.actions = append(r.actions, ev.Action)
	return nil
}

func validInput() CommitBookingInput {
	return CommitBookingInput{
		Barber:      "marcelo",
		Day:         "2026-10-15",
		Time:        "10:00",
		ClientName:  " Alex ",
		PhoneNumber: "+34 600-000 000",
		Notes:       "Reservado via chatbot",
		SessionID:   "s-1",
	}
}

func TestCommitBookingPersistsNormalizedRow(t *testing.T) {
	repo := newMemoryRepo()
	sink := &recordingSink{}
	dispatcher := audit.NewDispatcher(sink, zap.NewNop())
	uc := NewCommitBooking(repo, domain.Roster{"Marcelo"}, dispatcher, fixedClock)

	b, err := uc.Execute(context.Background(), validInput())
	require.NoError(t, err)
	dispatcher.Close()

	assert.Equal(t, "Marcelo", b.BarberName)
	assert.Equal(t, "Alex", b.ClientName)
	assert.Equal(t, "+34600000000", b.PhoneNumber)
	assert.NotZero(t, b.ID)
	assert.Len(t, repo.rows, 1)
	assert.Equal(t, []string{audit.ActionBookingCreated}, sink.actions)
}

func TestCommitBookingSecondAttemptConflicts(t *testing.T) {
	repo := newMemoryRepo()
	sink := &recordingSink{}
	dispatcher := audit.NewDispatcher(sink, zap.NewNop())
	uc := NewCommitBooking(repo, domain.Roster{"Marcelo"}, dispatcher, fixedClock)

	_, err := uc.Execute(context.Background(), validInput())
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), validInput())
	dispatcher.Close()

	assert.ErrorIs(t, err, domain.ErrSlotTaken)
	assert.Len(t, repo.rows, 1)
	assert.Equal(t, []string{audit.ActionBookingCreated, audit.ActionBookingConflict}, sink.actions)
}

func TestCommitBookingStoreFailureIsUnavailable(t *testing.T) {
	repo := newMemoryRepo()
	repo.failErr = errors.New("connection reset")
	uc := NewCommitBooking(repo, domain.Roster{"Marcelo"}, nil, fixedClock)

	_, err := uc.Execute(context.Background(), validInput())
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	assert.NotErrorIs(t, err, domain.ErrSlotTaken)
}

func TestCommitBookingValidation(t *testing.T) {
	uc := NewCommitBooking(newMemoryRepo(), domain.Roster{"Marcelo"}, nil, fixedClock)

	cases := map[string]func(in *CommitBookingInput){
		"invalid_barber":       func(in *CommitBookingInput) { in.Barber = "Pedro" },
		"invalid_day":          func(in *CommitBookingInput) { in.Day = "15/10/2026" },
		"non_working_day":      func(in *CommitBookingInput) { in.Day = "2026-10-18" },
		"past_day":             func(in *CommitBookingInput) { in.Day = "2026-10-13" },
		"invalid_time":         func(in *CommitBookingInput) { in.Time = "10:15" },
		"invalid_client_name":  func(in *CommitBookingInput) { in.ClientName = " A " },
		"invalid_phone_number": func(in *CommitBookingInput) { in.PhoneNumber = "12-34" },
	}

	for code, mutate := range cases {
		t.Run(code, func(t *testing.T) {
			in := validInput()
			mutate(&in)

			_, err := uc.Execute(context.Background(), in)
			assert.True(t, httperr.IsBusiness(err, code), "got %v", err)
		})
	}
}

func TestCommitBookingAcceptsToday(t *testing.T) {
	repo := newMemoryRepo()
	uc := NewCommitBooking(repo, domain.Roster{"Marcelo"}, nil, fixedClock)

	in := validInput()
	in.Day = "2026-10-14"

	_, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)
	assert.Len(t, repo.rows, 1)
}

func TestCommitBookingRefusesPastDayWithoutWriting(t *testing.T) {
	repo := newMemoryRepo()
	uc := NewCommitBooking(repo, domain.Roster{"Marcelo"}, nil, fixedClock)

	in := validInput()
	in.Day = "2026-10-13"

	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "past_day"), "got %v", err)
	assert.Empty(t, repo.rows)
}

func TestNormalizePhone(t *testing.T) {
	p, ok := NormalizePhone("+34 (600) 000-000")
	assert.True(t, ok)
	assert.Equal(t, "+34600000000", p)

	_, ok = NormalizePhone("12345")
	assert.False(t, ok)

	_, ok = NormalizePhone("call me")
	assert.False(t, ok)

	_, ok = NormalizePhone("600+000000")
	assert.False(t, ok)

	p, ok = NormalizePhone("600.000.000")
	assert.True(t, ok)
	assert.Equal(t, "600000000", p)
}
