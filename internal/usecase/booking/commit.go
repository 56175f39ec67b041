package booking

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/BruksfildServices01/barber-chatbot/internal/audit"
	domain "github.com/BruksfildServices01/barber-chatbot/internal/domain/booking"
	"github.com/BruksfildServices01/barber-chatbot/internal/httperr"
	"github.com/BruksfildServices01/barber-chatbot/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CommitBookingInput struct {
	Barber string
	Day    string
	Time   string

	ClientName  string
	PhoneNumber string
	Notes       string

	// SessionID ties the audit trail to a chatbot conversation, if any.
	SessionID string
}

var phonePattern = regexp.MustCompile(`^\+?\d{6,}$`)

// NormalizePhone strips spaces, dots, hyphens and parentheses. The second return
// is false when what remains is not a plausible phone number.
func NormalizePhone(raw string) (string, bool) {
	clean := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '.', '-', '(', ')':
			return -1
		}
		return r
	}, raw)

	return clean, phonePattern.MatchString(clean)
}

// ======================================================
// USE CASE
// ======================================================

type CommitBooking struct {
	repo   domain.Repository
	roster domain.Roster
	audit  *audit.Dispatcher
	now    func() time.Time
}

// NewCommitBooking takes the shop clock; days before its today are refused.
func NewCommitBooking(
	repo domain.Repository,
	roster domain.Roster,
	audit *audit.Dispatcher,
	now func() time.Time,
) *CommitBooking {
	if now == nil {
		now = time.Now
	}
	return &CommitBooking{
		repo:   repo,
		roster: roster,
		audit:  audit,
		now:    now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute inserts the booking. It returns domain.ErrSlotTaken when the slot
// was committed by someone else first and domain.ErrStoreUnavailable for
// every other store failure.
func (uc *CommitBooking) Execute(
	ctx context.Context,
	in CommitBookingInput,
) (*models.Booking, error) {

	// --------------------------------------------------
	// 1️⃣ Validation
	// --------------------------------------------------
	barber, ok := uc.roster.Lookup(in.Barber)
	if !ok {
		return nil, httperr.ErrBusiness("invalid_barber")
	}

	if _, ok := domain.ParseDay(in.Day); !ok {
		return nil, httperr.ErrBusiness("invalid_day")
	}
	if !domain.IsWorkingDayString(in.Day) {
		return nil, httperr.ErrBusiness("non_working_day")
	}
	if in.Day < uc.now().Format(domain.DayLayout) {
		return nil, httperr.ErrBusiness("past_day")
	}

	if !domain.IsSlot(in.Time) {
		return nil, httperr.ErrBusiness("invalid_time")
	}

	name := strings.TrimSpace(in.ClientName)
	if len([]rune(name)) < 2 {
		return nil, httperr.ErrBusiness("invalid_client_name")
	}

	phone, ok := NormalizePhone(in.PhoneNumber)
	if !ok {
		return nil, httperr.ErrBusiness("invalid_phone_number")
	}

	// --------------------------------------------------
	// 2️⃣ Insert (uniqueness enforced by the store)
	// --------------------------------------------------
	b := &models.Booking{
		BarberName:  barber,
		Day:         in.Day,
		Time:        in.Time,
		ClientName:  name,
		PhoneNumber: phone,
		Notes:       strings.TrimSpace(in.Notes),
	}

	err := uc.repo.CreateBooking(ctx, b)

	// --------------------------------------------------
	// 3️⃣ Audit
	// --------------------------------------------------
	switch {
	case err == nil:
		uc.dispatch(audit.Event{
			Action:    audit.ActionBookingCreated,
			Entity:    "booking",
			EntityID:  &b.ID,
			SessionID: in.SessionID,
		})
		return b, nil

	case errors.Is(err, domain.ErrSlotTaken):
		uc.dispatch(audit.Event{
			Action:    audit.ActionBookingConflict,
			Entity:    "booking",
			SessionID: in.SessionID,
			Metadata: map[string]string{
				"barber": barber,
				"day":    in.Day,
				"time":   in.Time,
			},
		})
		return nil, domain.ErrSlotTaken

	case errors.Is(err, domain.ErrStoreUnavailable):
		return nil, err

	default:
		return nil, errors.Join(domain.ErrStoreUnavailable, err)
	}
}

func (uc *CommitBooking) dispatch(ev audit.Event) {
	if uc.audit != nil {
		uc.audit.Dispatch(ev)
	}
}
