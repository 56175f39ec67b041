package chatbot

import (
	"context"
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/barber-chatbot/internal/domain/booking"
	"github.com/BruksfildServices01/barber-chatbot/internal/extract"
	"github.com/BruksfildServices01/barber-chatbot/internal/httperr"
	"github.com/BruksfildServices01/barber-chatbot/internal/models"
	ucBooking "github.com/BruksfildServices01/barber-chatbot/internal/usecase/booking"
)

// ======================================================
// COLLABORATORS
// ======================================================

type AvailabilityChecker interface {
	IsBooked(ctx context.Context, day, slot, barber string) (bool, error)
}

type AlternativeFinder interface {
	Execute(ctx context.Context, day, slot, barber string) ([]domain.Alternative, error)
}

type BookingCommitter interface {
	Execute(ctx context.Context, in ucBooking.CommitBookingInput) (*models.Booking, error)
}

// ======================================================
// ENGINE
// ======================================================

// Turn is one reply plus the state the caller must send with its next message.
type Turn struct {
	Message string       `json:"message"`
	State   SessionState `json:"sessionState"`
}

type Engine struct {
	roster    domain.Roster
	checker   AvailabilityChecker
	finder    AlternativeFinder
	committer BookingCommitter
	now       func() time.Time
	log       *zap.Logger
}

func NewEngine(
	roster domain.Roster,
	checker AvailabilityChecker,
	finder AlternativeFinder,
	committer BookingCommitter,
	now func() time.Time,
	log *zap.Logger,
) *Engine {
	return &Engine{
		roster:    roster,
		checker:   checker,
		finder:    finder,
		committer: committer,
		now:       now,
		log:       log,
	}
}

var bareNumber = regexp.MustCompile(`^(\d{1,2})\s*[).]?$`)

// Reply advances the conversation by one message. An error means the turn
// could not be evaluated (the store was unreachable); the caller should keep
// its previous state and may resend the same message.
func (e *Engine) Reply(ctx context.Context, prior *SessionState, message string) (Turn, error) {
	state := e.Normalize(prior)
	text := strings.TrimSpace(message)

	if text == "" {
		return Turn{Message: e.prompt(state), State: state}, nil
	}

	var (
		turn Turn
		err  error
	)

	switch state.Step {
	case StepGreeting, StepCollectInfo:
		turn, err = e.collectInfo(ctx, state, text)
	case StepCheckAlternatives:
		turn, err = e.chooseAlternative(ctx, state, text)
	case StepCollectName:
		turn = e.collectName(state, text)
	case StepCollectPhone:
		turn = e.collectPhone(state, text)
	case StepConfirm:
		turn = e.confirm(ctx, state, text)
	case StepDone:
		turn, err = e.restart(ctx, state, text)
	}

	if err != nil {
		return Turn{}, err
	}

	e.log.Debug("chatbot turn",
		zap.String("session_id", state.SessionID),
		zap.String("from", string(state.Step)),
		zap.String("to", string(turn.State.Step)),
	)
	return turn, nil
}

// Normalize checks caller-supplied state against the roster and today's date.
func (e *Engine) Normalize(prior *SessionState) SessionState {
	return Normalize(prior, e.roster, e.today())
}

func (e *Engine) today() string {
	return e.now().Format(domain.DayLayout)
}

// prompt repeats what the current step is waiting for.
func (e *Engine) prompt(s SessionState) string {
	switch s.Step {
	case StepCollectInfo:
		return msgMissing(missingFields(e.withSoleBarber(s), e.roster))
	case StepCheckAlternatives:
		return msgPickValidNumber(s.Alternatives)
	case StepCollectName:
		return msgAskName()
	case StepCollectPhone:
		return msgAskPhone(s.ClientName)
	case StepConfirm:
		return msgSummary(s)
	case StepDone:
		return msgAnythingElse()
	default:
		return msgWelcome()
	}
}

// --------------------------------------------------
// greeting / collect_info
// --------------------------------------------------

func (e *Engine) collectInfo(ctx context.Context, s SessionState, text string) (Turn, error) {
	welcome := s.Step == StepGreeting
	s = e.merge(s, extract.All(text, e.roster, e.now()))
	return e.evaluate(ctx, s, welcome)
}

func (e *Engine) merge(s SessionState, found extract.Result) SessionState {
	if found.Barber != "" && s.Barber == "" {
		s.Barber = found.Barber
	}
	if found.Day != "" {
		s.Day = found.Day
	}
	if found.Time != "" {
		s.Time = found.Time
	}
	return s
}

func (e *Engine) withSoleBarber(s SessionState) SessionState {
	if s.Barber == "" {
		if sole, ok := e.roster.Sole(); ok {
			s.Barber = sole
		}
	}
	return s
}

// evaluate validates what has been collected so far and, once barber, day
// and time are all known, runs the availability check.
func (e *Engine) evaluate(ctx context.Context, s SessionState, welcome bool) (Turn, error) {
	s = e.withSoleBarber(s)
	s.Alternatives = nil

	if s.Day != "" {
		if !domain.IsWorkingDayString(s.Day) {
			s.Day = ""
			s.Step = StepCollectInfo
			return Turn{Message: msgNonWorkingDay(), State: s}, nil
		}
		if s.Day < e.today() {
			s.Day = ""
			s.Step = StepCollectInfo
			return Turn{Message: msgPastDay(), State: s}, nil
		}
	}

	if !s.hasSlot() {
		s.Step = StepCollectInfo
		if welcome {
			return Turn{Message: msgWelcome(), State: s}, nil
		}
		return Turn{Message: msgMissing(missingFields(s, e.roster)), State: s}, nil
	}

	return e.checkSlot(ctx, s)
}

func (e *Engine) checkSlot(ctx context.Context, s SessionState) (Turn, error) {
	booked, err := e.checker.IsBooked(ctx, s.Day, s.Time, s.Barber)
	if err != nil {
		return Turn{}, err
	}

	if !booked {
		s.Step = StepCollectName
		return Turn{Message: msgAvailable(s), State: s}, nil
	}

	alts, err := e.finder.Execute(ctx, s.Day, s.Time, s.Barber)
	if err != nil {
		return Turn{}, err
	}

	if len(alts) > 0 {
		msg := msgAlternatives(s.Day, s.Time, alts)
		s.Alternatives = alts
		s.Step = StepCheckAlternatives
		return Turn{Message: msg, State: s}, nil
	}

	s.Day, s.Time = "", ""
	s.Step = StepCollectInfo
	return Turn{Message: msgNoAvailability(), State: s}, nil
}

// --------------------------------------------------
// check_availability
// --------------------------------------------------

func (e *Engine) chooseAlternative(ctx context.Context, s SessionState, text string) (Turn, error) {
	if m := bareNumber.FindStringSubmatch(text); m != nil {
		n, _ := strconv.Atoi(m[1])
		if n < 1 || n > len(s.Alternatives) {
			return Turn{Message: msgPickValidNumber(s.Alternatives), State: s}, nil
		}

		alt := s.Alternatives[n-1]
		s.Day, s.Time = alt.Day, alt.Time
		s.Alternatives = nil
		s.Step = StepCollectName
		return Turn{Message: msgAlternativeChosen(s), State: s}, nil
	}

	found := extract.All(text, e.roster, e.now())
	if found.HasDayOrTime() {
		return e.evaluate(ctx, e.merge(s, found), false)
	}

	return Turn{Message: msgPickOrNew(), State: s}, nil
}

// --------------------------------------------------
// collect_name / collect_phone
// --------------------------------------------------

func (e *Engine) collectName(s SessionState, text string) Turn {
	if len([]rune(text)) < 2 {
		return Turn{Message: msgAskName(), State: s}
	}

	s.ClientName = text
	s.Step = StepCollectPhone
	return Turn{Message: msgAskPhone(text), State: s}
}

func (e *Engine) collectPhone(s SessionState, text string) Turn {
	phone, ok := ucBooking.NormalizePhone(text)
	if !ok {
		return Turn{Message: msgInvalidPhone(), State: s}
	}

	s.PhoneNumber = phone
	s.Step = StepConfirm
	return Turn{Message: msgSummary(s), State: s}
}

// --------------------------------------------------
// confirm
// --------------------------------------------------

var (
	affirmatives = []string{"sí", "si", "yes", "ok", "confirmo", "confirm"}
	negatives    = []string{"no", "cancel"}
)

func containsAny(text string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(text, n) {
			return true
		}
	}
	return false
}

func (e *Engine) confirm(ctx context.Context, s SessionState, text string) Turn {
	lower := strings.ToLower(text)

	switch {
	case containsAny(lower, affirmatives):
		return e.commit(ctx, s)

	case containsAny(lower, negatives):
		return Turn{
			Message: msgCancelled(),
			State:   SessionState{SessionID: s.SessionID, Step: StepCollectInfo},
		}

	default:
		return Turn{Message: msgConfirmYesNo(), State: s}
	}
}

func (e *Engine) commit(ctx context.Context, s SessionState) Turn {
	notes := s.Notes
	if notes == "" {
		notes = chatbotNotes
	}

	_, err := e.committer.Execute(ctx, ucBooking.CommitBookingInput{
		Barber:      s.Barber,
		Day:         s.Day,
		Time:        s.Time,
		ClientName:  s.ClientName,
		PhoneNumber: s.PhoneNumber,
		Notes:       notes,
		SessionID:   s.SessionID,
	})

	code, isBusiness := httperr.BusinessCode(err)

	switch {
	case err == nil:
		s.Step = StepDone
		return Turn{Message: msgBooked(s), State: s}

	case isBusiness:
		e.log.Info("booking rejected at confirmation",
			zap.String("session_id", s.SessionID),
			zap.String("code", code),
		)
		return e.rejected(s, code)

	case errors.Is(err, domain.ErrSlotTaken):
		e.log.Info("slot taken at confirmation",
			zap.String("session_id", s.SessionID),
			zap.String("day", s.Day),
			zap.String("time", s.Time),
		)
		s.Day, s.Time = "", ""
		s.Step = StepCollectInfo
		return Turn{Message: msgJustTaken(), State: s}

	default:
		e.log.Error("booking commit failed",
			zap.String("session_id", s.SessionID),
			zap.Error(err),
		)
		return Turn{Message: msgSaveFailed(), State: s}
	}
}

// rejected clears the field a validation code points at and asks for it again.
func (e *Engine) rejected(s SessionState, code string) Turn {
	switch code {
	case "invalid_client_name":
		s.ClientName = ""
		s.Step = StepCollectName
		return Turn{Message: msgAskName(), State: s}

	case "invalid_phone_number":
		s.PhoneNumber = ""
		s.Step = StepCollectPhone
		return Turn{Message: msgInvalidPhone(), State: s}
	}

	s.Step = StepCollectInfo
	msg := ""

	switch code {
	case "non_working_day":
		s.Day = ""
		msg = msgNonWorkingDay()
	case "past_day":
		s.Day = ""
		msg = msgPastDay()
	case "invalid_barber":
		s.Barber = ""
	case "invalid_time":
		s.Time = ""
	default:
		s.Day, s.Time = "", ""
	}

	if msg == "" {
		msg = msgMissing(missingFields(e.withSoleBarber(s), e.roster))
	}
	return Turn{Message: msg, State: s}
}

// --------------------------------------------------
// done
// --------------------------------------------------

func (e *Engine) restart(ctx context.Context, s SessionState, text string) (Turn, error) {
	fresh := SessionState{SessionID: s.SessionID, Step: StepGreeting}

	found := extract.All(text, e.roster, e.now())
	if !found.HasDayOrTime() {
		return Turn{Message: msgHelloAgain(), State: fresh}, nil
	}

	fresh.Step = StepCollectInfo
	return e.evaluate(ctx, e.merge(fresh, found), false)
}
