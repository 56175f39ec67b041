package chatbot

import (
	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/barber-chatbot/internal/domain/booking"
)

type Step string

const (
	StepGreeting          Step = "greeting"
	StepCollectInfo       Step = "collect_info"
	StepCheckAlternatives Step = "check_availability"
	StepCollectName       Step = "collect_name"
	StepCollectPhone      Step = "collect_phone"
	StepConfirm           Step = "confirm"
	StepDone              Step = "done"
)

func (s Step) valid() bool {
	switch s {
	case StepGreeting, StepCollectInfo, StepCheckAlternatives,
		StepCollectName, StepCollectPhone, StepConfirm, StepDone:
		return true
	}
	return false
}

// SessionState is the whole conversation. The server keeps none of it:
// the caller sends back whatever the previous turn returned.
type SessionState struct {
	SessionID string `json:"session_id"`
	Step      Step   `json:"step"`

	Barber string `json:"barber,omitempty"`
	Day    string `json:"day,omitempty"`
	Time   string `json:"time,omitempty"`

	ClientName  string `json:"client_name,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
	Notes       string `json:"notes,omitempty"`

	Alternatives []domain.Alternative `json:"alternatives,omitempty"`
}

func bookableDay(day, today string) bool {
	if _, ok := domain.ParseDay(day); !ok {
		return false
	}
	return domain.IsWorkingDayString(day) && day >= today
}

func (s SessionState) hasSlot() bool {
	return s.Barber != "" && s.Day != "" && s.Time != ""
}

// NewSession starts a conversation at the greeting.
func NewSession() SessionState {
	return SessionState{
		SessionID: uuid.NewString(),
		Step:      StepGreeting,
	}
}

// Normalize turns caller-supplied state into a state the engine can trust.
// Fields that do not fit the roster or the catalog are dropped, as are days
// that are closed or before today (YYYY-MM-DD), and a step whose
// prerequisites are missing falls back to collecting info.
func Normalize(in *SessionState, roster domain.Roster, today string) SessionState {
	if in == nil {
		return NewSession()
	}

	s := *in
	if s.SessionID == "" {
		s.SessionID = uuid.NewString()
	}
	if !s.Step.valid() {
		s.Step = StepGreeting
	}

	if s.Barber != "" {
		name, ok := roster.Lookup(s.Barber)
		if !ok {
			name = ""
		}
		s.Barber = name
	}
	if !bookableDay(s.Day, today) {
		s.Day = ""
	}
	if !domain.IsSlot(s.Time) {
		s.Time = ""
	}

	alts := make([]domain.Alternative, 0, len(s.Alternatives))
	for _, a := range s.Alternatives {
		if bookableDay(a.Day, today) && domain.IsSlot(a.Time) {
			alts = append(alts, a)
		}
	}
	s.Alternatives = nil
	if len(alts) > 0 {
		s.Alternatives = alts
	}

	switch s.Step {
	case StepCheckAlternatives:
		if len(s.Alternatives) == 0 || s.Barber == "" {
			s.Step = StepCollectInfo
		}
	case StepCollectName:
		if !s.hasSlot() {
			s.Step = StepCollectInfo
		}
	case StepCollectPhone:
		if !s.hasSlot() || s.ClientName == "" {
			s.Step = StepCollectInfo
		}
	case StepConfirm:
		if !s.hasSlot() || s.ClientName == "" || s.PhoneNumber == "" {
			s.Step = StepCollectInfo
		}
	}

	if s.Step != StepCheckAlternatives {
		s.Alternatives = nil
	}

	return s
}
