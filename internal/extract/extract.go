// Package extract pulls a barber, a calendar day and a slot time out of a
// free-form Spanish or English message. Every function is total: text it
// cannot read simply yields no value.
package extract

import (
	"strings"
	"time"
	"unicode"

	domain "github.com/BruksfildServices01/barber-chatbot/internal/domain/booking"
)

// Result holds whatever a single message carried. Empty strings are absent fields.
type Result struct {
	Barber string
	Day    string
	Time   string
}

func (r Result) HasDayOrTime() bool {
	return r.Day != "" || r.Time != ""
}

// All runs every extractor over text. now anchors relative days and must
// already be in the shop timezone.
func All(text string, roster domain.Roster, now time.Time) Result {
	var r Result
	if b, ok := Barber(text, roster); ok {
		r.Barber = b
	}
	if d, ok := Day(text, now); ok {
		r.Day = d
	}
	if t, ok := Time(text); ok {
		r.Time = t
	}
	return r
}

// Barber finds the first roster name contained in text, ignoring case.
func Barber(text string, roster domain.Roster) (string, bool) {
	lower := strings.ToLower(text)
	for _, b := range roster {
		if b != "" && strings.Contains(lower, strings.ToLower(b)) {
			return b, true
		}
	}
	return "", false
}

// words splits lowercased text into letter-only tokens.
func words(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r)
	})
}
