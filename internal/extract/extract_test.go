package extract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	domain "github.com/BruksfildServices01/barber-chatbot/internal/domain/booking"
)

// Wednesday 2026-10-14, late evening in Madrid (already the 14th locally).
var now = time.Date(2026, 10, 14, 23, 30, 0, 0, time.FixedZone("CEST", 2*3600))

func TestBarber(t *testing.T) {
	roster := domain.Roster{"Marcelo", "Dani"}

	b, ok := Barber("quiero con MARCELO mañana", roster)
	assert.True(t, ok)
	assert.Equal(t, "Marcelo", b)

	b, ok = Barber("with dani please", roster)
	assert.True(t, ok)
	assert.Equal(t, "Dani", b)

	_, ok = Barber("anyone is fine", roster)
	assert.False(t, ok)
}

func TestDay(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"hoy", "2026-10-14"},
		{"Today at 5pm", "2026-10-14"},
		{"mañana a las 10", "2026-10-15"},
		{"MAÑANA", "2026-10-15"},
		{"tomorrow at 10:00", "2026-10-15"},
		{"el viernes", "2026-10-16"},
		{"el viernes por la mañana", "2026-10-16"},
		{"on saturday", "2026-10-17"},
		{"el sábado", "2026-10-17"},
		{"lunes", "2026-10-19"},
		// same weekday as today means next week
		{"miércoles", "2026-10-21"},
		{"wednesday", "2026-10-21"},
		{"domingo", "2026-10-18"},
		{"2026-10-20", "2026-10-20"},
		{"el 2026-1-5", "2026-01-05"},
		{"20/10/2026", "2026-10-20"},
		{"5-11-2026 a las 12", "2026-11-05"},
	}

	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			got, ok := Day(tc.text, now)
			assert.True(t, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDayAbsent(t *testing.T) {
	for _, text := range []string{"", "hola", "2026-02-30", "31/04/2026", "13/13/2026", "hoyuelo", "whenever", "por la mañana"} {
		_, ok := Day(text, now)
		assert.False(t, ok, text)
	}
}

func TestDayIsIdempotent(t *testing.T) {
	first, ok1 := Day("mañana", now)
	second, ok2 := Day("mañana", now)

	assert.True(t, ok1 && ok2)
	assert.Equal(t, first, second)
}

func TestTime(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"10:00", "10:00"},
		{"a las 19:30", "19:30"},
		{"at 10:10", "10:00"},
		{"14:14", "14:00"},
		{"14:15", "14:30"},
		{"14:44", "14:30"},
		{"14:45", "15:00"},
		{"18:50", "19:00"},
		{"3pm", "15:00"},
		{"3 PM por favor", "15:00"},
		{"11am", "11:00"},
		{"12pm", "12:00"},
		{"a las 4", "16:00"},
		{"at 7", "19:00"},
		{"At 11", "11:00"},
		{"a la 1", "13:00"},
		{"mañana a las 10", "10:00"},
	}

	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			got, ok := Time(tc.text)
			assert.True(t, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestTimeAbsent(t *testing.T) {
	for _, text := range []string{
		"",
		"19:45",          // rounds to 20:00, past closing
		"at 19:45",       // explicit clock time is decisive
		"9:30",           // before opening
		"9:50",           // hour out of range before rounding
		"20:00",
		"10:75",
		"8am",
		"9pm",
		"12am",
		"at 9",
		"at 8",
		"cat 5",
		"dentro de 3 dias",
	} {
		_, ok := Time(text)
		assert.False(t, ok, text)
	}
}

func TestAll(t *testing.T) {
	r := All("Marcelo, mañana a las 10:30", domain.Roster{"Marcelo"}, now)

	assert.Equal(t, Result{Barber: "Marcelo", Day: "2026-10-15", Time: "10:30"}, r)
	assert.True(t, r.HasDayOrTime())
	assert.False(t, All("hola", domain.Roster{"Marcelo"}, now).HasDayOrTime())
}
