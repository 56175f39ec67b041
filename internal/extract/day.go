package extract

import (
	"regexp"
	"strconv"
	"time"

	domain "github.com/BruksfildServices01/barber-chatbot/internal/domain/booking"
)

var weekdayNames = map[string]time.Weekday{
	"domingo": time.Sunday, "sunday": time.Sunday,
	"lunes": time.Monday, "monday": time.Monday,
	"martes": time.Tuesday, "tuesday": time.Tuesday,
	"miércoles": time.Wednesday, "miercoles": time.Wednesday, "wednesday": time.Wednesday,
	"jueves": time.Thursday, "thursday": time.Thursday,
	"viernes": time.Friday, "friday": time.Friday,
	"sábado": time.Saturday, "sabado": time.Saturday, "saturday": time.Saturday,
}

var (
	isoDate = regexp.MustCompile(`(\d{4})-(\d{1,2})-(\d{1,2})`)
	dmyDate = regexp.MustCompile(`(\d{1,2})[/-](\d{1,2})[/-](\d{4})`)
)

// Day resolves text to an ISO calendar day relative to now.
func Day(text string, now time.Time) (string, bool) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 12, 0, 0, 0, time.UTC)

	tokens := words(text)

	for _, w := range tokens {
		switch w {
		case "hoy", "today":
			return today.Format(domain.DayLayout), true
		}
	}

	for i, w := range tokens {
		switch w {
		case "mañana", "manana":
			// "por la mañana" is the morning, not tomorrow
			if i > 0 && tokens[i-1] == "la" {
				continue
			}
			return today.AddDate(0, 0, 1).Format(domain.DayLayout), true
		case "tomorrow":
			return today.AddDate(0, 0, 1).Format(domain.DayLayout), true
		}
	}

	for _, w := range tokens {
		if wd, ok := weekdayNames[w]; ok {
			diff := int(wd) - int(today.Weekday())
			if diff <= 0 {
				diff += 7
			}
			return today.AddDate(0, 0, diff).Format(domain.DayLayout), true
		}
	}

	if m := isoDate.FindStringSubmatch(text); m != nil {
		return calendarDay(m[1], m[2], m[3])
	}

	if m := dmyDate.FindStringSubmatch(text); m != nil {
		return calendarDay(m[3], m[2], m[1])
	}

	return "", false
}

// calendarDay rejects dates that do not exist, like the 30th of February.
func calendarDay(year, month, day string) (string, bool) {
	y, _ := strconv.Atoi(year)
	m, _ := strconv.Atoi(month)
	d, _ := strconv.Atoi(day)

	if m < 1 || m > 12 || d < 1 {
		return "", false
	}

	t := time.Date(y, time.Month(m), d, 12, 0, 0, 0, time.UTC)
	if t.Day() != d || int(t.Month()) != m {
		return "", false
	}
	return t.Format(domain.DayLayout), true
}
