package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	domain "github.com/BruksfildServices01/barber-chatbot/internal/domain/booking"
)

var (
	clockTime = regexp.MustCompile(`(\d{1,2}):(\d{2})`)
	meridiem  = regexp.MustCompile(`(?i)(\d{1,2})\s*(am|pm)\b`)
	atHour    = regexp.MustCompile(`(?i)(?:^|[^\pL])(?:a las|a la|at)\s+(\d{1,2})\b`)
)

// Time finds a catalog slot in text. An explicit HH:MM is decisive: when
// it cannot be mapped onto the catalog the time stays unset.
func Time(text string) (string, bool) {
	if m := clockTime.FindStringSubmatch(text); m != nil {
		h, _ := strconv.Atoi(m[1])
		mins, _ := strconv.Atoi(m[2])
		return roundToSlot(h, mins)
	}

	if m := meridiem.FindStringSubmatch(text); m != nil {
		h, _ := strconv.Atoi(m[1])
		switch strings.ToLower(m[2]) {
		case "pm":
			if h < 12 {
				h += 12
			}
		case "am":
			if h == 12 {
				h = 0
			}
		}
		return hourSlot(h)
	}

	if m := atHour.FindStringSubmatch(text); m != nil {
		h, _ := strconv.Atoi(m[1])
		// "at 3" means the afternoon
		if h >= 1 && h <= 7 {
			h += 12
		}
		return hourSlot(h)
	}

	return "", false
}

// roundToSlot snaps minutes onto the half-hour grid: under 15 rounds down,
// 45 and over rolls to the next hour. Hours outside opening time, before or
// after rounding, produce nothing.
func roundToSlot(h, mins int) (string, bool) {
	if h < domain.FirstHour || h > domain.LastHour || mins > 59 {
		return "", false
	}

	switch {
	case mins < 15:
		mins = 0
	case mins < 45:
		mins = 30
	default:
		h, mins = h+1, 0
	}

	if h > domain.LastHour {
		return "", false
	}
	return label(h, mins)
}

func hourSlot(h int) (string, bool) {
	if h < domain.FirstHour || h > domain.LastHour {
		return "", false
	}
	return label(h, 0)
}

func label(h, mins int) (string, bool) {
	l := fmt.Sprintf("%02d:%02d", h, mins)
	return l, domain.IsSlot(l)
}
