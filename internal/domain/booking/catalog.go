package booking

import "time"

// DayLayout is the ISO calendar date form used everywhere a day is stored.
const DayLayout = "2006-01-02"

var timeSlots = []string{
	"10:00", "10:30", "11:00", "11:30", "12:00", "12:30",
	"13:00", "13:30", "14:00", "14:30", "15:00", "15:30",
	"16:00", "16:30", "17:00", "17:30", "18:00", "18:30",
	"19:00", "19:30",
}

const (
	FirstHour = 10
	LastHour  = 19
)

// Slots returns a copy of the ordered daily slot labels.
func Slots() []string {
	out := make([]string, len(timeSlots))
	copy(out, timeSlots)
	return out
}

// SlotIndex returns the position of label in the catalog, or -1.
func SlotIndex(label string) int {
	for i, s := range timeSlots {
		if s == label {
			return i
		}
	}
	return -1
}

func IsSlot(label string) bool {
	return SlotIndex(label) >= 0
}

// IsWorkingDay is true Monday through Saturday.
func IsWorkingDay(date time.Time) bool {
	return date.Weekday() != time.Sunday
}

// ParseDay parses an ISO day at noon UTC so weekday math never crosses
// a DST boundary.
func ParseDay(day string) (time.Time, bool) {
	d, err := time.Parse(DayLayout, day)
	if err != nil {
		return time.Time{}, false
	}
	return d.Add(12 * time.Hour), true
}

// IsWorkingDayString is IsWorkingDay for an ISO day; malformed days are not working days.
func IsWorkingDayString(day string) bool {
	d, ok := ParseDay(day)
	return ok && IsWorkingDay(d)
}

// NextWorkingDay returns the first working day strictly after day.
func NextWorkingDay(day string) (string, bool) {
	d, ok := ParseDay(day)
	if !ok {
		return "", false
	}

	d = d.AddDate(0, 0, 1)
	for !IsWorkingDay(d) {
		d = d.AddDate(0, 0, 1)
	}
	return d.Format(DayLayout), true
}
