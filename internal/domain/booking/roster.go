package booking

import "strings"

// Roster is the static list of barber display names.
type Roster []string

// Lookup returns the canonical roster name for a case-insensitive match.
func (r Roster) Lookup(name string) (string, bool) {
	for _, b := range r {
		if strings.EqualFold(b, strings.TrimSpace(name)) {
			return b, true
		}
	}
	return "", false
}

// Sole returns the only barber when the roster has exactly one entry.
func (r Roster) Sole() (string, bool) {
	if len(r) == 1 {
		return r[0], true
	}
	return "", false
}
