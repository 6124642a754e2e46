package timetable

import (
	"strconv"
	"strings"
)

// parseClock converts an "H:MM" or "HH:MM" string to minutes since midnight.
func parseClock(s string) (int, bool) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return 0, false
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

// slotBounds splits a "HH:MM-HH:MM" slot into start and end minutes.
func slotBounds(slot string) (start, end int, ok bool) {
	from, to, found := strings.Cut(slot, "-")
	if !found {
		return 0, 0, false
	}
	start, ok = parseClock(from)
	if !ok {
		return 0, 0, false
	}
	end, ok = parseClock(to)
	if !ok {
		return 0, 0, false
	}
	return start, end, true
}

// slotStart returns a slot's start in minutes since midnight. Malformed or
// empty slots sort as minute zero so a bad row cannot abort a build.
func slotStart(slot string) int {
	from, _, found := strings.Cut(slot, "-")
	if !found {
		return 0
	}
	if start, ok := parseClock(from); ok {
		return start
	}
	return 0
}
