package timetable

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// hourSlots maps timetable hour codes to wall-clock slots. Codes 1-12 are
// single teaching hours; 67 is the long lab block and must match as a whole
// before any digit-by-digit split.
var hourSlots = map[string]string{
	"1":  "8:00-8:50",
	"2":  "9:00-9:50",
	"3":  "10:00-10:50",
	"4":  "11:00-11:50",
	"5":  "12:00-12:50",
	"6":  "1:00-1:50",
	"7":  "2:00-2:50",
	"8":  "3:00-3:50",
	"9":  "4:00-4:50",
	"10": "5:00-5:50",
	"11": "6:00-6:50",
	"12": "7:00-7:50",
	"67": "2:00-4:50",
}

// singleDayLetters maps the single-letter day codes. Thursday is deliberately
// absent: its two-letter "Th" token is handled before this table is consulted
// so a lone 'T' always means Tuesday.
var singleDayLetters = map[byte]string{
	'M': "Monday",
	'T': "Tuesday",
	'W': "Wednesday",
	'F': "Friday",
	'S': "Saturday",
}

// DecodeDays expands a compact day code such as "MWF", "T Th" or "MTh" into
// full weekday names. Rules are applied in a fixed order to resolve the
// T/Th ambiguity:
//
//  1. a "T Th" span counts as Tuesday and Thursday and is consumed;
//  2. any remaining "Th" counts as Thursday and is consumed;
//  3. leftover characters are matched one by one against the single-letter
//     table, skipping anything unrecognized.
//
// The result never contains a day twice. Empty or unparseable input yields
// an empty set, not an error.
func DecodeDays(code string) []string {
	s := strings.TrimSpace(code)
	if s == "" {
		return nil
	}

	var days []string
	add := func(day string) {
		for _, d := range days {
			if d == day {
				return
			}
		}
		days = append(days, day)
	}

	if strings.Contains(s, "T Th") {
		add("Tuesday")
		add("Thursday")
		s = strings.ReplaceAll(s, "T Th", "")
	}
	if strings.Contains(s, "Th") {
		add("Thursday")
		s = strings.ReplaceAll(s, "Th", "")
	}
	for i := 0; i < len(s); i++ {
		if day, ok := singleDayLetters[s[i]]; ok {
			add(day)
		}
	}
	return days
}

// DecodeHours expands an hour code into time slots. A whitespace-separated
// token that matches the slot table exactly becomes one slot; this is what
// keeps lab codes like "67" as a single long block. Any other multi-character
// token is split into single characters and each is decoded independently,
// left to right, skipping characters with no table entry. Unknown or blank
// input yields an empty list.
func DecodeHours(code string) []string {
	s := strings.TrimSpace(code)
	if s == "" {
		return nil
	}

	var slots []string
	for _, token := range strings.Fields(s) {
		if slot, ok := hourSlots[token]; ok {
			slots = append(slots, slot)
			continue
		}
		for _, ch := range token {
			if slot, ok := hourSlots[string(ch)]; ok {
				slots = append(slots, slot)
			}
		}
	}
	return slots
}

// CanonicalName normalizes an instructor name for use as a map key: trimmed,
// internal whitespace collapsed to single spaces, title-cased. Input without
// any letters (blanks, dashes, placeholder junk) canonicalizes to the empty
// string, which callers treat as "no instructor on this row".
func CanonicalName(raw string) string {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return ""
	}
	name := strings.Join(fields, " ")

	hasLetter := false
	for _, r := range name {
		if unicode.IsLetter(r) {
			hasLetter = true
			break
		}
	}
	if !hasLetter {
		return ""
	}

	return cases.Title(language.Und).String(name)
}

// collapseSpace trims a raw cell value and squeezes internal whitespace,
// including the newlines the source export embeds inside header and room
// cells.
func collapseSpace(raw string) string {
	return strings.Join(strings.Fields(raw), " ")
}
