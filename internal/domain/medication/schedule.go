package medication

import (
	"strconv"
	"time"
	"unicode"
)

// ParseIntervalHours extracts the dosing interval in hours from a free-form
// frequency description like "De 8 em 8 horas". The first run of decimal
// digits wins. Text without a number (including the empty string) means
// once daily. A parsed 0 is clamped to 1 hour so the dose series always
// advances.
func ParseIntervalHours(text string) int {
	start := -1
	for i, r := range text {
		if unicode.IsDigit(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			return clampInterval(text[start:i])
		}
	}
	if start >= 0 {
		return clampInterval(text[start:])
	}
	return 24
}

func clampInterval(digits string) int {
	hours, err := strconv.Atoi(digits)
	if err != nil || hours < 1 {
		return 1
	}
	return hours
}

// NextDose computes the first administration time at or after now.
//
// If the anchor is still in the future it is itself the next dose. Otherwise
// the interval is added to the anchor until the candidate reaches now. A
// candidate strictly after the end date means the treatment has concluded
// and there is no next dose; a candidate exactly on the end date still
// counts.
func NextDose(start time.Time, frequencyText string, end *time.Time, now time.Time) (time.Time, bool) {
	interval := time.Duration(ParseIntervalHours(frequencyText)) * time.Hour

	next := start
	if !next.After(now) {
		elapsed := now.Sub(start)
		steps := elapsed / interval
		next = start.Add(steps * interval)
		if next.Before(now) {
			next = next.Add(interval)
		}
	}

	if end != nil && next.After(*end) {
		return time.Time{}, false
	}
	return next, true
}
