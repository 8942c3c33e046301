package utils

import "time"

// StartOfDay truncates a timestamp to local midnight. Day windows for rates
// and dashboard stats are computed against this boundary; the instant is
// always passed in explicitly rather than read from the ambient clock.
func StartOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
