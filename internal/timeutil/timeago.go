// Package timeutil formats timestamps for the activity feed.
package timeutil

import (
	"fmt"
	"time"
)

// TimeAgo renders how long ago t was relative to now, at the coarsest
// sensible unit: "just now", "45 seconds ago", "2 hours ago", "3 weeks
// ago", and so on.
func TimeAgo(t, now time.Time) string {
	seconds := int(now.Sub(t).Seconds())

	if seconds < 10 {
		return "just now"
	}
	if seconds < 60 {
		return fmt.Sprintf("%d seconds ago", seconds)
	}

	minutes := seconds / 60
	if minutes < 60 {
		return plural(minutes, "minute")
	}

	hours := minutes / 60
	if hours < 24 {
		return plural(hours, "hour")
	}

	days := hours / 24
	if days < 7 {
		return plural(days, "day")
	}

	weeks := days / 7
	if weeks < 4 {
		return plural(weeks, "week")
	}

	months := days / 30
	if months < 12 {
		return plural(months, "month")
	}

	return plural(days/365, "year")
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}

// IsToday reports whether t falls on the same calendar day as now, in
// now's location.
func IsToday(t, now time.Time) bool {
	y1, m1, d1 := t.In(now.Location()).Date()
	y2, m2, d2 := now.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// WithinDays reports whether t is at most days old relative to now.
func WithinDays(t, now time.Time, days int) bool {
	return now.Sub(t) <= time.Duration(days)*24*time.Hour
}
