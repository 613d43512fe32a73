package timeutil

import (
	"testing"
	"time"
)

func TestTimeAgo(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		ago  time.Duration
		want string
	}{
		{"just now", 5 * time.Second, "just now"},
		{"seconds", 45 * time.Second, "45 seconds ago"},
		{"one minute", 90 * time.Second, "1 minute ago"},
		{"minutes", 10 * time.Minute, "10 minutes ago"},
		{"one hour", time.Hour, "1 hour ago"},
		{"hours", 5 * time.Hour, "5 hours ago"},
		{"one day", 25 * time.Hour, "1 day ago"},
		{"days", 3 * 24 * time.Hour, "3 days ago"},
		{"one week", 8 * 24 * time.Hour, "1 week ago"},
		{"weeks", 20 * 24 * time.Hour, "2 weeks ago"},
		{"one month", 35 * 24 * time.Hour, "1 month ago"},
		{"months", 100 * 24 * time.Hour, "3 months ago"},
		{"one year", 400 * 24 * time.Hour, "1 year ago"},
		{"years", 800 * 24 * time.Hour, "2 years ago"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := TimeAgo(now.Add(-tc.ago), now); got != tc.want {
				t.Fatalf("TimeAgo(-%v) = %q, want %q", tc.ago, got, tc.want)
			}
		})
	}
}

func TestIsToday(t *testing.T) {
	now := time.Date(2026, 9, 1, 23, 30, 0, 0, time.UTC)
	if !IsToday(now.Add(-2*time.Hour), now) {
		t.Fatal("same day should be today")
	}
	if IsToday(now.Add(-24*time.Hour), now) {
		t.Fatal("yesterday is not today")
	}
}

func TestWithinDays(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	if !WithinDays(now.Add(-6*24*time.Hour), now, 7) {
		t.Fatal("6 days old should be within 7")
	}
	if WithinDays(now.Add(-8*24*time.Hour), now, 7) {
		t.Fatal("8 days old should not be within 7")
	}
}
