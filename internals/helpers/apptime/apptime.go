// file: internals/helpers/apptime/apptime.go
package apptime

import (
	"time"

	"sarathi_backend/internals/configs"
)

// All daily boundaries (quizzes, streaks, goals, heatmaps) are anchored to
// the app timezone, not the server zone or the client zone.

const DateLayout = "2006-01-02"

// Location returns the configured app zone, falling back to IST before
// LoadEnv has run (tests, seeders).
func Location() *time.Location {
	if configs.AppLocation != nil {
		return configs.AppLocation
	}
	if loc, err := time.LoadLocation("Asia/Kolkata"); err == nil {
		return loc
	}
	return time.UTC
}

func Now() time.Time {
	return time.Now().In(Location())
}

// DateOf truncates t to midnight of its calendar day in the app zone.
func DateOf(t time.Time) time.Time {
	lt := t.In(Location())
	return time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, Location())
}

// Today is midnight of the current day in the app zone.
func Today() time.Time {
	return DateOf(time.Now())
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return DateOf(a).Equal(DateOf(b))
}

// IsNextDay reports whether day follows prev by exactly one calendar day.
func IsNextDay(prev, day time.Time) bool {
	return DateOf(prev).AddDate(0, 0, 1).Equal(DateOf(day))
}

// WeekStart is the Monday midnight of t's week. Weekly goals are keyed on
// this date.
func WeekStart(t time.Time) time.Time {
	d := DateOf(t)
	// Weekday(): Sunday=0 ... Saturday=6; shift so Monday opens the week
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}

// ParseDate parses "YYYY-MM-DD" as midnight in the app zone.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, Location())
}

// FormatDate renders t as "YYYY-MM-DD" in the app zone.
func FormatDate(t time.Time) string {
	return t.In(Location()).Format(DateLayout)
}
