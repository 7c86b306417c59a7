package apptime

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, Location())
}

func TestWeekStartIsMonday(t *testing.T) {
	cases := []struct {
		in   time.Time
		want time.Time
	}{
		{date(2026, time.March, 16), date(2026, time.March, 16)}, // Monday maps to itself
		{date(2026, time.March, 18), date(2026, time.March, 16)}, // Wednesday
		{date(2026, time.March, 22), date(2026, time.March, 16)}, // Sunday closes the week
		{date(2026, time.March, 23), date(2026, time.March, 23)}, // next Monday
	}
	for _, tc := range cases {
		got := WeekStart(tc.in)
		if !got.Equal(tc.want) {
			t.Fatalf("WeekStart(%s) = %s, want %s",
				FormatDate(tc.in), FormatDate(got), FormatDate(tc.want))
		}
		if got.Weekday() != time.Monday {
			t.Fatalf("WeekStart(%s) fell on %s", FormatDate(tc.in), got.Weekday())
		}
	}
}

func TestIsNextDay(t *testing.T) {
	if !IsNextDay(date(2026, time.March, 31), date(2026, time.April, 1)) {
		t.Fatalf("month boundary should count as next day")
	}
	if IsNextDay(date(2026, time.March, 15), date(2026, time.March, 17)) {
		t.Fatalf("two-day gap is not next day")
	}
	if IsNextDay(date(2026, time.March, 15), date(2026, time.March, 15)) {
		t.Fatalf("same day is not next day")
	}
	if IsNextDay(date(2026, time.March, 16), date(2026, time.March, 15)) {
		t.Fatalf("previous day is not next day")
	}
}

func TestDateOfNormalizesClockTime(t *testing.T) {
	late := time.Date(2026, time.March, 15, 23, 45, 12, 0, Location())
	got := DateOf(late)
	if got.Hour() != 0 || got.Minute() != 0 || got.Second() != 0 {
		t.Fatalf("DateOf left clock time: %v", got)
	}
	if !SameDay(late, got) {
		t.Fatalf("DateOf changed the calendar day")
	}
}

func TestParseDateRoundTrip(t *testing.T) {
	day, err := ParseDate("2026-06-01")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if FormatDate(day) != "2026-06-01" {
		t.Fatalf("round trip gave %s", FormatDate(day))
	}
	if _, err := ParseDate("01-06-2026"); err == nil {
		t.Fatalf("expected error for wrong layout")
	}
}
