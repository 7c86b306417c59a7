package service

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAdvanceStreakFirstActivity(t *testing.T) {
	cur, long, changed := AdvanceStreak(0, 0, nil, day(2025, time.July, 1))
	if !changed || cur != 1 || long != 1 {
		t.Fatalf("first activity: cur=%d long=%d changed=%v, want 1/1/true", cur, long, changed)
	}
}

func TestAdvanceStreakSameDayNoOp(t *testing.T) {
	last := day(2025, time.July, 1)
	cur, long, changed := AdvanceStreak(4, 9, &last, day(2025, time.July, 1).Add(18*time.Hour))
	if changed {
		t.Fatalf("same-day activity must not change the streak")
	}
	if cur != 4 || long != 9 {
		t.Fatalf("same-day returned cur=%d long=%d, want passthrough 4/9", cur, long)
	}
}

func TestAdvanceStreakNextDayIncrements(t *testing.T) {
	last := day(2025, time.July, 1)
	cur, long, changed := AdvanceStreak(4, 4, &last, day(2025, time.July, 2))
	if !changed || cur != 5 {
		t.Fatalf("next-day: cur=%d changed=%v, want 5/true", cur, changed)
	}
	if long != 5 {
		t.Fatalf("longest must follow the new high-water mark, got %d", long)
	}
}

func TestAdvanceStreakGapResets(t *testing.T) {
	last := day(2025, time.July, 1)
	cur, long, changed := AdvanceStreak(12, 12, &last, day(2025, time.July, 4))
	if !changed || cur != 1 {
		t.Fatalf("gap: cur=%d changed=%v, want reset to 1", cur, changed)
	}
	if long != 12 {
		t.Fatalf("longest shrank on reset: %d", long)
	}
}

func TestAdvanceStreakLongestNeverShrinks(t *testing.T) {
	last := day(2025, time.June, 30)
	cur, long, _ := AdvanceStreak(2, 30, &last, day(2025, time.July, 1))
	if cur != 3 || long != 30 {
		t.Fatalf("cur=%d long=%d, want 3/30", cur, long)
	}
}
