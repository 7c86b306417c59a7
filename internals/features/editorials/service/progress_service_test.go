package service

import "testing"

func TestAdvanceProgressMonotonic(t *testing.T) {
	next, read, err := AdvanceProgress(40, 70)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next != 70 || read {
		t.Fatalf("40 -> 70: got next=%d read=%v", next, read)
	}

	// lower value never wins
	next, read, err = AdvanceProgress(70, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next != 70 || read {
		t.Fatalf("70 -> 30: got next=%d read=%v, want 70 unread", next, read)
	}
}

func TestAdvanceProgressCompletionLatch(t *testing.T) {
	next, read, err := AdvanceProgress(80, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next != 100 || !read {
		t.Fatalf("80 -> 100: got next=%d read=%v, want 100 read", next, read)
	}

	// already completed: stays at 100 and does not report again
	next, read, err = AdvanceProgress(100, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next != 100 || read {
		t.Fatalf("repeat completion: got next=%d read=%v, want 100 not-read-again", next, read)
	}

	next, read, err = AdvanceProgress(100, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next != 100 || read {
		t.Fatalf("100 -> 20: got next=%d read=%v, want latched 100", next, read)
	}
}

func TestAdvanceProgressRejectsOutOfRange(t *testing.T) {
	if _, _, err := AdvanceProgress(0, -1); err == nil {
		t.Fatalf("expected error for -1")
	}
	if _, _, err := AdvanceProgress(0, 101); err == nil {
		t.Fatalf("expected error for 101")
	}
}
