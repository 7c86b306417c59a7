package service

import (
	"math/rand"
	"testing"

	"github.com/google/uuid"

	model "sarathi_backend/internals/features/mocktests/model"
)

func bankOf(n int) []model.MockTestQuestionModel {
	pool := make([]model.MockTestQuestionModel, 0, n)
	for i := 0; i < n; i++ {
		pool = append(pool, model.MockTestQuestionModel{
			MockTestQuestionID:      uuid.New(),
			MockTestQuestionText:    "q",
			MockTestQuestionSubject: "polity",
			MockTestQuestionMarks:   2,
		})
	}
	return pool
}

func TestSampleWithoutReplacement(t *testing.T) {
	pool := bankOf(40)
	r := rand.New(rand.NewSource(7))

	picked, err := SampleQuestions(pool, 25, r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(picked) != 25 {
		t.Fatalf("picked %d, want 25", len(picked))
	}

	seen := map[uuid.UUID]bool{}
	for _, q := range picked {
		if seen[q.MockTestQuestionID] {
			t.Fatalf("question %s sampled twice", q.MockTestQuestionID)
		}
		seen[q.MockTestQuestionID] = true
	}
}

func TestSampleDeterministicWithSeed(t *testing.T) {
	pool := bankOf(30)

	a, err := SampleQuestions(pool, 10, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := SampleQuestions(pool, 10, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := range a {
		if a[i].MockTestQuestionID != b[i].MockTestQuestionID {
			t.Fatalf("same seed produced different order at %d", i)
		}
	}
}

func TestSampleInsufficientBank(t *testing.T) {
	pool := bankOf(10)
	if _, err := SampleQuestions(pool, 25, rand.New(rand.NewSource(1))); err == nil {
		t.Fatalf("expected error when bank smaller than count")
	}
}

func TestCloneForTestResetsIdentity(t *testing.T) {
	pool := bankOf(3)
	testID := uuid.New()

	clones := CloneForTest(pool, testID)
	for i, c := range clones {
		if c.MockTestQuestionID != uuid.Nil {
			t.Fatalf("clone %d kept its source id", i)
		}
		if c.MockTestQuestionTestID != testID {
			t.Fatalf("clone %d not re-parented", i)
		}
		if c.MockTestQuestionPosition != i {
			t.Fatalf("clone %d position = %d", i, c.MockTestQuestionPosition)
		}
	}
	// source untouched
	if pool[0].MockTestQuestionID == uuid.Nil {
		t.Fatalf("source slice was mutated")
	}
}
