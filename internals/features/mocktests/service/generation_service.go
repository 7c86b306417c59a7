// file: internals/features/mocktests/service/generation_service.go
package service

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	model "sarathi_backend/internals/features/mocktests/model"
)

// SampleQuestions picks count questions from the bank uniformly without
// replacement. The rand source is injected so generation is reproducible
// in tests.
func SampleQuestions(pool []model.MockTestQuestionModel, count int, r *rand.Rand) ([]model.MockTestQuestionModel, error) {
	if count <= 0 {
		return nil, fmt.Errorf("count must be positive, got %d", count)
	}
	if len(pool) < count {
		return nil, fmt.Errorf("question bank has only %d matching questions, need %d", len(pool), count)
	}

	picked := make([]model.MockTestQuestionModel, 0, count)
	for _, i := range r.Perm(len(pool))[:count] {
		picked = append(picked, pool[i])
	}
	return picked, nil
}

// CloneForTest strips identity from sampled bank questions so they can be
// inserted under the generated test.
func CloneForTest(sampled []model.MockTestQuestionModel, testID uuid.UUID) []model.MockTestQuestionModel {
	out := make([]model.MockTestQuestionModel, 0, len(sampled))
	for i, q := range sampled {
		clone := q
		clone.MockTestQuestionID = uuid.Nil
		clone.MockTestQuestionTestID = testID
		clone.MockTestQuestionPosition = i
		out = append(out, clone)
	}
	return out
}
