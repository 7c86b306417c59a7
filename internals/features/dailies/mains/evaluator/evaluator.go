// file: internals/features/dailies/mains/evaluator/evaluator.go
package evaluator

import (
	"encoding/json"
	"log"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"sarathi_backend/internals/configs"
	model "sarathi_backend/internals/features/dailies/mains/model"
)

/*
One-shot delayed evaluation, standing in for an external AI service call.
Schedule fires a single timer per submission; there is no retry, queue or
persistence. A resubmit rewrites the evaluation row, which invalidates any
timer still in flight (the guarded UPDATEs below match zero rows).
*/

var (
	db    *gorm.DB
	delay time.Duration
)

// Init wires the package to the database and reads EVAL_DELAY_SECONDS
// (default 20). Call once at startup, after the DB is connected.
func Init(gdb *gorm.DB) {
	db = gdb

	secs := 20
	if raw := configs.GetEnv("EVAL_DELAY_SECONDS", "20"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 0 {
			secs = n
		}
	}
	delay = time.Duration(secs) * time.Second
	log.Printf("✅ Evaluator ready (delay=%s)", delay)
}

// Schedule arms the one-shot evaluation for an attempt. Safe to call again
// on resubmit; the freshest schedule wins.
func Schedule(attemptID uuid.UUID) {
	if db == nil {
		log.Println("[EVALUATOR] not initialised; dropping schedule for", attemptID)
		return
	}

	// Capture the row's current stamp; the sleeping callback may only act
	// if the row is still exactly the one it was armed for.
	var eval model.MainsEvaluationModel
	if err := db.First(&eval, "mains_evaluation_attempt_id = ?", attemptID).Error; err != nil {
		log.Println("[EVALUATOR] no evaluation row for attempt", attemptID, ":", err)
		return
	}
	marker := eval.MainsEvaluationUpdatedAt

	time.AfterFunc(delay, func() {
		run(attemptID, marker)
	})
}

func run(attemptID uuid.UUID, marker time.Time) {
	// pending → evaluating, only if nothing touched the row since Schedule.
	res := db.Model(&model.MainsEvaluationModel{}).
		Where("mains_evaluation_attempt_id = ? AND mains_evaluation_status = ? AND mains_evaluation_updated_at = ?",
			attemptID, model.MainsEvaluationPending, marker).
		Updates(map[string]any{
			"mains_evaluation_status":     model.MainsEvaluationEvaluating,
			"mains_evaluation_updated_at": time.Now(),
		})
	if res.Error != nil {
		log.Println("[EVALUATOR] transition to evaluating failed:", res.Error)
		return
	}
	if res.RowsAffected == 0 {
		// Superseded by a resubmit (or already handled). Drop silently.
		return
	}

	var attempt model.MainsAttemptModel
	if err := db.First(&attempt, "mains_attempt_id = ?", attemptID).Error; err != nil {
		log.Println("[EVALUATOR] attempt vanished mid-evaluation:", err)
		return
	}
	var question model.MainsQuestionModel
	if err := db.Unscoped().First(&question, "mains_question_id = ?", attempt.MainsAttemptQuestionID).Error; err != nil {
		log.Println("[EVALUATOR] question lookup failed:", err)
		return
	}

	result := Evaluate(attempt.MainsAttemptContent, question.MainsQuestionWordLimit, question.MainsQuestionMarks)

	breakdown, err := json.Marshal(result.Breakdown)
	if err != nil {
		log.Println("[EVALUATOR] breakdown marshal failed:", err)
		return
	}

	// Only the active run holds evaluating; a resubmit resets the row to
	// pending first, so zero rows here means this run was superseded.
	now := time.Now()
	res = db.Model(&model.MainsEvaluationModel{}).
		Where("mains_evaluation_attempt_id = ? AND mains_evaluation_status = ?",
			attemptID, model.MainsEvaluationEvaluating).
		Updates(map[string]any{
			"mains_evaluation_status":       model.MainsEvaluationCompleted,
			"mains_evaluation_score":        result.Score,
			"mains_evaluation_breakdown":    breakdown,
			"mains_evaluation_feedback":     result.Feedback,
			"mains_evaluation_suggestions":  pq.StringArray(result.Suggestions),
			"mains_evaluation_evaluated_at": now,
			"mains_evaluation_updated_at":   now,
		})
	if res.Error != nil {
		log.Println("[EVALUATOR] completion failed:", res.Error)
		return
	}
	if res.RowsAffected == 0 {
		// A resubmit arrived while we were computing; its own timer takes over.
		return
	}

	log.Printf("[EVALUATOR] attempt %s evaluated: %.2f/%.2f", attemptID, result.Score, question.MainsQuestionMarks)
}
