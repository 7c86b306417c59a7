// file: internals/features/dailies/mains/controller/mains_attempt_controller.go
package controller

import (
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"sarathi_backend/internals/constants"
	dto "sarathi_backend/internals/features/dailies/mains/dto"
	"sarathi_backend/internals/features/dailies/mains/evaluator"
	model "sarathi_backend/internals/features/dailies/mains/model"
	activity "sarathi_backend/internals/features/dashboard/activity/service"
	helper "sarathi_backend/internals/helpers"
	"sarathi_backend/internals/helpers/apptime"
)

// MinAnswerWords is the floor below which a submission is rejected.
const MinAnswerWords = 50

/* =======================
   Handlers (submit)
======================= */

// POST /api/daily-answers/:id/submit
//
// Upsert per (user, question): the first call creates the attempt plus a
// pending evaluation row, later calls replace the content and reset the
// evaluation. Both paths schedule the asynchronous evaluation.
func (ctrl *MainsQuestionController) Submit(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid question ID")
	}

	var body dto.SubmitAnswerRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	content := strings.TrimSpace(body.Content)
	wordCount := dto.CountWords(content)
	if wordCount < MinAnswerWords {
		return helper.JsonError(c, fiber.StatusBadRequest, "Answer must be at least 50 words")
	}

	question, err := ctrl.loadPublishedQuestion(c, "mains_question_id = ?", id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Question not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var attempt model.MainsAttemptModel
	ferr := ctrl.DB.WithContext(c.Context()).
		Where("mains_attempt_user_id = ? AND mains_attempt_question_id = ?", userID, question.MainsQuestionID).
		First(&attempt).Error

	isResubmit := ferr == nil
	if ferr != nil && ferr != gorm.ErrRecordNotFound {
		return helper.JsonError(c, fiber.StatusInternalServerError, ferr.Error())
	}

	if !isResubmit {
		attempt = model.MainsAttemptModel{
			MainsAttemptUserID:     userID,
			MainsAttemptQuestionID: question.MainsQuestionID,
			MainsAttemptContent:    content,
			MainsAttemptWordCount:  wordCount,
		}
		err = ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&attempt).Error; err != nil {
				return err
			}
			eval := model.MainsEvaluationModel{
				MainsEvaluationAttemptID: attempt.MainsAttemptID,
				MainsEvaluationStatus:    model.MainsEvaluationPending,
			}
			return tx.Create(&eval).Error
		})
		if err != nil {
			low := strings.ToLower(err.Error())
			if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
				return helper.JsonError(c, fiber.StatusConflict, "Submission already exists, please retry")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
	} else {
		now := time.Now()
		err = ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&model.MainsAttemptModel{}).
				Where("mains_attempt_id = ?", attempt.MainsAttemptID).
				Updates(map[string]interface{}{
					"mains_attempt_content":        content,
					"mains_attempt_word_count":     wordCount,
					"mains_attempt_resubmitted_at": now,
				}).Error; err != nil {
				return err
			}
			// Clearing previous results also bumps updated_at, which voids
			// any evaluation timer still running for the old content.
			return tx.Model(&model.MainsEvaluationModel{}).
				Where("mains_evaluation_attempt_id = ?", attempt.MainsAttemptID).
				Updates(map[string]interface{}{
					"mains_evaluation_status":       model.MainsEvaluationPending,
					"mains_evaluation_score":        gorm.Expr("NULL"),
					"mains_evaluation_breakdown":    gorm.Expr("NULL"),
					"mains_evaluation_feedback":     gorm.Expr("NULL"),
					"mains_evaluation_suggestions":  gorm.Expr("NULL"),
					"mains_evaluation_evaluated_at": gorm.Expr("NULL"),
					"mains_evaluation_updated_at":   now,
				}).Error
		})
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		attempt.MainsAttemptContent = content
		attempt.MainsAttemptWordCount = wordCount
		attempt.MainsAttemptResubmittedAt = &now
	}

	evaluator.Schedule(attempt.MainsAttemptID)

	// Dashboard feed + streak; never fails the submission.
	meta, _ := json.Marshal(fiber.Map{
		"word_count": wordCount,
		"paper":      question.MainsQuestionPaper,
	})
	if err := activity.Log(ctrl.DB, userID, constants.ActivityMainsSubmit, &attempt.MainsAttemptID, datatypes.JSON(meta)); err != nil {
		log.Println("[MAINS] activity log failed:", err)
	}

	summary := dto.FromAttemptModel(&attempt)
	summary.EvaluationStatus = model.MainsEvaluationPending.String()
	if isResubmit {
		return helper.JsonUpdated(c, "Answer resubmitted, evaluation restarted", summary)
	}
	return helper.JsonCreated(c, "Answer submitted for evaluation", summary)
}

// GET /api/daily-answers/:id/evaluation
func (ctrl *MainsQuestionController) Evaluation(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid question ID")
	}

	attempt := ctrl.attemptFor(c, userID, id)
	if attempt == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "You have not submitted an answer for this question")
	}
	if attempt.Evaluation == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Evaluation not found")
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"attempt":    dto.FromAttemptModel(attempt),
		"evaluation": dto.FromEvaluationModel(attempt.Evaluation),
	})
}

// GET /api/daily-answers/submissions
func (ctrl *MainsQuestionController) MySubmissions(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	p := helper.ParseFiber(c, "submitted_at", "desc", helper.DefaultOpts)

	tx := ctrl.DB.WithContext(c.Context()).
		Model(&model.MainsAttemptModel{}).
		Where("mains_attempt_user_id = ?", userID)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var attempts []model.MainsAttemptModel
	if err := tx.
		Preload("Evaluation").
		Order("mains_attempt_submitted_at DESC").
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&attempts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	// Question headers for the listed attempts in one query.
	questionByID := map[uuid.UUID]model.MainsQuestionModel{}
	if len(attempts) > 0 {
		ids := make([]uuid.UUID, 0, len(attempts))
		for i := range attempts {
			ids = append(ids, attempts[i].MainsAttemptQuestionID)
		}
		var questions []model.MainsQuestionModel
		if err := ctrl.DB.WithContext(c.Context()).
			Unscoped().
			Where("mains_question_id IN ?", ids).
			Find(&questions).Error; err == nil {
			for i := range questions {
				questionByID[questions[i].MainsQuestionID] = questions[i]
			}
		}
	}

	items := make([]dto.MainsSubmissionItem, 0, len(attempts))
	for i := range attempts {
		a := &attempts[i]
		item := dto.MainsSubmissionItem{
			MainsAttemptID:            a.MainsAttemptID,
			MainsAttemptWordCount:     a.MainsAttemptWordCount,
			MainsAttemptSubmittedAt:   a.MainsAttemptSubmittedAt,
			MainsAttemptResubmittedAt: a.MainsAttemptResubmittedAt,
		}
		if a.Evaluation != nil {
			item.EvaluationStatus = a.Evaluation.MainsEvaluationStatus.String()
			item.EvaluationScore = a.Evaluation.MainsEvaluationScore
		}
		if q, ok := questionByID[a.MainsAttemptQuestionID]; ok {
			item.MainsQuestionID = q.MainsQuestionID
			item.MainsQuestionDate = apptime.FormatDate(q.MainsQuestionDate)
			item.MainsQuestionText = q.MainsQuestionText
			item.MainsQuestionPaper = q.MainsQuestionPaper
		}
		items = append(items, item)
	}

	return helper.JsonList(c, "OK", items, helper.BuildMeta(total, p))
}
