// file: internals/features/mocktests/controller/mock_attempt_controller.go
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
	activity "sarathi_backend/internals/features/dashboard/activity/service"
	dto "sarathi_backend/internals/features/mocktests/dto"
	model "sarathi_backend/internals/features/mocktests/model"
	service "sarathi_backend/internals/features/mocktests/service"
	helper "sarathi_backend/internals/helpers"
)

// SubmitGrace is how far past the deadline a submission is still accepted.
const SubmitGrace = 2 * time.Minute

/* =======================
   Handlers (attempt)
======================= */

// POST /api/mock-tests/:id/start
// Resumes the open attempt if one exists, otherwise opens one. Private
// tests require the access code.
func (ctrl *MockTestController) Start(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid test ID")
	}

	var body dto.StartMockTestRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&body); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
		}
		if err := ctrl.Validator.Struct(&body); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
	}

	test, err := ctrl.loadTest(c, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Mock test not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if !test.VisibleTo(userID) {
		return helper.JsonError(c, fiber.StatusNotFound, "Mock test not found")
	}

	if test.HasAccessCode() {
		code := ""
		if body.AccessCode != nil {
			code = *body.AccessCode
		}
		if !service.VerifyAccessCode(test.MockTestAccessCodeHash, code) {
			return helper.JsonError(c, fiber.StatusForbidden, "Invalid access code")
		}
	}

	questions, err := ctrl.loadQuestions(c, test.MockTestID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if len(questions) == 0 {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Test has no questions yet")
	}

	attempt := ctrl.openAttempt(c, userID, test.MockTestID)
	resumed := attempt != nil

	// A stale open attempt past its grace window is closed out rather
	// than resumed.
	if attempt != nil && time.Now().After(attempt.ExpiresAt(test.MockTestDurationMinutes).Add(SubmitGrace)) {
		if err := ctrl.DB.WithContext(c.Context()).
			Model(&model.MockTestAttemptModel{}).
			Where("mock_test_attempt_id = ? AND mock_test_attempt_status = ?", attempt.MockTestAttemptID, model.MockAttemptInProgress).
			Update("mock_test_attempt_status", model.MockAttemptAbandoned).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		attempt = nil
		resumed = false
	}

	if attempt == nil {
		attempt = &model.MockTestAttemptModel{
			MockTestAttemptUserID:         userID,
			MockTestAttemptTestID:         test.MockTestID,
			MockTestAttemptStatus:         model.MockAttemptInProgress,
			MockTestAttemptTotalQuestions: len(questions),
		}
		if err := ctrl.DB.WithContext(c.Context()).Create(attempt).Error; err != nil {
			low := strings.ToLower(err.Error())
			if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
				return helper.JsonError(c, fiber.StatusConflict, "An attempt is already in progress")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
	}

	public := make([]dto.MockQuestionPublic, 0, len(questions))
	for i := range questions {
		public = append(public, dto.FromMockQuestionPublic(&questions[i]))
	}

	return helper.JsonOK(c, "Attempt open", dto.StartMockTestResponse{
		Attempt:   dto.FromMockAttemptModel(attempt),
		ExpiresAt: attempt.ExpiresAt(test.MockTestDurationMinutes),
		Resumed:   resumed,
		Questions: public,
	})
}

// POST /api/mock-tests/:id/submit
func (ctrl *MockTestController) Submit(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid test ID")
	}

	var body dto.SubmitMockTestRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	test, err := ctrl.loadTest(c, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Mock test not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if !test.VisibleTo(userID) {
		return helper.JsonError(c, fiber.StatusNotFound, "Mock test not found")
	}

	attempt := ctrl.openAttempt(c, userID, test.MockTestID)
	if attempt == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "No attempt in progress, start the test first")
	}

	if time.Now().After(attempt.ExpiresAt(test.MockTestDurationMinutes).Add(SubmitGrace)) {
		if err := ctrl.DB.WithContext(c.Context()).
			Model(&model.MockTestAttemptModel{}).
			Where("mock_test_attempt_id = ? AND mock_test_attempt_status = ?", attempt.MockTestAttemptID, model.MockAttemptInProgress).
			Update("mock_test_attempt_status", model.MockAttemptAbandoned).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		return helper.JsonError(c, fiber.StatusConflict, "Attempt expired")
	}

	answers := make(map[uuid.UUID]int16, len(body.Answers))
	for raw, sel := range body.Answers {
		qid, perr := uuid.Parse(strings.TrimSpace(raw))
		if perr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid question ID in answers: "+raw)
		}
		answers[qid] = sel
	}

	questions, err := ctrl.loadQuestions(c, test.MockTestID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	graded, err := service.GradeMockTest(questions, answers, test.MockTestNegativeRatio)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	answersJSON, _ := json.Marshal(body.Answers)
	now := time.Now()

	res := ctrl.DB.WithContext(c.Context()).
		Model(&model.MockTestAttemptModel{}).
		Where("mock_test_attempt_id = ? AND mock_test_attempt_status = ?", attempt.MockTestAttemptID, model.MockAttemptInProgress).
		Updates(map[string]interface{}{
			"mock_test_attempt_status":          model.MockAttemptCompleted,
			"mock_test_attempt_completed_at":    now,
			"mock_test_attempt_total_questions": graded.TotalQuestions,
			"mock_test_attempt_attempted":       graded.Attempted,
			"mock_test_attempt_correct":         graded.Correct,
			"mock_test_attempt_wrong":           graded.Wrong,
			"mock_test_attempt_skipped":         graded.Skipped,
			"mock_test_attempt_score":           graded.Score,
			"mock_test_attempt_max_score":       graded.MaxScore,
			"mock_test_attempt_accuracy":        graded.Accuracy,
			"mock_test_attempt_duration_sec":    body.DurationSec,
			"mock_test_attempt_answers":         datatypes.JSON(answersJSON),
		})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		// a parallel submit won the race
		return helper.JsonError(c, fiber.StatusConflict, "Attempt already closed")
	}

	attempt.MockTestAttemptStatus = model.MockAttemptCompleted
	attempt.MockTestAttemptCompletedAt = &now
	attempt.MockTestAttemptTotalQuestions = graded.TotalQuestions
	attempt.MockTestAttemptAttempted = graded.Attempted
	attempt.MockTestAttemptCorrect = graded.Correct
	attempt.MockTestAttemptWrong = graded.Wrong
	attempt.MockTestAttemptSkipped = graded.Skipped
	attempt.MockTestAttemptScore = graded.Score
	attempt.MockTestAttemptMaxScore = graded.MaxScore
	attempt.MockTestAttemptAccuracy = graded.Accuracy
	attempt.MockTestAttemptDurationSec = body.DurationSec

	// Dashboard feed + streak; never fails the submission.
	meta, _ := json.Marshal(fiber.Map{
		"score":     graded.Score,
		"max_score": graded.MaxScore,
		"paper":     test.MockTestPaper.String(),
	})
	if err := activity.Log(ctrl.DB, userID, constants.ActivityMockSubmit, &attempt.MockTestAttemptID, datatypes.JSON(meta)); err != nil {
		log.Println("[MOCKTEST] activity log failed:", err)
	}

	return helper.JsonOK(c, "Test submitted", dto.FromMockAttemptModel(attempt))
}

// GET /api/mock-tests/:id/result
// Latest completed attempt with the per-question review.
func (ctrl *MockTestController) Result(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid test ID")
	}

	test, err := ctrl.loadTest(c, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Mock test not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if !test.VisibleTo(userID) {
		return helper.JsonError(c, fiber.StatusNotFound, "Mock test not found")
	}

	var attempt model.MockTestAttemptModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("mock_test_attempt_user_id = ? AND mock_test_attempt_test_id = ? AND mock_test_attempt_status = ?",
			userID, test.MockTestID, model.MockAttemptCompleted).
		Order("mock_test_attempt_completed_at DESC").
		First(&attempt).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "You have not completed this test yet")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	questions, err := ctrl.loadQuestions(c, test.MockTestID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	answers := map[uuid.UUID]int16{}
	if len(attempt.MockTestAttemptAnswers) > 0 {
		var raw map[string]int16
		if err := json.Unmarshal(attempt.MockTestAttemptAnswers, &raw); err == nil {
			for k, v := range raw {
				if qid, perr := uuid.Parse(k); perr == nil {
					answers[qid] = v
				}
			}
		}
	}

	return helper.JsonOK(c, "OK", dto.MockResultResponse{
		Test:    dto.FromMockTestModel(test),
		Attempt: dto.FromMockAttemptModel(&attempt),
		Review:  dto.BuildMockReview(questions, answers),
	})
}

// GET /api/mock-tests/attempts
func (ctrl *MockTestController) MyAttempts(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	p := helper.ParseFiber(c, "started_at", "desc", helper.DefaultOpts)

	tx := ctrl.DB.WithContext(c.Context()).
		Model(&model.MockTestAttemptModel{}).
		Where("mock_test_attempt_user_id = ?", userID)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var attempts []model.MockTestAttemptModel
	if err := tx.
		Order("mock_test_attempt_started_at DESC").
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&attempts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	// Test headers for the listed attempts in one query.
	testByID := map[uuid.UUID]model.MockTestModel{}
	if len(attempts) > 0 {
		ids := make([]uuid.UUID, 0, len(attempts))
		for i := range attempts {
			ids = append(ids, attempts[i].MockTestAttemptTestID)
		}
		var tests []model.MockTestModel
		if err := ctrl.DB.WithContext(c.Context()).
			Unscoped().
			Where("mock_test_id IN ?", ids).
			Find(&tests).Error; err == nil {
			for i := range tests {
				testByID[tests[i].MockTestID] = tests[i]
			}
		}
	}

	items := make([]dto.MockAttemptHistoryItem, 0, len(attempts))
	for i := range attempts {
		item := dto.MockAttemptHistoryItem{
			MockAttemptResponse: dto.FromMockAttemptModel(&attempts[i]),
		}
		if test, ok := testByID[attempts[i].MockTestAttemptTestID]; ok {
			item.MockTestTitle = test.MockTestTitle
			item.MockTestPaper = test.MockTestPaper.String()
		}
		items = append(items, item)
	}

	return helper.JsonList(c, "OK", items, helper.BuildMeta(total, p))
}
