// file: internals/features/dailies/mcq/controller/mcq_attempt_controller.go
package controller

import (
	"encoding/json"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"sarathi_backend/internals/constants"
	dto "sarathi_backend/internals/features/dailies/mcq/dto"
	model "sarathi_backend/internals/features/dailies/mcq/model"
	service "sarathi_backend/internals/features/dailies/mcq/service"
	activity "sarathi_backend/internals/features/dashboard/activity/service"
	helper "sarathi_backend/internals/helpers"
	"sarathi_backend/internals/helpers/apptime"
)

/* =======================
   Handlers (attempt)
======================= */

// POST /api/daily-mcq/:id/attempt
func (ctrl *DailyMCQController) SubmitAttempt(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid quiz ID")
	}

	var body dto.SubmitAttemptRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	quiz, err := ctrl.loadPublishedQuiz(c, "daily_mcq_id = ?", id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Quiz not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if len(quiz.Questions) == 0 {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Quiz has no questions yet")
	}

	// Fast path; the unique (user, daily) index still guards the race.
	if existing := ctrl.attemptFor(c, userID, quiz.DailyMCQID); existing != nil {
		return helper.JsonError(c, fiber.StatusConflict, "You have already attempted this quiz")
	}

	answers := make([]service.AnswerInput, 0, len(body.Answers))
	for _, a := range body.Answers {
		answers = append(answers, service.AnswerInput{
			QuestionID:    a.QuestionID,
			SelectedIndex: a.SelectedIndex,
		})
	}

	graded, err := service.GradeAttempt(quiz.Questions, answers)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	attempt := model.MCQAttemptModel{
		MCQAttemptUserID:         userID,
		MCQAttemptDailyMCQID:     quiz.DailyMCQID,
		MCQAttemptTotalQuestions: graded.TotalQuestions,
		MCQAttemptAttempted:      graded.Attempted,
		MCQAttemptCorrect:        graded.Correct,
		MCQAttemptWrong:          graded.Wrong,
		MCQAttemptSkipped:        graded.Skipped,
		MCQAttemptScore:          graded.Score,
		MCQAttemptMaxScore:       graded.MaxScore,
		MCQAttemptAccuracy:       graded.Accuracy,
		MCQAttemptDurationSec:    body.DurationSec,
	}

	err = ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&attempt).Error; err != nil {
			return err
		}
		responses := make([]model.MCQResponseModel, 0, len(graded.Responses))
		for _, r := range graded.Responses {
			responses = append(responses, model.MCQResponseModel{
				MCQResponseAttemptID:     attempt.MCQAttemptID,
				MCQResponseQuestionID:    r.QuestionID,
				MCQResponseSelectedIndex: r.SelectedIndex,
				MCQResponseIsCorrect:     r.IsCorrect,
			})
		}
		return tx.Create(&responses).Error
	})
	if err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "You have already attempted this quiz")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	// Dashboard feed + streak; never fails the submission.
	meta, _ := json.Marshal(fiber.Map{
		"score":    graded.Score,
		"accuracy": graded.Accuracy,
	})
	if err := activity.Log(ctrl.DB, userID, constants.ActivityMCQAttempt, &attempt.MCQAttemptID, datatypes.JSON(meta)); err != nil {
		log.Println("[MCQ] activity log failed:", err)
	}

	return helper.JsonCreated(c, "Attempt recorded", dto.FromAttemptModel(&attempt))
}

// GET /api/daily-mcq/:id/result
func (ctrl *DailyMCQController) Result(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid quiz ID")
	}

	quiz, err := ctrl.loadPublishedQuiz(c, "daily_mcq_id = ?", id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Quiz not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	attempt := ctrl.attemptFor(c, userID, quiz.DailyMCQID)
	if attempt == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "You have not attempted this quiz yet")
	}

	var responses []model.MCQResponseModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("mcq_response_attempt_id = ?", attempt.MCQAttemptID).
		Find(&responses).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", dto.MCQResultResponse{
		Quiz:    dto.FromDailyModel(quiz, false),
		Attempt: dto.FromAttemptModel(attempt),
		Review:  dto.BuildReview(quiz.Questions, responses),
	})
}

// GET /api/daily-mcq/attempts
func (ctrl *DailyMCQController) MyAttempts(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	p := helper.ParseFiber(c, "submitted_at", "desc", helper.DefaultOpts)

	tx := ctrl.DB.WithContext(c.Context()).
		Model(&model.MCQAttemptModel{}).
		Where("mcq_attempt_user_id = ?", userID)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var attempts []model.MCQAttemptModel
	if err := tx.
		Order("mcq_attempt_submitted_at DESC").
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&attempts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	// Quiz headers for the listed attempts in one query. Unscoped so
	// history keeps its titles when a quiz is later soft-deleted.
	quizByID := map[uuid.UUID]model.DailyMCQModel{}
	if len(attempts) > 0 {
		ids := make([]uuid.UUID, 0, len(attempts))
		for i := range attempts {
			ids = append(ids, attempts[i].MCQAttemptDailyMCQID)
		}
		var quizzes []model.DailyMCQModel
		if err := ctrl.DB.WithContext(c.Context()).
			Unscoped().
			Where("daily_mcq_id IN ?", ids).
			Find(&quizzes).Error; err == nil {
			for i := range quizzes {
				quizByID[quizzes[i].DailyMCQID] = quizzes[i]
			}
		}
	}

	items := make([]dto.MCQAttemptHistoryItem, 0, len(attempts))
	for i := range attempts {
		item := dto.MCQAttemptHistoryItem{
			MCQAttemptResponse: dto.FromAttemptModel(&attempts[i]),
		}
		if quiz, ok := quizByID[attempts[i].MCQAttemptDailyMCQID]; ok {
			item.DailyMCQDate = apptime.FormatDate(quiz.DailyMCQDate)
			item.DailyMCQTitle = quiz.DailyMCQTitle
			item.DailyMCQTopic = quiz.DailyMCQTopic
		}
		items = append(items, item)
	}

	return helper.JsonList(c, "OK", items, helper.BuildMeta(total, p))
}
