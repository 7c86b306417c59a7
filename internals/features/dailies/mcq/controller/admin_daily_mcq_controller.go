// file: internals/features/dailies/mcq/controller/admin_daily_mcq_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	dto "sarathi_backend/internals/features/dailies/mcq/dto"
	model "sarathi_backend/internals/features/dailies/mcq/model"
	helper "sarathi_backend/internals/helpers"
	"sarathi_backend/internals/helpers/apptime"
)

/* =======================
   Handlers (admin)
======================= */

// POST /api/admin/daily-mcq
// Creates the quiz and its questions in one payload.
func (ctrl *DailyMCQController) AdminCreate(c *fiber.Ctx) error {
	var body dto.CreateDailyMCQRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	quiz, err := body.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid daily_mcq_date (want YYYY-MM-DD)")
	}

	err = ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(quiz).Error; err != nil {
			return err
		}
		if len(body.Questions) == 0 {
			return nil
		}
		questions := make([]model.MCQQuestionModel, 0, len(body.Questions))
		for i := range body.Questions {
			questions = append(questions, body.Questions[i].ToModel(quiz.DailyMCQID, i))
		}
		if err := tx.Create(&questions).Error; err != nil {
			return err
		}
		quiz.Questions = questions
		return nil
	})
	if err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "A quiz already exists for this date")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Daily quiz created", dto.FromDailyModel(quiz, true))
}

// PATCH /api/admin/daily-mcq/:id
func (ctrl *DailyMCQController) AdminPatch(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid quiz ID")
	}

	var body dto.PatchDailyMCQRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var quiz model.DailyMCQModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&quiz, "daily_mcq_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Quiz not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	updates := map[string]any{}
	if body.DailyMCQDate != nil {
		date, perr := apptime.ParseDate(*body.DailyMCQDate)
		if perr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid daily_mcq_date (want YYYY-MM-DD)")
		}
		updates["daily_mcq_date"] = date
	}
	if body.DailyMCQTitle != nil {
		if title := strings.TrimSpace(*body.DailyMCQTitle); title != "" {
			updates["daily_mcq_title"] = title
		}
	}
	if body.DailyMCQTopic != nil {
		if topic := strings.TrimSpace(*body.DailyMCQTopic); topic != "" {
			updates["daily_mcq_topic"] = topic
		} else {
			updates["daily_mcq_topic"] = gorm.Expr("NULL")
		}
	}
	if body.DailyMCQIsPublished != nil {
		updates["daily_mcq_is_published"] = *body.DailyMCQIsPublished
	}

	if len(updates) == 0 {
		return helper.JsonOK(c, "No changes", dto.FromDailyModel(&quiz, false))
	}

	if err := ctrl.DB.WithContext(c.Context()).
		Model(&quiz).
		Updates(updates).Error; err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "A quiz already exists for this date")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := ctrl.DB.WithContext(c.Context()).
		First(&quiz, "daily_mcq_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "Daily quiz updated", dto.FromDailyModel(&quiz, false))
}

// POST /api/admin/daily-mcq/:id/publish
// Flips the publish flag and reports the new state.
func (ctrl *DailyMCQController) AdminTogglePublish(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid quiz ID")
	}

	var quiz model.DailyMCQModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&quiz, "daily_mcq_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Quiz not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	next := !quiz.DailyMCQIsPublished
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&quiz).
		Update("daily_mcq_is_published", next).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	quiz.DailyMCQIsPublished = next

	return helper.JsonUpdated(c, "Publish state updated", dto.FromDailyModel(&quiz, false))
}

// DELETE /api/admin/daily-mcq/:id
func (ctrl *DailyMCQController) AdminDelete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid quiz ID")
	}

	var quiz model.DailyMCQModel
	if err := ctrl.DB.WithContext(c.Context()).
		Select("daily_mcq_id").
		First(&quiz, "daily_mcq_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Quiz not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := ctrl.DB.WithContext(c.Context()).Delete(&quiz).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonDeleted(c, "Daily quiz deleted", fiber.Map{
		"daily_mcq_id": id,
	})
}

/* =======================
   Handlers (admin questions)
======================= */

// POST /api/admin/daily-mcq/:id/questions
func (ctrl *DailyMCQController) AdminAddQuestion(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid quiz ID")
	}

	var body dto.CreateMCQQuestionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var quiz model.DailyMCQModel
	if err := ctrl.DB.WithContext(c.Context()).
		Select("daily_mcq_id").
		First(&quiz, "daily_mcq_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Quiz not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var count int64
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&model.MCQQuestionModel{}).
		Where("mcq_question_daily_mcq_id = ?", id).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	question := body.ToModel(id, int(count))
	if err := ctrl.DB.WithContext(c.Context()).Create(&question).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Question added", question)
}

// PATCH /api/admin/daily-mcq/:id/questions/:qid
func (ctrl *DailyMCQController) AdminPatchQuestion(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid quiz ID")
	}
	qid, err := uuid.Parse(strings.TrimSpace(c.Params("qid")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid question ID")
	}

	var body dto.PatchMCQQuestionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var question model.MCQQuestionModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&question, "mcq_question_id = ? AND mcq_question_daily_mcq_id = ?", qid, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Question not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if body.MCQQuestionText != nil {
		if text := strings.TrimSpace(*body.MCQQuestionText); text != "" {
			question.MCQQuestionText = text
		}
	}
	if body.MCQQuestionOptions != nil {
		question.MCQQuestionOptions = pq.StringArray(body.MCQQuestionOptions)
	}
	if body.MCQQuestionCorrectIndex != nil {
		question.MCQQuestionCorrectIndex = *body.MCQQuestionCorrectIndex
	}
	if body.MCQQuestionExplanation != nil {
		question.MCQQuestionExplanation = body.MCQQuestionExplanation
	}
	if body.MCQQuestionSubject != nil {
		question.MCQQuestionSubject = body.MCQQuestionSubject
	}
	if body.MCQQuestionDifficulty != nil {
		question.MCQQuestionDifficulty = model.MCQDifficulty(strings.ToLower(strings.TrimSpace(*body.MCQQuestionDifficulty)))
	}
	if body.MCQQuestionMarks != nil {
		question.MCQQuestionMarks = *body.MCQQuestionMarks
	}
	if body.MCQQuestionPosition != nil {
		question.MCQQuestionPosition = *body.MCQQuestionPosition
	}

	if err := ctrl.DB.WithContext(c.Context()).Save(&question).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "Question updated", question)
}

// DELETE /api/admin/daily-mcq/:id/questions/:qid
func (ctrl *DailyMCQController) AdminDeleteQuestion(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid quiz ID")
	}
	qid, err := uuid.Parse(strings.TrimSpace(c.Params("qid")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid question ID")
	}

	res := ctrl.DB.WithContext(c.Context()).
		Where("mcq_question_id = ? AND mcq_question_daily_mcq_id = ?", qid, id).
		Delete(&model.MCQQuestionModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Question not found")
	}

	return helper.JsonDeleted(c, "Question deleted", fiber.Map{
		"mcq_question_id": qid,
	})
}
