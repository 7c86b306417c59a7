// file: internals/features/dailies/mains/controller/admin_mains_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "sarathi_backend/internals/features/dailies/mains/dto"
	model "sarathi_backend/internals/features/dailies/mains/model"
	helper "sarathi_backend/internals/helpers"
	"sarathi_backend/internals/helpers/apptime"
)

/* =======================
   Handlers (admin)
======================= */

// POST /api/admin/daily-answers
func (ctrl *MainsQuestionController) AdminCreate(c *fiber.Ctx) error {
	var body dto.CreateMainsQuestionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	question, err := body.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid mains_question_date (want YYYY-MM-DD)")
	}

	if err := ctrl.DB.WithContext(c.Context()).Create(question).Error; err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "A question already exists for this date")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Mains question created", dto.FromQuestionModel(question))
}

// PATCH /api/admin/daily-answers/:id
func (ctrl *MainsQuestionController) AdminPatch(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid question ID")
	}

	var body dto.PatchMainsQuestionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var question model.MainsQuestionModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&question, "mains_question_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Question not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	updates := map[string]any{}
	if body.MainsQuestionDate != nil {
		date, perr := apptime.ParseDate(*body.MainsQuestionDate)
		if perr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid mains_question_date (want YYYY-MM-DD)")
		}
		updates["mains_question_date"] = date
	}
	if body.MainsQuestionText != nil {
		if text := strings.TrimSpace(*body.MainsQuestionText); text != "" {
			updates["mains_question_text"] = text
		}
	}
	if body.MainsQuestionPaper != nil {
		updates["mains_question_paper"] = *body.MainsQuestionPaper
	}
	if body.MainsQuestionTopic != nil {
		if topic := strings.TrimSpace(*body.MainsQuestionTopic); topic != "" {
			updates["mains_question_topic"] = topic
		} else {
			updates["mains_question_topic"] = gorm.Expr("NULL")
		}
	}
	if body.MainsQuestionWordLimit != nil {
		updates["mains_question_word_limit"] = *body.MainsQuestionWordLimit
	}
	if body.MainsQuestionMarks != nil {
		updates["mains_question_marks"] = *body.MainsQuestionMarks
	}
	if body.MainsQuestionIsPublished != nil {
		updates["mains_question_is_published"] = *body.MainsQuestionIsPublished
	}

	if len(updates) == 0 {
		return helper.JsonOK(c, "No changes", dto.FromQuestionModel(&question))
	}

	if err := ctrl.DB.WithContext(c.Context()).
		Model(&question).
		Updates(updates).Error; err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "A question already exists for this date")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := ctrl.DB.WithContext(c.Context()).
		First(&question, "mains_question_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "Mains question updated", dto.FromQuestionModel(&question))
}

// POST /api/admin/daily-answers/:id/publish
// Flips the publish flag and reports the new state.
func (ctrl *MainsQuestionController) AdminTogglePublish(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid question ID")
	}

	var question model.MainsQuestionModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&question, "mains_question_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Question not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	next := !question.MainsQuestionIsPublished
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&question).
		Update("mains_question_is_published", next).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	question.MainsQuestionIsPublished = next

	return helper.JsonUpdated(c, "Publish state updated", dto.FromQuestionModel(&question))
}

// DELETE /api/admin/daily-answers/:id
func (ctrl *MainsQuestionController) AdminDelete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid question ID")
	}

	var question model.MainsQuestionModel
	if err := ctrl.DB.WithContext(c.Context()).
		Select("mains_question_id").
		First(&question, "mains_question_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Question not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := ctrl.DB.WithContext(c.Context()).
		Delete(&model.MainsQuestionModel{}, "mains_question_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonDeleted(c, "Mains question deleted", fiber.Map{
		"mains_question_id": id,
	})
}
