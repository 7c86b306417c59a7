// file: internals/features/mocktests/controller/admin_mock_test_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	dto "sarathi_backend/internals/features/mocktests/dto"
	model "sarathi_backend/internals/features/mocktests/model"
	service "sarathi_backend/internals/features/mocktests/service"
	helper "sarathi_backend/internals/helpers"
)

/* =======================
   Handlers (admin)
======================= */

// GET /api/admin/mock-tests
// Catalog tests only, drafts included; generated tests stay private.
func (ctrl *MockTestController) AdminList(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	tx := ctrl.DB.WithContext(c.Context()).
		Model(&model.MockTestModel{}).
		Where("mock_test_is_generated = FALSE")

	if paper := strings.TrimSpace(c.Query("paper")); paper != "" {
		if !model.MockTestPaper(paper).Valid() {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid paper filter")
		}
		tx = tx.Where("mock_test_paper = ?", paper)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var tests []model.MockTestModel
	if err := tx.
		Order("mock_test_created_at DESC").
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&tests).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	ids := make([]uuid.UUID, 0, len(tests))
	for i := range tests {
		ids = append(ids, tests[i].MockTestID)
	}
	questionCounts := ctrl.countsBy(c, &model.MockTestQuestionModel{}, "mock_test_question_test_id", ids, "")

	items := make([]dto.MockTestResponse, 0, len(tests))
	for i := range tests {
		item := dto.FromMockTestModel(&tests[i])
		item.QuestionCount = questionCounts[tests[i].MockTestID]
		items = append(items, item)
	}

	return helper.JsonList(c, "OK", items, helper.BuildMeta(total, p))
}

// POST /api/admin/mock-tests
// Creates the test and optionally its questions in one payload.
func (ctrl *MockTestController) AdminCreate(c *fiber.Ctx) error {
	var body dto.CreateMockTestRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	test := body.ToModel()

	err := ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(test).Error; err != nil {
			return err
		}
		if len(body.Questions) == 0 {
			return nil
		}
		questions := make([]model.MockTestQuestionModel, 0, len(body.Questions))
		for i := range body.Questions {
			questions = append(questions, body.Questions[i].ToModel(test.MockTestID, i))
		}
		if err := tx.Create(&questions).Error; err != nil {
			return err
		}
		test.Questions = questions
		return nil
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	resp := dto.FromMockTestModel(test)
	resp.QuestionCount = int64(len(body.Questions))

	return helper.JsonCreated(c, "Mock test created", resp)
}

// PATCH /api/admin/mock-tests/:id
func (ctrl *MockTestController) AdminPatch(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid test ID")
	}

	var body dto.PatchMockTestRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var test model.MockTestModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&test, "mock_test_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Mock test not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	updates := map[string]any{}
	if body.MockTestTitle != nil {
		if title := strings.TrimSpace(*body.MockTestTitle); title != "" {
			updates["mock_test_title"] = title
		}
	}
	if body.MockTestDescription != nil {
		if desc := strings.TrimSpace(*body.MockTestDescription); desc != "" {
			updates["mock_test_description"] = desc
		} else {
			updates["mock_test_description"] = gorm.Expr("NULL")
		}
	}
	if body.MockTestPaper != nil {
		updates["mock_test_paper"] = *body.MockTestPaper
	}
	if body.MockTestSubject != nil {
		if subject := strings.TrimSpace(*body.MockTestSubject); subject != "" {
			updates["mock_test_subject"] = subject
		} else {
			updates["mock_test_subject"] = gorm.Expr("NULL")
		}
	}
	if body.MockTestDurationMinutes != nil {
		updates["mock_test_duration_minutes"] = *body.MockTestDurationMinutes
	}
	if body.MockTestNegativeRatio != nil {
		updates["mock_test_negative_ratio"] = *body.MockTestNegativeRatio
	}
	if body.MockTestIsPublished != nil {
		updates["mock_test_is_published"] = *body.MockTestIsPublished
	}

	if len(updates) == 0 {
		return helper.JsonOK(c, "No changes", dto.FromMockTestModel(&test))
	}

	if err := ctrl.DB.WithContext(c.Context()).
		Model(&test).
		Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := ctrl.DB.WithContext(c.Context()).
		First(&test, "mock_test_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "Mock test updated", dto.FromMockTestModel(&test))
}

// POST /api/admin/mock-tests/:id/publish
func (ctrl *MockTestController) AdminTogglePublish(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid test ID")
	}

	var test model.MockTestModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&test, "mock_test_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Mock test not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	next := !test.MockTestIsPublished
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&test).
		Update("mock_test_is_published", next).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	test.MockTestIsPublished = next

	return helper.JsonUpdated(c, "Publish state updated", dto.FromMockTestModel(&test))
}

// PUT /api/admin/mock-tests/:id/access-code
// Sets the bcrypt-hashed access code; an empty body clears it.
func (ctrl *MockTestController) AdminSetAccessCode(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid test ID")
	}

	var body dto.SetAccessCodeRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&body); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
		}
		if err := ctrl.Validator.Struct(&body); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
	}

	var test model.MockTestModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&test, "mock_test_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Mock test not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var hash []byte
	hasCode := body.AccessCode != nil && strings.TrimSpace(*body.AccessCode) != ""
	if hasCode {
		hash, err = service.HashAccessCode(*body.AccessCode)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
	}

	update := map[string]any{"mock_test_access_code_hash": gorm.Expr("NULL")}
	if hasCode {
		update["mock_test_access_code_hash"] = hash
	}
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&test).
		Updates(update).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	test.MockTestAccessCodeHash = hash

	msg := "Access code cleared"
	if hasCode {
		msg = "Access code set"
	}
	return helper.JsonUpdated(c, msg, dto.FromMockTestModel(&test))
}

// DELETE /api/admin/mock-tests/:id
func (ctrl *MockTestController) AdminDelete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid test ID")
	}

	var test model.MockTestModel
	if err := ctrl.DB.WithContext(c.Context()).
		Select("mock_test_id").
		First(&test, "mock_test_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Mock test not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := ctrl.DB.WithContext(c.Context()).
		Delete(&model.MockTestModel{}, "mock_test_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonDeleted(c, "Mock test deleted", fiber.Map{
		"mock_test_id": id,
	})
}

/* =======================
   Handlers (admin questions)
======================= */

// POST /api/admin/mock-tests/:id/questions
func (ctrl *MockTestController) AdminAddQuestion(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid test ID")
	}

	var body dto.CreateMockQuestionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var test model.MockTestModel
	if err := ctrl.DB.WithContext(c.Context()).
		Select("mock_test_id").
		First(&test, "mock_test_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Mock test not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var count int64
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&model.MockTestQuestionModel{}).
		Where("mock_test_question_test_id = ?", id).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	question := body.ToModel(id, int(count))
	if err := ctrl.DB.WithContext(c.Context()).Create(&question).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Question added", question)
}

// PATCH /api/admin/mock-tests/:id/questions/:qid
func (ctrl *MockTestController) AdminPatchQuestion(c *fiber.Ctx) error {
	testID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid test ID")
	}
	qid, err := uuid.Parse(strings.TrimSpace(c.Params("qid")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid question ID")
	}

	var body dto.PatchMockQuestionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var question model.MockTestQuestionModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("mock_test_question_id = ? AND mock_test_question_test_id = ?", qid, testID).
		First(&question).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Question not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if body.MockTestQuestionText != nil {
		if text := strings.TrimSpace(*body.MockTestQuestionText); text != "" {
			question.MockTestQuestionText = text
		}
	}
	if body.MockTestQuestionOptions != nil {
		question.MockTestQuestionOptions = pq.StringArray(body.MockTestQuestionOptions)
	}
	if body.MockTestQuestionCorrectIndex != nil {
		question.MockTestQuestionCorrectIndex = *body.MockTestQuestionCorrectIndex
	}
	if body.MockTestQuestionExplanation != nil {
		question.MockTestQuestionExplanation = trimToNil(*body.MockTestQuestionExplanation)
	}
	if body.MockTestQuestionSubject != nil {
		if subject := strings.TrimSpace(*body.MockTestQuestionSubject); subject != "" {
			question.MockTestQuestionSubject = subject
		}
	}
	if body.MockTestQuestionDifficulty != nil {
		question.MockTestQuestionDifficulty = model.MockDifficulty(*body.MockTestQuestionDifficulty)
	}
	if body.MockTestQuestionMarks != nil {
		question.MockTestQuestionMarks = *body.MockTestQuestionMarks
	}
	if body.MockTestQuestionPosition != nil {
		question.MockTestQuestionPosition = *body.MockTestQuestionPosition
	}

	if err := ctrl.DB.WithContext(c.Context()).Save(&question).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "Question updated", question)
}

// DELETE /api/admin/mock-tests/:id/questions/:qid
func (ctrl *MockTestController) AdminDeleteQuestion(c *fiber.Ctx) error {
	testID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid test ID")
	}
	qid, err := uuid.Parse(strings.TrimSpace(c.Params("qid")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid question ID")
	}

	res := ctrl.DB.WithContext(c.Context()).
		Where("mock_test_question_id = ? AND mock_test_question_test_id = ?", qid, testID).
		Delete(&model.MockTestQuestionModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Question not found")
	}

	return helper.JsonDeleted(c, "Question deleted", fiber.Map{
		"mock_test_question_id": qid,
	})
}

func trimToNil(s string) *string {
	v := strings.TrimSpace(s)
	if v == "" {
		return nil
	}
	return &v
}
