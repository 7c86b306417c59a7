// file: internals/features/mocktests/controller/mock_generate_controller.go
package controller

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "sarathi_backend/internals/features/mocktests/dto"
	model "sarathi_backend/internals/features/mocktests/model"
	service "sarathi_backend/internals/features/mocktests/service"
	helper "sarathi_backend/internals/helpers"
)

const defaultGenerateCount = 25

// POST /api/mock-tests/generate
// Samples the shared question bank (questions of published, non-generated
// tests matching the filters) into a fresh owner-scoped practice test.
func (ctrl *MockTestController) Generate(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var body dto.GenerateMockTestRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	count := defaultGenerateCount
	if body.Count != nil {
		count = *body.Count
	}

	bank := ctrl.DB.WithContext(c.Context()).
		Model(&model.MockTestQuestionModel{}).
		Joins("JOIN mock_tests ON mock_tests.mock_test_id = mock_test_questions.mock_test_question_test_id").
		Where("mock_tests.mock_test_is_published = TRUE").
		Where("mock_tests.mock_test_is_generated = FALSE").
		Where("mock_tests.mock_test_deleted_at IS NULL").
		Where("mock_tests.mock_test_paper = ?", body.Paper)
	if len(body.Subjects) > 0 {
		bank = bank.Where("mock_test_questions.mock_test_question_subject IN ?", body.Subjects)
	}
	if body.Difficulty != nil {
		bank = bank.Where("mock_test_questions.mock_test_question_difficulty = ?", *body.Difficulty)
	}

	var pool []model.MockTestQuestionModel
	if err := bank.Find(&pool).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	sampled, err := service.SampleQuestions(pool, count, r)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	title := fmt.Sprintf("Practice test (%d questions)", count)
	var subject *string
	if len(body.Subjects) == 1 {
		subject = &body.Subjects[0]
		title = fmt.Sprintf("Practice test: %s (%d questions)", body.Subjects[0], count)
	}

	test := model.MockTestModel{
		MockTestTitle:   title,
		MockTestPaper:   model.MockTestPaper(body.Paper),
		MockTestSubject: subject,
		// prelims pacing: 1.2 minutes per question
		MockTestDurationMinutes: int(math.Ceil(float64(count) * 1.2)),
		MockTestNegativeRatio:   model.DefaultNegativeRatio,
		MockTestIsGenerated:     true,
		MockTestOwnerUserID:     &userID,
	}

	err = ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&test).Error; err != nil {
			return err
		}
		clones := service.CloneForTest(sampled, test.MockTestID)
		return tx.Create(&clones).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	resp := dto.FromMockTestModel(&test)
	resp.QuestionCount = int64(count)

	return helper.JsonCreated(c, "Practice test generated", resp)
}
