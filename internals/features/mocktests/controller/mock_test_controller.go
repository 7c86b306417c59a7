// file: internals/features/mocktests/controller/mock_test_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "sarathi_backend/internals/features/mocktests/dto"
	model "sarathi_backend/internals/features/mocktests/model"
	helper "sarathi_backend/internals/helpers"
)

type MockTestController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewMockTestController(db *gorm.DB) *MockTestController {
	return &MockTestController{
		DB:        db,
		Validator: validator.New(),
	}
}

/* =======================
   Query helpers
======================= */

func (ctrl *MockTestController) loadTest(c *fiber.Ctx, id uuid.UUID) (*model.MockTestModel, error) {
	var test model.MockTestModel
	err := ctrl.DB.WithContext(c.Context()).
		First(&test, "mock_test_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &test, nil
}

func (ctrl *MockTestController) loadQuestions(c *fiber.Ctx, testID uuid.UUID) ([]model.MockTestQuestionModel, error) {
	var questions []model.MockTestQuestionModel
	err := ctrl.DB.WithContext(c.Context()).
		Where("mock_test_question_test_id = ?", testID).
		Order("mock_test_question_position ASC, mock_test_question_created_at ASC").
		Find(&questions).Error
	return questions, err
}

func (ctrl *MockTestController) openAttempt(c *fiber.Ctx, userID, testID uuid.UUID) *model.MockTestAttemptModel {
	var attempt model.MockTestAttemptModel
	err := ctrl.DB.WithContext(c.Context()).
		Where("mock_test_attempt_user_id = ? AND mock_test_attempt_test_id = ? AND mock_test_attempt_status = ?",
			userID, testID, model.MockAttemptInProgress).
		First(&attempt).Error
	if err != nil {
		return nil
	}
	return &attempt
}

type countRow struct {
	RefID uuid.UUID `gorm:"column:ref_id"`
	N     int64     `gorm:"column:n"`
}

// countsBy runs a grouped COUNT over table keyed by keyCol for the given ids.
func (ctrl *MockTestController) countsBy(c *fiber.Ctx, tmodel interface{}, keyCol string, ids []uuid.UUID, extraWhere string, extraArgs ...interface{}) map[uuid.UUID]int64 {
	out := map[uuid.UUID]int64{}
	if len(ids) == 0 {
		return out
	}
	var rows []countRow
	tx := ctrl.DB.WithContext(c.Context()).
		Model(tmodel).
		Select(keyCol+" AS ref_id, COUNT(*) AS n").
		Where(keyCol+" IN ?", ids)
	if extraWhere != "" {
		tx = tx.Where(extraWhere, extraArgs...)
	}
	if err := tx.Group(keyCol).Scan(&rows).Error; err != nil {
		return out
	}
	for _, r := range rows {
		out[r.RefID] = r.N
	}
	return out
}

/* =======================
   Handlers (read)
======================= */

// GET /api/mock-tests?paper=&subject=&q=&page=&per_page=
// Published catalog plus the caller's own generated tests.
func (ctrl *MockTestController) List(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	tx := ctrl.DB.WithContext(c.Context()).
		Model(&model.MockTestModel{}).
		Where("(mock_test_is_published = TRUE AND mock_test_is_generated = FALSE) OR (mock_test_is_generated = TRUE AND mock_test_owner_user_id = ?)", userID)

	if paper := strings.TrimSpace(c.Query("paper")); paper != "" {
		if !model.MockTestPaper(paper).Valid() {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid paper filter")
		}
		tx = tx.Where("mock_test_paper = ?", paper)
	}
	if subject := strings.TrimSpace(c.Query("subject")); subject != "" {
		tx = tx.Where("mock_test_subject ILIKE ?", "%"+subject+"%")
	}
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		tx = tx.Where("mock_test_title ILIKE ?", "%"+q+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	allowedSort := map[string]string{
		"created_at": "mock_test_created_at",
		"title":      "mock_test_title",
	}
	order, err := p.SafeOrderClause(allowedSort, "created_at")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var tests []model.MockTestModel
	if err := tx.
		Order(strings.TrimPrefix(order, "ORDER BY ")).
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
	attemptCounts := ctrl.countsBy(c, &model.MockTestAttemptModel{}, "mock_test_attempt_test_id", ids,
		"mock_test_attempt_user_id = ?", userID)

	items := make([]dto.MockTestResponse, 0, len(tests))
	for i := range tests {
		item := dto.FromMockTestModel(&tests[i])
		item.QuestionCount = questionCounts[tests[i].MockTestID]
		item.AttemptCount = attemptCounts[tests[i].MockTestID]
		items = append(items, item)
	}

	return helper.JsonList(c, "OK", items, helper.BuildMeta(total, p))
}

// GET /api/mock-tests/:id
// Metadata only; the questions come with Start.
func (ctrl *MockTestController) GetByID(c *fiber.Ctx) error {
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

	ids := []uuid.UUID{test.MockTestID}
	resp := dto.FromMockTestModel(test)
	resp.QuestionCount = ctrl.countsBy(c, &model.MockTestQuestionModel{}, "mock_test_question_test_id", ids, "")[test.MockTestID]
	resp.AttemptCount = ctrl.countsBy(c, &model.MockTestAttemptModel{}, "mock_test_attempt_test_id", ids,
		"mock_test_attempt_user_id = ?", userID)[test.MockTestID]

	return helper.JsonOK(c, "OK", resp)
}
