// file: internals/features/dailies/mcq/controller/daily_mcq_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "sarathi_backend/internals/features/dailies/mcq/dto"
	model "sarathi_backend/internals/features/dailies/mcq/model"
	helper "sarathi_backend/internals/helpers"
	"sarathi_backend/internals/helpers/apptime"
)

type DailyMCQController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewDailyMCQController(db *gorm.DB) *DailyMCQController {
	return &DailyMCQController{
		DB:        db,
		Validator: validator.New(),
	}
}

/* =======================
   Query helpers
======================= */

func (ctrl *DailyMCQController) loadPublishedQuiz(c *fiber.Ctx, where string, args ...interface{}) (*model.DailyMCQModel, error) {
	var quiz model.DailyMCQModel
	err := ctrl.DB.WithContext(c.Context()).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("mcq_question_position ASC, mcq_question_created_at ASC")
		}).
		Where("daily_mcq_is_published = TRUE").
		Where(where, args...).
		First(&quiz).Error
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (ctrl *DailyMCQController) attemptFor(c *fiber.Ctx, userID, dailyID uuid.UUID) *model.MCQAttemptModel {
	var attempt model.MCQAttemptModel
	err := ctrl.DB.WithContext(c.Context()).
		Where("mcq_attempt_user_id = ? AND mcq_attempt_daily_mcq_id = ?", userID, dailyID).
		First(&attempt).Error
	if err != nil {
		return nil
	}
	return &attempt
}

/* =======================
   Handlers (read)
======================= */

// GET /api/daily-mcq/today
func (ctrl *DailyMCQController) Today(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	quiz, err := ctrl.loadPublishedQuiz(c, "daily_mcq_date = ?", apptime.Today())
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "No quiz published for today")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	resp := dto.FromDailyModel(quiz, true)
	if attempt := ctrl.attemptFor(c, userID, quiz.DailyMCQID); attempt != nil {
		resp.Attempted = true
		a := dto.FromAttemptModel(attempt)
		resp.Attempt = &a
	}

	return helper.JsonOK(c, "OK", resp)
}

// GET /api/daily-mcq?from=&to=&topic=&page=&per_page=
func (ctrl *DailyMCQController) List(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	p := helper.ParseFiber(c, "date", "desc", helper.DefaultOpts)

	tx := ctrl.DB.WithContext(c.Context()).
		Model(&model.DailyMCQModel{}).
		Where("daily_mcq_is_published = TRUE")

	if raw := strings.TrimSpace(c.Query("from")); raw != "" {
		from, perr := apptime.ParseDate(raw)
		if perr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid from date (want YYYY-MM-DD)")
		}
		tx = tx.Where("daily_mcq_date >= ?", from)
	}
	if raw := strings.TrimSpace(c.Query("to")); raw != "" {
		to, perr := apptime.ParseDate(raw)
		if perr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid to date (want YYYY-MM-DD)")
		}
		tx = tx.Where("daily_mcq_date <= ?", to)
	}
	if topic := strings.TrimSpace(c.Query("topic")); topic != "" {
		tx = tx.Where("daily_mcq_topic ILIKE ?", "%"+topic+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	allowedSort := map[string]string{
		"date":       "daily_mcq_date",
		"created_at": "daily_mcq_created_at",
	}
	order, err := p.SafeOrderClause(allowedSort, "date")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var quizzes []model.DailyMCQModel
	if err := tx.
		Order(strings.TrimPrefix(order, "ORDER BY ")).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&quizzes).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	// Flag quizzes the caller has already attempted (one query).
	attempted := map[uuid.UUID]bool{}
	if len(quizzes) > 0 {
		ids := make([]uuid.UUID, 0, len(quizzes))
		for i := range quizzes {
			ids = append(ids, quizzes[i].DailyMCQID)
		}
		var rows []model.MCQAttemptModel
		if err := ctrl.DB.WithContext(c.Context()).
			Select("mcq_attempt_daily_mcq_id").
			Where("mcq_attempt_user_id = ? AND mcq_attempt_daily_mcq_id IN ?", userID, ids).
			Find(&rows).Error; err == nil {
			for i := range rows {
				attempted[rows[i].MCQAttemptDailyMCQID] = true
			}
		}
	}

	items := make([]dto.DailyMCQResponse, 0, len(quizzes))
	for i := range quizzes {
		item := dto.FromDailyModel(&quizzes[i], false)
		item.Attempted = attempted[quizzes[i].DailyMCQID]
		items = append(items, item)
	}

	return helper.JsonList(c, "OK", items, helper.BuildMeta(total, p))
}

// GET /api/daily-mcq/:id
func (ctrl *DailyMCQController) GetByID(c *fiber.Ctx) error {
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

	resp := dto.FromDailyModel(quiz, true)
	if attempt := ctrl.attemptFor(c, userID, quiz.DailyMCQID); attempt != nil {
		resp.Attempted = true
		a := dto.FromAttemptModel(attempt)
		resp.Attempt = &a
	}

	return helper.JsonOK(c, "OK", resp)
}
