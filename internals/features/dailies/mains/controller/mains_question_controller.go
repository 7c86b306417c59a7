// file: internals/features/dailies/mains/controller/mains_question_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "sarathi_backend/internals/features/dailies/mains/dto"
	model "sarathi_backend/internals/features/dailies/mains/model"
	helper "sarathi_backend/internals/helpers"
	"sarathi_backend/internals/helpers/apptime"
)

type MainsQuestionController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewMainsQuestionController(db *gorm.DB) *MainsQuestionController {
	return &MainsQuestionController{
		DB:        db,
		Validator: validator.New(),
	}
}

/* =======================
   Query helpers
======================= */

func (ctrl *MainsQuestionController) loadPublishedQuestion(c *fiber.Ctx, where string, args ...interface{}) (*model.MainsQuestionModel, error) {
	var q model.MainsQuestionModel
	err := ctrl.DB.WithContext(c.Context()).
		Where("mains_question_is_published = TRUE").
		Where(where, args...).
		First(&q).Error
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (ctrl *MainsQuestionController) attemptFor(c *fiber.Ctx, userID, questionID uuid.UUID) *model.MainsAttemptModel {
	var attempt model.MainsAttemptModel
	err := ctrl.DB.WithContext(c.Context()).
		Preload("Evaluation").
		Where("mains_attempt_user_id = ? AND mains_attempt_question_id = ?", userID, questionID).
		First(&attempt).Error
	if err != nil {
		return nil
	}
	return &attempt
}

/* =======================
   Handlers (read)
======================= */

// GET /api/daily-answers/today
func (ctrl *MainsQuestionController) Today(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	q, err := ctrl.loadPublishedQuestion(c, "mains_question_date = ?", apptime.Today())
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "No question published for today")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	resp := dto.FromQuestionModel(q)
	if attempt := ctrl.attemptFor(c, userID, q.MainsQuestionID); attempt != nil {
		resp.Attempted = true
		a := dto.FromAttemptModel(attempt)
		resp.Attempt = &a
	}

	return helper.JsonOK(c, "OK", resp)
}

// GET /api/daily-answers?paper=&from=&to=&page=&per_page=
func (ctrl *MainsQuestionController) List(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	p := helper.ParseFiber(c, "date", "desc", helper.DefaultOpts)

	tx := ctrl.DB.WithContext(c.Context()).
		Model(&model.MainsQuestionModel{}).
		Where("mains_question_is_published = TRUE")

	if paper := strings.TrimSpace(c.Query("paper")); paper != "" {
		if !model.ValidPaper(paper) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid paper filter")
		}
		tx = tx.Where("mains_question_paper = ?", paper)
	}
	if raw := strings.TrimSpace(c.Query("from")); raw != "" {
		from, perr := apptime.ParseDate(raw)
		if perr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid from date (want YYYY-MM-DD)")
		}
		tx = tx.Where("mains_question_date >= ?", from)
	}
	if raw := strings.TrimSpace(c.Query("to")); raw != "" {
		to, perr := apptime.ParseDate(raw)
		if perr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid to date (want YYYY-MM-DD)")
		}
		tx = tx.Where("mains_question_date <= ?", to)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	allowedSort := map[string]string{
		"date":       "mains_question_date",
		"created_at": "mains_question_created_at",
	}
	order, err := p.SafeOrderClause(allowedSort, "date")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var questions []model.MainsQuestionModel
	if err := tx.
		Order(strings.TrimPrefix(order, "ORDER BY ")).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&questions).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	// Flag questions the caller has already answered (one query).
	attempted := map[uuid.UUID]bool{}
	if len(questions) > 0 {
		ids := make([]uuid.UUID, 0, len(questions))
		for i := range questions {
			ids = append(ids, questions[i].MainsQuestionID)
		}
		var rows []model.MainsAttemptModel
		if err := ctrl.DB.WithContext(c.Context()).
			Select("mains_attempt_question_id").
			Where("mains_attempt_user_id = ? AND mains_attempt_question_id IN ?", userID, ids).
			Find(&rows).Error; err == nil {
			for i := range rows {
				attempted[rows[i].MainsAttemptQuestionID] = true
			}
		}
	}

	items := make([]dto.MainsQuestionResponse, 0, len(questions))
	for i := range questions {
		item := dto.FromQuestionModel(&questions[i])
		item.Attempted = attempted[questions[i].MainsQuestionID]
		items = append(items, item)
	}

	return helper.JsonList(c, "OK", items, helper.BuildMeta(total, p))
}

// GET /api/daily-answers/:id
func (ctrl *MainsQuestionController) GetByID(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid question ID")
	}

	q, err := ctrl.loadPublishedQuestion(c, "mains_question_id = ?", id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Question not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	resp := dto.FromQuestionModel(q)
	if attempt := ctrl.attemptFor(c, userID, q.MainsQuestionID); attempt != nil {
		resp.Attempted = true
		a := dto.FromAttemptModel(attempt)
		resp.Attempt = &a
	}

	return helper.JsonOK(c, "OK", resp)
}
