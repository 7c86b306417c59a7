// file: internals/features/editorials/controller/editorial_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	activitymodel "sarathi_backend/internals/features/dashboard/activity/model"
	dto "sarathi_backend/internals/features/editorials/dto"
	model "sarathi_backend/internals/features/editorials/model"
	helper "sarathi_backend/internals/helpers"
	"sarathi_backend/internals/helpers/apptime"
)

type EditorialController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewEditorialController(db *gorm.DB) *EditorialController {
	return &EditorialController{
		DB:        db,
		Validator: validator.New(),
	}
}

/* =======================
   Query helpers
======================= */

func (ctrl *EditorialController) loadPublished(c *fiber.Ctx, id uuid.UUID) (*model.EditorialModel, error) {
	var ed model.EditorialModel
	err := ctrl.DB.WithContext(c.Context()).
		Where("editorial_is_published = TRUE").
		First(&ed, "editorial_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &ed, nil
}

func (ctrl *EditorialController) progressFor(c *fiber.Ctx, userID, editorialID uuid.UUID) *model.EditorialProgressModel {
	var p model.EditorialProgressModel
	err := ctrl.DB.WithContext(c.Context()).
		Where("editorial_progress_user_id = ? AND editorial_progress_editorial_id = ?", userID, editorialID).
		First(&p).Error
	if err != nil {
		return nil
	}
	return &p
}

func (ctrl *EditorialController) isBookmarked(c *fiber.Ctx, userID, editorialID uuid.UUID) bool {
	var n int64
	ctrl.DB.WithContext(c.Context()).
		Model(&model.EditorialBookmarkModel{}).
		Where("editorial_bookmark_user_id = ? AND editorial_bookmark_editorial_id = ?", userID, editorialID).
		Count(&n)
	return n > 0
}

/* =======================
   Handlers (read)
======================= */

// GET /api/editorials?source=&date=&from=&to=&tag=&paper=&page=&per_page=
func (ctrl *EditorialController) List(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	p := helper.ParseFiber(c, "published_on", "desc", helper.DefaultOpts)

	tx := ctrl.DB.WithContext(c.Context()).
		Model(&model.EditorialModel{}).
		Where("editorial_is_published = TRUE")

	if source := strings.TrimSpace(c.Query("source")); source != "" {
		if !model.EditorialSource(source).Valid() {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid source filter")
		}
		tx = tx.Where("editorial_source = ?", source)
	}
	if raw := strings.TrimSpace(c.Query("date")); raw != "" {
		date, perr := apptime.ParseDate(raw)
		if perr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date (want YYYY-MM-DD)")
		}
		tx = tx.Where("editorial_published_on = ?", date)
	}
	if raw := strings.TrimSpace(c.Query("from")); raw != "" {
		from, perr := apptime.ParseDate(raw)
		if perr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid from date (want YYYY-MM-DD)")
		}
		tx = tx.Where("editorial_published_on >= ?", from)
	}
	if raw := strings.TrimSpace(c.Query("to")); raw != "" {
		to, perr := apptime.ParseDate(raw)
		if perr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid to date (want YYYY-MM-DD)")
		}
		tx = tx.Where("editorial_published_on <= ?", to)
	}
	if tag := strings.TrimSpace(c.Query("tag")); tag != "" {
		tx = tx.Where("? = ANY(editorial_tags)", tag)
	}
	if paper := strings.TrimSpace(c.Query("paper")); paper != "" {
		tx = tx.Where("? = ANY(editorial_gs_papers)", paper)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	allowedSort := map[string]string{
		"published_on": "editorial_published_on",
		"created_at":   "editorial_created_at",
	}
	order, err := p.SafeOrderClause(allowedSort, "published_on")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var editorials []model.EditorialModel
	if err := tx.
		Order(strings.TrimPrefix(order, "ORDER BY ")).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&editorials).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	// The caller's progress and bookmarks for the page in two queries.
	progressByID := map[uuid.UUID]*model.EditorialProgressModel{}
	bookmarked := map[uuid.UUID]bool{}
	if len(editorials) > 0 {
		ids := make([]uuid.UUID, 0, len(editorials))
		for i := range editorials {
			ids = append(ids, editorials[i].EditorialID)
		}
		var progress []model.EditorialProgressModel
		if err := ctrl.DB.WithContext(c.Context()).
			Where("editorial_progress_user_id = ? AND editorial_progress_editorial_id IN ?", userID, ids).
			Find(&progress).Error; err == nil {
			for i := range progress {
				progressByID[progress[i].EditorialProgressEditorialID] = &progress[i]
			}
		}
		var bookmarks []model.EditorialBookmarkModel
		if err := ctrl.DB.WithContext(c.Context()).
			Select("editorial_bookmark_editorial_id").
			Where("editorial_bookmark_user_id = ? AND editorial_bookmark_editorial_id IN ?", userID, ids).
			Find(&bookmarks).Error; err == nil {
			for i := range bookmarks {
				bookmarked[bookmarks[i].EditorialBookmarkEditorialID] = true
			}
		}
	}

	items := make([]dto.EditorialResponse, 0, len(editorials))
	for i := range editorials {
		item := dto.FromEditorialModel(&editorials[i])
		item.AttachProgress(progressByID[editorials[i].EditorialID])
		item.IsBookmarked = bookmarked[editorials[i].EditorialID]
		items = append(items, item)
	}

	return helper.JsonList(c, "OK", items, helper.BuildMeta(total, p))
}

// GET /api/editorials/:id
func (ctrl *EditorialController) GetByID(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid editorial ID")
	}

	ed, err := ctrl.loadPublished(c, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Editorial not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	resp := dto.FromEditorialModel(ed)
	resp.AttachProgress(ctrl.progressFor(c, userID, ed.EditorialID))
	resp.IsBookmarked = ctrl.isBookmarked(c, userID, ed.EditorialID)

	return helper.JsonOK(c, "OK", resp)
}

// GET /api/editorials/stats
func (ctrl *EditorialController) Stats(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var stats dto.EditorialStatsResponse

	if err := ctrl.DB.WithContext(c.Context()).
		Model(&model.EditorialProgressModel{}).
		Where("editorial_progress_user_id = ? AND editorial_progress_is_read = TRUE", userID).
		Count(&stats.TotalRead).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	weekStart := apptime.WeekStart(apptime.Today())
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&model.EditorialProgressModel{}).
		Where("editorial_progress_user_id = ? AND editorial_progress_is_read = TRUE AND editorial_progress_read_at >= ?", userID, weekStart).
		Count(&stats.ReadThisWeek).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := ctrl.DB.WithContext(c.Context()).
		Model(&model.EditorialBookmarkModel{}).
		Where("editorial_bookmark_user_id = ?", userID).
		Count(&stats.TotalBookmark).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var streak activitymodel.UserStreakModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("user_streak_user_id = ?", userID).
		First(&streak).Error; err == nil {
		stats.StreakDays = streak.UserStreakCurrent
	}

	return helper.JsonOK(c, "OK", stats)
}
