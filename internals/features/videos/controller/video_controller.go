// file: internals/features/videos/controller/video_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "sarathi_backend/internals/features/videos/dto"
	model "sarathi_backend/internals/features/videos/model"
	helper "sarathi_backend/internals/helpers"
)

type VideoController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewVideoController(db *gorm.DB) *VideoController {
	return &VideoController{
		DB:        db,
		Validator: validator.New(),
	}
}

/* =======================
   Handlers (user)
======================= */

// GET /api/videos/subjects
func (ctrl *VideoController) Subjects(c *fiber.Ctx) error {
	var subjects []model.VideoSubjectModel
	if err := ctrl.DB.WithContext(c.Context()).
		Order("video_subject_position ASC, video_subject_name ASC").
		Find(&subjects).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	ids := make([]uuid.UUID, 0, len(subjects))
	for i := range subjects {
		ids = append(ids, subjects[i].VideoSubjectID)
	}

	counts := make(map[uuid.UUID]int64, len(ids))
	if len(ids) > 0 {
		var rows []struct {
			RefID uuid.UUID `gorm:"column:ref_id"`
			N     int64     `gorm:"column:n"`
		}
		if err := ctrl.DB.WithContext(c.Context()).
			Model(&model.VideoModel{}).
			Select("video_subject_id AS ref_id, COUNT(*) AS n").
			Where("video_subject_id IN ? AND video_is_published = TRUE", ids).
			Group("video_subject_id").
			Scan(&rows).Error; err == nil {
			for _, r := range rows {
				counts[r.RefID] = r.N
			}
		}
	}

	items := make([]dto.VideoSubjectResponse, 0, len(subjects))
	for i := range subjects {
		items = append(items, dto.VideoSubjectResponse{
			VideoSubjectModel: subjects[i],
			VideoCount:        counts[subjects[i].VideoSubjectID],
		})
	}

	return helper.JsonOK(c, "OK", items)
}

// GET /api/videos?subject_id=&q=
func (ctrl *VideoController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "position", "asc", helper.DefaultOpts)
	allowedSort := map[string]string{
		"position":   "video_position",
		"created_at": "video_created_at",
	}
	order, err := p.SafeOrderClause(allowedSort, "position")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid sort parameters")
	}

	tx := ctrl.DB.WithContext(c.Context()).
		Model(&model.VideoModel{}).
		Where("video_is_published = TRUE")

	if raw := strings.TrimSpace(c.Query("subject_id")); raw != "" {
		subjectID, perr := uuid.Parse(raw)
		if perr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid subject_id")
		}
		tx = tx.Where("video_subject_id = ?", subjectID)
	}
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + q + "%"
		tx = tx.Where("(video_title ILIKE ? OR video_lecturer ILIKE ?)", like, like)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var videos []model.VideoModel
	if err := tx.
		Order(strings.TrimPrefix(order, "ORDER BY ")).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&videos).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "OK", videos, helper.BuildMeta(total, p))
}

// GET /api/videos/:id
func (ctrl *VideoController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid video ID")
	}

	var video model.VideoModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("video_id = ? AND video_is_published = TRUE", id).
		First(&video).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Video not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", video)
}
