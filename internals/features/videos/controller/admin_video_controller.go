// file: internals/features/videos/controller/admin_video_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "sarathi_backend/internals/features/videos/dto"
	model "sarathi_backend/internals/features/videos/model"
	helper "sarathi_backend/internals/helpers"
)

func videoSubjectSlugOpts() helper.SlugOptions {
	return helper.SlugOptions{
		Table:            "video_subjects",
		SlugColumn:       "video_subject_slug",
		SoftDeleteColumn: "video_subject_deleted_at",
		DefaultBase:      "subject",
	}
}

/* =======================
   Handlers (admin subjects)
======================= */

// POST /api/admin/videos/subjects
func (ctrl *VideoController) AdminCreateSubject(c *fiber.Ctx) error {
	var body dto.CreateVideoSubjectRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	slug, err := helper.GenerateUniqueSlug(ctrl.DB.WithContext(c.Context()), videoSubjectSlugOpts(), body.VideoSubjectName)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	subject := model.VideoSubjectModel{
		VideoSubjectName: strings.TrimSpace(body.VideoSubjectName),
		VideoSubjectSlug: slug,
	}
	if body.VideoSubjectPosition != nil {
		subject.VideoSubjectPosition = *body.VideoSubjectPosition
	}

	if err := ctrl.DB.WithContext(c.Context()).Create(&subject).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Video subject created", subject)
}

// PATCH /api/admin/videos/subjects/:id
func (ctrl *VideoController) AdminPatchSubject(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid subject ID")
	}

	var body dto.PatchVideoSubjectRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var subject model.VideoSubjectModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&subject, "video_subject_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Video subject not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	updates := map[string]any{}
	if body.VideoSubjectName != nil {
		if name := strings.TrimSpace(*body.VideoSubjectName); name != "" {
			updates["video_subject_name"] = name
		}
	}
	if body.VideoSubjectPosition != nil {
		updates["video_subject_position"] = *body.VideoSubjectPosition
	}

	if len(updates) == 0 {
		return helper.JsonOK(c, "No changes", subject)
	}

	if err := ctrl.DB.WithContext(c.Context()).
		Model(&subject).
		Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := ctrl.DB.WithContext(c.Context()).
		First(&subject, "video_subject_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "Video subject updated", subject)
}

// DELETE /api/admin/videos/subjects/:id
func (ctrl *VideoController) AdminDeleteSubject(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid subject ID")
	}

	res := ctrl.DB.WithContext(c.Context()).
		Delete(&model.VideoSubjectModel{}, "video_subject_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Video subject not found")
	}

	return helper.JsonDeleted(c, "Video subject deleted", fiber.Map{
		"video_subject_id": id,
	})
}

/* =======================
   Handlers (admin videos)
======================= */

// GET /api/admin/videos?subject_id=
// Drafts included.
func (ctrl *VideoController) AdminList(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "position", "asc", helper.AdminOpts)

	tx := ctrl.DB.WithContext(c.Context()).Model(&model.VideoModel{})

	if raw := strings.TrimSpace(c.Query("subject_id")); raw != "" {
		subjectID, perr := uuid.Parse(raw)
		if perr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid subject_id")
		}
		tx = tx.Where("video_subject_id = ?", subjectID)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var videos []model.VideoModel
	if err := tx.
		Order("video_position ASC, video_created_at DESC").
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&videos).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "OK", videos, helper.BuildMeta(total, p))
}

// POST /api/admin/videos
func (ctrl *VideoController) AdminCreate(c *fiber.Ctx) error {
	var body dto.CreateVideoRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var subject model.VideoSubjectModel
	if err := ctrl.DB.WithContext(c.Context()).
		Select("video_subject_id").
		First(&subject, "video_subject_id = ?", body.VideoSubjectID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Video subject not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	video := body.ToModel()
	if err := ctrl.DB.WithContext(c.Context()).Create(video).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Video created", video)
}

// PATCH /api/admin/videos/:id
// Position updates double as the reorder operation.
func (ctrl *VideoController) AdminPatch(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid video ID")
	}

	var body dto.PatchVideoRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var video model.VideoModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&video, "video_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Video not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	updates := map[string]any{}
	if body.VideoSubjectID != nil {
		var subject model.VideoSubjectModel
		if err := ctrl.DB.WithContext(c.Context()).
			Select("video_subject_id").
			First(&subject, "video_subject_id = ?", *body.VideoSubjectID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return helper.JsonError(c, fiber.StatusNotFound, "Video subject not found")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		updates["video_subject_id"] = *body.VideoSubjectID
	}
	if body.VideoTitle != nil {
		if title := strings.TrimSpace(*body.VideoTitle); title != "" {
			updates["video_title"] = title
		}
	}
	if body.VideoYoutubeID != nil {
		if ytid := strings.TrimSpace(*body.VideoYoutubeID); ytid != "" {
			updates["video_youtube_id"] = ytid
		}
	}
	if body.VideoDurationSeconds != nil {
		updates["video_duration_seconds"] = *body.VideoDurationSeconds
	}
	if body.VideoLecturer != nil {
		if lecturer := strings.TrimSpace(*body.VideoLecturer); lecturer != "" {
			updates["video_lecturer"] = lecturer
		} else {
			updates["video_lecturer"] = gorm.Expr("NULL")
		}
	}
	if body.VideoPosition != nil {
		updates["video_position"] = *body.VideoPosition
	}
	if body.VideoIsPublished != nil {
		updates["video_is_published"] = *body.VideoIsPublished
	}

	if len(updates) == 0 {
		return helper.JsonOK(c, "No changes", video)
	}

	if err := ctrl.DB.WithContext(c.Context()).
		Model(&video).
		Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := ctrl.DB.WithContext(c.Context()).
		First(&video, "video_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "Video updated", video)
}

// POST /api/admin/videos/:id/publish
func (ctrl *VideoController) AdminTogglePublish(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid video ID")
	}

	var video model.VideoModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&video, "video_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Video not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	next := !video.VideoIsPublished
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&video).
		Update("video_is_published", next).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	video.VideoIsPublished = next

	return helper.JsonUpdated(c, "Publish state updated", video)
}

// DELETE /api/admin/videos/:id
func (ctrl *VideoController) AdminDelete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid video ID")
	}

	res := ctrl.DB.WithContext(c.Context()).
		Delete(&model.VideoModel{}, "video_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Video not found")
	}

	return helper.JsonDeleted(c, "Video deleted", fiber.Map{
		"video_id": id,
	})
}
