// file: internals/features/editorials/controller/admin_editorial_controller.go
package controller

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	dto "sarathi_backend/internals/features/editorials/dto"
	model "sarathi_backend/internals/features/editorials/model"
	helper "sarathi_backend/internals/helpers"
	"sarathi_backend/internals/helpers/apptime"
	"sarathi_backend/internals/helpers/storage"
)

/* =======================
   Handlers (admin)
======================= */

// POST /api/admin/editorials
func (ctrl *EditorialController) AdminCreate(c *fiber.Ctx) error {
	var body dto.CreateEditorialRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	ed, err := body.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid editorial_published_on (want YYYY-MM-DD)")
	}

	if err := ctrl.DB.WithContext(c.Context()).Create(ed).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Editorial created", dto.FromEditorialModel(ed))
}

// PATCH /api/admin/editorials/:id
func (ctrl *EditorialController) AdminPatch(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid editorial ID")
	}

	var body dto.PatchEditorialRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var ed model.EditorialModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&ed, "editorial_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Editorial not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	updates := map[string]any{}
	if body.EditorialTitle != nil {
		if title := strings.TrimSpace(*body.EditorialTitle); title != "" {
			updates["editorial_title"] = title
		}
	}
	if body.EditorialSource != nil {
		updates["editorial_source"] = *body.EditorialSource
	}
	if body.EditorialURL != nil {
		updates["editorial_url"] = strings.TrimSpace(*body.EditorialURL)
	}
	if body.EditorialPublishedOn != nil {
		published, perr := apptime.ParseDate(*body.EditorialPublishedOn)
		if perr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid editorial_published_on (want YYYY-MM-DD)")
		}
		updates["editorial_published_on"] = published
	}
	if body.EditorialSummary != nil {
		if summary := strings.TrimSpace(*body.EditorialSummary); summary != "" {
			updates["editorial_summary"] = summary
		} else {
			updates["editorial_summary"] = gorm.Expr("NULL")
		}
	}
	if body.EditorialGSPapers != nil {
		updates["editorial_gs_papers"] = pq.StringArray(body.EditorialGSPapers)
	}
	if body.EditorialTags != nil {
		updates["editorial_tags"] = pq.StringArray(body.EditorialTags)
	}
	if body.EditorialReadMinutes != nil {
		updates["editorial_read_minutes"] = *body.EditorialReadMinutes
	}
	if body.EditorialIsPublished != nil {
		updates["editorial_is_published"] = *body.EditorialIsPublished
	}

	if len(updates) == 0 {
		return helper.JsonOK(c, "No changes", dto.FromEditorialModel(&ed))
	}

	if err := ctrl.DB.WithContext(c.Context()).
		Model(&ed).
		Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := ctrl.DB.WithContext(c.Context()).
		First(&ed, "editorial_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "Editorial updated", dto.FromEditorialModel(&ed))
}

// POST /api/admin/editorials/:id/cover
// Multipart upload; the image is re-encoded to webp and pushed to OSS.
func (ctrl *EditorialController) AdminUploadCover(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid editorial ID")
	}

	var ed model.EditorialModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&ed, "editorial_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Editorial not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	form, err := c.MultipartForm()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Multipart form required")
	}
	fh := storage.PickUploadedFile(form, "file", "image", "cover")
	if fh == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Image file missing")
	}

	svc, err := storage.NewOSSServiceFromEnv("")
	if err != nil {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Storage not configured")
	}

	coverURL, thumbURL, err := storage.UploadContentCover(c.Context(), svc, "editorials", ed.EditorialID, fh)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	oldCover, oldThumb := ed.EditorialCoverURL, ed.EditorialCoverThumbURL
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&ed).
		Updates(map[string]any{
			"editorial_cover_url":       coverURL,
			"editorial_cover_thumb_url": thumbURL,
		}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	ed.EditorialCoverURL = &coverURL
	ed.EditorialCoverThumbURL = &thumbURL

	// Replaced cover objects are cleaned up best-effort.
	for _, old := range []*string{oldCover, oldThumb} {
		if old != nil && strings.Contains(*old, "/content/editorials/") {
			go func(u string) {
				_ = storage.DeleteByPublicURLENV(u, 15*time.Second)
			}(*old)
		}
	}

	return helper.JsonUpdated(c, "Cover uploaded", dto.FromEditorialModel(&ed))
}

// DELETE /api/admin/editorials/:id
func (ctrl *EditorialController) AdminDelete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid editorial ID")
	}

	var ed model.EditorialModel
	if err := ctrl.DB.WithContext(c.Context()).
		Select("editorial_id").
		First(&ed, "editorial_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Editorial not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := ctrl.DB.WithContext(c.Context()).
		Delete(&model.EditorialModel{}, "editorial_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonDeleted(c, "Editorial deleted", fiber.Map{
		"editorial_id": id,
	})
}
