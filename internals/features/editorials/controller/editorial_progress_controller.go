// file: internals/features/editorials/controller/editorial_progress_controller.go
package controller

import (
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"sarathi_backend/internals/constants"
	activity "sarathi_backend/internals/features/dashboard/activity/service"
	dto "sarathi_backend/internals/features/editorials/dto"
	model "sarathi_backend/internals/features/editorials/model"
	service "sarathi_backend/internals/features/editorials/service"
	helper "sarathi_backend/internals/helpers"
)

/* =======================
   Handlers (progress)
======================= */

// PUT /api/editorials/:id/progress
// Upserts the caller's reading progress. Percent only moves forward, and
// the first time it reaches 100 the editorial counts as read.
func (ctrl *EditorialController) UpdateProgress(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid editorial ID")
	}

	var body dto.UpdateProgressRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	ed, err := ctrl.loadPublished(c, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Editorial not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	progress := ctrl.progressFor(c, userID, ed.EditorialID)
	var current int16
	if progress != nil {
		current = progress.EditorialProgressPercent
	}

	next, becameRead, err := service.AdvanceProgress(current, *body.Percent)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	now := time.Now()
	if progress == nil {
		progress = &model.EditorialProgressModel{
			EditorialProgressUserID:      userID,
			EditorialProgressEditorialID: ed.EditorialID,
			EditorialProgressPercent:     next,
			EditorialProgressIsRead:      becameRead,
		}
		if becameRead {
			progress.EditorialProgressReadAt = &now
		}
		if err := ctrl.DB.WithContext(c.Context()).Create(progress).Error; err != nil {
			low := strings.ToLower(err.Error())
			if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
				return helper.JsonError(c, fiber.StatusConflict, "Progress update raced, please retry")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
	} else if next != current || becameRead {
		updates := map[string]interface{}{
			"editorial_progress_percent":    next,
			"editorial_progress_updated_at": now,
		}
		if becameRead {
			updates["editorial_progress_is_read"] = true
			updates["editorial_progress_read_at"] = now
		}
		if err := ctrl.DB.WithContext(c.Context()).
			Model(&model.EditorialProgressModel{}).
			Where("editorial_progress_id = ?", progress.EditorialProgressID).
			Updates(updates).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		progress.EditorialProgressPercent = next
		if becameRead {
			progress.EditorialProgressIsRead = true
			progress.EditorialProgressReadAt = &now
		}
	}

	// First completion feeds the dashboard and the streak.
	if becameRead {
		meta, _ := json.Marshal(fiber.Map{
			"source": ed.EditorialSource.String(),
			"title":  ed.EditorialTitle,
		})
		if err := activity.Log(ctrl.DB, userID, constants.ActivityEditorialRead, &ed.EditorialID, datatypes.JSON(meta)); err != nil {
			log.Println("[EDITORIAL] activity log failed:", err)
		}
	}

	resp := dto.FromEditorialModel(ed)
	resp.AttachProgress(progress)
	resp.IsBookmarked = ctrl.isBookmarked(c, userID, ed.EditorialID)

	return helper.JsonUpdated(c, "Progress saved", resp)
}

/* =======================
   Handlers (bookmarks)
======================= */

// POST /api/editorials/:id/bookmark
func (ctrl *EditorialController) Bookmark(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid editorial ID")
	}

	var body dto.BookmarkRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&body); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
		}
		if err := ctrl.Validator.Struct(&body); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
	}

	ed, err := ctrl.loadPublished(c, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Editorial not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	bookmark := model.EditorialBookmarkModel{
		EditorialBookmarkUserID:      userID,
		EditorialBookmarkEditorialID: ed.EditorialID,
	}
	if body.Note != nil {
		if note := strings.TrimSpace(*body.Note); note != "" {
			bookmark.EditorialBookmarkNote = &note
		}
	}

	if err := ctrl.DB.WithContext(c.Context()).Create(&bookmark).Error; err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "Editorial already bookmarked")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Bookmarked", dto.BookmarkResponse{
		EditorialBookmarkID:        bookmark.EditorialBookmarkID,
		EditorialBookmarkNote:      bookmark.EditorialBookmarkNote,
		EditorialBookmarkCreatedAt: bookmark.EditorialBookmarkCreatedAt,
		Editorial:                  dto.FromEditorialModel(ed),
	})
}

// DELETE /api/editorials/:id/bookmark
func (ctrl *EditorialController) Unbookmark(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid editorial ID")
	}

	res := ctrl.DB.WithContext(c.Context()).
		Where("editorial_bookmark_user_id = ? AND editorial_bookmark_editorial_id = ?", userID, id).
		Delete(&model.EditorialBookmarkModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Bookmark not found")
	}

	return helper.JsonDeleted(c, "Bookmark removed", fiber.Map{
		"editorial_id": id,
	})
}

// GET /api/editorials/bookmarks
func (ctrl *EditorialController) MyBookmarks(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	tx := ctrl.DB.WithContext(c.Context()).
		Model(&model.EditorialBookmarkModel{}).
		Where("editorial_bookmark_user_id = ?", userID)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var bookmarks []model.EditorialBookmarkModel
	if err := tx.
		Order("editorial_bookmark_created_at DESC").
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&bookmarks).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	// Editorial payloads for the listed bookmarks in one query.
	editorialByID := map[uuid.UUID]model.EditorialModel{}
	if len(bookmarks) > 0 {
		ids := make([]uuid.UUID, 0, len(bookmarks))
		for i := range bookmarks {
			ids = append(ids, bookmarks[i].EditorialBookmarkEditorialID)
		}
		var editorials []model.EditorialModel
		if err := ctrl.DB.WithContext(c.Context()).
			Unscoped().
			Where("editorial_id IN ?", ids).
			Find(&editorials).Error; err == nil {
			for i := range editorials {
				editorialByID[editorials[i].EditorialID] = editorials[i]
			}
		}
	}

	items := make([]dto.BookmarkResponse, 0, len(bookmarks))
	for i := range bookmarks {
		item := dto.BookmarkResponse{
			EditorialBookmarkID:        bookmarks[i].EditorialBookmarkID,
			EditorialBookmarkNote:      bookmarks[i].EditorialBookmarkNote,
			EditorialBookmarkCreatedAt: bookmarks[i].EditorialBookmarkCreatedAt,
		}
		if ed, ok := editorialByID[bookmarks[i].EditorialBookmarkEditorialID]; ok {
			item.Editorial = dto.FromEditorialModel(&ed)
		}
		items = append(items, item)
	}

	return helper.JsonList(c, "OK", items, helper.BuildMeta(total, p))
}
