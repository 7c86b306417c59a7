// file: internals/features/library/controller/admin_library_controller.go
package controller

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"sarathi_backend/internals/constants"
	dto "sarathi_backend/internals/features/library/dto"
	model "sarathi_backend/internals/features/library/model"
	helper "sarathi_backend/internals/helpers"
	storage "sarathi_backend/internals/helpers/storage"
)

// maxMaterialFileSize caps document uploads; covers have their own 5MB cap.
const maxMaterialFileSize = 25 << 20

func subjectSlugOpts() helper.SlugOptions {
	return helper.SlugOptions{
		Table:            "subjects",
		SlugColumn:       "subject_slug",
		SoftDeleteColumn: "subject_deleted_at",
		DefaultBase:      "subject",
	}
}

func chapterSlugOpts(subjectID uuid.UUID) helper.SlugOptions {
	return helper.SlugOptions{
		Table:            "chapters",
		SlugColumn:       "chapter_slug",
		SoftDeleteColumn: "chapter_deleted_at",
		Filters:          map[string]any{"chapter_subject_id": subjectID},
		DefaultBase:      "chapter",
	}
}

func materialSlugOpts(chapterID uuid.UUID) helper.SlugOptions {
	return helper.SlugOptions{
		Table:            "study_materials",
		SlugColumn:       "study_material_slug",
		SoftDeleteColumn: "study_material_deleted_at",
		Filters:          map[string]any{"study_material_chapter_id": chapterID},
		DefaultBase:      "material",
	}
}

/* =======================
   Handlers (admin subjects)
======================= */

// POST /api/admin/library/subjects
func (ctrl *LibraryController) AdminCreateSubject(c *fiber.Ctx) error {
	var body dto.CreateSubjectRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	slug, err := helper.GenerateUniqueSlug(ctrl.DB.WithContext(c.Context()), subjectSlugOpts(), body.SubjectName)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	subject := body.ToModel(slug)
	if err := ctrl.DB.WithContext(c.Context()).Create(subject).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Subject created", subject)
}

// PATCH /api/admin/library/subjects/:id
// Slugs stay stable across renames; links keep working.
func (ctrl *LibraryController) AdminPatchSubject(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid subject ID")
	}

	var body dto.PatchSubjectRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var subject model.SubjectModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&subject, "subject_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Subject not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	updates := map[string]any{}
	if body.SubjectName != nil {
		if name := strings.TrimSpace(*body.SubjectName); name != "" {
			updates["subject_name"] = name
		}
	}
	if body.SubjectPaper != nil {
		updates["subject_paper"] = *body.SubjectPaper
	}
	if body.SubjectIcon != nil {
		if icon := strings.TrimSpace(*body.SubjectIcon); icon != "" {
			updates["subject_icon"] = icon
		} else {
			updates["subject_icon"] = gorm.Expr("NULL")
		}
	}
	if body.SubjectPosition != nil {
		updates["subject_position"] = *body.SubjectPosition
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
		First(&subject, "subject_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "Subject updated", subject)
}

// DELETE /api/admin/library/subjects/:id
func (ctrl *LibraryController) AdminDeleteSubject(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid subject ID")
	}

	res := ctrl.DB.WithContext(c.Context()).
		Delete(&model.SubjectModel{}, "subject_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Subject not found")
	}

	return helper.JsonDeleted(c, "Subject deleted", fiber.Map{
		"subject_id": id,
	})
}

/* =======================
   Handlers (admin chapters)
======================= */

// POST /api/admin/library/subjects/:id/chapters
func (ctrl *LibraryController) AdminCreateChapter(c *fiber.Ctx) error {
	subjectID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid subject ID")
	}

	var body dto.CreateChapterRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var subject model.SubjectModel
	if err := ctrl.DB.WithContext(c.Context()).
		Select("subject_id").
		First(&subject, "subject_id = ?", subjectID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Subject not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	slug, err := helper.GenerateUniqueSlug(ctrl.DB.WithContext(c.Context()), chapterSlugOpts(subjectID), body.ChapterName)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	chapter := model.ChapterModel{
		ChapterSubjectID: subjectID,
		ChapterName:      strings.TrimSpace(body.ChapterName),
		ChapterSlug:      slug,
	}
	if body.ChapterPosition != nil {
		chapter.ChapterPosition = *body.ChapterPosition
	}

	if err := ctrl.DB.WithContext(c.Context()).Create(&chapter).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Chapter created", chapter)
}

// PATCH /api/admin/library/chapters/:id
func (ctrl *LibraryController) AdminPatchChapter(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid chapter ID")
	}

	var body dto.PatchChapterRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var chapter model.ChapterModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&chapter, "chapter_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Chapter not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	updates := map[string]any{}
	if body.ChapterName != nil {
		if name := strings.TrimSpace(*body.ChapterName); name != "" {
			updates["chapter_name"] = name
		}
	}
	if body.ChapterPosition != nil {
		updates["chapter_position"] = *body.ChapterPosition
	}

	if len(updates) == 0 {
		return helper.JsonOK(c, "No changes", chapter)
	}

	if err := ctrl.DB.WithContext(c.Context()).
		Model(&chapter).
		Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := ctrl.DB.WithContext(c.Context()).
		First(&chapter, "chapter_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "Chapter updated", chapter)
}

// DELETE /api/admin/library/chapters/:id
func (ctrl *LibraryController) AdminDeleteChapter(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid chapter ID")
	}

	res := ctrl.DB.WithContext(c.Context()).
		Delete(&model.ChapterModel{}, "chapter_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Chapter not found")
	}

	return helper.JsonDeleted(c, "Chapter deleted", fiber.Map{
		"chapter_id": id,
	})
}

/* =======================
   Handlers (admin materials)
======================= */

// POST /api/admin/library/chapters/:id/materials
func (ctrl *LibraryController) AdminCreateMaterial(c *fiber.Ctx) error {
	chapterID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid chapter ID")
	}

	var body dto.CreateMaterialRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var chapter model.ChapterModel
	if err := ctrl.DB.WithContext(c.Context()).
		Select("chapter_id").
		First(&chapter, "chapter_id = ?", chapterID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Chapter not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	slug, err := helper.GenerateUniqueSlug(ctrl.DB.WithContext(c.Context()), materialSlugOpts(chapterID), body.StudyMaterialTitle)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	material := body.ToModel(chapterID, slug)
	if err := ctrl.DB.WithContext(c.Context()).Create(material).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Material created", material)
}

// PATCH /api/admin/library/materials/:id
func (ctrl *LibraryController) AdminPatchMaterial(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid material ID")
	}

	var body dto.PatchMaterialRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var material model.StudyMaterialModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&material, "study_material_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Material not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	updates := map[string]any{}
	if body.StudyMaterialTitle != nil {
		if title := strings.TrimSpace(*body.StudyMaterialTitle); title != "" {
			updates["study_material_title"] = title
		}
	}
	if body.StudyMaterialKind != nil {
		updates["study_material_kind"] = *body.StudyMaterialKind
	}
	if body.StudyMaterialContent != nil {
		if content := strings.TrimSpace(*body.StudyMaterialContent); content != "" {
			updates["study_material_content"] = content
		} else {
			updates["study_material_content"] = gorm.Expr("NULL")
		}
	}
	if body.StudyMaterialFileURL != nil {
		if fileURL := strings.TrimSpace(*body.StudyMaterialFileURL); fileURL != "" {
			updates["study_material_file_url"] = fileURL
		} else {
			updates["study_material_file_url"] = gorm.Expr("NULL")
		}
	}
	if body.StudyMaterialTopics != nil {
		updates["study_material_topics"] = pq.StringArray(body.StudyMaterialTopics)
	}
	if body.StudyMaterialReadMinutes != nil {
		updates["study_material_read_minutes"] = *body.StudyMaterialReadMinutes
	}
	if body.StudyMaterialIsPublished != nil {
		updates["study_material_is_published"] = *body.StudyMaterialIsPublished
	}

	if len(updates) == 0 {
		return helper.JsonOK(c, "No changes", material)
	}

	if err := ctrl.DB.WithContext(c.Context()).
		Model(&material).
		Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := ctrl.DB.WithContext(c.Context()).
		First(&material, "study_material_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "Material updated", material)
}

// POST /api/admin/library/materials/:id/cover
// Multipart upload; the image is re-encoded to webp and pushed to OSS.
func (ctrl *LibraryController) AdminUploadMaterialCover(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid material ID")
	}

	var material model.StudyMaterialModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&material, "study_material_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Material not found")
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

	coverURL, thumbURL, err := storage.UploadContentCover(c.Context(), svc, "materials", material.StudyMaterialID, fh)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	oldCover, oldThumb := material.StudyMaterialCoverURL, material.StudyMaterialThumbURL
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&material).
		Updates(map[string]any{
			"study_material_cover_url": coverURL,
			"study_material_thumb_url": thumbURL,
		}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	material.StudyMaterialCoverURL = &coverURL
	material.StudyMaterialThumbURL = &thumbURL

	// Replaced cover objects are cleaned up best-effort.
	for _, old := range []*string{oldCover, oldThumb} {
		if old != nil && strings.Contains(*old, "/content/materials/") {
			go func(u string) {
				_ = storage.DeleteByPublicURLENV(u, 15*time.Second)
			}(*old)
		}
	}

	return helper.JsonUpdated(c, "Cover uploaded", material)
}

// POST /api/admin/library/materials/:id/file
// Uploads the material document as-is (no recompress) and stores its URL.
func (ctrl *LibraryController) AdminUploadMaterialFile(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid material ID")
	}

	var material model.StudyMaterialModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&material, "study_material_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Material not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	form, err := c.MultipartForm()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Multipart form required")
	}
	fh := storage.PickUploadedFile(form, "file", "document", "material")
	if fh == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Document file missing")
	}
	if fh.Size > maxMaterialFileSize {
		return helper.JsonError(c, fiber.StatusRequestEntityTooLarge, "File too large (max 25MB)")
	}
	if constants.DetectMaterialKindFromExt(fh.Filename) == "" {
		return helper.JsonError(c, fiber.StatusUnsupportedMediaType, "Unsupported file type (use pdf/md/txt/doc/docx)")
	}

	svc, err := storage.NewOSSServiceFromEnv("")
	if err != nil {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Storage not configured")
	}

	key, _, err := svc.UploadFromFormFileToDir(c.Context(), "content/materials/"+material.StudyMaterialID.String(), fh)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, "Upload to OSS failed")
	}
	fileURL := svc.PublicURL(key)

	oldURL := material.StudyMaterialFileURL
	if err := ctrl.DB.WithContext(c.Context()).
		Model(&material).
		Update("study_material_file_url", fileURL).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	material.StudyMaterialFileURL = &fileURL

	if oldURL != nil && *oldURL != fileURL && strings.Contains(*oldURL, "/content/materials/") {
		go func(u string) {
			_ = storage.DeleteByPublicURLENV(u, 15*time.Second)
		}(*oldURL)
	}

	return helper.JsonUpdated(c, "File uploaded", material)
}

// DELETE /api/admin/library/materials/:id
func (ctrl *LibraryController) AdminDeleteMaterial(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid material ID")
	}

	res := ctrl.DB.WithContext(c.Context()).
		Delete(&model.StudyMaterialModel{}, "study_material_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Material not found")
	}

	return helper.JsonDeleted(c, "Material deleted", fiber.Map{
		"study_material_id": id,
	})
}
