// file: internals/features/library/controller/library_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "sarathi_backend/internals/features/library/dto"
	model "sarathi_backend/internals/features/library/model"
	helper "sarathi_backend/internals/helpers"
)

type LibraryController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewLibraryController(db *gorm.DB) *LibraryController {
	return &LibraryController{
		DB:        db,
		Validator: validator.New(),
	}
}

type countRow struct {
	RefID uuid.UUID `gorm:"column:ref_id"`
	N     int64     `gorm:"column:n"`
}

// countsBy returns grouped child counts for a batch of parent IDs.
func (ctrl *LibraryController) countsBy(c *fiber.Ctx, tmodel interface{}, keyCol string, ids []uuid.UUID, extraWhere string, extraArgs ...interface{}) map[uuid.UUID]int64 {
	out := make(map[uuid.UUID]int64, len(ids))
	if len(ids) == 0 {
		return out
	}
	tx := ctrl.DB.WithContext(c.Context()).
		Model(tmodel).
		Select(keyCol+" AS ref_id, COUNT(*) AS n").
		Where(keyCol+" IN ?", ids).
		Group(keyCol)
	if extraWhere != "" {
		tx = tx.Where(extraWhere, extraArgs...)
	}
	var rows []countRow
	if err := tx.Scan(&rows).Error; err != nil {
		return out
	}
	for _, r := range rows {
		out[r.RefID] = r.N
	}
	return out
}

/* =======================
   Handlers (user)
======================= */

// GET /api/library/subjects?paper=
func (ctrl *LibraryController) Subjects(c *fiber.Ctx) error {
	tx := ctrl.DB.WithContext(c.Context()).Model(&model.SubjectModel{})

	if paper := strings.TrimSpace(c.Query("paper")); paper != "" {
		if !model.SubjectPaper(paper).Valid() {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid paper filter")
		}
		// "both" subjects show up under either paper
		if paper == model.SubjectPaperBoth.String() {
			tx = tx.Where("subject_paper = ?", paper)
		} else {
			tx = tx.Where("subject_paper IN ?", []string{paper, model.SubjectPaperBoth.String()})
		}
	}

	var subjects []model.SubjectModel
	if err := tx.
		Order("subject_position ASC, subject_name ASC").
		Find(&subjects).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	ids := make([]uuid.UUID, 0, len(subjects))
	for i := range subjects {
		ids = append(ids, subjects[i].SubjectID)
	}
	chapterCounts := ctrl.countsBy(c, &model.ChapterModel{}, "chapter_subject_id", ids, "chapter_deleted_at IS NULL")

	items := make([]dto.SubjectResponse, 0, len(subjects))
	for i := range subjects {
		items = append(items, dto.SubjectResponse{
			SubjectModel: subjects[i],
			ChapterCount: chapterCounts[subjects[i].SubjectID],
		})
	}

	return helper.JsonOK(c, "OK", items)
}

// GET /api/library/subjects/:id/chapters
func (ctrl *LibraryController) SubjectChapters(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid subject ID")
	}

	var subject model.SubjectModel
	if err := ctrl.DB.WithContext(c.Context()).
		Select("subject_id").
		First(&subject, "subject_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Subject not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var chapters []model.ChapterModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("chapter_subject_id = ?", id).
		Order("chapter_position ASC, chapter_name ASC").
		Find(&chapters).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	ids := make([]uuid.UUID, 0, len(chapters))
	for i := range chapters {
		ids = append(ids, chapters[i].ChapterID)
	}
	materialCounts := ctrl.countsBy(c, &model.StudyMaterialModel{}, "study_material_chapter_id", ids,
		"study_material_is_published = TRUE AND study_material_deleted_at IS NULL")

	items := make([]dto.ChapterResponse, 0, len(chapters))
	for i := range chapters {
		items = append(items, dto.ChapterResponse{
			ChapterModel:  chapters[i],
			MaterialCount: materialCounts[chapters[i].ChapterID],
		})
	}

	return helper.JsonOK(c, "OK", items)
}

// GET /api/library/chapters/:id/materials
func (ctrl *LibraryController) ChapterMaterials(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid chapter ID")
	}

	var chapter model.ChapterModel
	if err := ctrl.DB.WithContext(c.Context()).
		Select("chapter_id").
		First(&chapter, "chapter_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Chapter not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	p := helper.ParseFiber(c, "created_at", "asc", helper.DefaultOpts)

	tx := ctrl.DB.WithContext(c.Context()).
		Model(&model.StudyMaterialModel{}).
		Where("study_material_chapter_id = ? AND study_material_is_published = TRUE", id)

	if kind := strings.TrimSpace(c.Query("kind")); kind != "" {
		if !model.MaterialKind(kind).Valid() {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid kind filter")
		}
		tx = tx.Where("study_material_kind = ?", kind)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var materials []model.StudyMaterialModel
	if err := tx.
		Order("study_material_created_at ASC").
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&materials).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "OK", materials, helper.BuildMeta(total, p))
}

// GET /api/library/materials/:id
func (ctrl *LibraryController) GetMaterial(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid material ID")
	}

	var material model.StudyMaterialModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("study_material_id = ? AND study_material_is_published = TRUE", id).
		First(&material).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Material not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", material)
}

// GET /api/library/search?q=
// Matches published material titles and topics, case-insensitive.
func (ctrl *LibraryController) Search(c *fiber.Ctx) error {
	q := strings.TrimSpace(c.Query("q"))
	if len(q) < 2 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Search query must be at least 2 characters")
	}

	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)
	like := "%" + q + "%"

	tx := ctrl.DB.WithContext(c.Context()).
		Model(&model.StudyMaterialModel{}).
		Where("study_material_is_published = TRUE").
		Where("(study_material_title ILIKE ? OR array_to_string(study_material_topics, ' ') ILIKE ?)", like, like)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var materials []model.StudyMaterialModel
	if err := tx.
		Order("study_material_created_at DESC").
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&materials).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	// decorate hits with chapter and subject names
	chapterIDs := make([]uuid.UUID, 0, len(materials))
	for i := range materials {
		chapterIDs = append(chapterIDs, materials[i].StudyMaterialChapterID)
	}

	chapterNames := map[uuid.UUID]string{}
	chapterSubject := map[uuid.UUID]uuid.UUID{}
	subjectNames := map[uuid.UUID]string{}
	if len(chapterIDs) > 0 {
		var chapters []model.ChapterModel
		if err := ctrl.DB.WithContext(c.Context()).
			Unscoped().
			Where("chapter_id IN ?", chapterIDs).
			Find(&chapters).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		subjectIDs := make([]uuid.UUID, 0, len(chapters))
		for i := range chapters {
			chapterNames[chapters[i].ChapterID] = chapters[i].ChapterName
			chapterSubject[chapters[i].ChapterID] = chapters[i].ChapterSubjectID
			subjectIDs = append(subjectIDs, chapters[i].ChapterSubjectID)
		}
		var subjects []model.SubjectModel
		if err := ctrl.DB.WithContext(c.Context()).
			Unscoped().
			Where("subject_id IN ?", subjectIDs).
			Find(&subjects).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		for i := range subjects {
			subjectNames[subjects[i].SubjectID] = subjects[i].SubjectName
		}
	}

	items := make([]dto.SearchResultItem, 0, len(materials))
	for i := range materials {
		chID := materials[i].StudyMaterialChapterID
		items = append(items, dto.SearchResultItem{
			StudyMaterialModel: materials[i],
			ChapterName:        chapterNames[chID],
			SubjectName:        subjectNames[chapterSubject[chID]],
		})
	}

	return helper.JsonList(c, "OK", items, helper.BuildMeta(total, p))
}
