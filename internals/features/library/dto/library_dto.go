// file: internals/features/library/dto/library_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"sarathi_backend/internals/constants"
	model "sarathi_backend/internals/features/library/model"
)

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

/* =======================
   Requests (subjects)
======================= */

type CreateSubjectRequest struct {
	SubjectName     string  `json:"subject_name" validate:"required,max=120"`
	SubjectPaper    string  `json:"subject_paper" validate:"required,oneof=prelims mains both"`
	SubjectIcon     *string `json:"subject_icon" validate:"omitempty,max=255"`
	SubjectPosition *int    `json:"subject_position" validate:"omitempty,gte=0"`
}

func (r *CreateSubjectRequest) ToModel(slug string) *model.SubjectModel {
	m := &model.SubjectModel{
		SubjectName:  strings.TrimSpace(r.SubjectName),
		SubjectSlug:  slug,
		SubjectPaper: model.SubjectPaper(r.SubjectPaper),
		SubjectIcon:  trimPtr(r.SubjectIcon),
	}
	if r.SubjectPosition != nil {
		m.SubjectPosition = *r.SubjectPosition
	}
	return m
}

type PatchSubjectRequest struct {
	SubjectName     *string `json:"subject_name" validate:"omitempty,max=120"`
	SubjectPaper    *string `json:"subject_paper" validate:"omitempty,oneof=prelims mains both"`
	SubjectIcon     *string `json:"subject_icon" validate:"omitempty,max=255"`
	SubjectPosition *int    `json:"subject_position" validate:"omitempty,gte=0"`
}

/* =======================
   Requests (chapters)
======================= */

type CreateChapterRequest struct {
	ChapterName     string `json:"chapter_name" validate:"required,max=160"`
	ChapterPosition *int   `json:"chapter_position" validate:"omitempty,gte=0"`
}

type PatchChapterRequest struct {
	ChapterName     *string `json:"chapter_name" validate:"omitempty,max=160"`
	ChapterPosition *int    `json:"chapter_position" validate:"omitempty,gte=0"`
}

/* =======================
   Requests (materials)
======================= */

type CreateMaterialRequest struct {
	StudyMaterialTitle string `json:"study_material_title" validate:"required,max=200"`
	// Empty kind is detected from the file URL extension (fallback notes).
	StudyMaterialKind        string   `json:"study_material_kind" validate:"omitempty,oneof=notes pdf ncert pyq"`
	StudyMaterialContent     *string  `json:"study_material_content"`
	StudyMaterialFileURL     *string  `json:"study_material_file_url" validate:"omitempty,url"`
	StudyMaterialTopics      []string `json:"study_material_topics" validate:"omitempty,dive,max=120"`
	StudyMaterialReadMinutes *int     `json:"study_material_read_minutes" validate:"omitempty,gt=0,lte=600"`
	StudyMaterialIsPublished *bool    `json:"study_material_is_published"`
}

func (r *CreateMaterialRequest) ToModel(chapterID uuid.UUID, slug string) *model.StudyMaterialModel {
	kind := strings.TrimSpace(r.StudyMaterialKind)
	if kind == "" && r.StudyMaterialFileURL != nil {
		kind = constants.DetectMaterialKindFromExt(*r.StudyMaterialFileURL)
	}

	m := &model.StudyMaterialModel{
		StudyMaterialChapterID: chapterID,
		StudyMaterialTitle:     strings.TrimSpace(r.StudyMaterialTitle),
		StudyMaterialSlug:      slug,
		StudyMaterialKind:      model.MaterialKind(kind),
		StudyMaterialContent:   trimPtr(r.StudyMaterialContent),
		StudyMaterialFileURL:   trimPtr(r.StudyMaterialFileURL),
		StudyMaterialTopics:    pq.StringArray(r.StudyMaterialTopics),
	}
	m.StudyMaterialReadMinutes = 10
	if r.StudyMaterialReadMinutes != nil {
		m.StudyMaterialReadMinutes = *r.StudyMaterialReadMinutes
	}
	if r.StudyMaterialIsPublished != nil {
		m.StudyMaterialIsPublished = *r.StudyMaterialIsPublished
	}
	return m
}

type PatchMaterialRequest struct {
	StudyMaterialTitle       *string  `json:"study_material_title" validate:"omitempty,max=200"`
	StudyMaterialKind        *string  `json:"study_material_kind" validate:"omitempty,oneof=notes pdf ncert pyq"`
	StudyMaterialContent     *string  `json:"study_material_content"`
	StudyMaterialFileURL     *string  `json:"study_material_file_url" validate:"omitempty,url"`
	StudyMaterialTopics      []string `json:"study_material_topics" validate:"omitempty,dive,max=120"`
	StudyMaterialReadMinutes *int     `json:"study_material_read_minutes" validate:"omitempty,gt=0,lte=600"`
	StudyMaterialIsPublished *bool    `json:"study_material_is_published"`
}

/* =======================
   Responses
======================= */

type SubjectResponse struct {
	model.SubjectModel
	ChapterCount int64 `json:"chapter_count"`
}

type ChapterResponse struct {
	model.ChapterModel
	MaterialCount int64 `json:"material_count"`
}

// SearchResultItem decorates a material hit with where it lives in the
// library tree.
type SearchResultItem struct {
	model.StudyMaterialModel
	ChapterName string `json:"chapter_name"`
	SubjectName string `json:"subject_name"`
}
