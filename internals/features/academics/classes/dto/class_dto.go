package dto

import (
	"strings"

	"github.com/google/uuid"

	"schoolku_backend/internals/features/academics/classes/model"
)

/* ==============================
   REQUEST DTO
============================== */

type ClassCreateDTO struct {
	ClassName string `json:"class_name" validate:"required,min=1,max=50"`
}

type ClassUpdateDTO struct {
	ClassName *string `json:"class_name" validate:"omitempty,min=1,max=50"`
}

type SectionCreateDTO struct {
	SectionClassID uuid.UUID `json:"section_class_id" validate:"required"`
	SectionName    string    `json:"section_name" validate:"required,min=1,max=10"`
}

type SubjectCreateDTO struct {
	SubjectClassID uuid.UUID `json:"subject_class_id" validate:"required"`
	SubjectName    string    `json:"subject_name" validate:"required,min=1,max=100"`
}

func (r *ClassCreateDTO) ToModel(instituteID uuid.UUID) *model.SchoolClassModel {
	return &model.SchoolClassModel{
		ClassInstituteID: instituteID,
		ClassName:        strings.TrimSpace(r.ClassName),
	}
}

func (r *SectionCreateDTO) ToModel(instituteID uuid.UUID) *model.SectionModel {
	return &model.SectionModel{
		SectionInstituteID: instituteID,
		SectionClassID:     r.SectionClassID,
		SectionName:        strings.ToUpper(strings.TrimSpace(r.SectionName)),
	}
}

func (r *SubjectCreateDTO) ToModel(instituteID uuid.UUID) *model.SubjectModel {
	return &model.SubjectModel{
		SubjectInstituteID: instituteID,
		SubjectClassID:     r.SubjectClassID,
		SubjectName:        strings.TrimSpace(r.SubjectName),
	}
}

/* ==============================
   RESPONSE DTO
============================== */

type ClassResponse struct {
	ClassID   uuid.UUID         `json:"class_id"`
	ClassName string            `json:"class_name"`
	Sections  []SectionResponse `json:"sections,omitempty"`
}

type SectionResponse struct {
	SectionID      uuid.UUID `json:"section_id"`
	SectionClassID uuid.UUID `json:"section_class_id"`
	SectionName    string    `json:"section_name"`
}

type SubjectResponse struct {
	SubjectID      uuid.UUID `json:"subject_id"`
	SubjectClassID uuid.UUID `json:"subject_class_id"`
	SubjectName    string    `json:"subject_name"`
}

func ToClassResponse(m *model.SchoolClassModel) ClassResponse {
	return ClassResponse{ClassID: m.ClassID, ClassName: m.ClassName}
}

func ToSectionResponse(m *model.SectionModel) SectionResponse {
	return SectionResponse{
		SectionID:      m.SectionID,
		SectionClassID: m.SectionClassID,
		SectionName:    m.SectionName,
	}
}

func ToSubjectResponse(m *model.SubjectModel) SubjectResponse {
	return SubjectResponse{
		SubjectID:      m.SubjectID,
		SubjectClassID: m.SubjectClassID,
		SubjectName:    m.SubjectName,
	}
}

func ToSectionResponses(items []model.SectionModel) []SectionResponse {
	out := make([]SectionResponse, 0, len(items))
	for i := range items {
		out = append(out, ToSectionResponse(&items[i]))
	}
	return out
}

func ToSubjectResponses(items []model.SubjectModel) []SubjectResponse {
	out := make([]SubjectResponse, 0, len(items))
	for i := range items {
		out = append(out, ToSubjectResponse(&items[i]))
	}
	return out
}
