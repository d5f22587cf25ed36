package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"schoolku_backend/internals/features/academics/students/model"
)

/* ==============================
   REQUEST DTO
============================== */

type StudentCreateDTO struct {
	StudentName        string `json:"student_name" validate:"required,min=1,max=150"`
	StudentAdmissionNo string `json:"student_admission_no" validate:"required,max=50"`
	StudentRollNo      string `json:"student_roll_no" validate:"omitempty,max=50"`

	StudentClassID   uuid.UUID  `json:"student_class_id" validate:"required"`
	StudentSectionID *uuid.UUID `json:"student_section_id"`

	StudentDOB           *time.Time `json:"student_dob"`
	StudentGender        string     `json:"student_gender" validate:"omitempty,max=10"`
	StudentAdmissionDate *time.Time `json:"student_admission_date"`

	StudentDiscountPercent int    `json:"student_discount_percent" validate:"gte=0,lte=100"`
	StudentMobile          string `json:"student_mobile" validate:"omitempty,max=20"`

	StudentBirthFormID        string `json:"student_birth_form_id" validate:"omitempty,max=50"`
	StudentOrphan             string `json:"student_orphan" validate:"omitempty,max=10"`
	StudentCaste              string `json:"student_caste" validate:"omitempty,max=50"`
	StudentOSC                string `json:"student_osc" validate:"omitempty,max=10"`
	StudentIdentificationMark string `json:"student_identification_mark" validate:"omitempty,max=255"`
	StudentPreviousSchool     string `json:"student_previous_school" validate:"omitempty,max=255"`
	StudentReligion           string `json:"student_religion" validate:"omitempty,max=50"`
	StudentBloodGroup         string `json:"student_blood_group" validate:"omitempty,max=10"`
	StudentPreviousBoardRoll  string `json:"student_previous_board_roll" validate:"omitempty,max=50"`
	StudentFamily             string `json:"student_family" validate:"omitempty,max=100"`
	StudentDisease            string `json:"student_disease" validate:"omitempty,max=255"`
	StudentTotalSiblings      int    `json:"student_total_siblings" validate:"gte=0"`
	StudentAddress            string `json:"student_address" validate:"omitempty,max=500"`

	StudentFatherName       string `json:"student_father_name" validate:"omitempty,max=150"`
	StudentFatherMobile     string `json:"student_father_mobile" validate:"omitempty,max=20"`
	StudentFatherOccupation string `json:"student_father_occupation" validate:"omitempty,max=100"`
	StudentMotherName       string `json:"student_mother_name" validate:"omitempty,max=150"`
	StudentMotherMobile     string `json:"student_mother_mobile" validate:"omitempty,max=20"`
	StudentMotherOccupation string `json:"student_mother_occupation" validate:"omitempty,max=100"`
	StudentGuardianName     string `json:"student_guardian_name" validate:"omitempty,max=150"`
	StudentGuardianRelation string `json:"student_guardian_relation" validate:"omitempty,max=50"`
	StudentGuardianMobile   string `json:"student_guardian_mobile" validate:"omitempty,max=20"`

	StudentExtraData datatypes.JSON `json:"student_extra_data"`
}

// StudentUpdateDTO: hanya field non-nil yang diterapkan.
type StudentUpdateDTO struct {
	StudentName      *string    `json:"student_name" validate:"omitempty,min=1,max=150"`
	StudentRollNo    *string    `json:"student_roll_no" validate:"omitempty,max=50"`
	StudentClassID   *uuid.UUID `json:"student_class_id"`
	StudentSectionID *uuid.UUID `json:"student_section_id"`

	StudentDOB           *time.Time `json:"student_dob"`
	StudentGender        *string    `json:"student_gender" validate:"omitempty,max=10"`
	StudentAdmissionDate *time.Time `json:"student_admission_date"`

	StudentDiscountPercent *int    `json:"student_discount_percent" validate:"omitempty,gte=0,lte=100"`
	StudentMobile          *string `json:"student_mobile" validate:"omitempty,max=20"`
	StudentCaste           *string `json:"student_caste" validate:"omitempty,max=50"`
	StudentReligion        *string `json:"student_religion" validate:"omitempty,max=50"`
	StudentBloodGroup      *string `json:"student_blood_group" validate:"omitempty,max=10"`
	StudentDisease         *string `json:"student_disease" validate:"omitempty,max=255"`
	StudentAddress         *string `json:"student_address" validate:"omitempty,max=500"`

	StudentFatherName     *string `json:"student_father_name" validate:"omitempty,max=150"`
	StudentFatherMobile   *string `json:"student_father_mobile" validate:"omitempty,max=20"`
	StudentMotherName     *string `json:"student_mother_name" validate:"omitempty,max=150"`
	StudentMotherMobile   *string `json:"student_mother_mobile" validate:"omitempty,max=20"`
	StudentGuardianName   *string `json:"student_guardian_name" validate:"omitempty,max=150"`
	StudentGuardianMobile *string `json:"student_guardian_mobile" validate:"omitempty,max=20"`

	StudentExtraData datatypes.JSON `json:"student_extra_data"`
}

type StudentLoginDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

func (r *StudentCreateDTO) ToModel(instituteID uuid.UUID, className, sectionName string) *model.StudentModel {
	return &model.StudentModel{
		StudentInstituteID:        instituteID,
		StudentName:               strings.TrimSpace(r.StudentName),
		StudentAdmissionNo:        strings.TrimSpace(r.StudentAdmissionNo),
		StudentRollNo:             strings.TrimSpace(r.StudentRollNo),
		StudentClassID:            r.StudentClassID,
		StudentClassName:          className,
		StudentSectionID:          r.StudentSectionID,
		StudentSection:            sectionName,
		StudentDOB:                r.StudentDOB,
		StudentGender:             strings.TrimSpace(r.StudentGender),
		StudentAdmissionDate:      r.StudentAdmissionDate,
		StudentDiscountPercent:    r.StudentDiscountPercent,
		StudentMobile:             strings.TrimSpace(r.StudentMobile),
		StudentBirthFormID:        r.StudentBirthFormID,
		StudentOrphan:             r.StudentOrphan,
		StudentCaste:              strings.TrimSpace(r.StudentCaste),
		StudentOSC:                r.StudentOSC,
		StudentIdentificationMark: r.StudentIdentificationMark,
		StudentPreviousSchool:     r.StudentPreviousSchool,
		StudentReligion:           strings.TrimSpace(r.StudentReligion),
		StudentBloodGroup:         r.StudentBloodGroup,
		StudentPreviousBoardRoll:  r.StudentPreviousBoardRoll,
		StudentFamily:             r.StudentFamily,
		StudentDisease:            r.StudentDisease,
		StudentTotalSiblings:      r.StudentTotalSiblings,
		StudentAddress:            r.StudentAddress,
		StudentFatherName:         strings.TrimSpace(r.StudentFatherName),
		StudentFatherMobile:       r.StudentFatherMobile,
		StudentFatherOccupation:   r.StudentFatherOccupation,
		StudentMotherName:         strings.TrimSpace(r.StudentMotherName),
		StudentMotherMobile:       r.StudentMotherMobile,
		StudentMotherOccupation:   r.StudentMotherOccupation,
		StudentGuardianName:       strings.TrimSpace(r.StudentGuardianName),
		StudentGuardianRelation:   r.StudentGuardianRelation,
		StudentGuardianMobile:     r.StudentGuardianMobile,
		StudentExtraData:          r.StudentExtraData,
	}
}

func ApplyStudentUpdate(m *model.StudentModel, r *StudentUpdateDTO) {
	if r.StudentName != nil {
		m.StudentName = strings.TrimSpace(*r.StudentName)
	}
	if r.StudentRollNo != nil {
		m.StudentRollNo = strings.TrimSpace(*r.StudentRollNo)
	}
	if r.StudentDOB != nil {
		m.StudentDOB = r.StudentDOB
	}
	if r.StudentGender != nil {
		m.StudentGender = strings.TrimSpace(*r.StudentGender)
	}
	if r.StudentAdmissionDate != nil {
		m.StudentAdmissionDate = r.StudentAdmissionDate
	}
	if r.StudentDiscountPercent != nil {
		m.StudentDiscountPercent = *r.StudentDiscountPercent
	}
	if r.StudentMobile != nil {
		m.StudentMobile = strings.TrimSpace(*r.StudentMobile)
	}
	if r.StudentCaste != nil {
		m.StudentCaste = strings.TrimSpace(*r.StudentCaste)
	}
	if r.StudentReligion != nil {
		m.StudentReligion = strings.TrimSpace(*r.StudentReligion)
	}
	if r.StudentBloodGroup != nil {
		m.StudentBloodGroup = *r.StudentBloodGroup
	}
	if r.StudentDisease != nil {
		m.StudentDisease = *r.StudentDisease
	}
	if r.StudentAddress != nil {
		m.StudentAddress = *r.StudentAddress
	}
	if r.StudentFatherName != nil {
		m.StudentFatherName = strings.TrimSpace(*r.StudentFatherName)
	}
	if r.StudentFatherMobile != nil {
		m.StudentFatherMobile = *r.StudentFatherMobile
	}
	if r.StudentMotherName != nil {
		m.StudentMotherName = strings.TrimSpace(*r.StudentMotherName)
	}
	if r.StudentMotherMobile != nil {
		m.StudentMotherMobile = *r.StudentMotherMobile
	}
	if r.StudentGuardianName != nil {
		m.StudentGuardianName = strings.TrimSpace(*r.StudentGuardianName)
	}
	if r.StudentGuardianMobile != nil {
		m.StudentGuardianMobile = *r.StudentGuardianMobile
	}
	if len(r.StudentExtraData) > 0 {
		m.StudentExtraData = r.StudentExtraData
	}
}

/* ==============================
   RESPONSE DTO
============================== */

// StudentLiteResponse untuk daftar & pencarian.
type StudentLiteResponse struct {
	StudentID          uuid.UUID `json:"student_id"`
	StudentName        string    `json:"student_name"`
	StudentAdmissionNo string    `json:"student_admission_no"`
	StudentRollNo      string    `json:"student_roll_no"`
	StudentClassID     uuid.UUID `json:"student_class_id"`
	StudentClassName   string    `json:"student_class_name"`
	StudentSection     string    `json:"student_section"`
	StudentGender      string    `json:"student_gender"`
	StudentMobile      string    `json:"student_mobile"`
	StudentPhotoURL    string    `json:"student_photo_url"`
	StudentHasLogin    bool      `json:"student_has_login"`
}

func ToStudentLiteResponse(m *model.StudentModel) StudentLiteResponse {
	return StudentLiteResponse{
		StudentID:          m.StudentID,
		StudentName:        m.StudentName,
		StudentAdmissionNo: m.StudentAdmissionNo,
		StudentRollNo:      m.StudentRollNo,
		StudentClassID:     m.StudentClassID,
		StudentClassName:   m.StudentClassName,
		StudentSection:     m.StudentSection,
		StudentGender:      m.StudentGender,
		StudentMobile:      m.StudentMobile,
		StudentPhotoURL:    m.StudentPhotoURL,
		StudentHasLogin:    m.StudentUserID != nil,
	}
}

func ToStudentLiteResponses(items []model.StudentModel) []StudentLiteResponse {
	out := make([]StudentLiteResponse, 0, len(items))
	for i := range items {
		out = append(out, ToStudentLiteResponse(&items[i]))
	}
	return out
}

type BreakdownRow struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}
