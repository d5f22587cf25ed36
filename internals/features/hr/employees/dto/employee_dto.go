package dto

import (
	"strings"

	"github.com/google/uuid"

	"schoolku_backend/internals/features/hr/employees/model"
)

/* ==============================
   REQUEST DTO
============================== */

type EmployeeCreateDTO struct {
	EmployeeName        string  `json:"employee_name" validate:"required,min=1,max=150"`
	EmployeeDesignation *string `json:"employee_designation" validate:"omitempty,max=100"`
	EmployeePhone       *string `json:"employee_phone" validate:"omitempty,max=20"`
	EmployeeGender      *string `json:"employee_gender" validate:"omitempty,max=20"`
	EmployeeReligion    *string `json:"employee_religion" validate:"omitempty,max=50"`
	EmployeeEducation   *string `json:"employee_education" validate:"omitempty,max=100"`
	EmployeeAddress     *string `json:"employee_address" validate:"omitempty,max=500"`
}

type EmployeeUpdateDTO struct {
	EmployeeName        *string `json:"employee_name" validate:"omitempty,min=1,max=150"`
	EmployeeDesignation *string `json:"employee_designation" validate:"omitempty,max=100"`
	EmployeePhone       *string `json:"employee_phone" validate:"omitempty,max=20"`
	EmployeeGender      *string `json:"employee_gender" validate:"omitempty,max=20"`
	EmployeeReligion    *string `json:"employee_religion" validate:"omitempty,max=50"`
	EmployeeEducation   *string `json:"employee_education" validate:"omitempty,max=100"`
	EmployeeAddress     *string `json:"employee_address" validate:"omitempty,max=500"`
}

type EmployeePermissionDTO struct {
	CanStudents   bool `json:"can_students"`
	CanAttendance bool `json:"can_attendance"`
	CanExams      bool `json:"can_exams"`
	CanFees       bool `json:"can_fees"`
	CanTimetable  bool `json:"can_timetable"`
	CanMessages   bool `json:"can_messages"`
}

type EmployeeLoginDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

func (r *EmployeeCreateDTO) ToModel(instituteID uuid.UUID) *model.EmployeeModel {
	return &model.EmployeeModel{
		EmployeeInstituteID: instituteID,
		EmployeeName:        strings.TrimSpace(r.EmployeeName),
		EmployeeDesignation: r.EmployeeDesignation,
		EmployeePhone:       r.EmployeePhone,
		EmployeeGender:      r.EmployeeGender,
		EmployeeReligion:    r.EmployeeReligion,
		EmployeeEducation:   r.EmployeeEducation,
		EmployeeAddress:     r.EmployeeAddress,
	}
}

func ApplyEmployeeUpdate(m *model.EmployeeModel, r *EmployeeUpdateDTO) {
	if r.EmployeeName != nil {
		m.EmployeeName = strings.TrimSpace(*r.EmployeeName)
	}
	if r.EmployeeDesignation != nil {
		m.EmployeeDesignation = r.EmployeeDesignation
	}
	if r.EmployeePhone != nil {
		m.EmployeePhone = r.EmployeePhone
	}
	if r.EmployeeGender != nil {
		m.EmployeeGender = r.EmployeeGender
	}
	if r.EmployeeReligion != nil {
		m.EmployeeReligion = r.EmployeeReligion
	}
	if r.EmployeeEducation != nil {
		m.EmployeeEducation = r.EmployeeEducation
	}
	if r.EmployeeAddress != nil {
		m.EmployeeAddress = r.EmployeeAddress
	}
}

/* ==============================
   RESPONSE DTO
============================== */

type EmployeeResponse struct {
	EmployeeID          uuid.UUID              `json:"employee_id"`
	EmployeeName        string                 `json:"employee_name"`
	EmployeeDesignation *string                `json:"employee_designation,omitempty"`
	EmployeePhone       *string                `json:"employee_phone,omitempty"`
	EmployeeGender      *string                `json:"employee_gender,omitempty"`
	EmployeeReligion    *string                `json:"employee_religion,omitempty"`
	EmployeeEducation   *string                `json:"employee_education,omitempty"`
	EmployeeAddress     *string                `json:"employee_address,omitempty"`
	EmployeeHasLogin    bool                   `json:"employee_has_login"`
	Permissions         *EmployeePermissionDTO `json:"permissions,omitempty"`
}

func ToEmployeeResponse(m *model.EmployeeModel, perm *model.EmployeePermissionModel) EmployeeResponse {
	resp := EmployeeResponse{
		EmployeeID:          m.EmployeeID,
		EmployeeName:        m.EmployeeName,
		EmployeeDesignation: m.EmployeeDesignation,
		EmployeePhone:       m.EmployeePhone,
		EmployeeGender:      m.EmployeeGender,
		EmployeeReligion:    m.EmployeeReligion,
		EmployeeEducation:   m.EmployeeEducation,
		EmployeeAddress:     m.EmployeeAddress,
		EmployeeHasLogin:    m.EmployeeUserID != nil,
	}
	if perm != nil {
		resp.Permissions = &EmployeePermissionDTO{
			CanStudents:   perm.CanStudents,
			CanAttendance: perm.CanAttendance,
			CanExams:      perm.CanExams,
			CanFees:       perm.CanFees,
			CanTimetable:  perm.CanTimetable,
			CanMessages:   perm.CanMessages,
		}
	}
	return resp
}
