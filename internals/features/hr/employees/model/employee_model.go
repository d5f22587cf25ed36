package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ==============================
   MODEL — employees
============================== */

type EmployeeModel struct {
	EmployeeID uuid.UUID `gorm:"column:employee_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"employee_id"`

	// Tenant
	EmployeeInstituteID uuid.UUID `gorm:"column:employee_institute_id;type:uuid;not null;index" json:"employee_institute_id"`

	EmployeeName        string  `gorm:"column:employee_name;type:varchar(150);not null" json:"employee_name"`
	EmployeeDesignation *string `gorm:"column:employee_designation;type:varchar(100)" json:"employee_designation,omitempty"`
	EmployeePhone       *string `gorm:"column:employee_phone;type:varchar(20)" json:"employee_phone,omitempty"`
	EmployeeGender      *string `gorm:"column:employee_gender;type:varchar(20)" json:"employee_gender,omitempty"`
	EmployeeReligion    *string `gorm:"column:employee_religion;type:varchar(50)" json:"employee_religion,omitempty"`
	EmployeeEducation   *string `gorm:"column:employee_education;type:varchar(100)" json:"employee_education,omitempty"`
	EmployeeAddress     *string `gorm:"column:employee_address;type:varchar(500)" json:"employee_address,omitempty"`

	// Link ke akun login (nullable — employee belum tentu punya login)
	EmployeeUserID *uuid.UUID `gorm:"column:employee_user_id;type:uuid;index" json:"employee_user_id,omitempty"`

	EmployeeCreatedAt time.Time      `gorm:"column:employee_created_at;type:timestamptz;not null;default:now()" json:"employee_created_at"`
	EmployeeUpdatedAt time.Time      `gorm:"column:employee_updated_at;type:timestamptz;not null;default:now()" json:"employee_updated_at"`
	EmployeeDeletedAt gorm.DeletedAt `gorm:"column:employee_deleted_at;type:timestamptz;index" json:"-"`
}

func (EmployeeModel) TableName() string { return "employees" }

func (m *EmployeeModel) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.EmployeeCreatedAt.IsZero() {
		m.EmployeeCreatedAt = now
	}
	m.EmployeeUpdatedAt = now
	return nil
}

func (m *EmployeeModel) BeforeUpdate(tx *gorm.DB) error {
	m.EmployeeUpdatedAt = time.Now()
	return nil
}

/* ==============================
   MODEL — employee_permissions
   Satu row per employee, flag per fitur.
============================== */

type EmployeePermissionModel struct {
	EmployeePermissionID         uuid.UUID `gorm:"column:employee_permission_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"employee_permission_id"`
	EmployeePermissionEmployeeID uuid.UUID `gorm:"column:employee_permission_employee_id;type:uuid;not null;uniqueIndex" json:"employee_permission_employee_id"`

	CanStudents   bool `gorm:"column:can_students;not null;default:false" json:"can_students"`
	CanAttendance bool `gorm:"column:can_attendance;not null;default:false" json:"can_attendance"`
	CanExams      bool `gorm:"column:can_exams;not null;default:false" json:"can_exams"`
	CanFees       bool `gorm:"column:can_fees;not null;default:false" json:"can_fees"`
	CanTimetable  bool `gorm:"column:can_timetable;not null;default:false" json:"can_timetable"`
	CanMessages   bool `gorm:"column:can_messages;not null;default:false" json:"can_messages"`
}

func (EmployeePermissionModel) TableName() string { return "employee_permissions" }

// GrantedKeys mengembalikan daftar permission yang aktif (dipakai di claim token).
func (m EmployeePermissionModel) GrantedKeys() []string {
	out := make([]string, 0, 6)
	if m.CanStudents {
		out = append(out, "can_students")
	}
	if m.CanAttendance {
		out = append(out, "can_attendance")
	}
	if m.CanExams {
		out = append(out, "can_exams")
	}
	if m.CanFees {
		out = append(out, "can_fees")
	}
	if m.CanTimetable {
		out = append(out, "can_timetable")
	}
	if m.CanMessages {
		out = append(out, "can_messages")
	}
	return out
}
