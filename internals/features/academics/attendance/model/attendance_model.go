package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
	StatusLeave   = "leave"
)

/* ==============================
   MODEL — student_attendances
   Satu baris per siswa per tanggal; mark ulang = update status.
============================== */

type StudentAttendanceModel struct {
	StudentAttendanceID          uuid.UUID `gorm:"column:student_attendance_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"student_attendance_id"`
	StudentAttendanceInstituteID uuid.UUID `gorm:"column:student_attendance_institute_id;type:uuid;not null;index" json:"student_attendance_institute_id"`

	StudentAttendanceStudentID uuid.UUID  `gorm:"column:student_attendance_student_id;type:uuid;not null;uniqueIndex:uniq_student_attendance_day,priority:1" json:"student_attendance_student_id"`
	StudentAttendanceClassID   uuid.UUID  `gorm:"column:student_attendance_class_id;type:uuid;not null;index" json:"student_attendance_class_id"`
	StudentAttendanceSectionID *uuid.UUID `gorm:"column:student_attendance_section_id;type:uuid;index" json:"student_attendance_section_id"`

	StudentAttendanceDate   time.Time `gorm:"column:student_attendance_date;type:date;not null;uniqueIndex:uniq_student_attendance_day,priority:2" json:"student_attendance_date"`
	StudentAttendanceStatus string    `gorm:"column:student_attendance_status;type:varchar(10);not null" json:"student_attendance_status"`

	StudentAttendanceCreatedAt time.Time `gorm:"column:student_attendance_created_at;type:timestamptz;not null;default:now()" json:"student_attendance_created_at"`
	StudentAttendanceUpdatedAt time.Time `gorm:"column:student_attendance_updated_at;type:timestamptz;not null;default:now()" json:"student_attendance_updated_at"`
}

func (StudentAttendanceModel) TableName() string { return "student_attendances" }

func (m *StudentAttendanceModel) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.StudentAttendanceCreatedAt.IsZero() {
		m.StudentAttendanceCreatedAt = now
	}
	m.StudentAttendanceUpdatedAt = now
	return nil
}

func (m *StudentAttendanceModel) BeforeUpdate(tx *gorm.DB) error {
	m.StudentAttendanceUpdatedAt = time.Now()
	return nil
}

/* ==============================
   MODEL — employee_attendances
============================== */

type EmployeeAttendanceModel struct {
	EmployeeAttendanceID          uuid.UUID `gorm:"column:employee_attendance_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"employee_attendance_id"`
	EmployeeAttendanceInstituteID uuid.UUID `gorm:"column:employee_attendance_institute_id;type:uuid;not null;index" json:"employee_attendance_institute_id"`

	EmployeeAttendanceEmployeeID uuid.UUID `gorm:"column:employee_attendance_employee_id;type:uuid;not null;uniqueIndex:uniq_employee_attendance_day,priority:1" json:"employee_attendance_employee_id"`

	EmployeeAttendanceDate   time.Time `gorm:"column:employee_attendance_date;type:date;not null;uniqueIndex:uniq_employee_attendance_day,priority:2" json:"employee_attendance_date"`
	EmployeeAttendanceStatus string    `gorm:"column:employee_attendance_status;type:varchar(10);not null" json:"employee_attendance_status"`

	EmployeeAttendanceCreatedAt time.Time `gorm:"column:employee_attendance_created_at;type:timestamptz;not null;default:now()" json:"employee_attendance_created_at"`
	EmployeeAttendanceUpdatedAt time.Time `gorm:"column:employee_attendance_updated_at;type:timestamptz;not null;default:now()" json:"employee_attendance_updated_at"`
}

func (EmployeeAttendanceModel) TableName() string { return "employee_attendances" }

func (m *EmployeeAttendanceModel) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.EmployeeAttendanceCreatedAt.IsZero() {
		m.EmployeeAttendanceCreatedAt = now
	}
	m.EmployeeAttendanceUpdatedAt = now
	return nil
}

func (m *EmployeeAttendanceModel) BeforeUpdate(tx *gorm.DB) error {
	m.EmployeeAttendanceUpdatedAt = time.Now()
	return nil
}
