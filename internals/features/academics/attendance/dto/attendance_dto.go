package dto

import (
	"time"

	"github.com/google/uuid"
)

type StudentAttendanceMarkDTO struct {
	StudentID uuid.UUID  `json:"student_id" validate:"required"`
	ClassID   uuid.UUID  `json:"class_id" validate:"required"`
	SectionID *uuid.UUID `json:"section_id"`
	Date      time.Time  `json:"date" validate:"required"`
	Status    string     `json:"status" validate:"required,oneof=present absent leave"`
}

type EmployeeAttendanceMarkDTO struct {
	EmployeeID uuid.UUID `json:"employee_id" validate:"required"`
	Date       time.Time `json:"date" validate:"required"`
	Status     string    `json:"status" validate:"required,oneof=present absent leave"`
}

// Baris laporan absensi siswa hasil JOIN ke tabel students.
type StudentAttendanceRow struct {
	StudentID   uuid.UUID `json:"student_id"`
	StudentName string    `json:"student_name"`
	ClassName   string    `json:"class_name"`
	Section     string    `json:"section"`
	Date        time.Time `json:"date"`
	Status      string    `json:"status"`
}

type EmployeeAttendanceRow struct {
	EmployeeID   uuid.UUID `json:"employee_id"`
	EmployeeName string    `json:"employee_name"`
	Date         time.Time `json:"date"`
	Status       string    `json:"status"`
}

type ClassWiseRow struct {
	StudentID   uuid.UUID `json:"student_id"`
	StudentName string    `json:"student_name"`
	Status      string    `json:"status"`
}
