package dto

import (
	"time"

	"github.com/google/uuid"
)

type ExamCreateDTO struct {
	Name      string    `json:"name" validate:"required,min=1,max=100"`
	StartDate time.Time `json:"start_date" validate:"required"`
	EndDate   time.Time `json:"end_date" validate:"required"`
}

type ExamScheduleItemDTO struct {
	SubjectID uuid.UUID  `json:"subject_id" validate:"required"`
	TeacherID *uuid.UUID `json:"teacher_id"`
	ExamDate  time.Time  `json:"exam_date" validate:"required"`
}

type ExamScheduleCreateDTO struct {
	ClassID   uuid.UUID             `json:"class_id" validate:"required"`
	SectionID *uuid.UUID            `json:"section_id"`
	Schedules []ExamScheduleItemDTO `json:"schedules" validate:"required,min=1,dive"`
}

type ExamMarkDTO struct {
	ExamID    uuid.UUID `json:"exam_id" validate:"required"`
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	SubjectID uuid.UUID `json:"subject_id" validate:"required"`
	Marks     int       `json:"marks" validate:"gte=0,lte=100"`
}

type ScheduleRow struct {
	SubjectName string    `json:"subject_name"`
	ExamDate    time.Time `json:"exam_date"`
}

type MarkRow struct {
	StudentID   uuid.UUID `json:"student_id"`
	StudentName string    `json:"student_name"`
	Marks       int       `json:"marks"`
}
