package dto

import "github.com/google/uuid"

type TimetableUpsertDTO struct {
	ClassID   uuid.UUID  `json:"class_id" validate:"required"`
	SectionID *uuid.UUID `json:"section_id"`
	WeekdayID uuid.UUID  `json:"weekday_id" validate:"required"`
	PeriodNo  int        `json:"period_no" validate:"required,gte=1"`
	SubjectID uuid.UUID  `json:"subject_id" validate:"required"`
	TeacherID uuid.UUID  `json:"teacher_id" validate:"required"`
}

type WeekdayCreateDTO struct {
	Name string `json:"name" validate:"required,min=1,max=20"`
}

type PeriodCreateDTO struct {
	Name      string `json:"name" validate:"required,min=1,max=50"`
	StartTime string `json:"start_time" validate:"omitempty,max=10"`
	EndTime   string `json:"end_time" validate:"omitempty,max=10"`
	OrderNo   int    `json:"order_no" validate:"required,gte=1"`
}

// TimetableRow adalah baris jadwal hasil JOIN nama-nama master.
type TimetableRow struct {
	TimetableID uuid.UUID  `json:"timetable_id"`
	ClassID     uuid.UUID  `json:"class_id"`
	SectionID   *uuid.UUID `json:"section_id"`
	WeekdayID   uuid.UUID  `json:"weekday_id"`
	PeriodNo    int        `json:"period_no"`
	SubjectID   uuid.UUID  `json:"subject_id"`
	TeacherID   uuid.UUID  `json:"teacher_id"`
	ClassName   string     `json:"class_name"`
	SectionName *string    `json:"section_name"`
	WeekdayName string     `json:"weekday_name"`
	SubjectName string     `json:"subject_name"`
	TeacherName string     `json:"teacher_name"`
}
