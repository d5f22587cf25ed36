package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ==============================
   MODEL — exams
============================== */

type ExamModel struct {
	ExamID          uuid.UUID `gorm:"column:exam_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"exam_id"`
	ExamInstituteID uuid.UUID `gorm:"column:exam_institute_id;type:uuid;not null;index" json:"exam_institute_id"`

	ExamName      string    `gorm:"column:exam_name;type:varchar(100);not null" json:"exam_name"`
	ExamStartDate time.Time `gorm:"column:exam_start_date;type:date;not null" json:"exam_start_date"`
	ExamEndDate   time.Time `gorm:"column:exam_end_date;type:date;not null" json:"exam_end_date"`

	ExamCreatedAt time.Time      `gorm:"column:exam_created_at;type:timestamptz;not null;default:now()" json:"exam_created_at"`
	ExamDeletedAt gorm.DeletedAt `gorm:"column:exam_deleted_at;type:timestamptz;index" json:"-"`
}

func (ExamModel) TableName() string { return "exams" }

/* ==============================
   MODEL — exam_schedules
   Satu slot per exam+class+section+subject+tanggal.
============================== */

type ExamScheduleModel struct {
	ExamScheduleID          uuid.UUID `gorm:"column:exam_schedule_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"exam_schedule_id"`
	ExamScheduleInstituteID uuid.UUID `gorm:"column:exam_schedule_institute_id;type:uuid;not null;index" json:"exam_schedule_institute_id"`

	ExamScheduleExamID    uuid.UUID  `gorm:"column:exam_schedule_exam_id;type:uuid;not null;index" json:"exam_schedule_exam_id"`
	ExamScheduleClassID   uuid.UUID  `gorm:"column:exam_schedule_class_id;type:uuid;not null;index" json:"exam_schedule_class_id"`
	ExamScheduleSectionID *uuid.UUID `gorm:"column:exam_schedule_section_id;type:uuid;index" json:"exam_schedule_section_id"`
	ExamScheduleSubjectID uuid.UUID  `gorm:"column:exam_schedule_subject_id;type:uuid;not null;index" json:"exam_schedule_subject_id"`
	ExamScheduleTeacherID *uuid.UUID `gorm:"column:exam_schedule_teacher_id;type:uuid;index" json:"exam_schedule_teacher_id"`

	ExamScheduleDate time.Time `gorm:"column:exam_schedule_date;type:date;not null" json:"exam_schedule_date"`

	ExamScheduleCreatedAt time.Time `gorm:"column:exam_schedule_created_at;type:timestamptz;not null;default:now()" json:"exam_schedule_created_at"`
}

func (ExamScheduleModel) TableName() string { return "exam_schedules" }

/* ==============================
   MODEL — exam_marks
   Unik per exam+student+subject; input ulang menimpa nilai.
============================== */

type ExamMarkModel struct {
	ExamMarkID          uuid.UUID `gorm:"column:exam_mark_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"exam_mark_id"`
	ExamMarkInstituteID uuid.UUID `gorm:"column:exam_mark_institute_id;type:uuid;not null;index" json:"exam_mark_institute_id"`

	ExamMarkExamID    uuid.UUID `gorm:"column:exam_mark_exam_id;type:uuid;not null;uniqueIndex:uniq_exam_mark,priority:1" json:"exam_mark_exam_id"`
	ExamMarkStudentID uuid.UUID `gorm:"column:exam_mark_student_id;type:uuid;not null;uniqueIndex:uniq_exam_mark,priority:2" json:"exam_mark_student_id"`
	ExamMarkSubjectID uuid.UUID `gorm:"column:exam_mark_subject_id;type:uuid;not null;uniqueIndex:uniq_exam_mark,priority:3" json:"exam_mark_subject_id"`

	ExamMarkMarks int `gorm:"column:exam_mark_marks;not null" json:"exam_mark_marks"`

	ExamMarkCreatedAt time.Time `gorm:"column:exam_mark_created_at;type:timestamptz;not null;default:now()" json:"exam_mark_created_at"`
	ExamMarkUpdatedAt time.Time `gorm:"column:exam_mark_updated_at;type:timestamptz;not null;default:now()" json:"exam_mark_updated_at"`
}

func (ExamMarkModel) TableName() string { return "exam_marks" }

func (m *ExamMarkModel) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.ExamMarkCreatedAt.IsZero() {
		m.ExamMarkCreatedAt = now
	}
	m.ExamMarkUpdatedAt = now
	return nil
}

func (m *ExamMarkModel) BeforeUpdate(tx *gorm.DB) error {
	m.ExamMarkUpdatedAt = time.Now()
	return nil
}
