package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ==============================
   MODEL — weekdays
============================== */

type WeekdayModel struct {
	WeekdayID          uuid.UUID `gorm:"column:weekday_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"weekday_id"`
	WeekdayInstituteID uuid.UUID `gorm:"column:weekday_institute_id;type:uuid;not null;index" json:"weekday_institute_id"`

	WeekdayName     string `gorm:"column:weekday_name;type:varchar(20);not null" json:"weekday_name"`
	WeekdayIsActive bool   `gorm:"column:weekday_is_active;not null;default:true" json:"weekday_is_active"`
}

func (WeekdayModel) TableName() string { return "weekdays" }

/* ==============================
   MODEL — periods
============================== */

type PeriodModel struct {
	PeriodID          uuid.UUID `gorm:"column:period_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"period_id"`
	PeriodInstituteID uuid.UUID `gorm:"column:period_institute_id;type:uuid;not null;index" json:"period_institute_id"`

	PeriodName      string `gorm:"column:period_name;type:varchar(50);not null" json:"period_name"`
	PeriodStartTime string `gorm:"column:period_start_time;type:varchar(10)" json:"period_start_time"`
	PeriodEndTime   string `gorm:"column:period_end_time;type:varchar(10)" json:"period_end_time"`
	PeriodOrderNo   int    `gorm:"column:period_order_no;not null" json:"period_order_no"`
}

func (PeriodModel) TableName() string { return "periods" }

/* ==============================
   MODEL — timetables
   Satu slot per class+section+weekday+period; isi slot bisa ditimpa.
============================== */

type TimetableModel struct {
	TimetableID          uuid.UUID `gorm:"column:timetable_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"timetable_id"`
	TimetableInstituteID uuid.UUID `gorm:"column:timetable_institute_id;type:uuid;not null;index" json:"timetable_institute_id"`

	TimetableClassID   uuid.UUID  `gorm:"column:timetable_class_id;type:uuid;not null;index" json:"timetable_class_id"`
	TimetableSectionID *uuid.UUID `gorm:"column:timetable_section_id;type:uuid;index" json:"timetable_section_id"`
	TimetableWeekdayID uuid.UUID  `gorm:"column:timetable_weekday_id;type:uuid;not null;index" json:"timetable_weekday_id"`
	TimetablePeriodNo  int        `gorm:"column:timetable_period_no;not null" json:"timetable_period_no"`

	TimetableSubjectID uuid.UUID `gorm:"column:timetable_subject_id;type:uuid;not null" json:"timetable_subject_id"`
	TimetableTeacherID uuid.UUID `gorm:"column:timetable_teacher_id;type:uuid;not null;index" json:"timetable_teacher_id"`

	TimetableCreatedAt time.Time `gorm:"column:timetable_created_at;type:timestamptz;not null;default:now()" json:"timetable_created_at"`
	TimetableUpdatedAt time.Time `gorm:"column:timetable_updated_at;type:timestamptz;not null;default:now()" json:"timetable_updated_at"`
}

func (TimetableModel) TableName() string { return "timetables" }

func (m *TimetableModel) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.TimetableCreatedAt.IsZero() {
		m.TimetableCreatedAt = now
	}
	m.TimetableUpdatedAt = now
	return nil
}

func (m *TimetableModel) BeforeUpdate(tx *gorm.DB) error {
	m.TimetableUpdatedAt = time.Now()
	return nil
}
